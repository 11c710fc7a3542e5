package trade

import (
	"time"

	"github.com/dms/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateContractRequest represents a request to open a contract
type CreateContractRequest struct {
	ClientID       uuid.UUID        `json:"client_id" binding:"required"`
	VehicleID      uuid.UUID        `json:"vehicle_id" binding:"required"`
	Price          decimal.Decimal  `json:"price" binding:"required"`
	FinancingType  string           `json:"financing_type" binding:"required,oneof=cash financing"`
	DownPayment    *decimal.Decimal `json:"down_payment"`
	Months         *int             `json:"months"`
	MonthlyPayment *decimal.Decimal `json:"monthly_payment"`
	Date           *time.Time       `json:"date"`
	Notes          string           `json:"notes"`
	CreatedBy      *uuid.UUID       `json:"-"` // Set from JWT context, not from request body
}

// ChangeContractStatusRequest represents a request to move a contract
type ChangeContractStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active completed cancelled"`
}

// ContractResponse represents a contract in API responses
type ContractResponse struct {
	ID             uuid.UUID        `json:"id"`
	DealerID       uuid.UUID        `json:"dealer_id"`
	ClientID       uuid.UUID        `json:"client_id"`
	VehicleID      uuid.UUID        `json:"vehicle_id"`
	Price          decimal.Decimal  `json:"price"`
	FinancingType  string           `json:"financing_type"`
	DownPayment    *decimal.Decimal `json:"down_payment,omitempty"`
	Months         *int             `json:"months,omitempty"`
	MonthlyPayment *decimal.Decimal `json:"monthly_payment,omitempty"`
	Status         string           `json:"status"`
	Date           time.Time        `json:"date"`
	Notes          string           `json:"notes"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	Version        int              `json:"version"`
}

// ContractListFilter represents filter options for contract list
type ContractListFilter struct {
	Search    string     `form:"search"`
	Status    string     `form:"status" binding:"omitempty,oneof=pending active completed cancelled"`
	ClientID  *uuid.UUID `form:"client_id"`
	VehicleID *uuid.UUID `form:"vehicle_id"`
	Page      int        `form:"page" binding:"min=1"`
	PageSize  int        `form:"page_size" binding:"min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToContractResponse converts a domain Contract to ContractResponse
func ToContractResponse(c *trade.Contract) ContractResponse {
	return ContractResponse{
		ID:             c.ID,
		DealerID:       c.DealerID,
		ClientID:       c.ClientID,
		VehicleID:      c.VehicleID,
		Price:          c.Price,
		FinancingType:  string(c.FinancingType),
		DownPayment:    c.DownPayment,
		Months:         c.Months,
		MonthlyPayment: c.MonthlyPayment,
		Status:         string(c.Status),
		Date:           c.Date,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		Version:        c.Version,
	}
}

// ToContractListResponses converts domain Contracts to responses
func ToContractListResponses(contracts []trade.Contract) []ContractResponse {
	responses := make([]ContractResponse, len(contracts))
	for i := range contracts {
		responses[i] = ToContractResponse(&contracts[i])
	}
	return responses
}
