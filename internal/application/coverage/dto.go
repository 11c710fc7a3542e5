package coverage

import (
	"time"

	"github.com/dms/backend/internal/domain/coverage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInsuranceRequest represents a request to issue a policy
type CreateInsuranceRequest struct {
	VehicleID      uuid.UUID       `json:"vehicle_id" binding:"required"`
	ClientID       *uuid.UUID      `json:"client_id"`
	ContractID     *uuid.UUID      `json:"contract_id"`
	StartDate      time.Time       `json:"start_date" binding:"required"`
	CoverageMonths int             `json:"coverage_months" binding:"required,min=1"`
	CoverageType   string          `json:"coverage_type" binding:"required,oneof=full third_party theft"`
	Premium        decimal.Decimal `json:"premium" binding:"required"`
	CreatedBy      *uuid.UUID      `json:"-"` // Set from JWT context, not from request body
}

// UpdateInsuranceRequest represents a request to change a policy's terms
// or coverage window
type UpdateInsuranceRequest struct {
	StartDate      *time.Time       `json:"start_date"`
	CoverageMonths *int             `json:"coverage_months" binding:"omitempty,min=1"`
	CoverageType   *string          `json:"coverage_type" binding:"omitempty,oneof=full third_party theft"`
	Premium        *decimal.Decimal `json:"premium"`
}

// InsuranceResponse represents a policy in API responses. The status field
// is the effective status as of the request, not the stored one.
type InsuranceResponse struct {
	ID             uuid.UUID       `json:"id"`
	DealerID       uuid.UUID       `json:"dealer_id"`
	VehicleID      uuid.UUID       `json:"vehicle_id"`
	ClientID       *uuid.UUID      `json:"client_id,omitempty"`
	ContractID     *uuid.UUID      `json:"contract_id,omitempty"`
	StartDate      time.Time       `json:"start_date"`
	CoverageMonths int             `json:"coverage_months"`
	ExpiryDate     time.Time       `json:"expiry_date"`
	CoverageType   string          `json:"coverage_type"`
	Premium        decimal.Decimal `json:"premium"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Version        int             `json:"version"`
}

// InsuranceListFilter represents filter options for policy list
type InsuranceListFilter struct {
	VehicleID      *uuid.UUID `form:"vehicle_id"`
	ExpiringInDays int        `form:"expiring_in_days" binding:"omitempty,min=1"`
	Page           int        `form:"page" binding:"min=1"`
	PageSize       int        `form:"page_size" binding:"min=1,max=100"`
	OrderBy        string     `form:"order_by"`
	OrderDir       string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToInsuranceResponse converts a domain Insurance to InsuranceResponse,
// deriving the effective status at the given instant
func ToInsuranceResponse(i *coverage.Insurance, now time.Time) InsuranceResponse {
	return InsuranceResponse{
		ID:             i.ID,
		DealerID:       i.DealerID,
		VehicleID:      i.VehicleID,
		ClientID:       i.ClientID,
		ContractID:     i.ContractID,
		StartDate:      i.StartDate,
		CoverageMonths: i.CoverageMonths,
		ExpiryDate:     i.ExpiryDate,
		CoverageType:   string(i.CoverageType),
		Premium:        i.Premium,
		Status:         string(i.EffectiveStatusAt(now)),
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
		Version:        i.Version,
	}
}

// ToInsuranceListResponses converts domain policies to responses
func ToInsuranceListResponses(policies []coverage.Insurance, now time.Time) []InsuranceResponse {
	responses := make([]InsuranceResponse, len(policies))
	for i := range policies {
		responses[i] = ToInsuranceResponse(&policies[i], now)
	}
	return responses
}
