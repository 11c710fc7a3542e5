package inventory

import (
	"time"

	"github.com/dms/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateVehicleRequest represents a request to register a vehicle
type CreateVehicleRequest struct {
	ConcesionarioID *uuid.UUID      `json:"concesionario_id"`
	Brand           string          `json:"brand" binding:"required,min=1,max=100"`
	Model           string          `json:"model" binding:"required,min=1,max=100"`
	Year            int             `json:"year" binding:"required"`
	Trim            string          `json:"trim" binding:"max=100"`
	VIN             string          `json:"vin" binding:"required,min=5,max=17"`
	Plate           string          `json:"plate" binding:"max=20"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	Condition       string          `json:"condition" binding:"required,oneof=new used"`
	Mileage         int             `json:"mileage" binding:"min=0"`
	Transmission    string          `json:"transmission" binding:"omitempty,oneof=manual automatic cvt"`
	FuelType        string          `json:"fuel_type" binding:"omitempty,oneof=gasoline diesel hybrid electric"`
	Images          string          `json:"images"`
	EntryDate       *time.Time      `json:"entry_date"`
	CreatedBy       *uuid.UUID      `json:"-"` // Set from JWT context, not from request body
}

// UpdateVehicleRequest represents a request to update a vehicle's details
type UpdateVehicleRequest struct {
	Brand        *string          `json:"brand" binding:"omitempty,min=1,max=100"`
	Model        *string          `json:"model" binding:"omitempty,min=1,max=100"`
	Year         *int             `json:"year"`
	Trim         *string          `json:"trim" binding:"omitempty,max=100"`
	Plate        *string          `json:"plate" binding:"omitempty,max=20"`
	Price        *decimal.Decimal `json:"price"`
	Mileage      *int             `json:"mileage" binding:"omitempty,min=0"`
	Transmission *string          `json:"transmission" binding:"omitempty,oneof=manual automatic cvt"`
	FuelType     *string          `json:"fuel_type" binding:"omitempty,oneof=gasoline diesel hybrid electric"`
	Images       *string          `json:"images"`
}

// ChangeVehicleStatusRequest represents a manual status change
type ChangeVehicleStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available reserved in_process sold maintenance"`
}

// AssignConcesionarioRequest moves a vehicle between consignment holders.
// A nil concesionario_id returns the vehicle to dealer-owned stock.
type AssignConcesionarioRequest struct {
	ConcesionarioID *uuid.UUID `json:"concesionario_id"`
}

// VehicleResponse represents a vehicle in API responses
type VehicleResponse struct {
	ID              uuid.UUID       `json:"id"`
	DealerID        uuid.UUID       `json:"dealer_id"`
	ConcesionarioID *uuid.UUID      `json:"concesionario_id,omitempty"`
	Brand           string          `json:"brand"`
	Model           string          `json:"model"`
	Year            int             `json:"year"`
	Trim            string          `json:"trim,omitempty"`
	VIN             string          `json:"vin"`
	Plate           *string         `json:"plate,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Condition       string          `json:"condition"`
	Status          string          `json:"status"`
	Mileage         int             `json:"mileage"`
	Transmission    string          `json:"transmission,omitempty"`
	FuelType        string          `json:"fuel_type,omitempty"`
	Images          string          `json:"images"`
	EntryDate       time.Time       `json:"entry_date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Version         int             `json:"version"`
}

// VehicleListFilter represents filter options for vehicle list
type VehicleListFilter struct {
	Status          string     `form:"status" binding:"omitempty,oneof=available reserved in_process sold maintenance"`
	ConcesionarioID *uuid.UUID `form:"concesionario_id"`
	Search          string     `form:"search"`
	Page            int        `form:"page" binding:"min=1"`
	PageSize        int        `form:"page_size" binding:"min=1,max=100"`
	OrderBy         string     `form:"order_by"`
	OrderDir        string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToVehicleResponse converts a domain Vehicle to VehicleResponse
func ToVehicleResponse(v *inventory.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:              v.ID,
		DealerID:        v.DealerID,
		ConcesionarioID: v.ConcesionarioID,
		Brand:           v.Brand,
		Model:           v.Model,
		Year:            v.Year,
		Trim:            v.Trim,
		VIN:             v.VIN,
		Plate:           v.Plate,
		Price:           v.Price,
		Condition:       string(v.Condition),
		Status:          string(v.Status),
		Mileage:         v.Mileage,
		Transmission:    string(v.Transmission),
		FuelType:        string(v.FuelType),
		Images:          v.Images,
		EntryDate:       v.EntryDate,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
		Version:         v.Version,
	}
}

// ToVehicleListResponses converts domain Vehicles to responses
func ToVehicleListResponses(vehicles []inventory.Vehicle) []VehicleResponse {
	responses := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		responses[i] = ToVehicleResponse(&vehicles[i])
	}
	return responses
}
