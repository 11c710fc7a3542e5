package partner

import (
	"time"

	"github.com/dms/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateConcesionarioRequest represents a request to create a concesionario
type CreateConcesionarioRequest struct {
	Name          string     `json:"name" binding:"required,min=1,max=200"`
	ContactPerson string     `json:"contact_person" binding:"max=100"`
	Phone         string     `json:"phone" binding:"max=50"`
	Email         string     `json:"email" binding:"omitempty,email,max=200"`
	Address       string     `json:"address" binding:"max=500"`
	CreatedBy     *uuid.UUID `json:"-"` // Set from JWT context, not from request body
}

// UpdateConcesionarioRequest represents a request to update a concesionario
type UpdateConcesionarioRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=200"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=100"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Email         *string `json:"email" binding:"omitempty,email,max=200"`
	Address       *string `json:"address" binding:"omitempty,max=500"`
}

// ConcesionarioResponse represents a concesionario in API responses
type ConcesionarioResponse struct {
	ID            uuid.UUID `json:"id"`
	DealerID      uuid.UUID `json:"dealer_id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Version       int       `json:"version"`
}

// ConcesionarioListFilter represents filter options for concesionario list
type ConcesionarioListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Page     int    `form:"page" binding:"min=1"`
	PageSize int    `form:"page_size" binding:"min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ReleaseFailure reports one vehicle that could not be released
type ReleaseFailure struct {
	VehicleID uuid.UUID `json:"vehicle_id"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
}

// ReleaseVehiclesResult is the partial-success report of a bulk release.
// Each vehicle is processed in its own transaction, so some rows can
// succeed while others fail.
type ReleaseVehiclesResult struct {
	Released []uuid.UUID      `json:"released"`
	Failures []ReleaseFailure `json:"failures"`
}

// ToConcesionarioResponse converts a domain Concesionario to a response
func ToConcesionarioResponse(c *partner.Concesionario) ConcesionarioResponse {
	return ConcesionarioResponse{
		ID:            c.ID,
		DealerID:      c.DealerID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		Version:       c.Version,
	}
}

// ToConcesionarioListResponses converts domain Concesionarios to responses
func ToConcesionarioListResponses(concesionarios []partner.Concesionario) []ConcesionarioResponse {
	responses := make([]ConcesionarioResponse, len(concesionarios))
	for i := range concesionarios {
		responses[i] = ToConcesionarioResponse(&concesionarios[i])
	}
	return responses
}
