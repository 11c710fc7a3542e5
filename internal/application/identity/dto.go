package identity

import (
	"time"

	"github.com/dms/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// CreateDealerRequest represents a request to register a dealer
type CreateDealerRequest struct {
	BusinessName string `json:"business_name" binding:"required,min=1,max=200"`
	ContactName  string `json:"contact_name" binding:"max=200"`
	Phone        string `json:"phone" binding:"max=50"`
	Email        string `json:"email" binding:"omitempty,email,max=200"`
	Address      string `json:"address" binding:"max=500"`
}

// UpdateDealerRequest represents a request to update a dealer
type UpdateDealerRequest struct {
	BusinessName *string `json:"business_name" binding:"omitempty,min=1,max=200"`
	ContactName  *string `json:"contact_name" binding:"omitempty,max=200"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	Email        *string `json:"email" binding:"omitempty,email,max=200"`
	Address      *string `json:"address" binding:"omitempty,max=500"`
}

// DealerResponse represents a dealer in API responses
type DealerResponse struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"business_name"`
	ContactName  string    `json:"contact_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Version      int       `json:"version"`
}

// DealerListFilter represents filter options for dealer list
type DealerListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"min=1"`
	PageSize int    `form:"page_size" binding:"min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CreateProfileRequest represents a request to bind a user to a dealer
type CreateProfileRequest struct {
	UserID      uuid.UUID `json:"user_id" binding:"required"`
	DisplayName string    `json:"display_name" binding:"required,min=1,max=200"`
	Email       string    `json:"email" binding:"omitempty,email,max=200"`
	Role        string    `json:"role" binding:"required,oneof=admin user"`
}

// ChangeProfileRoleRequest represents a role change for a profile
type ChangeProfileRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin user"`
}

// ProfileResponse represents a profile in API responses
type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	DealerID    uuid.UUID `json:"dealer_id"`
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToDealerResponse converts a domain Dealer to DealerResponse
func ToDealerResponse(d *identity.Dealer) DealerResponse {
	return DealerResponse{
		ID:           d.ID,
		BusinessName: d.BusinessName,
		ContactName:  d.ContactName,
		Phone:        d.Phone,
		Email:        d.Email,
		Address:      d.Address,
		Status:       string(d.Status),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		Version:      d.Version,
	}
}

// ToDealerListResponses converts domain Dealers to responses
func ToDealerListResponses(dealers []identity.Dealer) []DealerResponse {
	responses := make([]DealerResponse, len(dealers))
	for i := range dealers {
		responses[i] = ToDealerResponse(&dealers[i])
	}
	return responses
}

// ToProfileResponse converts a domain Profile to ProfileResponse
func ToProfileResponse(p *identity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID,
		DealerID:    p.DealerID,
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		Email:       p.Email,
		Role:        string(p.Role),
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProfileListResponses converts domain Profiles to responses
func ToProfileListResponses(profiles []identity.Profile) []ProfileResponse {
	responses := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = ToProfileResponse(&profiles[i])
	}
	return responses
}
