package party

import (
	"time"

	"github.com/dms/backend/internal/domain/party"
	"github.com/google/uuid"
)

// CreateClientRequest represents a request to register a client
type CreateClientRequest struct {
	Cedula    string     `json:"cedula" binding:"required,min=1,max=30"`
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	Phone     string     `json:"phone" binding:"max=50"`
	Email     string     `json:"email" binding:"omitempty,email,max=200"`
	Address   string     `json:"address" binding:"max=500"`
	CreatedBy *uuid.UUID `json:"-"` // Set from JWT context, not from request body
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	Cedula  *string `json:"cedula" binding:"omitempty,min=1,max=30"`
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,email,max=200"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	DealerID  uuid.UUID `json:"dealer_id"`
	Cedula    string    `json:"cedula"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// ClientListFilter represents filter options for client list
type ClientListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"min=1"`
	PageSize int    `form:"page_size" binding:"min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToClientResponse converts a domain Client to ClientResponse
func ToClientResponse(c *party.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		DealerID:  c.DealerID,
		Cedula:    c.Cedula,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Version:   c.Version,
	}
}

// ToClientListResponses converts domain Clients to responses
func ToClientListResponses(clients []party.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses
}
