package party

import (
	"context"

	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	// FindByID finds a client by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)

	// FindByIDForDealer finds a client by ID within a dealer
	FindByIDForDealer(ctx context.Context, dealerID, id uuid.UUID) (*Client, error)

	// FindByCedula finds a client by cedula across all dealers
	FindByCedula(ctx context.Context, cedula string) (*Client, error)

	// FindAllForDealer finds all clients for a dealer
	FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]Client, error)

	// Save creates or updates a client
	Save(ctx context.Context, client *Client) error

	// SaveWithLock saves a client with optimistic locking (version check)
	SaveWithLock(ctx context.Context, client *Client) error

	// DeleteForDealer deletes a client within a dealer
	DeleteForDealer(ctx context.Context, dealerID, id uuid.UUID) error

	// CountForDealer counts clients for a dealer
	CountForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) (int64, error)

	// ExistsByCedula checks if a client with the given cedula exists anywhere.
	// The uniqueness scope is global, so no dealer parameter.
	ExistsByCedula(ctx context.Context, cedula string) (bool, error)
}
