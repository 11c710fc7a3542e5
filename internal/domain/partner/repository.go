package partner

import (
	"context"

	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ConcesionarioRepository defines the interface for concesionario persistence
type ConcesionarioRepository interface {
	// FindByID finds a concesionario by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Concesionario, error)

	// FindByIDForDealer finds a concesionario by ID within a dealer
	FindByIDForDealer(ctx context.Context, dealerID, id uuid.UUID) (*Concesionario, error)

	// FindAllForDealer finds all concesionarios for a dealer
	FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]Concesionario, error)

	// FindByStatus finds concesionarios by status for a dealer
	FindByStatus(ctx context.Context, dealerID uuid.UUID, status ConcesionarioStatus, filter shared.Filter) ([]Concesionario, error)

	// Save creates or updates a concesionario
	Save(ctx context.Context, concesionario *Concesionario) error

	// SaveWithLock saves a concesionario with optimistic locking (version check)
	SaveWithLock(ctx context.Context, concesionario *Concesionario) error

	// DeleteForDealer deletes a concesionario within a dealer
	DeleteForDealer(ctx context.Context, dealerID, id uuid.UUID) error

	// CountForDealer counts concesionarios for a dealer
	CountForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) (int64, error)

	// ExistsByName checks if a concesionario with the given name exists in the dealer
	ExistsByName(ctx context.Context, dealerID uuid.UUID, name string) (bool, error)
}
