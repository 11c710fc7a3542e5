package coverage

import (
	"context"
	"time"

	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InsuranceRepository defines the interface for insurance persistence
type InsuranceRepository interface {
	// FindByID finds a policy by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Insurance, error)

	// FindByIDForDealer finds a policy by ID within a dealer
	FindByIDForDealer(ctx context.Context, dealerID, id uuid.UUID) (*Insurance, error)

	// FindAllForDealer finds all policies for a dealer
	FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]Insurance, error)

	// FindByVehicle finds policies covering a vehicle
	FindByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID, filter shared.Filter) ([]Insurance, error)

	// FindExpiringBefore finds non-cancelled policies whose expiry falls
	// before the cutoff
	FindExpiringBefore(ctx context.Context, dealerID uuid.UUID, cutoff time.Time, filter shared.Filter) ([]Insurance, error)

	// Save creates or updates a policy
	Save(ctx context.Context, insurance *Insurance) error

	// SaveWithLock saves a policy with optimistic locking (version check)
	SaveWithLock(ctx context.Context, insurance *Insurance) error

	// DeleteForDealer deletes a policy within a dealer
	DeleteForDealer(ctx context.Context, dealerID, id uuid.UUID) error

	// CountForDealer counts policies for a dealer
	CountForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByVehicle counts policies referencing a vehicle
	CountByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID) (int64, error)
}
