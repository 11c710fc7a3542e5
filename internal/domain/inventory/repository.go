package inventory

import (
	"context"

	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// VehicleRepository defines the interface for vehicle persistence
type VehicleRepository interface {
	// FindByID finds a vehicle by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Vehicle, error)

	// FindByIDForDealer finds a vehicle by ID within a dealer
	FindByIDForDealer(ctx context.Context, dealerID, id uuid.UUID) (*Vehicle, error)

	// FindByIDForDealerLocked loads a vehicle with a row lock. Must be
	// called inside a transaction; the lock is held until commit.
	FindByIDForDealerLocked(ctx context.Context, dealerID, id uuid.UUID) (*Vehicle, error)

	// FindByVIN finds a vehicle by VIN across all dealers
	FindByVIN(ctx context.Context, vin string) (*Vehicle, error)

	// FindAllForDealer finds all vehicles for a dealer
	FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]Vehicle, error)

	// FindByStatus finds vehicles by status for a dealer
	FindByStatus(ctx context.Context, dealerID uuid.UUID, status VehicleStatus, filter shared.Filter) ([]Vehicle, error)

	// FindByConcesionario finds vehicles held by a concesionario
	FindByConcesionario(ctx context.Context, dealerID, concesionarioID uuid.UUID, filter shared.Filter) ([]Vehicle, error)

	// Save creates or updates a vehicle
	Save(ctx context.Context, vehicle *Vehicle) error

	// SaveWithLock saves a vehicle with optimistic locking (version check)
	SaveWithLock(ctx context.Context, vehicle *Vehicle) error

	// DeleteForDealer deletes a vehicle within a dealer
	DeleteForDealer(ctx context.Context, dealerID, id uuid.UUID) error

	// CountForDealer counts vehicles for a dealer
	CountForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByConcesionario counts vehicles held by a concesionario
	CountByConcesionario(ctx context.Context, dealerID, concesionarioID uuid.UUID) (int64, error)

	// ExistsByVIN checks if a vehicle with the given VIN exists anywhere.
	// The uniqueness scope is global, so no dealer parameter.
	ExistsByVIN(ctx context.Context, vin string) (bool, error)

	// ExistsByPlate checks if a vehicle with the given plate exists anywhere
	ExistsByPlate(ctx context.Context, plate string) (bool, error)
}
