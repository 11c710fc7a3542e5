package trade

import (
	"context"

	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ContractRepository defines the interface for contract persistence
type ContractRepository interface {
	// FindByID finds a contract by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Contract, error)

	// FindByIDForDealer finds a contract by ID within a dealer
	FindByIDForDealer(ctx context.Context, dealerID, id uuid.UUID) (*Contract, error)

	// FindAllForDealer finds all contracts for a dealer
	FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]Contract, error)

	// FindByStatus finds contracts by status for a dealer
	FindByStatus(ctx context.Context, dealerID uuid.UUID, status ContractStatus, filter shared.Filter) ([]Contract, error)

	// FindByClient finds contracts for a client
	FindByClient(ctx context.Context, dealerID, clientID uuid.UUID, filter shared.Filter) ([]Contract, error)

	// FindByVehicle finds contracts for a vehicle
	FindByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID, filter shared.Filter) ([]Contract, error)

	// FindOpenByVehicle finds the pending or active contract claiming a
	// vehicle, if any
	FindOpenByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID) (*Contract, error)

	// Save creates or updates a contract
	Save(ctx context.Context, contract *Contract) error

	// SaveWithLock saves a contract with optimistic locking (version check)
	SaveWithLock(ctx context.Context, contract *Contract) error

	// CountForDealer counts contracts for a dealer
	CountForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) (int64, error)

	// CountOpenByVehicle counts pending or active contracts claiming a vehicle
	CountOpenByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID) (int64, error)

	// CountByClient counts contracts referencing a client
	CountByClient(ctx context.Context, dealerID, clientID uuid.UUID) (int64, error)

	// CountByVehicle counts contracts referencing a vehicle
	CountByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID) (int64, error)
}
