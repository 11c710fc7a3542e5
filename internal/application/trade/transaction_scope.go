package trade

import (
	"context"

	"github.com/dms/backend/internal/domain/inventory"
	"github.com/dms/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the repositories a
// contract operation touches. Everything executed within a scope commits
// or rolls back atomically; the vehicle row lock taken inside the scope
// is held until the transaction ends.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the contract and vehicle
// repositories bound to the current transaction.
type TransactionalRepositories interface {
	// Contracts returns the contract repository scoped to the current transaction
	Contracts() trade.ContractRepository
	// Vehicles returns the vehicle repository scoped to the current transaction
	Vehicles() inventory.VehicleRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for tests.
type NoOpTransactionScope struct {
	contractRepo trade.ContractRepository
	vehicleRepo  inventory.VehicleRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(contractRepo trade.ContractRepository, vehicleRepo inventory.VehicleRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		contractRepo: contractRepo,
		vehicleRepo:  vehicleRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Contracts returns the contract repository.
func (s *NoOpTransactionScope) Contracts() trade.ContractRepository {
	return s.contractRepo
}

// Vehicles returns the vehicle repository.
func (s *NoOpTransactionScope) Vehicles() inventory.VehicleRepository {
	return s.vehicleRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
