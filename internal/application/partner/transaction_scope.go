package partner

import (
	"context"

	"github.com/dms/backend/internal/domain/inventory"
	"github.com/dms/backend/internal/domain/partner"
)

// TransactionScope provides transactional access to the repositories a
// concesionario operation touches. Bulk release runs one scope per
// vehicle so each row commits or fails independently.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the concesionario and
// vehicle repositories bound to the current transaction.
type TransactionalRepositories interface {
	// Concesionarios returns the concesionario repository scoped to the current transaction
	Concesionarios() partner.ConcesionarioRepository
	// Vehicles returns the vehicle repository scoped to the current transaction
	Vehicles() inventory.VehicleRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for tests.
type NoOpTransactionScope struct {
	concesionarioRepo partner.ConcesionarioRepository
	vehicleRepo       inventory.VehicleRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(concesionarioRepo partner.ConcesionarioRepository, vehicleRepo inventory.VehicleRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		concesionarioRepo: concesionarioRepo,
		vehicleRepo:       vehicleRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Concesionarios returns the concesionario repository.
func (s *NoOpTransactionScope) Concesionarios() partner.ConcesionarioRepository {
	return s.concesionarioRepo
}

// Vehicles returns the vehicle repository.
func (s *NoOpTransactionScope) Vehicles() inventory.VehicleRepository {
	return s.vehicleRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
