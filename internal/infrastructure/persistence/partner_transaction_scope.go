package persistence

import (
	"context"

	apppartner "github.com/dms/backend/internal/application/partner"
	"github.com/dms/backend/internal/domain/inventory"
	"github.com/dms/backend/internal/domain/partner"
	"gorm.io/gorm"
)

// GormPartnerTransactionScope implements the partner TransactionScope
// using GORM transactions. Releasing a concesionario's vehicles back to
// dealer stock touches many rows and must commit as one unit.
type GormPartnerTransactionScope struct {
	db *gorm.DB
}

// NewGormPartnerTransactionScope creates a new GormPartnerTransactionScope
func NewGormPartnerTransactionScope(db *gorm.DB) *GormPartnerTransactionScope {
	return &GormPartnerTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormPartnerTransactionScope) Execute(ctx context.Context, fn func(repos apppartner.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormPartnerTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormPartnerTransactionalRepositories provides repositories scoped to one
// transaction
type gormPartnerTransactionalRepositories struct {
	tx *gorm.DB
}

// Concesionarios returns the concesionario repository scoped to the current transaction
func (r *gormPartnerTransactionalRepositories) Concesionarios() partner.ConcesionarioRepository {
	return NewGormConcesionarioRepository(r.tx)
}

// Vehicles returns the vehicle repository scoped to the current transaction
func (r *gormPartnerTransactionalRepositories) Vehicles() inventory.VehicleRepository {
	return NewGormVehicleRepository(r.tx)
}

// Ensure GormPartnerTransactionScope implements TransactionScope
var _ apppartner.TransactionScope = (*GormPartnerTransactionScope)(nil)

// Ensure gormPartnerTransactionalRepositories implements TransactionalRepositories
var _ apppartner.TransactionalRepositories = (*gormPartnerTransactionalRepositories)(nil)
