package persistence

import (
	"context"

	apptrade "github.com/dms/backend/internal/application/trade"
	"github.com/dms/backend/internal/domain/inventory"
	"github.com/dms/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormTradeTransactionScope implements the trade TransactionScope using
// GORM transactions. Contract creation and status changes use it so the
// contract write and the vehicle status cascade commit or roll back
// together.
type GormTradeTransactionScope struct {
	db *gorm.DB
}

// NewGormTradeTransactionScope creates a new GormTradeTransactionScope
func NewGormTradeTransactionScope(db *gorm.DB) *GormTradeTransactionScope {
	return &GormTradeTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormTradeTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTradeTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTradeTransactionalRepositories provides repositories scoped to one
// transaction
type gormTradeTransactionalRepositories struct {
	tx *gorm.DB
}

// Contracts returns the contract repository scoped to the current transaction
func (r *gormTradeTransactionalRepositories) Contracts() trade.ContractRepository {
	return NewGormContractRepository(r.tx)
}

// Vehicles returns the vehicle repository scoped to the current transaction
func (r *gormTradeTransactionalRepositories) Vehicles() inventory.VehicleRepository {
	return NewGormVehicleRepository(r.tx)
}

// Ensure GormTradeTransactionScope implements TransactionScope
var _ apptrade.TransactionScope = (*GormTradeTransactionScope)(nil)

// Ensure gormTradeTransactionalRepositories implements TransactionalRepositories
var _ apptrade.TransactionalRepositories = (*gormTradeTransactionalRepositories)(nil)
