package persistence

import (
	"context"
	"errors"

	"github.com/dms/backend/internal/domain/shared"
	"github.com/dms/backend/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// openContractStatuses are the statuses that hold a claim on the vehicle
var openContractStatuses = []trade.ContractStatus{
	trade.ContractStatusPending,
	trade.ContractStatusActive,
}

// GormContractRepository implements ContractRepository using GORM
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GormContractRepository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// FindByID finds a contract by its ID across all dealers
func (r *GormContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Contract, error) {
	var contract trade.Contract
	if err := r.db.WithContext(ctx).First(&contract, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contract, nil
}

// FindByIDForDealer finds a contract by ID within a dealer
func (r *GormContractRepository) FindByIDForDealer(ctx context.Context, dealerID, id uuid.UUID) (*trade.Contract, error) {
	var contract trade.Contract
	if err := r.db.WithContext(ctx).
		Where("dealer_id = ? AND id = ?", dealerID, id).
		First(&contract).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contract, nil
}

// FindAllForDealer finds all contracts for a dealer
func (r *GormContractRepository) FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]trade.Contract, error) {
	var contracts []trade.Contract
	query := r.applyFilter(r.db.WithContext(ctx).Model(&trade.Contract{}).Where("dealer_id = ?", dealerID), filter)

	if err := query.Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

// FindByStatus finds contracts by status for a dealer
func (r *GormContractRepository) FindByStatus(ctx context.Context, dealerID uuid.UUID, status trade.ContractStatus, filter shared.Filter) ([]trade.Contract, error) {
	var contracts []trade.Contract
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&trade.Contract{}).
			Where("dealer_id = ? AND status = ?", dealerID, status),
		filter,
	)

	if err := query.Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

// FindByClient finds contracts for a client within a dealer
func (r *GormContractRepository) FindByClient(ctx context.Context, dealerID, clientID uuid.UUID, filter shared.Filter) ([]trade.Contract, error) {
	var contracts []trade.Contract
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&trade.Contract{}).
			Where("dealer_id = ? AND client_id = ?", dealerID, clientID),
		filter,
	)

	if err := query.Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

// FindByVehicle finds contracts for a vehicle within a dealer
func (r *GormContractRepository) FindByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID, filter shared.Filter) ([]trade.Contract, error) {
	var contracts []trade.Contract
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&trade.Contract{}).
			Where("dealer_id = ? AND vehicle_id = ?", dealerID, vehicleID),
		filter,
	)

	if err := query.Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

// FindOpenByVehicle finds the open (pending or active) contract holding
// the vehicle, if any
func (r *GormContractRepository) FindOpenByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID) (*trade.Contract, error) {
	var contract trade.Contract
	if err := r.db.WithContext(ctx).
		Where("dealer_id = ? AND vehicle_id = ? AND status IN ?", dealerID, vehicleID, openContractStatuses).
		First(&contract).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contract, nil
}

// Save creates or updates a contract
func (r *GormContractRepository) Save(ctx context.Context, contract *trade.Contract) error {
	if err := r.db.WithContext(ctx).Save(contract).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrUniquenessConflict
		}
		return err
	}
	return nil
}

// SaveWithLock saves a contract with optimistic locking (version check)
func (r *GormContractRepository) SaveWithLock(ctx context.Context, contract *trade.Contract) error {
	result := r.db.WithContext(ctx).
		Model(contract).
		Where("id = ? AND version = ?", contract.ID, contract.Version-1).
		Select("*").Omit("id", "created_at").
		Updates(contract)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// CountForDealer counts contracts for a dealer
func (r *GormContractRepository) CountForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&trade.Contract{}).Where("dealer_id = ?", dealerID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountOpenByVehicle counts open contracts holding the vehicle
func (r *GormContractRepository) CountOpenByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trade.Contract{}).
		Where("dealer_id = ? AND vehicle_id = ? AND status IN ?", dealerID, vehicleID, openContractStatuses).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByClient counts contracts referencing a client
func (r *GormContractRepository) CountByClient(ctx context.Context, dealerID, clientID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trade.Contract{}).
		Where("dealer_id = ? AND client_id = ?", dealerID, clientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByVehicle counts contracts referencing a vehicle
func (r *GormContractRepository) CountByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trade.Contract{}).
		Where("dealer_id = ? AND vehicle_id = ?", dealerID, vehicleID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormContractRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ContractSortFields, "date")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormContractRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "client_id":
			query = query.Where("client_id = ?", value)
		case "vehicle_id":
			query = query.Where("vehicle_id = ?", value)
		case "financing_type":
			query = query.Where("financing_type = ?", value)
		}
	}

	return query
}

// Ensure GormContractRepository implements ContractRepository
var _ trade.ContractRepository = (*GormContractRepository)(nil)
