package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/dms/backend/internal/domain/coverage"
	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInsuranceRepository implements InsuranceRepository using GORM
type GormInsuranceRepository struct {
	db *gorm.DB
}

// NewGormInsuranceRepository creates a new GormInsuranceRepository
func NewGormInsuranceRepository(db *gorm.DB) *GormInsuranceRepository {
	return &GormInsuranceRepository{db: db}
}

// FindByID finds a policy by its ID across all dealers
func (r *GormInsuranceRepository) FindByID(ctx context.Context, id uuid.UUID) (*coverage.Insurance, error) {
	var insurance coverage.Insurance
	if err := r.db.WithContext(ctx).First(&insurance, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &insurance, nil
}

// FindByIDForDealer finds a policy by ID within a dealer
func (r *GormInsuranceRepository) FindByIDForDealer(ctx context.Context, dealerID, id uuid.UUID) (*coverage.Insurance, error) {
	var insurance coverage.Insurance
	if err := r.db.WithContext(ctx).
		Where("dealer_id = ? AND id = ?", dealerID, id).
		First(&insurance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &insurance, nil
}

// FindAllForDealer finds all policies for a dealer
func (r *GormInsuranceRepository) FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]coverage.Insurance, error) {
	var policies []coverage.Insurance
	query := r.applyFilter(r.db.WithContext(ctx).Model(&coverage.Insurance{}).Where("dealer_id = ?", dealerID), filter)

	if err := query.Find(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}

// FindByVehicle finds policies for a vehicle within a dealer
func (r *GormInsuranceRepository) FindByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID, filter shared.Filter) ([]coverage.Insurance, error) {
	var policies []coverage.Insurance
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&coverage.Insurance{}).
			Where("dealer_id = ? AND vehicle_id = ?", dealerID, vehicleID),
		filter,
	)

	if err := query.Find(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}

// FindExpiringBefore finds uncancelled policies expiring before the cutoff
func (r *GormInsuranceRepository) FindExpiringBefore(ctx context.Context, dealerID uuid.UUID, cutoff time.Time, filter shared.Filter) ([]coverage.Insurance, error) {
	var policies []coverage.Insurance
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&coverage.Insurance{}).
			Where("dealer_id = ? AND status = ? AND expiry_date <= ?", dealerID, coverage.InsuranceStatusActive, cutoff),
		filter,
	)

	if err := query.Find(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}

// Save creates or updates a policy
func (r *GormInsuranceRepository) Save(ctx context.Context, insurance *coverage.Insurance) error {
	return r.db.WithContext(ctx).Save(insurance).Error
}

// SaveWithLock saves a policy with optimistic locking (version check)
func (r *GormInsuranceRepository) SaveWithLock(ctx context.Context, insurance *coverage.Insurance) error {
	result := r.db.WithContext(ctx).
		Model(insurance).
		Where("id = ? AND version = ?", insurance.ID, insurance.Version-1).
		Select("*").Omit("id", "created_at").
		Updates(insurance)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// DeleteForDealer deletes a policy within a dealer
func (r *GormInsuranceRepository) DeleteForDealer(ctx context.Context, dealerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&coverage.Insurance{}, "dealer_id = ? AND id = ?", dealerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForDealer counts policies for a dealer
func (r *GormInsuranceRepository) CountForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&coverage.Insurance{}).Where("dealer_id = ?", dealerID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByVehicle counts policies referencing a vehicle
func (r *GormInsuranceRepository) CountByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&coverage.Insurance{}).
		Where("dealer_id = ? AND vehicle_id = ?", dealerID, vehicleID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormInsuranceRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, InsuranceSortFields, "expiry_date")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormInsuranceRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "vehicle_id":
			query = query.Where("vehicle_id = ?", value)
		case "client_id":
			query = query.Where("client_id = ?", value)
		case "coverage_type":
			query = query.Where("coverage_type = ?", value)
		}
	}

	return query
}

// Ensure GormInsuranceRepository implements InsuranceRepository
var _ coverage.InsuranceRepository = (*GormInsuranceRepository)(nil)
