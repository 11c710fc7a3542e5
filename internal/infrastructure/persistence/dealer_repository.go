package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/dms/backend/internal/domain/coverage"
	"github.com/dms/backend/internal/domain/identity"
	"github.com/dms/backend/internal/domain/inventory"
	"github.com/dms/backend/internal/domain/partner"
	"github.com/dms/backend/internal/domain/party"
	"github.com/dms/backend/internal/domain/shared"
	"github.com/dms/backend/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDealerRepository implements DealerRepository using GORM
type GormDealerRepository struct {
	db *gorm.DB
}

// NewGormDealerRepository creates a new GormDealerRepository
func NewGormDealerRepository(db *gorm.DB) *GormDealerRepository {
	return &GormDealerRepository{db: db}
}

// FindByID finds a dealer by its ID
func (r *GormDealerRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Dealer, error) {
	var dealer identity.Dealer
	if err := r.db.WithContext(ctx).First(&dealer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &dealer, nil
}

// FindByEmail finds a dealer by its contact email
func (r *GormDealerRepository) FindByEmail(ctx context.Context, email string) (*identity.Dealer, error) {
	var dealer identity.Dealer
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&dealer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &dealer, nil
}

// FindAll finds all dealers matching the filter
func (r *GormDealerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Dealer, error) {
	var dealers []identity.Dealer
	query := r.applyFilter(r.db.WithContext(ctx).Model(&identity.Dealer{}), filter)

	if err := query.Find(&dealers).Error; err != nil {
		return nil, err
	}
	return dealers, nil
}

// Save creates or updates a dealer
func (r *GormDealerRepository) Save(ctx context.Context, dealer *identity.Dealer) error {
	if err := r.db.WithContext(ctx).Save(dealer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrUniquenessConflict
		}
		return err
	}
	return nil
}

// SaveWithLock saves a dealer with optimistic locking (version check)
func (r *GormDealerRepository) SaveWithLock(ctx context.Context, dealer *identity.Dealer) error {
	result := r.db.WithContext(ctx).
		Model(dealer).
		Where("id = ? AND version = ?", dealer.ID, dealer.Version-1).
		Select("*").Omit("id", "created_at").
		Updates(dealer)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete deletes a dealer
func (r *GormDealerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&identity.Dealer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts dealers matching the filter
func (r *GormDealerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&identity.Dealer{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountDependents counts rows in dealer-scoped tables referencing the
// dealer. A non-zero count blocks dealer deletion.
func (r *GormDealerRepository) CountDependents(ctx context.Context, id uuid.UUID) (int64, error) {
	dependentModels := []any{
		&identity.Profile{},
		&partner.Concesionario{},
		&party.Client{},
		&inventory.Vehicle{},
		&trade.Contract{},
		&coverage.Insurance{},
	}

	var total int64
	for _, model := range dependentModels {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(model).
			Where("dealer_id = ?", id).
			Count(&count).Error; err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}

// applyFilter applies filter options to the query
func (r *GormDealerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, DealerSortFields, "business_name")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormDealerRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("business_name ILIKE ? OR contact_name ILIKE ? OR email ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		}
	}

	return query
}

// Ensure GormDealerRepository implements DealerRepository
var _ identity.DealerRepository = (*GormDealerRepository)(nil)
