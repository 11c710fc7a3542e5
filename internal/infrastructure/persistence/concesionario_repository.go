package persistence

import (
	"context"
	"errors"

	"github.com/dms/backend/internal/domain/partner"
	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormConcesionarioRepository implements ConcesionarioRepository using GORM
type GormConcesionarioRepository struct {
	db *gorm.DB
}

// NewGormConcesionarioRepository creates a new GormConcesionarioRepository
func NewGormConcesionarioRepository(db *gorm.DB) *GormConcesionarioRepository {
	return &GormConcesionarioRepository{db: db}
}

// FindByID finds a concesionario by its ID across all dealers
func (r *GormConcesionarioRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Concesionario, error) {
	var concesionario partner.Concesionario
	if err := r.db.WithContext(ctx).First(&concesionario, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &concesionario, nil
}

// FindByIDForDealer finds a concesionario by ID within a dealer
func (r *GormConcesionarioRepository) FindByIDForDealer(ctx context.Context, dealerID, id uuid.UUID) (*partner.Concesionario, error) {
	var concesionario partner.Concesionario
	if err := r.db.WithContext(ctx).
		Where("dealer_id = ? AND id = ?", dealerID, id).
		First(&concesionario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &concesionario, nil
}

// FindAllForDealer finds all concesionarios for a dealer
func (r *GormConcesionarioRepository) FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]partner.Concesionario, error) {
	var concesionarios []partner.Concesionario
	query := r.applyFilter(r.db.WithContext(ctx).Model(&partner.Concesionario{}).Where("dealer_id = ?", dealerID), filter)

	if err := query.Find(&concesionarios).Error; err != nil {
		return nil, err
	}
	return concesionarios, nil
}

// FindByStatus finds concesionarios by status for a dealer
func (r *GormConcesionarioRepository) FindByStatus(ctx context.Context, dealerID uuid.UUID, status partner.ConcesionarioStatus, filter shared.Filter) ([]partner.Concesionario, error) {
	var concesionarios []partner.Concesionario
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&partner.Concesionario{}).
			Where("dealer_id = ? AND status = ?", dealerID, status),
		filter,
	)

	if err := query.Find(&concesionarios).Error; err != nil {
		return nil, err
	}
	return concesionarios, nil
}

// Save creates or updates a concesionario
func (r *GormConcesionarioRepository) Save(ctx context.Context, concesionario *partner.Concesionario) error {
	if err := r.db.WithContext(ctx).Save(concesionario).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrUniquenessConflict
		}
		return err
	}
	return nil
}

// SaveWithLock saves a concesionario with optimistic locking (version check)
func (r *GormConcesionarioRepository) SaveWithLock(ctx context.Context, concesionario *partner.Concesionario) error {
	result := r.db.WithContext(ctx).
		Model(concesionario).
		Where("id = ? AND version = ?", concesionario.ID, concesionario.Version-1).
		Select("*").Omit("id", "created_at").
		Updates(concesionario)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// DeleteForDealer deletes a concesionario within a dealer. Vehicles held
// by the concesionario fall back to dealer stock via ON DELETE SET NULL.
func (r *GormConcesionarioRepository) DeleteForDealer(ctx context.Context, dealerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.Concesionario{}, "dealer_id = ? AND id = ?", dealerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForDealer counts concesionarios for a dealer
func (r *GormConcesionarioRepository) CountForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&partner.Concesionario{}).Where("dealer_id = ?", dealerID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByName checks if a concesionario with the given name exists in the dealer
func (r *GormConcesionarioRepository) ExistsByName(ctx context.Context, dealerID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&partner.Concesionario{}).
		Where("dealer_id = ? AND name = ?", dealerID, name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormConcesionarioRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ConcesionarioSortFields, "name")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormConcesionarioRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR contact_person ILIKE ? OR email ILIKE ?",
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

// Ensure GormConcesionarioRepository implements ConcesionarioRepository
var _ partner.ConcesionarioRepository = (*GormConcesionarioRepository)(nil)
