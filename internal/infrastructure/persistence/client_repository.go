package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/dms/backend/internal/domain/party"
	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID across all dealers
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Client, error) {
	var client party.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// FindByIDForDealer finds a client by ID within a dealer
func (r *GormClientRepository) FindByIDForDealer(ctx context.Context, dealerID, id uuid.UUID) (*party.Client, error) {
	var client party.Client
	if err := r.db.WithContext(ctx).
		Where("dealer_id = ? AND id = ?", dealerID, id).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// FindByCedula finds a client by cedula. The cedula is unique across all
// dealers, so no dealer parameter.
func (r *GormClientRepository) FindByCedula(ctx context.Context, cedula string) (*party.Client, error) {
	var client party.Client
	if err := r.db.WithContext(ctx).
		Where("cedula = ?", strings.TrimSpace(cedula)).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// FindAllForDealer finds all clients for a dealer
func (r *GormClientRepository) FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]party.Client, error) {
	var clients []party.Client
	query := r.applyFilter(r.db.WithContext(ctx).Model(&party.Client{}).Where("dealer_id = ?", dealerID), filter)

	if err := query.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *party.Client) error {
	if err := r.db.WithContext(ctx).Save(client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrUniquenessConflict
		}
		return err
	}
	return nil
}

// SaveWithLock saves a client with optimistic locking (version check)
func (r *GormClientRepository) SaveWithLock(ctx context.Context, client *party.Client) error {
	result := r.db.WithContext(ctx).
		Model(client).
		Where("id = ? AND version = ?", client.ID, client.Version-1).
		Select("*").Omit("id", "created_at").
		Updates(client)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return shared.ErrUniquenessConflict
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// DeleteForDealer deletes a client within a dealer
func (r *GormClientRepository) DeleteForDealer(ctx context.Context, dealerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&party.Client{}, "dealer_id = ? AND id = ?", dealerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForDealer counts clients for a dealer
func (r *GormClientRepository) CountForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&party.Client{}).Where("dealer_id = ?", dealerID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCedula checks if a client with the given cedula exists anywhere
func (r *GormClientRepository) ExistsByCedula(ctx context.Context, cedula string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&party.Client{}).
		Where("cedula = ?", strings.TrimSpace(cedula)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormClientRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ClientSortFields, "name")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormClientRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR cedula ILIKE ? OR phone ILIKE ? OR email ILIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern)
	}

	return query
}

// Ensure GormClientRepository implements ClientRepository
var _ party.ClientRepository = (*GormClientRepository)(nil)
