package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/dms/backend/internal/domain/inventory"
	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVehicleRepository implements VehicleRepository using GORM
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GormVehicleRepository
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// FindByID finds a vehicle by its ID across all dealers
func (r *GormVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Vehicle, error) {
	var vehicle inventory.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// FindByIDForDealer finds a vehicle by ID within a dealer
func (r *GormVehicleRepository) FindByIDForDealer(ctx context.Context, dealerID, id uuid.UUID) (*inventory.Vehicle, error) {
	var vehicle inventory.Vehicle
	if err := r.db.WithContext(ctx).
		Where("dealer_id = ? AND id = ?", dealerID, id).
		First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// FindByIDForDealerLocked loads a vehicle with a FOR UPDATE row lock.
// Must run inside a transaction; concurrent reservations of the same
// vehicle serialize on this lock.
func (r *GormVehicleRepository) FindByIDForDealerLocked(ctx context.Context, dealerID, id uuid.UUID) (*inventory.Vehicle, error) {
	var vehicle inventory.Vehicle
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("dealer_id = ? AND id = ?", dealerID, id).
		First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// FindByVIN finds a vehicle by VIN across all dealers
func (r *GormVehicleRepository) FindByVIN(ctx context.Context, vin string) (*inventory.Vehicle, error) {
	var vehicle inventory.Vehicle
	if err := r.db.WithContext(ctx).
		Where("vin = ?", strings.ToUpper(strings.TrimSpace(vin))).
		First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// FindAllForDealer finds all vehicles for a dealer
func (r *GormVehicleRepository) FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]inventory.Vehicle, error) {
	var vehicles []inventory.Vehicle
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.Vehicle{}).Where("dealer_id = ?", dealerID), filter)

	if err := query.Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// FindByStatus finds vehicles by status for a dealer
func (r *GormVehicleRepository) FindByStatus(ctx context.Context, dealerID uuid.UUID, status inventory.VehicleStatus, filter shared.Filter) ([]inventory.Vehicle, error) {
	var vehicles []inventory.Vehicle
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&inventory.Vehicle{}).
			Where("dealer_id = ? AND status = ?", dealerID, status),
		filter,
	)

	if err := query.Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// FindByConcesionario finds vehicles held by a concesionario
func (r *GormVehicleRepository) FindByConcesionario(ctx context.Context, dealerID, concesionarioID uuid.UUID, filter shared.Filter) ([]inventory.Vehicle, error) {
	var vehicles []inventory.Vehicle
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&inventory.Vehicle{}).
			Where("dealer_id = ? AND concesionario_id = ?", dealerID, concesionarioID),
		filter,
	)

	if err := query.Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Save creates or updates a vehicle
func (r *GormVehicleRepository) Save(ctx context.Context, vehicle *inventory.Vehicle) error {
	if err := r.db.WithContext(ctx).Save(vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrUniquenessConflict
		}
		return err
	}
	return nil
}

// SaveWithLock saves a vehicle with optimistic locking (version check)
func (r *GormVehicleRepository) SaveWithLock(ctx context.Context, vehicle *inventory.Vehicle) error {
	result := r.db.WithContext(ctx).
		Model(vehicle).
		Where("id = ? AND version = ?", vehicle.ID, vehicle.Version-1).
		Select("*").Omit("id", "created_at").
		Updates(vehicle)

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

// DeleteForDealer deletes a vehicle within a dealer
func (r *GormVehicleRepository) DeleteForDealer(ctx context.Context, dealerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.Vehicle{}, "dealer_id = ? AND id = ?", dealerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForDealer counts vehicles for a dealer
func (r *GormVehicleRepository) CountForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&inventory.Vehicle{}).Where("dealer_id = ?", dealerID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByConcesionario counts vehicles held by a concesionario
func (r *GormVehicleRepository) CountByConcesionario(ctx context.Context, dealerID, concesionarioID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.Vehicle{}).
		Where("dealer_id = ? AND concesionario_id = ?", dealerID, concesionarioID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByVIN checks if a vehicle with the given VIN exists anywhere
func (r *GormVehicleRepository) ExistsByVIN(ctx context.Context, vin string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.Vehicle{}).
		Where("vin = ?", strings.ToUpper(strings.TrimSpace(vin))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByPlate checks if a vehicle with the given plate exists anywhere
func (r *GormVehicleRepository) ExistsByPlate(ctx context.Context, plate string) (bool, error) {
	if plate == "" {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.Vehicle{}).
		Where("plate = ?", strings.ToUpper(strings.TrimSpace(plate))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormVehicleRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, VehicleSortFields, "entry_date")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormVehicleRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("brand ILIKE ? OR model ILIKE ? OR vin ILIKE ? OR plate ILIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "concesionario_id":
			query = query.Where("concesionario_id = ?", value)
		case "condition":
			query = query.Where("condition = ?", value)
		case "brand":
			query = query.Where("brand = ?", value)
		case "year":
			query = query.Where("year = ?", value)
		}
	}

	return query
}

// Ensure GormVehicleRepository implements VehicleRepository
var _ inventory.VehicleRepository = (*GormVehicleRepository)(nil)
