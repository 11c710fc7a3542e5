package inventory

import (
	"context"
	"errors"

	"github.com/dms/backend/internal/domain/coverage"
	"github.com/dms/backend/internal/domain/inventory"
	"github.com/dms/backend/internal/domain/partner"
	"github.com/dms/backend/internal/domain/shared"
	"github.com/dms/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// VehicleService handles vehicle inventory operations
type VehicleService struct {
	vehicleRepo       inventory.VehicleRepository
	concesionarioRepo partner.ConcesionarioRepository
	contractRepo      trade.ContractRepository
	insuranceRepo     coverage.InsuranceRepository
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(
	vehicleRepo inventory.VehicleRepository,
	concesionarioRepo partner.ConcesionarioRepository,
	contractRepo trade.ContractRepository,
	insuranceRepo coverage.InsuranceRepository,
) *VehicleService {
	return &VehicleService{
		vehicleRepo:       vehicleRepo,
		concesionarioRepo: concesionarioRepo,
		contractRepo:      contractRepo,
		insuranceRepo:     insuranceRepo,
	}
}

// Create registers a new vehicle. The VIN and plate must be unique across
// all dealers, not only the caller's.
func (s *VehicleService) Create(ctx context.Context, dealerID uuid.UUID, req CreateVehicleRequest) (*VehicleResponse, error) {
	if req.ConcesionarioID != nil {
		if err := s.resolveConcesionario(ctx, dealerID, *req.ConcesionarioID); err != nil {
			return nil, err
		}
	}

	vinExists, err := s.vehicleRepo.ExistsByVIN(ctx, req.VIN)
	if err != nil {
		return nil, err
	}
	if vinExists {
		return nil, shared.NewDomainError("UNIQUENESS_CONFLICT", "Vehicle with this VIN already exists")
	}
	if req.Plate != "" {
		plateExists, err := s.vehicleRepo.ExistsByPlate(ctx, req.Plate)
		if err != nil {
			return nil, err
		}
		if plateExists {
			return nil, shared.NewDomainError("UNIQUENESS_CONFLICT", "Vehicle with this plate already exists")
		}
	}

	params := inventory.NewVehicleParams{
		DealerID:        dealerID,
		ConcesionarioID: req.ConcesionarioID,
		Brand:           req.Brand,
		Model:           req.Model,
		Year:            req.Year,
		Trim:            req.Trim,
		VIN:             req.VIN,
		Plate:           req.Plate,
		Price:           req.Price,
		Condition:       inventory.VehicleCondition(req.Condition),
		Mileage:         req.Mileage,
		Transmission:    inventory.Transmission(req.Transmission),
		FuelType:        inventory.FuelType(req.FuelType),
		Images:          req.Images,
	}
	if req.EntryDate != nil {
		params.EntryDate = *req.EntryDate
	}

	vehicle, err := inventory.NewVehicle(params)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		vehicle.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}

	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// GetByID retrieves a vehicle by ID
func (s *VehicleService) GetByID(ctx context.Context, dealerID, vehicleID uuid.UUID) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByIDForDealer(ctx, dealerID, vehicleID)
	if err != nil {
		return nil, err
	}

	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// List retrieves vehicles with filtering and pagination
func (s *VehicleService) List(ctx context.Context, dealerID uuid.UUID, filter VehicleListFilter) ([]VehicleResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "entry_date"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.ConcesionarioID != nil {
		domainFilter.Filters["concesionario_id"] = *filter.ConcesionarioID
	}

	vehicles, err := s.vehicleRepo.FindAllForDealer(ctx, dealerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.vehicleRepo.CountForDealer(ctx, dealerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToVehicleListResponses(vehicles), total, nil
}

// Update updates a vehicle's descriptive fields. A plate change re-checks
// global uniqueness.
func (s *VehicleService) Update(ctx context.Context, dealerID, vehicleID uuid.UUID, req UpdateVehicleRequest) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByIDForDealer(ctx, dealerID, vehicleID)
	if err != nil {
		return nil, err
	}

	plate := ""
	if vehicle.Plate != nil {
		plate = *vehicle.Plate
	}
	if req.Plate != nil && *req.Plate != plate {
		plate = *req.Plate
		if plate != "" {
			exists, err := s.vehicleRepo.ExistsByPlate(ctx, plate)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.NewDomainError("UNIQUENESS_CONFLICT", "Vehicle with this plate already exists")
			}
		}
	}
	brand := vehicle.Brand
	if req.Brand != nil {
		brand = *req.Brand
	}
	model := vehicle.Model
	if req.Model != nil {
		model = *req.Model
	}
	year := vehicle.Year
	if req.Year != nil {
		year = *req.Year
	}
	trim := vehicle.Trim
	if req.Trim != nil {
		trim = *req.Trim
	}
	price := vehicle.Price
	if req.Price != nil {
		price = *req.Price
	}
	mileage := vehicle.Mileage
	if req.Mileage != nil {
		mileage = *req.Mileage
	}
	transmission := vehicle.Transmission
	if req.Transmission != nil {
		transmission = inventory.Transmission(*req.Transmission)
	}
	fuelType := vehicle.FuelType
	if req.FuelType != nil {
		fuelType = inventory.FuelType(*req.FuelType)
	}
	images := ""
	if req.Images != nil {
		images = *req.Images
	}

	if err := vehicle.UpdateDetails(brand, model, year, trim, plate, price, mileage, transmission, fuelType, images); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.SaveWithLock(ctx, vehicle); err != nil {
		return nil, err
	}

	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// ChangeStatus applies a manual status change. Vehicles referenced by an
// open contract are managed through the contract lifecycle and reject
// manual moves. Moving into or out of maintenance requires the admin role.
func (s *VehicleService) ChangeStatus(ctx context.Context, dealerID, vehicleID uuid.UUID, target inventory.VehicleStatus, asAdmin bool) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByIDForDealer(ctx, dealerID, vehicleID)
	if err != nil {
		return nil, err
	}

	if !asAdmin && (target == inventory.VehicleStatusMaintenance || vehicle.Status == inventory.VehicleStatusMaintenance) {
		return nil, shared.NewDomainError("FORBIDDEN", "Maintenance moves require the admin role")
	}

	open, err := s.contractRepo.CountOpenByVehicle(ctx, dealerID, vehicleID)
	if err != nil {
		return nil, err
	}
	if open > 0 {
		return nil, shared.NewStateTransitionError("Vehicle status is managed by its open contract")
	}

	if err := vehicle.ChangeStatus(target); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.SaveWithLock(ctx, vehicle); err != nil {
		return nil, err
	}

	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// AssignConcesionario moves a vehicle between consignment holders, or back
// to dealer-owned stock when the request carries no concesionario.
func (s *VehicleService) AssignConcesionario(ctx context.Context, dealerID, vehicleID uuid.UUID, req AssignConcesionarioRequest) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByIDForDealer(ctx, dealerID, vehicleID)
	if err != nil {
		return nil, err
	}

	if req.ConcesionarioID == nil {
		vehicle.ReleaseFromConcesionario()
	} else {
		if err := s.resolveConcesionario(ctx, dealerID, *req.ConcesionarioID); err != nil {
			return nil, err
		}
		vehicle.AssignConcesionario(*req.ConcesionarioID)
	}

	if err := s.vehicleRepo.SaveWithLock(ctx, vehicle); err != nil {
		return nil, err
	}

	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// Delete removes a vehicle. Blocked while contracts or insurance policies
// reference it.
func (s *VehicleService) Delete(ctx context.Context, dealerID, vehicleID uuid.UUID) error {
	if _, err := s.vehicleRepo.FindByIDForDealer(ctx, dealerID, vehicleID); err != nil {
		return err
	}

	contracts, err := s.contractRepo.CountByVehicle(ctx, dealerID, vehicleID)
	if err != nil {
		return err
	}
	if contracts > 0 {
		return shared.NewValidationError("Vehicle has contracts and cannot be deleted")
	}
	policies, err := s.insuranceRepo.CountByVehicle(ctx, dealerID, vehicleID)
	if err != nil {
		return err
	}
	if policies > 0 {
		return shared.NewValidationError("Vehicle has insurance policies and cannot be deleted")
	}

	return s.vehicleRepo.DeleteForDealer(ctx, dealerID, vehicleID)
}

// resolveConcesionario checks that the concesionario exists and belongs to
// the dealer. A hit in another dealer's data is reported as a tenant
// mismatch rather than not found.
func (s *VehicleService) resolveConcesionario(ctx context.Context, dealerID, concesionarioID uuid.UUID) error {
	_, err := s.concesionarioRepo.FindByIDForDealer(ctx, dealerID, concesionarioID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	if _, globalErr := s.concesionarioRepo.FindByID(ctx, concesionarioID); globalErr == nil {
		return shared.ErrTenantMismatch
	}
	return err
}
