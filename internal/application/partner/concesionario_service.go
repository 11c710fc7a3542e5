package partner

import (
	"context"
	"errors"

	"github.com/dms/backend/internal/domain/inventory"
	"github.com/dms/backend/internal/domain/partner"
	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ConcesionarioService handles concesionario operations
type ConcesionarioService struct {
	scope             TransactionScope
	concesionarioRepo partner.ConcesionarioRepository
	vehicleRepo       inventory.VehicleRepository
}

// NewConcesionarioService creates a new ConcesionarioService
func NewConcesionarioService(scope TransactionScope, concesionarioRepo partner.ConcesionarioRepository, vehicleRepo inventory.VehicleRepository) *ConcesionarioService {
	return &ConcesionarioService{
		scope:             scope,
		concesionarioRepo: concesionarioRepo,
		vehicleRepo:       vehicleRepo,
	}
}

// Create creates a new concesionario
func (s *ConcesionarioService) Create(ctx context.Context, dealerID uuid.UUID, req CreateConcesionarioRequest) (*ConcesionarioResponse, error) {
	exists, err := s.concesionarioRepo.ExistsByName(ctx, dealerID, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("UNIQUENESS_CONFLICT", "Concesionario with this name already exists")
	}

	concesionario, err := partner.NewConcesionario(dealerID, req.Name, req.ContactPerson, req.Phone, req.Email, req.Address)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		concesionario.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.concesionarioRepo.Save(ctx, concesionario); err != nil {
		return nil, err
	}

	response := ToConcesionarioResponse(concesionario)
	return &response, nil
}

// GetByID retrieves a concesionario by ID
func (s *ConcesionarioService) GetByID(ctx context.Context, dealerID, concesionarioID uuid.UUID) (*ConcesionarioResponse, error) {
	concesionario, err := s.concesionarioRepo.FindByIDForDealer(ctx, dealerID, concesionarioID)
	if err != nil {
		return nil, err
	}

	response := ToConcesionarioResponse(concesionario)
	return &response, nil
}

// List retrieves concesionarios with filtering and pagination
func (s *ConcesionarioService) List(ctx context.Context, dealerID uuid.UUID, filter ConcesionarioListFilter) ([]ConcesionarioResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
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

	concesionarios, err := s.concesionarioRepo.FindAllForDealer(ctx, dealerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.concesionarioRepo.CountForDealer(ctx, dealerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToConcesionarioListResponses(concesionarios), total, nil
}

// Update updates a concesionario
func (s *ConcesionarioService) Update(ctx context.Context, dealerID, concesionarioID uuid.UUID, req UpdateConcesionarioRequest) (*ConcesionarioResponse, error) {
	concesionario, err := s.concesionarioRepo.FindByIDForDealer(ctx, dealerID, concesionarioID)
	if err != nil {
		return nil, err
	}

	name := concesionario.Name
	if req.Name != nil {
		name = *req.Name
	}
	contactPerson := concesionario.ContactPerson
	if req.ContactPerson != nil {
		contactPerson = *req.ContactPerson
	}
	phone := concesionario.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	email := concesionario.Email
	if req.Email != nil {
		email = *req.Email
	}
	address := concesionario.Address
	if req.Address != nil {
		address = *req.Address
	}

	if err := concesionario.Update(name, contactPerson, phone, email, address); err != nil {
		return nil, err
	}
	if err := s.concesionarioRepo.SaveWithLock(ctx, concesionario); err != nil {
		return nil, err
	}

	response := ToConcesionarioResponse(concesionario)
	return &response, nil
}

// Deactivate marks a concesionario inactive
func (s *ConcesionarioService) Deactivate(ctx context.Context, dealerID, concesionarioID uuid.UUID) (*ConcesionarioResponse, error) {
	return s.changeStatus(ctx, dealerID, concesionarioID, (*partner.Concesionario).Deactivate)
}

// Activate re-activates a concesionario
func (s *ConcesionarioService) Activate(ctx context.Context, dealerID, concesionarioID uuid.UUID) (*ConcesionarioResponse, error) {
	return s.changeStatus(ctx, dealerID, concesionarioID, (*partner.Concesionario).Activate)
}

func (s *ConcesionarioService) changeStatus(ctx context.Context, dealerID, concesionarioID uuid.UUID, change func(*partner.Concesionario) error) (*ConcesionarioResponse, error) {
	concesionario, err := s.concesionarioRepo.FindByIDForDealer(ctx, dealerID, concesionarioID)
	if err != nil {
		return nil, err
	}
	if err := change(concesionario); err != nil {
		return nil, err
	}
	if err := s.concesionarioRepo.SaveWithLock(ctx, concesionario); err != nil {
		return nil, err
	}

	response := ToConcesionarioResponse(concesionario)
	return &response, nil
}

// Delete removes a concesionario. Vehicles it holds keep existing; the
// database clears their concesionario reference.
func (s *ConcesionarioService) Delete(ctx context.Context, dealerID, concesionarioID uuid.UUID) error {
	if _, err := s.concesionarioRepo.FindByIDForDealer(ctx, dealerID, concesionarioID); err != nil {
		return err
	}
	return s.concesionarioRepo.DeleteForDealer(ctx, dealerID, concesionarioID)
}

// ReleaseVehicles clears the concesionario reference from every vehicle
// the concesionario holds. Each vehicle runs in its own transaction:
// one bad row never rolls back the others, and the report lists both
// outcomes.
func (s *ConcesionarioService) ReleaseVehicles(ctx context.Context, dealerID, concesionarioID uuid.UUID) (*ReleaseVehiclesResult, error) {
	if _, err := s.concesionarioRepo.FindByIDForDealer(ctx, dealerID, concesionarioID); err != nil {
		return nil, err
	}

	filter := shared.DefaultFilter()
	filter.PageSize = 500
	vehicles, err := s.vehicleRepo.FindByConcesionario(ctx, dealerID, concesionarioID, filter)
	if err != nil {
		return nil, err
	}

	result := &ReleaseVehiclesResult{
		Released: make([]uuid.UUID, 0, len(vehicles)),
		Failures: make([]ReleaseFailure, 0),
	}

	for _, v := range vehicles {
		vehicleID := v.ID
		err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
			vehicle, err := repos.Vehicles().FindByIDForDealerLocked(ctx, dealerID, vehicleID)
			if err != nil {
				return err
			}
			vehicle.ReleaseFromConcesionario()
			return repos.Vehicles().SaveWithLock(ctx, vehicle)
		})
		if err != nil {
			result.Failures = append(result.Failures, toReleaseFailure(vehicleID, err))
			continue
		}
		result.Released = append(result.Released, vehicleID)
	}

	return result, nil
}

func toReleaseFailure(vehicleID uuid.UUID, err error) ReleaseFailure {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return ReleaseFailure{VehicleID: vehicleID, Code: domainErr.Code, Message: domainErr.Message}
	}
	return ReleaseFailure{VehicleID: vehicleID, Code: "STORAGE_ERROR", Message: err.Error()}
}
