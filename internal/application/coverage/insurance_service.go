package coverage

import (
	"context"
	"errors"
	"time"

	"github.com/dms/backend/internal/domain/coverage"
	"github.com/dms/backend/internal/domain/inventory"
	"github.com/dms/backend/internal/domain/party"
	"github.com/dms/backend/internal/domain/shared"
	"github.com/dms/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// InsuranceService handles insurance policy operations
type InsuranceService struct {
	insuranceRepo coverage.InsuranceRepository
	vehicleRepo   inventory.VehicleRepository
	clientRepo    party.ClientRepository
	contractRepo  trade.ContractRepository
}

// NewInsuranceService creates a new InsuranceService
func NewInsuranceService(
	insuranceRepo coverage.InsuranceRepository,
	vehicleRepo inventory.VehicleRepository,
	clientRepo party.ClientRepository,
	contractRepo trade.ContractRepository,
) *InsuranceService {
	return &InsuranceService{
		insuranceRepo: insuranceRepo,
		vehicleRepo:   vehicleRepo,
		clientRepo:    clientRepo,
		contractRepo:  contractRepo,
	}
}

// Create issues a new policy. The vehicle, client, and contract must all
// belong to the caller's dealer, and a referenced contract must point at
// the same vehicle and client as the policy itself.
func (s *InsuranceService) Create(ctx context.Context, dealerID uuid.UUID, req CreateInsuranceRequest) (*InsuranceResponse, error) {
	if err := s.resolveVehicle(ctx, dealerID, req.VehicleID); err != nil {
		return nil, err
	}
	if req.ClientID != nil {
		client, err := s.clientRepo.FindByID(ctx, *req.ClientID)
		if err != nil {
			return nil, err
		}
		if client.DealerID != dealerID {
			return nil, shared.ErrTenantMismatch
		}
	}
	if req.ContractID != nil {
		contract, err := s.contractRepo.FindByIDForDealer(ctx, dealerID, *req.ContractID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				if _, globalErr := s.contractRepo.FindByID(ctx, *req.ContractID); globalErr == nil {
					return nil, shared.ErrTenantMismatch
				}
			}
			return nil, err
		}
		if contract.VehicleID != req.VehicleID {
			return nil, shared.NewValidationError("Contract covers a different vehicle")
		}
		if req.ClientID != nil && contract.ClientID != *req.ClientID {
			return nil, shared.NewValidationError("Contract belongs to a different client")
		}
	}

	insurance, err := coverage.NewInsurance(coverage.NewInsuranceParams{
		DealerID:       dealerID,
		VehicleID:      req.VehicleID,
		ClientID:       req.ClientID,
		ContractID:     req.ContractID,
		StartDate:      req.StartDate,
		CoverageMonths: req.CoverageMonths,
		CoverageType:   coverage.CoverageType(req.CoverageType),
		Premium:        req.Premium,
	})
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		insurance.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.insuranceRepo.Save(ctx, insurance); err != nil {
		return nil, err
	}

	response := ToInsuranceResponse(insurance, time.Now())
	return &response, nil
}

// GetByID retrieves a policy by ID
func (s *InsuranceService) GetByID(ctx context.Context, dealerID, insuranceID uuid.UUID) (*InsuranceResponse, error) {
	insurance, err := s.insuranceRepo.FindByIDForDealer(ctx, dealerID, insuranceID)
	if err != nil {
		return nil, err
	}

	response := ToInsuranceResponse(insurance, time.Now())
	return &response, nil
}

// List retrieves policies with filtering and pagination. When
// expiring_in_days is set, only uncancelled policies expiring inside the
// window are returned.
func (s *InsuranceService) List(ctx context.Context, dealerID uuid.UUID, filter InsuranceListFilter) ([]InsuranceResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "expiry_date"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  make(map[string]any),
	}

	now := time.Now()

	if filter.ExpiringInDays > 0 {
		cutoff := now.Add(time.Duration(filter.ExpiringInDays) * 24 * time.Hour)
		policies, err := s.insuranceRepo.FindExpiringBefore(ctx, dealerID, cutoff, domainFilter)
		if err != nil {
			return nil, 0, err
		}
		return ToInsuranceListResponses(policies, now), int64(len(policies)), nil
	}

	if filter.VehicleID != nil {
		policies, err := s.insuranceRepo.FindByVehicle(ctx, dealerID, *filter.VehicleID, domainFilter)
		if err != nil {
			return nil, 0, err
		}
		total, err := s.insuranceRepo.CountByVehicle(ctx, dealerID, *filter.VehicleID)
		if err != nil {
			return nil, 0, err
		}
		return ToInsuranceListResponses(policies, now), total, nil
	}

	policies, err := s.insuranceRepo.FindAllForDealer(ctx, dealerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.insuranceRepo.CountForDealer(ctx, dealerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToInsuranceListResponses(policies, now), total, nil
}

// Update changes a policy's coverage window or terms. Cancelled policies
// reject changes.
func (s *InsuranceService) Update(ctx context.Context, dealerID, insuranceID uuid.UUID, req UpdateInsuranceRequest) (*InsuranceResponse, error) {
	insurance, err := s.insuranceRepo.FindByIDForDealer(ctx, dealerID, insuranceID)
	if err != nil {
		return nil, err
	}

	if req.StartDate != nil || req.CoverageMonths != nil {
		startDate := insurance.StartDate
		if req.StartDate != nil {
			startDate = *req.StartDate
		}
		months := insurance.CoverageMonths
		if req.CoverageMonths != nil {
			months = *req.CoverageMonths
		}
		if err := insurance.Reschedule(startDate, months); err != nil {
			return nil, err
		}
	}
	if req.CoverageType != nil || req.Premium != nil {
		coverageType := insurance.CoverageType
		if req.CoverageType != nil {
			coverageType = coverage.CoverageType(*req.CoverageType)
		}
		premium := insurance.Premium
		if req.Premium != nil {
			premium = *req.Premium
		}
		if err := insurance.UpdateTerms(coverageType, premium); err != nil {
			return nil, err
		}
	}

	if err := s.insuranceRepo.SaveWithLock(ctx, insurance); err != nil {
		return nil, err
	}

	response := ToInsuranceResponse(insurance, time.Now())
	return &response, nil
}

// Cancel voids a policy. Cancellation is terminal.
func (s *InsuranceService) Cancel(ctx context.Context, dealerID, insuranceID uuid.UUID) (*InsuranceResponse, error) {
	insurance, err := s.insuranceRepo.FindByIDForDealer(ctx, dealerID, insuranceID)
	if err != nil {
		return nil, err
	}

	if err := insurance.Cancel(); err != nil {
		return nil, err
	}
	if err := s.insuranceRepo.SaveWithLock(ctx, insurance); err != nil {
		return nil, err
	}

	response := ToInsuranceResponse(insurance, time.Now())
	return &response, nil
}

// Delete removes a policy record. Only cancelled policies can be deleted;
// live coverage must be cancelled first.
func (s *InsuranceService) Delete(ctx context.Context, dealerID, insuranceID uuid.UUID) error {
	insurance, err := s.insuranceRepo.FindByIDForDealer(ctx, dealerID, insuranceID)
	if err != nil {
		return err
	}
	if insurance.Status != coverage.InsuranceStatusCancelled {
		return shared.NewValidationError("Only cancelled policies can be deleted")
	}

	return s.insuranceRepo.DeleteForDealer(ctx, dealerID, insuranceID)
}

// resolveVehicle checks that the vehicle exists and belongs to the dealer.
// A hit in another dealer's data is reported as a tenant mismatch rather
// than not found.
func (s *InsuranceService) resolveVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID) error {
	_, err := s.vehicleRepo.FindByIDForDealer(ctx, dealerID, vehicleID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	if _, globalErr := s.vehicleRepo.FindByID(ctx, vehicleID); globalErr == nil {
		return shared.ErrTenantMismatch
	}
	return err
}
