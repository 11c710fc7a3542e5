package trade

import (
	"context"
	"errors"
	"time"

	"github.com/dms/backend/internal/domain/inventory"
	"github.com/dms/backend/internal/domain/party"
	"github.com/dms/backend/internal/domain/shared"
	"github.com/dms/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// ContractService handles contract operations. Creation and every status
// change run inside a transaction scope so the contract and its vehicle
// always move together.
type ContractService struct {
	scope        TransactionScope
	contractRepo trade.ContractRepository
	clientRepo   party.ClientRepository
	vehicleRepo  inventory.VehicleRepository
}

// NewContractService creates a new ContractService
func NewContractService(scope TransactionScope, contractRepo trade.ContractRepository, clientRepo party.ClientRepository, vehicleRepo inventory.VehicleRepository) *ContractService {
	return &ContractService{
		scope:        scope,
		contractRepo: contractRepo,
		clientRepo:   clientRepo,
		vehicleRepo:  vehicleRepo,
	}
}

// Create opens a pending contract and reserves its vehicle in one
// transaction. The vehicle row is locked for the duration, so two
// concurrent creates for the same vehicle serialize and the second one
// fails with VEHICLE_NOT_AVAILABLE.
func (s *ContractService) Create(ctx context.Context, dealerID uuid.UUID, req CreateContractRequest) (*ContractResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if client.DealerID != dealerID {
		return nil, shared.ErrTenantMismatch
	}

	// Validate financing terms before touching the vehicle
	date := time.Time{}
	if req.Date != nil {
		date = *req.Date
	}
	contract, err := trade.NewContract(trade.NewContractParams{
		DealerID:       dealerID,
		ClientID:       req.ClientID,
		VehicleID:      req.VehicleID,
		Price:          req.Price,
		FinancingType:  trade.FinancingType(req.FinancingType),
		DownPayment:    req.DownPayment,
		Months:         req.Months,
		MonthlyPayment: req.MonthlyPayment,
		Date:           date,
		Notes:          req.Notes,
	})
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		contract.SetCreatedBy(*req.CreatedBy)
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		vehicle, err := repos.Vehicles().FindByIDForDealerLocked(ctx, dealerID, req.VehicleID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				// Distinguish a cross-dealer reference from a missing row
				if _, lookupErr := s.vehicleRepo.FindByID(ctx, req.VehicleID); lookupErr == nil {
					return shared.ErrTenantMismatch
				}
			}
			return err
		}

		open, err := repos.Contracts().CountOpenByVehicle(ctx, dealerID, vehicle.ID)
		if err != nil {
			return err
		}
		if open > 0 {
			return shared.ErrVehicleNotAvailable
		}

		if err := vehicle.Reserve(); err != nil {
			return err
		}
		if err := repos.Contracts().Save(ctx, contract); err != nil {
			return err
		}
		return repos.Vehicles().SaveWithLock(ctx, vehicle)
	})
	if err != nil {
		return nil, err
	}

	response := ToContractResponse(contract)
	return &response, nil
}

// GetByID retrieves a contract by ID
func (s *ContractService) GetByID(ctx context.Context, dealerID, contractID uuid.UUID) (*ContractResponse, error) {
	contract, err := s.contractRepo.FindByIDForDealer(ctx, dealerID, contractID)
	if err != nil {
		return nil, err
	}

	response := ToContractResponse(contract)
	return &response, nil
}

// List retrieves contracts with filtering and pagination
func (s *ContractService) List(ctx context.Context, dealerID uuid.UUID, filter ContractListFilter) ([]ContractResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "date"
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
	if filter.ClientID != nil {
		domainFilter.Filters["client_id"] = *filter.ClientID
	}
	if filter.VehicleID != nil {
		domainFilter.Filters["vehicle_id"] = *filter.VehicleID
	}

	contracts, err := s.contractRepo.FindAllForDealer(ctx, dealerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.contractRepo.CountForDealer(ctx, dealerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToContractListResponses(contracts), total, nil
}

// ChangeStatus moves a contract and cascades the vehicle in the same
// transaction: active locks the vehicle into in_process, completed
// finalizes the sale, cancelled releases the vehicle back to available.
func (s *ContractService) ChangeStatus(ctx context.Context, dealerID, contractID uuid.UUID, target trade.ContractStatus) (*ContractResponse, error) {
	var contract *trade.Contract

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		contract, err = repos.Contracts().FindByIDForDealer(ctx, dealerID, contractID)
		if err != nil {
			return err
		}

		vehicle, err := repos.Vehicles().FindByIDForDealerLocked(ctx, dealerID, contract.VehicleID)
		if err != nil {
			return err
		}

		if err := contract.ChangeStatus(target); err != nil {
			return err
		}

		switch target {
		case trade.ContractStatusActive:
			if err := vehicle.StartSaleProcess(); err != nil {
				return err
			}
		case trade.ContractStatusCompleted:
			if err := vehicle.MarkSold(); err != nil {
				return err
			}
		case trade.ContractStatusCancelled:
			// The cancelled contract no longer counts as open; release the
			// vehicle unless another open contract still claims it.
			if err := repos.Contracts().SaveWithLock(ctx, contract); err != nil {
				return err
			}
			open, err := repos.Contracts().CountOpenByVehicle(ctx, dealerID, vehicle.ID)
			if err != nil {
				return err
			}
			if open == 0 && vehicle.Status == inventory.VehicleStatusReserved {
				if err := vehicle.Release(); err != nil {
					return err
				}
				return repos.Vehicles().SaveWithLock(ctx, vehicle)
			}
			return nil
		}

		if err := repos.Contracts().SaveWithLock(ctx, contract); err != nil {
			return err
		}
		return repos.Vehicles().SaveWithLock(ctx, vehicle)
	})
	if err != nil {
		return nil, err
	}

	response := ToContractResponse(contract)
	return &response, nil
}
