package inventory

import (
	"context"
	"time"

	"github.com/dms/backend/internal/domain/coverage"
	"github.com/dms/backend/internal/domain/inventory"
	"github.com/dms/backend/internal/domain/partner"
	"github.com/dms/backend/internal/domain/shared"
	"github.com/dms/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVehicleRepository is a mock implementation of inventory.VehicleRepository
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByIDForDealer(ctx context.Context, dealerID, id uuid.UUID) (*inventory.Vehicle, error) {
	args := m.Called(ctx, dealerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByIDForDealerLocked(ctx context.Context, dealerID, id uuid.UUID) (*inventory.Vehicle, error) {
	args := m.Called(ctx, dealerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByVIN(ctx context.Context, vin string) (*inventory.Vehicle, error) {
	args := m.Called(ctx, vin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]inventory.Vehicle, error) {
	args := m.Called(ctx, dealerID, filter)
	return args.Get(0).([]inventory.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByStatus(ctx context.Context, dealerID uuid.UUID, status inventory.VehicleStatus, filter shared.Filter) ([]inventory.Vehicle, error) {
	args := m.Called(ctx, dealerID, status, filter)
	return args.Get(0).([]inventory.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByConcesionario(ctx context.Context, dealerID, concesionarioID uuid.UUID, filter shared.Filter) ([]inventory.Vehicle, error) {
	args := m.Called(ctx, dealerID, concesionarioID, filter)
	return args.Get(0).([]inventory.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Save(ctx context.Context, vehicle *inventory.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) SaveWithLock(ctx context.Context, vehicle *inventory.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) DeleteForDealer(ctx context.Context, dealerID, id uuid.UUID) error {
	args := m.Called(ctx, dealerID, id)
	return args.Error(0)
}

func (m *MockVehicleRepository) CountForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, dealerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehicleRepository) CountByConcesionario(ctx context.Context, dealerID, concesionarioID uuid.UUID) (int64, error) {
	args := m.Called(ctx, dealerID, concesionarioID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehicleRepository) ExistsByVIN(ctx context.Context, vin string) (bool, error) {
	args := m.Called(ctx, vin)
	return args.Bool(0), args.Error(1)
}

func (m *MockVehicleRepository) ExistsByPlate(ctx context.Context, plate string) (bool, error) {
	args := m.Called(ctx, plate)
	return args.Bool(0), args.Error(1)
}

// MockConcesionarioRepository is a mock implementation of partner.ConcesionarioRepository
type MockConcesionarioRepository struct {
	mock.Mock
}

func (m *MockConcesionarioRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Concesionario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Concesionario), args.Error(1)
}

func (m *MockConcesionarioRepository) FindByIDForDealer(ctx context.Context, dealerID, id uuid.UUID) (*partner.Concesionario, error) {
	args := m.Called(ctx, dealerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Concesionario), args.Error(1)
}

func (m *MockConcesionarioRepository) FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]partner.Concesionario, error) {
	args := m.Called(ctx, dealerID, filter)
	return args.Get(0).([]partner.Concesionario), args.Error(1)
}

func (m *MockConcesionarioRepository) FindByStatus(ctx context.Context, dealerID uuid.UUID, status partner.ConcesionarioStatus, filter shared.Filter) ([]partner.Concesionario, error) {
	args := m.Called(ctx, dealerID, status, filter)
	return args.Get(0).([]partner.Concesionario), args.Error(1)
}

func (m *MockConcesionarioRepository) Save(ctx context.Context, concesionario *partner.Concesionario) error {
	args := m.Called(ctx, concesionario)
	return args.Error(0)
}

func (m *MockConcesionarioRepository) SaveWithLock(ctx context.Context, concesionario *partner.Concesionario) error {
	args := m.Called(ctx, concesionario)
	return args.Error(0)
}

func (m *MockConcesionarioRepository) DeleteForDealer(ctx context.Context, dealerID, id uuid.UUID) error {
	args := m.Called(ctx, dealerID, id)
	return args.Error(0)
}

func (m *MockConcesionarioRepository) CountForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, dealerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConcesionarioRepository) ExistsByName(ctx context.Context, dealerID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, dealerID, name)
	return args.Bool(0), args.Error(1)
}

// MockContractRepository is a mock implementation of trade.ContractRepository
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Contract), args.Error(1)
}

func (m *MockContractRepository) FindByIDForDealer(ctx context.Context, dealerID, id uuid.UUID) (*trade.Contract, error) {
	args := m.Called(ctx, dealerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Contract), args.Error(1)
}

func (m *MockContractRepository) FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]trade.Contract, error) {
	args := m.Called(ctx, dealerID, filter)
	return args.Get(0).([]trade.Contract), args.Error(1)
}

func (m *MockContractRepository) FindByStatus(ctx context.Context, dealerID uuid.UUID, status trade.ContractStatus, filter shared.Filter) ([]trade.Contract, error) {
	args := m.Called(ctx, dealerID, status, filter)
	return args.Get(0).([]trade.Contract), args.Error(1)
}

func (m *MockContractRepository) FindByClient(ctx context.Context, dealerID, clientID uuid.UUID, filter shared.Filter) ([]trade.Contract, error) {
	args := m.Called(ctx, dealerID, clientID, filter)
	return args.Get(0).([]trade.Contract), args.Error(1)
}

func (m *MockContractRepository) FindByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID, filter shared.Filter) ([]trade.Contract, error) {
	args := m.Called(ctx, dealerID, vehicleID, filter)
	return args.Get(0).([]trade.Contract), args.Error(1)
}

func (m *MockContractRepository) FindOpenByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID) (*trade.Contract, error) {
	args := m.Called(ctx, dealerID, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Contract), args.Error(1)
}

func (m *MockContractRepository) Save(ctx context.Context, contract *trade.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) SaveWithLock(ctx context.Context, contract *trade.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) CountForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, dealerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContractRepository) CountOpenByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID) (int64, error) {
	args := m.Called(ctx, dealerID, vehicleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContractRepository) CountByClient(ctx context.Context, dealerID, clientID uuid.UUID) (int64, error) {
	args := m.Called(ctx, dealerID, clientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContractRepository) CountByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID) (int64, error) {
	args := m.Called(ctx, dealerID, vehicleID)
	return args.Get(0).(int64), args.Error(1)
}

// MockInsuranceRepository is a mock implementation of coverage.InsuranceRepository
type MockInsuranceRepository struct {
	mock.Mock
}

func (m *MockInsuranceRepository) FindByID(ctx context.Context, id uuid.UUID) (*coverage.Insurance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coverage.Insurance), args.Error(1)
}

func (m *MockInsuranceRepository) FindByIDForDealer(ctx context.Context, dealerID, id uuid.UUID) (*coverage.Insurance, error) {
	args := m.Called(ctx, dealerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coverage.Insurance), args.Error(1)
}

func (m *MockInsuranceRepository) FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]coverage.Insurance, error) {
	args := m.Called(ctx, dealerID, filter)
	return args.Get(0).([]coverage.Insurance), args.Error(1)
}

func (m *MockInsuranceRepository) FindByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID, filter shared.Filter) ([]coverage.Insurance, error) {
	args := m.Called(ctx, dealerID, vehicleID, filter)
	return args.Get(0).([]coverage.Insurance), args.Error(1)
}

func (m *MockInsuranceRepository) FindExpiringBefore(ctx context.Context, dealerID uuid.UUID, cutoff time.Time, filter shared.Filter) ([]coverage.Insurance, error) {
	args := m.Called(ctx, dealerID, cutoff, filter)
	return args.Get(0).([]coverage.Insurance), args.Error(1)
}

func (m *MockInsuranceRepository) Save(ctx context.Context, insurance *coverage.Insurance) error {
	args := m.Called(ctx, insurance)
	return args.Error(0)
}

func (m *MockInsuranceRepository) SaveWithLock(ctx context.Context, insurance *coverage.Insurance) error {
	args := m.Called(ctx, insurance)
	return args.Error(0)
}

func (m *MockInsuranceRepository) DeleteForDealer(ctx context.Context, dealerID, id uuid.UUID) error {
	args := m.Called(ctx, dealerID, id)
	return args.Error(0)
}

func (m *MockInsuranceRepository) CountForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, dealerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInsuranceRepository) CountByVehicle(ctx context.Context, dealerID, vehicleID uuid.UUID) (int64, error) {
	args := m.Called(ctx, dealerID, vehicleID)
	return args.Get(0).(int64), args.Error(1)
}

var _ inventory.VehicleRepository = (*MockVehicleRepository)(nil)
var _ partner.ConcesionarioRepository = (*MockConcesionarioRepository)(nil)
var _ trade.ContractRepository = (*MockContractRepository)(nil)
var _ coverage.InsuranceRepository = (*MockInsuranceRepository)(nil)
