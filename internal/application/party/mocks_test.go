package party

import (
	"context"

	"github.com/dms/backend/internal/domain/party"
	"github.com/dms/backend/internal/domain/shared"
	"github.com/dms/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

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

// MockClientRepository is a mock implementation of party.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Client), args.Error(1)
}

func (m *MockClientRepository) FindByIDForDealer(ctx context.Context, dealerID, id uuid.UUID) (*party.Client, error) {
	args := m.Called(ctx, dealerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Client), args.Error(1)
}

func (m *MockClientRepository) FindByCedula(ctx context.Context, cedula string) (*party.Client, error) {
	args := m.Called(ctx, cedula)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Client), args.Error(1)
}

func (m *MockClientRepository) FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]party.Client, error) {
	args := m.Called(ctx, dealerID, filter)
	return args.Get(0).([]party.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *party.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) SaveWithLock(ctx context.Context, client *party.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteForDealer(ctx context.Context, dealerID, id uuid.UUID) error {
	args := m.Called(ctx, dealerID, id)
	return args.Error(0)
}

func (m *MockClientRepository) CountForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, dealerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) ExistsByCedula(ctx context.Context, cedula string) (bool, error) {
	args := m.Called(ctx, cedula)
	return args.Bool(0), args.Error(1)
}

var _ trade.ContractRepository = (*MockContractRepository)(nil)
var _ party.ClientRepository = (*MockClientRepository)(nil)
