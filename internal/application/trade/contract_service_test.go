package trade

import (
	"context"
	"testing"

	"github.com/dms/backend/internal/domain/inventory"
	"github.com/dms/backend/internal/domain/party"
	"github.com/dms/backend/internal/domain/shared"
	"github.com/dms/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contractFixture struct {
	dealerID     uuid.UUID
	client       *party.Client
	vehicle      *inventory.Vehicle
	contractRepo *MockContractRepository
	clientRepo   *MockClientRepository
	vehicleRepo  *MockVehicleRepository
	service      *ContractService
}

func newContractFixture(t *testing.T) *contractFixture {
	t.Helper()
	dealerID := uuid.New()

	client, err := party.NewClient(dealerID, "1-1234-5678", "Laura Mora", "", "", "")
	require.NoError(t, err)

	vehicle, err := inventory.NewVehicle(inventory.NewVehicleParams{
		DealerID:  dealerID,
		Brand:     "Toyota",
		Model:     "Corolla",
		Year:      2022,
		VIN:       "JTDBU4EE9A9123456",
		Price:     decimal.NewFromInt(950000),
		Condition: inventory.VehicleConditionUsed,
	})
	require.NoError(t, err)

	contractRepo := new(MockContractRepository)
	clientRepo := new(MockClientRepository)
	vehicleRepo := new(MockVehicleRepository)
	scope := NewNoOpTransactionScope(contractRepo, vehicleRepo)

	return &contractFixture{
		dealerID:     dealerID,
		client:       client,
		vehicle:      vehicle,
		contractRepo: contractRepo,
		clientRepo:   clientRepo,
		vehicleRepo:  vehicleRepo,
		service:      NewContractService(scope, contractRepo, clientRepo, vehicleRepo),
	}
}

func financingRequest(f *contractFixture) CreateContractRequest {
	months := 48
	downPayment := decimal.NewFromInt(190000)
	monthlyPayment := decimal.NewFromInt(15833)
	return CreateContractRequest{
		ClientID:       f.client.ID,
		VehicleID:      f.vehicle.ID,
		Price:          decimal.NewFromInt(950000),
		FinancingType:  "financing",
		DownPayment:    &downPayment,
		Months:         &months,
		MonthlyPayment: &monthlyPayment,
	}
}

func TestContractServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("reserves vehicle and opens pending contract", func(t *testing.T) {
		f := newContractFixture(t)

		f.clientRepo.On("FindByID", ctx, f.client.ID).Return(f.client, nil)
		f.vehicleRepo.On("FindByIDForDealerLocked", ctx, f.dealerID, f.vehicle.ID).Return(f.vehicle, nil)
		f.contractRepo.On("CountOpenByVehicle", ctx, f.dealerID, f.vehicle.ID).Return(int64(0), nil)
		f.contractRepo.On("Save", ctx, mock.AnythingOfType("*trade.Contract")).Return(nil)
		f.vehicleRepo.On("SaveWithLock", ctx, f.vehicle).Return(nil)

		resp, err := f.service.Create(ctx, f.dealerID, financingRequest(f))
		require.NoError(t, err)

		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, 48, *resp.Months)
		assert.Equal(t, inventory.VehicleStatusReserved, f.vehicle.Status)
		f.contractRepo.AssertExpectations(t)
		f.vehicleRepo.AssertExpectations(t)
	})

	t.Run("fails when vehicle is not available", func(t *testing.T) {
		f := newContractFixture(t)
		require.NoError(t, f.vehicle.Reserve())

		f.clientRepo.On("FindByID", ctx, f.client.ID).Return(f.client, nil)
		f.vehicleRepo.On("FindByIDForDealerLocked", ctx, f.dealerID, f.vehicle.ID).Return(f.vehicle, nil)
		f.contractRepo.On("CountOpenByVehicle", ctx, f.dealerID, f.vehicle.ID).Return(int64(0), nil)

		_, err := f.service.Create(ctx, f.dealerID, financingRequest(f))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VEHICLE_NOT_AVAILABLE", domainErr.Code)
	})

	t.Run("fails when another open contract claims the vehicle", func(t *testing.T) {
		f := newContractFixture(t)

		f.clientRepo.On("FindByID", ctx, f.client.ID).Return(f.client, nil)
		f.vehicleRepo.On("FindByIDForDealerLocked", ctx, f.dealerID, f.vehicle.ID).Return(f.vehicle, nil)
		f.contractRepo.On("CountOpenByVehicle", ctx, f.dealerID, f.vehicle.ID).Return(int64(1), nil)

		_, err := f.service.Create(ctx, f.dealerID, financingRequest(f))
		assert.ErrorIs(t, err, shared.ErrVehicleNotAvailable)
	})

	t.Run("fails with tenant mismatch for another dealer's client", func(t *testing.T) {
		f := newContractFixture(t)
		foreignClient, err := party.NewClient(uuid.New(), "8-8888-8888", "Otro Cliente", "", "", "")
		require.NoError(t, err)

		f.clientRepo.On("FindByID", ctx, foreignClient.ID).Return(foreignClient, nil)

		req := financingRequest(f)
		req.ClientID = foreignClient.ID
		_, err = f.service.Create(ctx, f.dealerID, req)
		assert.ErrorIs(t, err, shared.ErrTenantMismatch)
	})

	t.Run("fails with tenant mismatch for another dealer's vehicle", func(t *testing.T) {
		f := newContractFixture(t)
		foreignVehicle, err := inventory.NewVehicle(inventory.NewVehicleParams{
			DealerID:  uuid.New(),
			Brand:     "Honda",
			Model:     "Civic",
			Year:      2021,
			VIN:       "2HGFC2F59MH123456",
			Price:     decimal.NewFromInt(880000),
			Condition: inventory.VehicleConditionUsed,
		})
		require.NoError(t, err)

		f.clientRepo.On("FindByID", ctx, f.client.ID).Return(f.client, nil)
		f.vehicleRepo.On("FindByIDForDealerLocked", ctx, f.dealerID, foreignVehicle.ID).Return(nil, shared.ErrNotFound)
		f.vehicleRepo.On("FindByID", ctx, foreignVehicle.ID).Return(foreignVehicle, nil)

		req := financingRequest(f)
		req.VehicleID = foreignVehicle.ID
		_, err = f.service.Create(ctx, f.dealerID, req)
		assert.ErrorIs(t, err, shared.ErrTenantMismatch)
	})

	t.Run("rejects invalid financing before touching the vehicle", func(t *testing.T) {
		f := newContractFixture(t)

		f.clientRepo.On("FindByID", ctx, f.client.ID).Return(f.client, nil)

		req := financingRequest(f)
		req.Months = nil
		_, err := f.service.Create(ctx, f.dealerID, req)
		require.Error(t, err)
		f.vehicleRepo.AssertNotCalled(t, "FindByIDForDealerLocked", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestContractServiceChangeStatus(t *testing.T) {
	ctx := context.Background()

	openContract := func(t *testing.T, f *contractFixture) *trade.Contract {
		t.Helper()
		c, err := trade.NewContract(trade.NewContractParams{
			DealerID:      f.dealerID,
			ClientID:      f.client.ID,
			VehicleID:     f.vehicle.ID,
			Price:         decimal.NewFromInt(950000),
			FinancingType: trade.FinancingTypeCash,
		})
		require.NoError(t, err)
		return c
	}

	t.Run("activate cascades vehicle to in_process", func(t *testing.T) {
		f := newContractFixture(t)
		contract := openContract(t, f)
		require.NoError(t, f.vehicle.Reserve())

		f.contractRepo.On("FindByIDForDealer", ctx, f.dealerID, contract.ID).Return(contract, nil)
		f.vehicleRepo.On("FindByIDForDealerLocked", ctx, f.dealerID, f.vehicle.ID).Return(f.vehicle, nil)
		f.contractRepo.On("SaveWithLock", ctx, contract).Return(nil)
		f.vehicleRepo.On("SaveWithLock", ctx, f.vehicle).Return(nil)

		resp, err := f.service.ChangeStatus(ctx, f.dealerID, contract.ID, trade.ContractStatusActive)
		require.NoError(t, err)

		assert.Equal(t, "active", resp.Status)
		assert.Equal(t, inventory.VehicleStatusInProcess, f.vehicle.Status)
	})

	t.Run("complete cascades vehicle to sold", func(t *testing.T) {
		f := newContractFixture(t)
		contract := openContract(t, f)
		require.NoError(t, contract.Activate())
		require.NoError(t, f.vehicle.Reserve())
		require.NoError(t, f.vehicle.StartSaleProcess())

		f.contractRepo.On("FindByIDForDealer", ctx, f.dealerID, contract.ID).Return(contract, nil)
		f.vehicleRepo.On("FindByIDForDealerLocked", ctx, f.dealerID, f.vehicle.ID).Return(f.vehicle, nil)
		f.contractRepo.On("SaveWithLock", ctx, contract).Return(nil)
		f.vehicleRepo.On("SaveWithLock", ctx, f.vehicle).Return(nil)

		_, err := f.service.ChangeStatus(ctx, f.dealerID, contract.ID, trade.ContractStatusCompleted)
		require.NoError(t, err)
		assert.True(t, f.vehicle.IsSold())
	})

	t.Run("cancel releases the vehicle", func(t *testing.T) {
		f := newContractFixture(t)
		contract := openContract(t, f)
		require.NoError(t, f.vehicle.Reserve())

		f.contractRepo.On("FindByIDForDealer", ctx, f.dealerID, contract.ID).Return(contract, nil)
		f.vehicleRepo.On("FindByIDForDealerLocked", ctx, f.dealerID, f.vehicle.ID).Return(f.vehicle, nil)
		f.contractRepo.On("SaveWithLock", ctx, contract).Return(nil)
		f.contractRepo.On("CountOpenByVehicle", ctx, f.dealerID, f.vehicle.ID).Return(int64(0), nil)
		f.vehicleRepo.On("SaveWithLock", ctx, f.vehicle).Return(nil)

		resp, err := f.service.ChangeStatus(ctx, f.dealerID, contract.ID, trade.ContractStatusCancelled)
		require.NoError(t, err)

		assert.Equal(t, "cancelled", resp.Status)
		assert.True(t, f.vehicle.IsAvailable())
	})

	t.Run("cancel after activation is rejected", func(t *testing.T) {
		f := newContractFixture(t)
		contract := openContract(t, f)
		require.NoError(t, contract.Activate())
		require.NoError(t, f.vehicle.Reserve())
		require.NoError(t, f.vehicle.StartSaleProcess())

		f.contractRepo.On("FindByIDForDealer", ctx, f.dealerID, contract.ID).Return(contract, nil)
		f.vehicleRepo.On("FindByIDForDealerLocked", ctx, f.dealerID, f.vehicle.ID).Return(f.vehicle, nil)

		_, err := f.service.ChangeStatus(ctx, f.dealerID, contract.ID, trade.ContractStatusCancelled)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE_TRANSITION", domainErr.Code)
	})
}
