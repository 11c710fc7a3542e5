package coverage

import (
	"context"
	"testing"
	"time"

	"github.com/dms/backend/internal/domain/coverage"
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

type insuranceServiceFixture struct {
	service       *InsuranceService
	insuranceRepo *MockInsuranceRepository
	vehicleRepo   *MockVehicleRepository
	clientRepo    *MockClientRepository
	contractRepo  *MockContractRepository
}

func newInsuranceServiceFixture(t *testing.T) *insuranceServiceFixture {
	t.Helper()
	f := &insuranceServiceFixture{
		insuranceRepo: new(MockInsuranceRepository),
		vehicleRepo:   new(MockVehicleRepository),
		clientRepo:    new(MockClientRepository),
		contractRepo:  new(MockContractRepository),
	}
	f.service = NewInsuranceService(f.insuranceRepo, f.vehicleRepo, f.clientRepo, f.contractRepo)
	return f
}

func newCoveredVehicle(t *testing.T, dealerID uuid.UUID) *inventory.Vehicle {
	t.Helper()
	vehicle, err := inventory.NewVehicle(inventory.NewVehicleParams{
		DealerID:  dealerID,
		Brand:     "Hyundai",
		Model:     "Tucson",
		Year:      2023,
		VIN:       "KM8J3CAL6PU172204",
		Price:     decimal.NewFromInt(21500000),
		Condition: inventory.VehicleConditionNew,
	})
	require.NoError(t, err)
	return vehicle
}

func TestInsuranceServiceCreate(t *testing.T) {
	ctx := context.Background()
	dealerID := uuid.New()
	startDate := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("issues policy with derived expiry", func(t *testing.T) {
		f := newInsuranceServiceFixture(t)
		vehicle := newCoveredVehicle(t, dealerID)

		f.vehicleRepo.On("FindByIDForDealer", ctx, dealerID, vehicle.ID).Return(vehicle, nil)
		f.insuranceRepo.On("Save", ctx, mock.AnythingOfType("*coverage.Insurance")).Return(nil)

		resp, err := f.service.Create(ctx, dealerID, CreateInsuranceRequest{
			VehicleID:      vehicle.ID,
			StartDate:      startDate,
			CoverageMonths: 12,
			CoverageType:   "full",
			Premium:        decimal.NewFromInt(480000),
		})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC), resp.ExpiryDate)
	})

	t.Run("rejects vehicle from another dealer", func(t *testing.T) {
		f := newInsuranceServiceFixture(t)
		foreignVehicle := newCoveredVehicle(t, uuid.New())

		f.vehicleRepo.On("FindByIDForDealer", ctx, dealerID, foreignVehicle.ID).Return(nil, shared.ErrNotFound)
		f.vehicleRepo.On("FindByID", ctx, foreignVehicle.ID).Return(foreignVehicle, nil)

		_, err := f.service.Create(ctx, dealerID, CreateInsuranceRequest{
			VehicleID:      foreignVehicle.ID,
			StartDate:      startDate,
			CoverageMonths: 12,
			CoverageType:   "full",
			Premium:        decimal.NewFromInt(480000),
		})
		assert.ErrorIs(t, err, shared.ErrTenantMismatch)
	})

	t.Run("rejects contract covering a different vehicle", func(t *testing.T) {
		f := newInsuranceServiceFixture(t)
		vehicle := newCoveredVehicle(t, dealerID)
		contract, err := trade.NewContract(trade.NewContractParams{
			DealerID:      dealerID,
			ClientID:      uuid.New(),
			VehicleID:     uuid.New(),
			Price:         decimal.NewFromInt(21500000),
			FinancingType: trade.FinancingTypeCash,
		})
		require.NoError(t, err)

		f.vehicleRepo.On("FindByIDForDealer", ctx, dealerID, vehicle.ID).Return(vehicle, nil)
		f.contractRepo.On("FindByIDForDealer", ctx, dealerID, contract.ID).Return(contract, nil)

		_, err = f.service.Create(ctx, dealerID, CreateInsuranceRequest{
			VehicleID:      vehicle.ID,
			ContractID:     &contract.ID,
			StartDate:      startDate,
			CoverageMonths: 12,
			CoverageType:   "full",
			Premium:        decimal.NewFromInt(480000),
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		f.insuranceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects contract belonging to a different client", func(t *testing.T) {
		f := newInsuranceServiceFixture(t)
		vehicle := newCoveredVehicle(t, dealerID)
		clientID := uuid.New()
		contract, err := trade.NewContract(trade.NewContractParams{
			DealerID:      dealerID,
			ClientID:      uuid.New(),
			VehicleID:     vehicle.ID,
			Price:         decimal.NewFromInt(21500000),
			FinancingType: trade.FinancingTypeCash,
		})
		require.NoError(t, err)
		client, err := party.NewClient(dealerID, "1-1234-5678", "Laura Mora", "", "", "")
		require.NoError(t, err)
		client.ID = clientID

		f.vehicleRepo.On("FindByIDForDealer", ctx, dealerID, vehicle.ID).Return(vehicle, nil)
		f.clientRepo.On("FindByID", ctx, clientID).Return(client, nil)
		f.contractRepo.On("FindByIDForDealer", ctx, dealerID, contract.ID).Return(contract, nil)

		_, err = f.service.Create(ctx, dealerID, CreateInsuranceRequest{
			VehicleID:      vehicle.ID,
			ClientID:       &clientID,
			ContractID:     &contract.ID,
			StartDate:      startDate,
			CoverageMonths: 12,
			CoverageType:   "full",
			Premium:        decimal.NewFromInt(480000),
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	})
}

func TestInsuranceServiceCancel(t *testing.T) {
	ctx := context.Background()
	dealerID := uuid.New()

	newPolicy := func(t *testing.T) *coverage.Insurance {
		t.Helper()
		insurance, err := coverage.NewInsurance(coverage.NewInsuranceParams{
			DealerID:       dealerID,
			VehicleID:      uuid.New(),
			StartDate:      time.Now(),
			CoverageMonths: 12,
			CoverageType:   coverage.CoverageTypeFull,
			Premium:        decimal.NewFromInt(480000),
		})
		require.NoError(t, err)
		return insurance
	}

	t.Run("cancels active policy", func(t *testing.T) {
		f := newInsuranceServiceFixture(t)
		insurance := newPolicy(t)

		f.insuranceRepo.On("FindByIDForDealer", ctx, dealerID, insurance.ID).Return(insurance, nil)
		f.insuranceRepo.On("SaveWithLock", ctx, insurance).Return(nil)

		resp, err := f.service.Cancel(ctx, dealerID, insurance.ID)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
	})

	t.Run("cancel is terminal", func(t *testing.T) {
		f := newInsuranceServiceFixture(t)
		insurance := newPolicy(t)
		require.NoError(t, insurance.Cancel())

		f.insuranceRepo.On("FindByIDForDealer", ctx, dealerID, insurance.ID).Return(insurance, nil)

		_, err := f.service.Cancel(ctx, dealerID, insurance.ID)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE_TRANSITION", domainErr.Code)
	})

	t.Run("cancelled policy rejects updates", func(t *testing.T) {
		f := newInsuranceServiceFixture(t)
		insurance := newPolicy(t)
		require.NoError(t, insurance.Cancel())

		f.insuranceRepo.On("FindByIDForDealer", ctx, dealerID, insurance.ID).Return(insurance, nil)

		months := 24
		_, err := f.service.Update(ctx, dealerID, insurance.ID, UpdateInsuranceRequest{CoverageMonths: &months})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE_TRANSITION", domainErr.Code)
	})
}

func TestInsuranceServiceList(t *testing.T) {
	ctx := context.Background()
	dealerID := uuid.New()

	t.Run("derives effective status per policy", func(t *testing.T) {
		f := newInsuranceServiceFixture(t)

		fresh, err := coverage.NewInsurance(coverage.NewInsuranceParams{
			DealerID:       dealerID,
			VehicleID:      uuid.New(),
			StartDate:      time.Now(),
			CoverageMonths: 12,
			CoverageType:   coverage.CoverageTypeFull,
			Premium:        decimal.NewFromInt(480000),
		})
		require.NoError(t, err)
		lapsed, err := coverage.NewInsurance(coverage.NewInsuranceParams{
			DealerID:       dealerID,
			VehicleID:      uuid.New(),
			StartDate:      time.Now().AddDate(-2, 0, 0),
			CoverageMonths: 12,
			CoverageType:   coverage.CoverageTypeTheft,
			Premium:        decimal.NewFromInt(120000),
		})
		require.NoError(t, err)

		f.insuranceRepo.On("FindAllForDealer", ctx, dealerID, mock.AnythingOfType("shared.Filter")).
			Return([]coverage.Insurance{*fresh, *lapsed}, nil)
		f.insuranceRepo.On("CountForDealer", ctx, dealerID, mock.AnythingOfType("shared.Filter")).
			Return(int64(2), nil)

		responses, total, err := f.service.List(ctx, dealerID, InsuranceListFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, "active", responses[0].Status)
		assert.Equal(t, "expired", responses[1].Status)
	})

	t.Run("expiring filter queries by cutoff", func(t *testing.T) {
		f := newInsuranceServiceFixture(t)

		soon, err := coverage.NewInsurance(coverage.NewInsuranceParams{
			DealerID:       dealerID,
			VehicleID:      uuid.New(),
			StartDate:      time.Now().AddDate(0, -11, -15),
			CoverageMonths: 12,
			CoverageType:   coverage.CoverageTypeFull,
			Premium:        decimal.NewFromInt(480000),
		})
		require.NoError(t, err)

		f.insuranceRepo.On("FindExpiringBefore", ctx, dealerID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("shared.Filter")).
			Return([]coverage.Insurance{*soon}, nil)

		responses, total, err := f.service.List(ctx, dealerID, InsuranceListFilter{ExpiringInDays: 30})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "expiring_soon", responses[0].Status)
	})
}
