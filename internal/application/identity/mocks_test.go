package identity

import (
	"context"

	"github.com/dms/backend/internal/domain/identity"
	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDealerRepository is a mock implementation of identity.DealerRepository
type MockDealerRepository struct {
	mock.Mock
}

func (m *MockDealerRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Dealer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Dealer), args.Error(1)
}

func (m *MockDealerRepository) FindByEmail(ctx context.Context, email string) (*identity.Dealer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Dealer), args.Error(1)
}

func (m *MockDealerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Dealer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.Dealer), args.Error(1)
}

func (m *MockDealerRepository) Save(ctx context.Context, dealer *identity.Dealer) error {
	args := m.Called(ctx, dealer)
	return args.Error(0)
}

func (m *MockDealerRepository) SaveWithLock(ctx context.Context, dealer *identity.Dealer) error {
	args := m.Called(ctx, dealer)
	return args.Error(0)
}

func (m *MockDealerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDealerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDealerRepository) CountDependents(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockProfileRepository is a mock implementation of identity.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*identity.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]identity.Profile, error) {
	args := m.Called(ctx, dealerID, filter)
	return args.Get(0).([]identity.Profile), args.Error(1)
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *identity.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteForDealer(ctx context.Context, dealerID, id uuid.UUID) error {
	args := m.Called(ctx, dealerID, id)
	return args.Error(0)
}

func (m *MockProfileRepository) ExistsByUserID(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

var _ identity.DealerRepository = (*MockDealerRepository)(nil)
var _ identity.ProfileRepository = (*MockProfileRepository)(nil)
