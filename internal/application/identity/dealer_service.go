package identity

import (
	"context"
	"errors"

	"github.com/dms/backend/internal/domain/identity"
	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DealerService handles dealer onboarding and lifecycle operations
type DealerService struct {
	dealerRepo identity.DealerRepository
}

// NewDealerService creates a new DealerService
func NewDealerService(dealerRepo identity.DealerRepository) *DealerService {
	return &DealerService{dealerRepo: dealerRepo}
}

// Create registers a new dealer
func (s *DealerService) Create(ctx context.Context, req CreateDealerRequest) (*DealerResponse, error) {
	if req.Email != "" {
		existing, err := s.dealerRepo.FindByEmail(ctx, req.Email)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, shared.NewDomainError("UNIQUENESS_CONFLICT", "Dealer with this email already exists")
		}
	}

	dealer, err := identity.NewDealer(req.BusinessName, req.ContactName, req.Phone, req.Email, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.dealerRepo.Save(ctx, dealer); err != nil {
		return nil, err
	}

	response := ToDealerResponse(dealer)
	return &response, nil
}

// GetByID retrieves a dealer by ID
func (s *DealerService) GetByID(ctx context.Context, dealerID uuid.UUID) (*DealerResponse, error) {
	dealer, err := s.dealerRepo.FindByID(ctx, dealerID)
	if err != nil {
		return nil, err
	}

	response := ToDealerResponse(dealer)
	return &response, nil
}

// List retrieves dealers with filtering and pagination
func (s *DealerService) List(ctx context.Context, filter DealerListFilter) ([]DealerResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "business_name"
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

	dealers, err := s.dealerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.dealerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToDealerListResponses(dealers), total, nil
}

// Update updates a dealer's contact details
func (s *DealerService) Update(ctx context.Context, dealerID uuid.UUID, req UpdateDealerRequest) (*DealerResponse, error) {
	dealer, err := s.dealerRepo.FindByID(ctx, dealerID)
	if err != nil {
		return nil, err
	}

	businessName := dealer.BusinessName
	if req.BusinessName != nil {
		businessName = *req.BusinessName
	}
	contactName := dealer.ContactName
	if req.ContactName != nil {
		contactName = *req.ContactName
	}
	phone := dealer.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	email := dealer.Email
	if req.Email != nil {
		email = *req.Email
	}
	address := dealer.Address
	if req.Address != nil {
		address = *req.Address
	}

	if err := dealer.Update(businessName, contactName, phone, email, address); err != nil {
		return nil, err
	}
	if err := s.dealerRepo.SaveWithLock(ctx, dealer); err != nil {
		return nil, err
	}

	response := ToDealerResponse(dealer)
	return &response, nil
}

// Suspend takes a dealer offline. Suspended dealers keep their data but
// their users are denied access.
func (s *DealerService) Suspend(ctx context.Context, dealerID uuid.UUID) (*DealerResponse, error) {
	return s.changeStatus(ctx, dealerID, (*identity.Dealer).Suspend)
}

// Activate brings a suspended dealer back online
func (s *DealerService) Activate(ctx context.Context, dealerID uuid.UUID) (*DealerResponse, error) {
	return s.changeStatus(ctx, dealerID, (*identity.Dealer).Activate)
}

func (s *DealerService) changeStatus(ctx context.Context, dealerID uuid.UUID, transition func(*identity.Dealer) error) (*DealerResponse, error) {
	dealer, err := s.dealerRepo.FindByID(ctx, dealerID)
	if err != nil {
		return nil, err
	}

	if err := transition(dealer); err != nil {
		return nil, err
	}
	if err := s.dealerRepo.SaveWithLock(ctx, dealer); err != nil {
		return nil, err
	}

	response := ToDealerResponse(dealer)
	return &response, nil
}

// Delete removes a dealer. Blocked while any dealer-scoped data still
// references it.
func (s *DealerService) Delete(ctx context.Context, dealerID uuid.UUID) error {
	if _, err := s.dealerRepo.FindByID(ctx, dealerID); err != nil {
		return err
	}

	dependents, err := s.dealerRepo.CountDependents(ctx, dealerID)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return shared.NewValidationError("Dealer has data and cannot be deleted")
	}

	return s.dealerRepo.Delete(ctx, dealerID)
}
