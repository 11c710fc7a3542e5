package identity

import (
	"context"

	"github.com/dms/backend/internal/domain/identity"
	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProfileService handles the binding between authenticated users and
// dealers
type ProfileService struct {
	profileRepo identity.ProfileRepository
	dealerRepo  identity.DealerRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo identity.ProfileRepository, dealerRepo identity.DealerRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		dealerRepo:  dealerRepo,
	}
}

// Create binds a user to a dealer. A user can belong to exactly one
// dealer, and the dealer must be active.
func (s *ProfileService) Create(ctx context.Context, dealerID uuid.UUID, req CreateProfileRequest) (*ProfileResponse, error) {
	dealer, err := s.dealerRepo.FindByID(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	if !dealer.IsActive() {
		return nil, shared.NewValidationError("Dealer is suspended")
	}

	exists, err := s.profileRepo.ExistsByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("UNIQUENESS_CONFLICT", "User already belongs to a dealer")
	}

	profile, err := identity.NewProfile(dealerID, req.UserID, req.DisplayName, req.Email, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	response := ToProfileResponse(profile)
	return &response, nil
}

// GetByUserID retrieves the profile bound to an authenticated subject
func (s *ProfileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToProfileResponse(profile)
	return &response, nil
}

// List retrieves the profiles of a dealer
func (s *ProfileService) List(ctx context.Context, dealerID uuid.UUID) ([]ProfileResponse, error) {
	profiles, err := s.profileRepo.FindAllForDealer(ctx, dealerID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	return ToProfileListResponses(profiles), nil
}

// ChangeRole changes a profile's role within its dealer
func (s *ProfileService) ChangeRole(ctx context.Context, dealerID, profileID uuid.UUID, req ChangeProfileRoleRequest) (*ProfileResponse, error) {
	profile, err := s.findForDealer(ctx, dealerID, profileID)
	if err != nil {
		return nil, err
	}

	if err := profile.ChangeRole(identity.Role(req.Role)); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	response := ToProfileResponse(profile)
	return &response, nil
}

// Disable locks a profile out without removing it
func (s *ProfileService) Disable(ctx context.Context, dealerID, profileID uuid.UUID) (*ProfileResponse, error) {
	return s.changeStatus(ctx, dealerID, profileID, (*identity.Profile).Disable)
}

// Enable reinstates a disabled profile
func (s *ProfileService) Enable(ctx context.Context, dealerID, profileID uuid.UUID) (*ProfileResponse, error) {
	return s.changeStatus(ctx, dealerID, profileID, (*identity.Profile).Enable)
}

func (s *ProfileService) changeStatus(ctx context.Context, dealerID, profileID uuid.UUID, transition func(*identity.Profile) error) (*ProfileResponse, error) {
	profile, err := s.findForDealer(ctx, dealerID, profileID)
	if err != nil {
		return nil, err
	}

	if err := transition(profile); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	response := ToProfileResponse(profile)
	return &response, nil
}

// Delete removes a profile from its dealer
func (s *ProfileService) Delete(ctx context.Context, dealerID, profileID uuid.UUID) error {
	if _, err := s.findForDealer(ctx, dealerID, profileID); err != nil {
		return err
	}
	return s.profileRepo.DeleteForDealer(ctx, dealerID, profileID)
}

// findForDealer loads a profile and checks dealer ownership. Profiles of
// other dealers are reported as not found.
func (s *ProfileService) findForDealer(ctx context.Context, dealerID, profileID uuid.UUID) (*identity.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.DealerID != dealerID {
		return nil, shared.ErrNotFound
	}
	return profile, nil
}
