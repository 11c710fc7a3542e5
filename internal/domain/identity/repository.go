package identity

import (
	"context"

	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DealerRepository defines the interface for dealer persistence
type DealerRepository interface {
	// FindByID finds a dealer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Dealer, error)

	// FindByEmail finds a dealer by its contact email
	FindByEmail(ctx context.Context, email string) (*Dealer, error)

	// FindAll finds all dealers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Dealer, error)

	// Save creates or updates a dealer
	Save(ctx context.Context, dealer *Dealer) error

	// SaveWithLock saves a dealer with optimistic locking (version check)
	SaveWithLock(ctx context.Context, dealer *Dealer) error

	// Delete deletes a dealer
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts dealers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountDependents counts rows in dealer-scoped tables referencing the dealer
	CountDependents(ctx context.Context, id uuid.UUID) (int64, error)
}

// ProfileRepository defines the interface for profile persistence
type ProfileRepository interface {
	// FindByID finds a profile by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)

	// FindByUserID finds the profile bound to an authenticated subject
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)

	// FindAllForDealer finds all profiles for a dealer
	FindAllForDealer(ctx context.Context, dealerID uuid.UUID, filter shared.Filter) ([]Profile, error)

	// Save creates or updates a profile
	Save(ctx context.Context, profile *Profile) error

	// DeleteForDealer deletes a profile within a dealer
	DeleteForDealer(ctx context.Context, dealerID, id uuid.UUID) error

	// ExistsByUserID checks if a profile exists for the subject
	ExistsByUserID(ctx context.Context, userID uuid.UUID) (bool, error)
}
