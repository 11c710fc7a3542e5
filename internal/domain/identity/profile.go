package identity

import (
	"time"

	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Role represents the access role of a profile within its dealer
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid returns true for a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// ProfileStatus represents the status of a profile
type ProfileStatus string

const (
	ProfileStatusActive   ProfileStatus = "active"
	ProfileStatusDisabled ProfileStatus = "disabled"
)

// Profile binds an authenticated subject to one dealer and a role.
// The JWT layer mints dealer-scoped claims from this record.
type Profile struct {
	shared.DealerAggregateRoot
	UserID      uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex"`
	DisplayName string        `gorm:"type:varchar(100)"`
	Email       string        `gorm:"type:varchar(200);index"`
	Role        Role          `gorm:"type:varchar(20);not null;default:'user'"`
	Status      ProfileStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}

// NewProfile creates a new profile for a dealer
func NewProfile(dealerID, userID uuid.UUID, displayName, email string, role Role) (*Profile, error) {
	if userID == uuid.Nil {
		return nil, shared.NewValidationError("User ID is required")
	}
	if !role.IsValid() {
		return nil, shared.NewValidationError("Role must be 'admin' or 'user'")
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
	}

	return &Profile{
		DealerAggregateRoot: shared.NewDealerAggregateRoot(dealerID),
		UserID:              userID,
		DisplayName:         displayName,
		Email:               email,
		Role:                role,
		Status:              ProfileStatusActive,
	}, nil
}

// ChangeRole changes the profile's role
func (p *Profile) ChangeRole(role Role) error {
	if !role.IsValid() {
		return shared.NewValidationError("Role must be 'admin' or 'user'")
	}

	p.Role = role
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Disable disables the profile, revoking access
func (p *Profile) Disable() error {
	if p.Status == ProfileStatusDisabled {
		return shared.NewStateTransitionError("Profile is already disabled")
	}

	p.Status = ProfileStatusDisabled
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Enable re-enables a disabled profile
func (p *Profile) Enable() error {
	if p.Status == ProfileStatusActive {
		return shared.NewStateTransitionError("Profile is already active")
	}

	p.Status = ProfileStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsAdmin returns true if the profile carries the admin role
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanAccess returns true if the profile grants access to the given dealer
func (p *Profile) CanAccess(dealerID uuid.UUID) bool {
	return p.Status == ProfileStatusActive && p.DealerID == dealerID
}
