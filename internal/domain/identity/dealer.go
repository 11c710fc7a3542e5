package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/dms/backend/internal/domain/shared"
)

// DealerStatus represents the status of a dealer
type DealerStatus string

const (
	DealerStatusActive    DealerStatus = "active"
	DealerStatusSuspended DealerStatus = "suspended"
)

// Dealer is the tenant root. Every other row in the system belongs to
// exactly one dealer.
type Dealer struct {
	shared.BaseAggregateRoot
	BusinessName string       `gorm:"type:varchar(200);not null"`
	ContactName  string       `gorm:"type:varchar(100)"`
	Phone        string       `gorm:"type:varchar(50)"`
	Email        string       `gorm:"type:varchar(200);index"`
	Address      string       `gorm:"type:text"`
	Status       DealerStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Dealer) TableName() string {
	return "dealers"
}

// NewDealer creates a new dealer with required fields
func NewDealer(businessName, contactName, phone, email, address string) (*Dealer, error) {
	if err := validateBusinessName(businessName); err != nil {
		return nil, err
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return nil, err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
	}

	dealer := &Dealer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BusinessName:      strings.TrimSpace(businessName),
		ContactName:       contactName,
		Phone:             phone,
		Email:             email,
		Address:           address,
		Status:            DealerStatusActive,
	}

	dealer.AddDomainEvent(NewDealerCreatedEvent(dealer))

	return dealer, nil
}

// Update updates the dealer's contact information
func (d *Dealer) Update(businessName, contactName, phone, email, address string) error {
	if err := validateBusinessName(businessName); err != nil {
		return err
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	d.BusinessName = strings.TrimSpace(businessName)
	d.ContactName = contactName
	d.Phone = phone
	d.Email = email
	d.Address = address
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	d.AddDomainEvent(NewDealerUpdatedEvent(d))

	return nil
}

// Suspend suspends the dealer, blocking all scoped operations
func (d *Dealer) Suspend() error {
	if d.Status == DealerStatusSuspended {
		return shared.NewStateTransitionError("Dealer is already suspended")
	}

	d.Status = DealerStatusSuspended
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	d.AddDomainEvent(NewDealerStatusChangedEvent(d, DealerStatusActive, DealerStatusSuspended))

	return nil
}

// Activate re-activates a suspended dealer
func (d *Dealer) Activate() error {
	if d.Status == DealerStatusActive {
		return shared.NewStateTransitionError("Dealer is already active")
	}

	d.Status = DealerStatusActive
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	d.AddDomainEvent(NewDealerStatusChangedEvent(d, DealerStatusSuspended, DealerStatusActive))

	return nil
}

// IsActive returns true if the dealer is active
func (d *Dealer) IsActive() bool {
	return d.Status == DealerStatusActive
}

func validateBusinessName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Business name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewValidationError("Business name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewValidationError("Phone number cannot exceed 50 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewValidationError("Invalid phone number format")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewValidationError("Email cannot exceed 200 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewValidationError("Invalid email format")
	}
	return nil
}
