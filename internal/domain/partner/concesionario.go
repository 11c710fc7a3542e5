package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ConcesionarioStatus represents the status of a concesionario
type ConcesionarioStatus string

const (
	ConcesionarioStatusActive   ConcesionarioStatus = "active"
	ConcesionarioStatusInactive ConcesionarioStatus = "inactive"
)

// Concesionario represents a consignment partner that places vehicles
// with the dealer. It belongs to exactly one dealer for its whole life;
// the dealer reference never changes after creation.
type Concesionario struct {
	shared.DealerAggregateRoot
	Name          string              `gorm:"type:varchar(200);not null"`
	ContactPerson string              `gorm:"type:varchar(100)"`
	Phone         string              `gorm:"type:varchar(50);index"`
	Email         string              `gorm:"type:varchar(200);index"`
	Address       string              `gorm:"type:text"`
	Status        ConcesionarioStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Concesionario) TableName() string {
	return "concesionarios"
}

// NewConcesionario creates a new concesionario for a dealer
func NewConcesionario(dealerID uuid.UUID, name, contactPerson, phone, email, address string) (*Concesionario, error) {
	if err := validateConcesionarioName(name); err != nil {
		return nil, err
	}
	if contactPerson != "" && len(contactPerson) > 100 {
		return nil, shared.NewValidationError("Contact person cannot exceed 100 characters")
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

	concesionario := &Concesionario{
		DealerAggregateRoot: shared.NewDealerAggregateRoot(dealerID),
		Name:                strings.TrimSpace(name),
		ContactPerson:       contactPerson,
		Phone:               phone,
		Email:               email,
		Address:             address,
		Status:              ConcesionarioStatusActive,
	}

	concesionario.AddDomainEvent(NewConcesionarioCreatedEvent(concesionario))

	return concesionario, nil
}

// Update updates the concesionario's information. The dealer reference
// is immutable and is not part of the update surface.
func (c *Concesionario) Update(name, contactPerson, phone, email, address string) error {
	if err := validateConcesionarioName(name); err != nil {
		return err
	}
	if contactPerson != "" && len(contactPerson) > 100 {
		return shared.NewValidationError("Contact person cannot exceed 100 characters")
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

	c.Name = strings.TrimSpace(name)
	c.ContactPerson = contactPerson
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewConcesionarioUpdatedEvent(c))

	return nil
}

// Deactivate marks the concesionario inactive. Vehicles it holds keep
// their reference; new placements should be rejected at the service level.
func (c *Concesionario) Deactivate() error {
	if c.Status == ConcesionarioStatusInactive {
		return shared.NewStateTransitionError("Concesionario is already inactive")
	}

	c.Status = ConcesionarioStatusInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewConcesionarioStatusChangedEvent(c, ConcesionarioStatusActive, ConcesionarioStatusInactive))

	return nil
}

// Activate re-activates an inactive concesionario
func (c *Concesionario) Activate() error {
	if c.Status == ConcesionarioStatusActive {
		return shared.NewStateTransitionError("Concesionario is already active")
	}

	c.Status = ConcesionarioStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewConcesionarioStatusChangedEvent(c, ConcesionarioStatusInactive, ConcesionarioStatusActive))

	return nil
}

// IsActive returns true if the concesionario is active
func (c *Concesionario) IsActive() bool {
	return c.Status == ConcesionarioStatusActive
}

func validateConcesionarioName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Concesionario name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewValidationError("Concesionario name cannot exceed 200 characters")
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
