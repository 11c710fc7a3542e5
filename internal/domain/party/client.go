package party

import (
	"regexp"
	"strings"
	"time"

	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Client represents a buyer registered with a dealer. The cedula is a
// national identity number and is unique across all dealers, not only
// within the owning one.
type Client struct {
	shared.DealerAggregateRoot
	Cedula  string `gorm:"type:varchar(30);not null;uniqueIndex"`
	Name    string `gorm:"type:varchar(200);not null"`
	Phone   string `gorm:"type:varchar(50);index"`
	Email   string `gorm:"type:varchar(200);index"`
	Address string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client for a dealer
func NewClient(dealerID uuid.UUID, cedula, name, phone, email, address string) (*Client, error) {
	if err := validateCedula(cedula); err != nil {
		return nil, err
	}
	if err := validateClientName(name); err != nil {
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

	client := &Client{
		DealerAggregateRoot: shared.NewDealerAggregateRoot(dealerID),
		Cedula:              strings.TrimSpace(cedula),
		Name:                strings.TrimSpace(name),
		Phone:               phone,
		Email:               email,
		Address:             address,
	}

	client.AddDomainEvent(NewClientCreatedEvent(client))

	return client, nil
}

// Update updates the client's contact information. The cedula is part of
// the update surface so data-entry mistakes can be corrected; uniqueness
// is re-checked by the service.
func (c *Client) Update(cedula, name, phone, email, address string) error {
	if err := validateCedula(cedula); err != nil {
		return err
	}
	if err := validateClientName(name); err != nil {
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

	c.Cedula = strings.TrimSpace(cedula)
	c.Name = strings.TrimSpace(name)
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientUpdatedEvent(c))

	return nil
}

func validateCedula(cedula string) error {
	cedula = strings.TrimSpace(cedula)
	if cedula == "" {
		return shared.NewValidationError("Cedula cannot be empty")
	}
	if len(cedula) > 30 {
		return shared.NewValidationError("Cedula cannot exceed 30 characters")
	}
	validCedula := regexp.MustCompile(`^[\dA-Za-z\-]+$`)
	if !validCedula.MatchString(cedula) {
		return shared.NewValidationError("Cedula can only contain letters, digits, and hyphens")
	}
	return nil
}

func validateClientName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Client name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewValidationError("Client name cannot exceed 200 characters")
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
