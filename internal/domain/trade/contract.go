package trade

import (
	"time"

	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractStatus represents the lifecycle status of a contract
type ContractStatus string

const (
	ContractStatusPending   ContractStatus = "pending"
	ContractStatusActive    ContractStatus = "active"
	ContractStatusCompleted ContractStatus = "completed"
	ContractStatusCancelled ContractStatus = "cancelled"
)

// IsValid returns true for a known status
func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractStatusPending, ContractStatusActive, ContractStatusCompleted, ContractStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition is allowed
func (s ContractStatus) CanTransitionTo(target ContractStatus) bool {
	switch s {
	case ContractStatusPending:
		return target == ContractStatusActive || target == ContractStatusCancelled
	case ContractStatusActive:
		return target == ContractStatusCompleted
	case ContractStatusCompleted, ContractStatusCancelled:
		return false
	default:
		return false
	}
}

// IsTerminal returns true for completed and cancelled
func (s ContractStatus) IsTerminal() bool {
	return s == ContractStatusCompleted || s == ContractStatusCancelled
}

// FinancingType represents how the contract is paid
type FinancingType string

const (
	FinancingTypeCash      FinancingType = "cash"
	FinancingTypeFinancing FinancingType = "financing"
)

// Contract represents a sale agreement binding one client and one vehicle.
// A pending or active contract claims its vehicle; at most one such
// contract may exist per vehicle at any time.
type Contract struct {
	shared.DealerAggregateRoot
	ClientID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	VehicleID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	Price          decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	FinancingType  FinancingType    `gorm:"type:varchar(20);not null"`
	DownPayment    *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Months         *int
	MonthlyPayment *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Status         ContractStatus   `gorm:"type:varchar(20);not null;default:'pending'"`
	Date           time.Time        `gorm:"not null"`
	Notes          string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Contract) TableName() string {
	return "contracts"
}

// NewContractParams carries the fields needed to open a contract
type NewContractParams struct {
	DealerID       uuid.UUID
	ClientID       uuid.UUID
	VehicleID      uuid.UUID
	Price          decimal.Decimal
	FinancingType  FinancingType
	DownPayment    *decimal.Decimal
	Months         *int
	MonthlyPayment *decimal.Decimal
	Date           time.Time
	Notes          string
}

// NewContract opens a contract in pending status. The caller is
// responsible for reserving the vehicle in the same transaction.
func NewContract(params NewContractParams) (*Contract, error) {
	if params.ClientID == uuid.Nil {
		return nil, shared.NewValidationError("Client is required")
	}
	if params.VehicleID == uuid.Nil {
		return nil, shared.NewValidationError("Vehicle is required")
	}
	if !params.Price.IsPositive() {
		return nil, shared.NewValidationError("Price must be greater than zero")
	}
	if err := validateFinancing(params.FinancingType, params.Price, params.DownPayment, params.Months, params.MonthlyPayment); err != nil {
		return nil, err
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	contract := &Contract{
		DealerAggregateRoot: shared.NewDealerAggregateRoot(params.DealerID),
		ClientID:            params.ClientID,
		VehicleID:           params.VehicleID,
		Price:               params.Price,
		FinancingType:       params.FinancingType,
		DownPayment:         params.DownPayment,
		Months:              params.Months,
		MonthlyPayment:      params.MonthlyPayment,
		Status:              ContractStatusPending,
		Date:                date,
		Notes:               params.Notes,
	}

	contract.AddDomainEvent(NewContractCreatedEvent(contract))

	return contract, nil
}

// ChangeStatus moves the contract to the target status, enforcing the
// transition table. Vehicle cascades happen at the service level inside
// the same transaction.
func (c *Contract) ChangeStatus(target ContractStatus) error {
	if !target.IsValid() {
		return shared.NewValidationError("Unknown contract status")
	}
	if !c.Status.CanTransitionTo(target) {
		return shared.NewStateTransitionError("Contract cannot move from " + string(c.Status) + " to " + string(target))
	}

	oldStatus := c.Status
	c.Status = target
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewContractStatusChangedEvent(c, oldStatus, target))

	return nil
}

// Activate moves a pending contract to active
func (c *Contract) Activate() error {
	return c.ChangeStatus(ContractStatusActive)
}

// Complete finalizes an active contract
func (c *Contract) Complete() error {
	return c.ChangeStatus(ContractStatusCompleted)
}

// Cancel voids a pending contract
func (c *Contract) Cancel() error {
	return c.ChangeStatus(ContractStatusCancelled)
}

// UpdateNotes replaces the free-form notes
func (c *Contract) UpdateNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// IsOpen returns true while the contract claims its vehicle
func (c *Contract) IsOpen() bool {
	return c.Status == ContractStatusPending || c.Status == ContractStatusActive
}

// IsCash returns true for cash contracts
func (c *Contract) IsCash() bool {
	return c.FinancingType == FinancingTypeCash
}

func validateFinancing(financingType FinancingType, price decimal.Decimal, downPayment *decimal.Decimal, months *int, monthlyPayment *decimal.Decimal) error {
	switch financingType {
	case FinancingTypeCash:
		if downPayment != nil || months != nil || monthlyPayment != nil {
			return shared.NewValidationError("Cash contracts cannot carry financing fields")
		}
		return nil
	case FinancingTypeFinancing:
		if months == nil || *months < 1 {
			return shared.NewValidationError("Financing requires a term of at least 1 month")
		}
		if monthlyPayment == nil || !monthlyPayment.IsPositive() {
			return shared.NewValidationError("Financing requires a positive monthly payment")
		}
		if downPayment != nil {
			if downPayment.IsNegative() {
				return shared.NewValidationError("Down payment cannot be negative")
			}
			if downPayment.GreaterThanOrEqual(price) {
				return shared.NewValidationError("Down payment must be less than the price")
			}
		}
		return nil
	default:
		return shared.NewValidationError("Financing type must be 'cash' or 'financing'")
	}
}
