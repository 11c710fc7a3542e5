package coverage

import (
	"time"

	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InsuranceStatus is the stored status of a policy. Only active and
// cancelled are persisted; expiry is derived at read time.
type InsuranceStatus string

const (
	InsuranceStatusActive    InsuranceStatus = "active"
	InsuranceStatusCancelled InsuranceStatus = "cancelled"
)

// EffectiveStatus is the status reported to callers, combining the
// stored status with the expiry clock.
type EffectiveStatus string

const (
	EffectiveStatusActive       EffectiveStatus = "active"
	EffectiveStatusExpiringSoon EffectiveStatus = "expiring_soon"
	EffectiveStatusExpired      EffectiveStatus = "expired"
	EffectiveStatusCancelled    EffectiveStatus = "cancelled"
)

// ExpiryWarningWindow is how close to expiry a policy reports expiring_soon
const ExpiryWarningWindow = 30 * 24 * time.Hour

// CoverageType represents the kind of coverage
type CoverageType string

const (
	CoverageTypeFull       CoverageType = "full"
	CoverageTypeThirdParty CoverageType = "third_party"
	CoverageTypeTheft      CoverageType = "theft"
)

// Insurance represents a policy covering a vehicle, optionally tied to
// the buying client and the sale contract. The expiry date is always
// start date plus the coverage duration; it is never set independently.
type Insurance struct {
	shared.DealerAggregateRoot
	VehicleID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ClientID       *uuid.UUID      `gorm:"type:uuid;index"`
	ContractID     *uuid.UUID      `gorm:"type:uuid;index"`
	StartDate      time.Time       `gorm:"not null"`
	CoverageMonths int             `gorm:"not null"`
	ExpiryDate     time.Time       `gorm:"not null"`
	CoverageType   CoverageType    `gorm:"type:varchar(20);not null"`
	Premium        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Status         InsuranceStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Insurance) TableName() string {
	return "insurance_policies"
}

// NewInsuranceParams carries the fields needed to issue a policy
type NewInsuranceParams struct {
	DealerID       uuid.UUID
	VehicleID      uuid.UUID
	ClientID       *uuid.UUID
	ContractID     *uuid.UUID
	StartDate      time.Time
	CoverageMonths int
	CoverageType   CoverageType
	Premium        decimal.Decimal
}

// NewInsurance issues a new policy in active stored status
func NewInsurance(params NewInsuranceParams) (*Insurance, error) {
	if params.VehicleID == uuid.Nil {
		return nil, shared.NewValidationError("Vehicle is required")
	}
	if params.StartDate.IsZero() {
		return nil, shared.NewValidationError("Start date is required")
	}
	if params.CoverageMonths < 1 {
		return nil, shared.NewValidationError("Coverage duration must be at least 1 month")
	}
	if err := validateCoverageType(params.CoverageType); err != nil {
		return nil, err
	}
	if params.Premium.IsNegative() {
		return nil, shared.NewValidationError("Premium cannot be negative")
	}

	insurance := &Insurance{
		DealerAggregateRoot: shared.NewDealerAggregateRoot(params.DealerID),
		VehicleID:           params.VehicleID,
		ClientID:            params.ClientID,
		ContractID:          params.ContractID,
		StartDate:           params.StartDate,
		CoverageMonths:      params.CoverageMonths,
		ExpiryDate:          params.StartDate.AddDate(0, params.CoverageMonths, 0),
		CoverageType:        params.CoverageType,
		Premium:             params.Premium,
		Status:              InsuranceStatusActive,
	}

	insurance.AddDomainEvent(NewInsuranceIssuedEvent(insurance))

	return insurance, nil
}

// Reschedule changes the coverage window and recomputes the expiry date
func (i *Insurance) Reschedule(startDate time.Time, coverageMonths int) error {
	if i.Status == InsuranceStatusCancelled {
		return shared.NewStateTransitionError("Cancelled policies cannot be rescheduled")
	}
	if startDate.IsZero() {
		return shared.NewValidationError("Start date is required")
	}
	if coverageMonths < 1 {
		return shared.NewValidationError("Coverage duration must be at least 1 month")
	}

	i.StartDate = startDate
	i.CoverageMonths = coverageMonths
	i.ExpiryDate = startDate.AddDate(0, coverageMonths, 0)
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// UpdateTerms changes the coverage type and premium
func (i *Insurance) UpdateTerms(coverageType CoverageType, premium decimal.Decimal) error {
	if i.Status == InsuranceStatusCancelled {
		return shared.NewStateTransitionError("Cancelled policies cannot be updated")
	}
	if err := validateCoverageType(coverageType); err != nil {
		return err
	}
	if premium.IsNegative() {
		return shared.NewValidationError("Premium cannot be negative")
	}

	i.CoverageType = coverageType
	i.Premium = premium
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// Cancel voids the policy. Cancelled is the only stored status a caller
// can set; it is terminal.
func (i *Insurance) Cancel() error {
	if i.Status == InsuranceStatusCancelled {
		return shared.NewStateTransitionError("Policy is already cancelled")
	}

	i.Status = InsuranceStatusCancelled
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewInsuranceCancelledEvent(i))

	return nil
}

// EffectiveStatusAt reports the policy status as of the given instant.
// Cancellation wins over the expiry clock.
func (i *Insurance) EffectiveStatusAt(now time.Time) EffectiveStatus {
	if i.Status == InsuranceStatusCancelled {
		return EffectiveStatusCancelled
	}
	if !now.Before(i.ExpiryDate) {
		return EffectiveStatusExpired
	}
	if i.ExpiryDate.Sub(now) <= ExpiryWarningWindow {
		return EffectiveStatusExpiringSoon
	}
	return EffectiveStatusActive
}

func validateCoverageType(coverageType CoverageType) error {
	switch coverageType {
	case CoverageTypeFull, CoverageTypeThirdParty, CoverageTypeTheft:
		return nil
	default:
		return shared.NewValidationError("Coverage type must be 'full', 'third_party', or 'theft'")
	}
}
