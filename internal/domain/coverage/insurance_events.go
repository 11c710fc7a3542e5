package coverage

import (
	"time"

	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeInsurance = "Insurance"

// Event type constants
const (
	EventTypeInsuranceIssued    = "InsuranceIssued"
	EventTypeInsuranceCancelled = "InsuranceCancelled"
)

// InsuranceIssuedEvent is published when a policy is issued
type InsuranceIssuedEvent struct {
	shared.BaseDomainEvent
	InsuranceID  uuid.UUID    `json:"insurance_id"`
	VehicleID    uuid.UUID    `json:"vehicle_id"`
	CoverageType CoverageType `json:"coverage_type"`
	ExpiryDate   time.Time    `json:"expiry_date"`
}

// NewInsuranceIssuedEvent creates a new InsuranceIssuedEvent
func NewInsuranceIssuedEvent(i *Insurance) *InsuranceIssuedEvent {
	return &InsuranceIssuedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInsuranceIssued, AggregateTypeInsurance, i.ID, i.DealerID),
		InsuranceID:     i.ID,
		VehicleID:       i.VehicleID,
		CoverageType:    i.CoverageType,
		ExpiryDate:      i.ExpiryDate,
	}
}

// InsuranceCancelledEvent is published when a policy is cancelled
type InsuranceCancelledEvent struct {
	shared.BaseDomainEvent
	InsuranceID uuid.UUID `json:"insurance_id"`
	VehicleID   uuid.UUID `json:"vehicle_id"`
}

// NewInsuranceCancelledEvent creates a new InsuranceCancelledEvent
func NewInsuranceCancelledEvent(i *Insurance) *InsuranceCancelledEvent {
	return &InsuranceCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInsuranceCancelled, AggregateTypeInsurance, i.ID, i.DealerID),
		InsuranceID:     i.ID,
		VehicleID:       i.VehicleID,
	}
}
