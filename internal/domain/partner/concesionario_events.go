package partner

import (
	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeConcesionario = "Concesionario"

// Event type constants
const (
	EventTypeConcesionarioCreated       = "ConcesionarioCreated"
	EventTypeConcesionarioUpdated       = "ConcesionarioUpdated"
	EventTypeConcesionarioStatusChanged = "ConcesionarioStatusChanged"
	EventTypeConcesionarioDeleted       = "ConcesionarioDeleted"
)

// ConcesionarioCreatedEvent is published when a new concesionario is created
type ConcesionarioCreatedEvent struct {
	shared.BaseDomainEvent
	ConcesionarioID uuid.UUID `json:"concesionario_id"`
	Name            string    `json:"name"`
}

// NewConcesionarioCreatedEvent creates a new ConcesionarioCreatedEvent
func NewConcesionarioCreatedEvent(c *Concesionario) *ConcesionarioCreatedEvent {
	return &ConcesionarioCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeConcesionarioCreated, AggregateTypeConcesionario, c.ID, c.DealerID),
		ConcesionarioID: c.ID,
		Name:            c.Name,
	}
}

// ConcesionarioUpdatedEvent is published when a concesionario is updated
type ConcesionarioUpdatedEvent struct {
	shared.BaseDomainEvent
	ConcesionarioID uuid.UUID `json:"concesionario_id"`
	Name            string    `json:"name"`
	ContactPerson   string    `json:"contact_person,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Email           string    `json:"email,omitempty"`
}

// NewConcesionarioUpdatedEvent creates a new ConcesionarioUpdatedEvent
func NewConcesionarioUpdatedEvent(c *Concesionario) *ConcesionarioUpdatedEvent {
	return &ConcesionarioUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeConcesionarioUpdated, AggregateTypeConcesionario, c.ID, c.DealerID),
		ConcesionarioID: c.ID,
		Name:            c.Name,
		ContactPerson:   c.ContactPerson,
		Phone:           c.Phone,
		Email:           c.Email,
	}
}

// ConcesionarioStatusChangedEvent is published when a concesionario's status changes
type ConcesionarioStatusChangedEvent struct {
	shared.BaseDomainEvent
	ConcesionarioID uuid.UUID           `json:"concesionario_id"`
	OldStatus       ConcesionarioStatus `json:"old_status"`
	NewStatus       ConcesionarioStatus `json:"new_status"`
}

// NewConcesionarioStatusChangedEvent creates a new ConcesionarioStatusChangedEvent
func NewConcesionarioStatusChangedEvent(c *Concesionario, oldStatus, newStatus ConcesionarioStatus) *ConcesionarioStatusChangedEvent {
	return &ConcesionarioStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeConcesionarioStatusChanged, AggregateTypeConcesionario, c.ID, c.DealerID),
		ConcesionarioID: c.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
