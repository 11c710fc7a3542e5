package shared

import (
	"github.com/google/uuid"
)

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
	AddDomainEvent(event DomainEvent)
	GetDomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version      int           `gorm:"not null;default:1"`
	domainEvents []DomainEvent `gorm:"-"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// AddDomainEvent adds a domain event to be published
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns all pending domain events
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents clears the pending domain events
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity:   NewBaseEntity(),
		Version:      1,
		domainEvents: make([]DomainEvent, 0),
	}
}

// DealerAggregateRoot extends BaseAggregateRoot with dealer (tenant) scoping
type DealerAggregateRoot struct {
	BaseAggregateRoot
	DealerID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy *uuid.UUID `gorm:"type:uuid;index"` // User who created this record
}

// NewDealerAggregateRoot creates a new dealer-scoped aggregate root
func NewDealerAggregateRoot(dealerID uuid.UUID) DealerAggregateRoot {
	return DealerAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		DealerID:          dealerID,
	}
}

// NewDealerAggregateRootWithCreator creates a new dealer-scoped aggregate root with creator info
func NewDealerAggregateRootWithCreator(dealerID, createdBy uuid.UUID) DealerAggregateRoot {
	return DealerAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		DealerID:          dealerID,
		CreatedBy:         &createdBy,
	}
}

// SetCreatedBy sets the creator user ID
func (d *DealerAggregateRoot) SetCreatedBy(userID uuid.UUID) {
	d.CreatedBy = &userID
}

// GetCreatedBy returns the creator user ID
func (d *DealerAggregateRoot) GetCreatedBy() *uuid.UUID {
	return d.CreatedBy
}
