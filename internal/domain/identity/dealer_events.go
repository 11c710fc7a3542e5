package identity

import (
	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeDealer = "Dealer"

// Event type constants
const (
	EventTypeDealerCreated       = "DealerCreated"
	EventTypeDealerUpdated       = "DealerUpdated"
	EventTypeDealerStatusChanged = "DealerStatusChanged"
)

// DealerCreatedEvent is published when a new dealer is onboarded
type DealerCreatedEvent struct {
	shared.BaseDomainEvent
	BusinessName string `json:"business_name"`
}

// NewDealerCreatedEvent creates a new DealerCreatedEvent
func NewDealerCreatedEvent(dealer *Dealer) *DealerCreatedEvent {
	return &DealerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDealerCreated, AggregateTypeDealer, dealer.ID, dealer.ID),
		BusinessName:    dealer.BusinessName,
	}
}

// DealerUpdatedEvent is published when a dealer is updated
type DealerUpdatedEvent struct {
	shared.BaseDomainEvent
	BusinessName string `json:"business_name"`
	ContactName  string `json:"contact_name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
}

// NewDealerUpdatedEvent creates a new DealerUpdatedEvent
func NewDealerUpdatedEvent(dealer *Dealer) *DealerUpdatedEvent {
	return &DealerUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDealerUpdated, AggregateTypeDealer, dealer.ID, dealer.ID),
		BusinessName:    dealer.BusinessName,
		ContactName:     dealer.ContactName,
		Phone:           dealer.Phone,
		Email:           dealer.Email,
	}
}

// DealerStatusChangedEvent is published when a dealer is suspended or re-activated
type DealerStatusChangedEvent struct {
	shared.BaseDomainEvent
	DealerRef uuid.UUID    `json:"dealer_ref"`
	OldStatus DealerStatus `json:"old_status"`
	NewStatus DealerStatus `json:"new_status"`
}

// NewDealerStatusChangedEvent creates a new DealerStatusChangedEvent
func NewDealerStatusChangedEvent(dealer *Dealer, oldStatus, newStatus DealerStatus) *DealerStatusChangedEvent {
	return &DealerStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDealerStatusChanged, AggregateTypeDealer, dealer.ID, dealer.ID),
		DealerRef:       dealer.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
