package trade

import (
	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeContract = "Contract"

// Event type constants
const (
	EventTypeContractCreated       = "ContractCreated"
	EventTypeContractStatusChanged = "ContractStatusChanged"
)

// ContractCreatedEvent is published when a contract is opened
type ContractCreatedEvent struct {
	shared.BaseDomainEvent
	ContractID    uuid.UUID       `json:"contract_id"`
	ClientID      uuid.UUID       `json:"client_id"`
	VehicleID     uuid.UUID       `json:"vehicle_id"`
	Price         decimal.Decimal `json:"price"`
	FinancingType FinancingType   `json:"financing_type"`
}

// NewContractCreatedEvent creates a new ContractCreatedEvent
func NewContractCreatedEvent(c *Contract) *ContractCreatedEvent {
	return &ContractCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContractCreated, AggregateTypeContract, c.ID, c.DealerID),
		ContractID:      c.ID,
		ClientID:        c.ClientID,
		VehicleID:       c.VehicleID,
		Price:           c.Price,
		FinancingType:   c.FinancingType,
	}
}

// ContractStatusChangedEvent is published on every contract transition
type ContractStatusChangedEvent struct {
	shared.BaseDomainEvent
	ContractID uuid.UUID      `json:"contract_id"`
	VehicleID  uuid.UUID      `json:"vehicle_id"`
	OldStatus  ContractStatus `json:"old_status"`
	NewStatus  ContractStatus `json:"new_status"`
}

// NewContractStatusChangedEvent creates a new ContractStatusChangedEvent
func NewContractStatusChangedEvent(c *Contract, oldStatus, newStatus ContractStatus) *ContractStatusChangedEvent {
	return &ContractStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContractStatusChanged, AggregateTypeContract, c.ID, c.DealerID),
		ContractID:      c.ID,
		VehicleID:       c.VehicleID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
