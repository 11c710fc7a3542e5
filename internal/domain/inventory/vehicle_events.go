package inventory

import (
	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeVehicle = "Vehicle"

// Event type constants
const (
	EventTypeVehicleRegistered           = "VehicleRegistered"
	EventTypeVehicleUpdated              = "VehicleUpdated"
	EventTypeVehicleStatusChanged        = "VehicleStatusChanged"
	EventTypeVehicleConcesionarioChanged = "VehicleConcesionarioChanged"
	EventTypeVehicleDeleted              = "VehicleDeleted"
)

// VehicleRegisteredEvent is published when a vehicle enters the inventory
type VehicleRegisteredEvent struct {
	shared.BaseDomainEvent
	VehicleID uuid.UUID `json:"vehicle_id"`
	VIN       string    `json:"vin"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
}

// NewVehicleRegisteredEvent creates a new VehicleRegisteredEvent
func NewVehicleRegisteredEvent(v *Vehicle) *VehicleRegisteredEvent {
	return &VehicleRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVehicleRegistered, AggregateTypeVehicle, v.ID, v.DealerID),
		VehicleID:       v.ID,
		VIN:             v.VIN,
		Brand:           v.Brand,
		Model:           v.Model,
		Year:            v.Year,
	}
}

// VehicleUpdatedEvent is published when a vehicle's details change
type VehicleUpdatedEvent struct {
	shared.BaseDomainEvent
	VehicleID uuid.UUID `json:"vehicle_id"`
	VIN       string    `json:"vin"`
}

// NewVehicleUpdatedEvent creates a new VehicleUpdatedEvent
func NewVehicleUpdatedEvent(v *Vehicle) *VehicleUpdatedEvent {
	return &VehicleUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVehicleUpdated, AggregateTypeVehicle, v.ID, v.DealerID),
		VehicleID:       v.ID,
		VIN:             v.VIN,
	}
}

// VehicleStatusChangedEvent is published on every status transition
type VehicleStatusChangedEvent struct {
	shared.BaseDomainEvent
	VehicleID uuid.UUID     `json:"vehicle_id"`
	VIN       string        `json:"vin"`
	OldStatus VehicleStatus `json:"old_status"`
	NewStatus VehicleStatus `json:"new_status"`
}

// NewVehicleStatusChangedEvent creates a new VehicleStatusChangedEvent
func NewVehicleStatusChangedEvent(v *Vehicle, oldStatus, newStatus VehicleStatus) *VehicleStatusChangedEvent {
	return &VehicleStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVehicleStatusChanged, AggregateTypeVehicle, v.ID, v.DealerID),
		VehicleID:       v.ID,
		VIN:             v.VIN,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// VehicleConcesionarioChangedEvent is published when a vehicle is assigned
// to or released from a concesionario
type VehicleConcesionarioChangedEvent struct {
	shared.BaseDomainEvent
	VehicleID          uuid.UUID  `json:"vehicle_id"`
	OldConcesionarioID *uuid.UUID `json:"old_concesionario_id,omitempty"`
	NewConcesionarioID *uuid.UUID `json:"new_concesionario_id,omitempty"`
}

// NewVehicleConcesionarioChangedEvent creates a new VehicleConcesionarioChangedEvent
func NewVehicleConcesionarioChangedEvent(v *Vehicle, oldID, newID *uuid.UUID) *VehicleConcesionarioChangedEvent {
	return &VehicleConcesionarioChangedEvent{
		BaseDomainEvent:    shared.NewBaseDomainEvent(EventTypeVehicleConcesionarioChanged, AggregateTypeVehicle, v.ID, v.DealerID),
		VehicleID:          v.ID,
		OldConcesionarioID: oldID,
		NewConcesionarioID: newID,
	}
}
