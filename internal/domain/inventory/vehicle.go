package inventory

import (
	"regexp"
	"strings"
	"time"

	"github.com/dms/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleStatus represents the lifecycle status of a vehicle
type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusReserved    VehicleStatus = "reserved"
	VehicleStatusInProcess   VehicleStatus = "in_process"
	VehicleStatusSold        VehicleStatus = "sold"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// IsValid returns true for a known status
func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusReserved, VehicleStatusInProcess, VehicleStatusSold, VehicleStatusMaintenance:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition is allowed
func (s VehicleStatus) CanTransitionTo(target VehicleStatus) bool {
	switch s {
	case VehicleStatusAvailable:
		return target == VehicleStatusReserved || target == VehicleStatusMaintenance
	case VehicleStatusReserved:
		return target == VehicleStatusInProcess || target == VehicleStatusAvailable || target == VehicleStatusMaintenance
	case VehicleStatusInProcess:
		return target == VehicleStatusSold
	case VehicleStatusMaintenance:
		return target == VehicleStatusAvailable
	case VehicleStatusSold:
		return false
	default:
		return false
	}
}

// VehicleCondition represents whether the vehicle is new or used
type VehicleCondition string

const (
	VehicleConditionNew  VehicleCondition = "new"
	VehicleConditionUsed VehicleCondition = "used"
)

// Transmission represents the vehicle's transmission type
type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
	TransmissionCVT       Transmission = "cvt"
)

// FuelType represents the vehicle's fuel type
type FuelType string

const (
	FuelTypeGasoline FuelType = "gasoline"
	FuelTypeDiesel   FuelType = "diesel"
	FuelTypeHybrid   FuelType = "hybrid"
	FuelTypeElectric FuelType = "electric"
)

// Vehicle represents a unit of stock on the dealer's lot. The VIN and the
// plate identify the physical vehicle and are unique across all dealers.
type Vehicle struct {
	shared.DealerAggregateRoot
	ConcesionarioID *uuid.UUID       `gorm:"type:uuid;index"` // nil when dealer-owned
	Brand           string           `gorm:"type:varchar(100);not null"`
	Model           string           `gorm:"type:varchar(100);not null"`
	Year            int              `gorm:"not null"`
	Trim            string           `gorm:"type:varchar(100)"`
	VIN             string           `gorm:"type:varchar(17);not null;uniqueIndex"`
	Plate           *string          `gorm:"type:varchar(20);uniqueIndex"`
	Price           decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	Condition       VehicleCondition `gorm:"type:varchar(10);not null"`
	Status          VehicleStatus    `gorm:"type:varchar(20);not null;default:'available'"`
	Mileage         int              `gorm:"not null;default:0"`
	Transmission    Transmission     `gorm:"type:varchar(20)"`
	FuelType        FuelType         `gorm:"type:varchar(20)"`
	Images          string           `gorm:"type:jsonb"` // JSON array of image references
	EntryDate       time.Time        `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Vehicle) TableName() string {
	return "vehicles"
}

// NewVehicleParams carries the fields needed to register a vehicle
type NewVehicleParams struct {
	DealerID        uuid.UUID
	ConcesionarioID *uuid.UUID
	Brand           string
	Model           string
	Year            int
	Trim            string
	VIN             string
	Plate           string
	Price           decimal.Decimal
	Condition       VehicleCondition
	Mileage         int
	Transmission    Transmission
	FuelType        FuelType
	Images          string
	EntryDate       time.Time
}

// NewVehicle registers a new vehicle in available status
func NewVehicle(params NewVehicleParams) (*Vehicle, error) {
	if err := validateBrandModel(params.Brand, params.Model); err != nil {
		return nil, err
	}
	if err := validateYear(params.Year); err != nil {
		return nil, err
	}
	if err := validateVIN(params.VIN); err != nil {
		return nil, err
	}
	var plate *string
	if params.Plate != "" {
		normalized := strings.ToUpper(strings.TrimSpace(params.Plate))
		if err := validatePlate(normalized); err != nil {
			return nil, err
		}
		plate = &normalized
	}
	if !params.Price.IsPositive() {
		return nil, shared.NewValidationError("Price must be greater than zero")
	}
	if err := validateCondition(params.Condition); err != nil {
		return nil, err
	}
	if params.Mileage < 0 {
		return nil, shared.NewValidationError("Mileage cannot be negative")
	}
	if params.Transmission != "" {
		if err := validateTransmission(params.Transmission); err != nil {
			return nil, err
		}
	}
	if params.FuelType != "" {
		if err := validateFuelType(params.FuelType); err != nil {
			return nil, err
		}
	}

	entryDate := params.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now()
	}
	images := params.Images
	if images == "" {
		images = "[]"
	}

	vehicle := &Vehicle{
		DealerAggregateRoot: shared.NewDealerAggregateRoot(params.DealerID),
		ConcesionarioID:     params.ConcesionarioID,
		Brand:               strings.TrimSpace(params.Brand),
		Model:               strings.TrimSpace(params.Model),
		Year:                params.Year,
		Trim:                params.Trim,
		VIN:                 strings.ToUpper(strings.TrimSpace(params.VIN)),
		Plate:               plate,
		Price:               params.Price,
		Condition:           params.Condition,
		Status:              VehicleStatusAvailable,
		Mileage:             params.Mileage,
		Transmission:        params.Transmission,
		FuelType:            params.FuelType,
		Images:              images,
		EntryDate:           entryDate,
	}

	vehicle.AddDomainEvent(NewVehicleRegisteredEvent(vehicle))

	return vehicle, nil
}

// UpdateDetails updates the vehicle's descriptive fields. Status and the
// concesionario reference have dedicated operations.
func (v *Vehicle) UpdateDetails(brand, model string, year int, trim string, plate string, price decimal.Decimal, mileage int, transmission Transmission, fuelType FuelType, images string) error {
	if err := validateBrandModel(brand, model); err != nil {
		return err
	}
	if err := validateYear(year); err != nil {
		return err
	}
	var newPlate *string
	if plate != "" {
		normalized := strings.ToUpper(strings.TrimSpace(plate))
		if err := validatePlate(normalized); err != nil {
			return err
		}
		newPlate = &normalized
	}
	if !price.IsPositive() {
		return shared.NewValidationError("Price must be greater than zero")
	}
	if mileage < 0 {
		return shared.NewValidationError("Mileage cannot be negative")
	}
	if transmission != "" {
		if err := validateTransmission(transmission); err != nil {
			return err
		}
	}
	if fuelType != "" {
		if err := validateFuelType(fuelType); err != nil {
			return err
		}
	}

	v.Brand = strings.TrimSpace(brand)
	v.Model = strings.TrimSpace(model)
	v.Year = year
	v.Trim = trim
	v.Plate = newPlate
	v.Price = price
	v.Mileage = mileage
	v.Transmission = transmission
	v.FuelType = fuelType
	if images != "" {
		v.Images = images
	}
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	v.AddDomainEvent(NewVehicleUpdatedEvent(v))

	return nil
}

// ChangeStatus moves the vehicle to the target status, enforcing the
// transition table. Callers that need availability semantics (contract
// creation) should use Reserve instead.
func (v *Vehicle) ChangeStatus(target VehicleStatus) error {
	if !target.IsValid() {
		return shared.NewValidationError("Unknown vehicle status")
	}
	if !v.Status.CanTransitionTo(target) {
		return shared.NewStateTransitionError("Vehicle cannot move from " + string(v.Status) + " to " + string(target))
	}

	oldStatus := v.Status
	v.Status = target
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	v.AddDomainEvent(NewVehicleStatusChangedEvent(v, oldStatus, target))

	return nil
}

// Reserve claims the vehicle for a contract. Unlike ChangeStatus it
// reports a non-available vehicle as VEHICLE_NOT_AVAILABLE so the caller
// can distinguish a booking conflict from a bad transition request.
func (v *Vehicle) Reserve() error {
	if v.Status != VehicleStatusAvailable {
		return shared.NewDomainError("VEHICLE_NOT_AVAILABLE", "Vehicle is not available: current status is "+string(v.Status))
	}
	return v.ChangeStatus(VehicleStatusReserved)
}

// Release returns a reserved vehicle to available (contract cancelled)
func (v *Vehicle) Release() error {
	return v.ChangeStatus(VehicleStatusAvailable)
}

// StartSaleProcess moves a reserved vehicle into in_process
func (v *Vehicle) StartSaleProcess() error {
	return v.ChangeStatus(VehicleStatusInProcess)
}

// MarkSold finalizes the sale
func (v *Vehicle) MarkSold() error {
	return v.ChangeStatus(VehicleStatusSold)
}

// AssignConcesionario points the vehicle at a concesionario. Allowed in
// any status and does not touch the status machine.
func (v *Vehicle) AssignConcesionario(concesionarioID uuid.UUID) {
	old := v.ConcesionarioID
	v.ConcesionarioID = &concesionarioID
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	v.AddDomainEvent(NewVehicleConcesionarioChangedEvent(v, old, &concesionarioID))
}

// ReleaseFromConcesionario clears the concesionario reference
func (v *Vehicle) ReleaseFromConcesionario() {
	if v.ConcesionarioID == nil {
		return
	}
	old := v.ConcesionarioID
	v.ConcesionarioID = nil
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	v.AddDomainEvent(NewVehicleConcesionarioChangedEvent(v, old, nil))
}

// IsAvailable returns true if the vehicle can be claimed by a contract
func (v *Vehicle) IsAvailable() bool {
	return v.Status == VehicleStatusAvailable
}

// IsSold returns true if the vehicle has been sold
func (v *Vehicle) IsSold() bool {
	return v.Status == VehicleStatusSold
}

func validateBrandModel(brand, model string) error {
	if strings.TrimSpace(brand) == "" {
		return shared.NewValidationError("Brand cannot be empty")
	}
	if len(brand) > 100 {
		return shared.NewValidationError("Brand cannot exceed 100 characters")
	}
	if strings.TrimSpace(model) == "" {
		return shared.NewValidationError("Model cannot be empty")
	}
	if len(model) > 100 {
		return shared.NewValidationError("Model cannot exceed 100 characters")
	}
	return nil
}

func validateYear(year int) error {
	if year < 1950 || year > time.Now().Year()+1 {
		return shared.NewValidationError("Year is out of range")
	}
	return nil
}

func validateVIN(vin string) error {
	vin = strings.ToUpper(strings.TrimSpace(vin))
	if vin == "" {
		return shared.NewValidationError("VIN cannot be empty")
	}
	// 17 chars for modern vehicles; older imports may carry shorter chassis numbers
	if len(vin) < 5 || len(vin) > 17 {
		return shared.NewValidationError("VIN must be between 5 and 17 characters")
	}
	validVIN := regexp.MustCompile(`^[A-HJ-NPR-Z0-9]+$`)
	if !validVIN.MatchString(vin) {
		return shared.NewValidationError("VIN contains invalid characters")
	}
	return nil
}

func validatePlate(plate string) error {
	if len(plate) > 20 {
		return shared.NewValidationError("Plate cannot exceed 20 characters")
	}
	validPlate := regexp.MustCompile(`^[A-Z0-9\-]+$`)
	if !validPlate.MatchString(plate) {
		return shared.NewValidationError("Plate can only contain letters, digits, and hyphens")
	}
	return nil
}

func validateCondition(condition VehicleCondition) error {
	switch condition {
	case VehicleConditionNew, VehicleConditionUsed:
		return nil
	default:
		return shared.NewValidationError("Condition must be 'new' or 'used'")
	}
}

func validateTransmission(transmission Transmission) error {
	switch transmission {
	case TransmissionManual, TransmissionAutomatic, TransmissionCVT:
		return nil
	default:
		return shared.NewValidationError("Transmission must be 'manual', 'automatic', or 'cvt'")
	}
}

func validateFuelType(fuelType FuelType) error {
	switch fuelType {
	case FuelTypeGasoline, FuelTypeDiesel, FuelTypeHybrid, FuelTypeElectric:
		return nil
	default:
		return shared.NewValidationError("Fuel type must be 'gasoline', 'diesel', 'hybrid', or 'electric'")
	}
}
