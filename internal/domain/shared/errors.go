package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound               = NewDomainError("NOT_FOUND", "Resource not found")
	ErrValidation             = NewDomainError("VALIDATION_ERROR", "Invalid input provided")
	ErrTenantMismatch         = NewDomainError("TENANT_MISMATCH", "Referenced resource belongs to another dealer")
	ErrInvalidStateTransition = NewDomainError("INVALID_STATE_TRANSITION", "Operation not allowed in current state")
	ErrVehicleNotAvailable    = NewDomainError("VEHICLE_NOT_AVAILABLE", "Vehicle is not available for this operation")
	ErrUniquenessConflict     = NewDomainError("UNIQUENESS_CONFLICT", "Resource with the same unique value already exists")
	ErrConcurrencyConflict    = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized           = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden              = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrStorage                = NewDomainError("STORAGE_ERROR", "Storage operation failed")
)

// NewValidationError builds a VALIDATION_ERROR with a specific message.
func NewValidationError(message string) *DomainError {
	return NewDomainError("VALIDATION_ERROR", message)
}

// NewStateTransitionError builds an INVALID_STATE_TRANSITION with a specific message.
func NewStateTransitionError(message string) *DomainError {
	return NewDomainError("INVALID_STATE_TRANSITION", message)
}
