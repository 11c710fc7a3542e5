package dto

import "net/http"

// Domain error codes surfaced by the application layer. The HTTP layer
// translates them to status codes here so handlers never hardcode statuses.
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "INTERNAL_ERROR"

	ErrCodeValidation             = "VALIDATION_ERROR"
	ErrCodeBadRequest             = "BAD_REQUEST"
	ErrCodeInvalidJSON            = "INVALID_JSON"
	ErrCodeUnauthorized           = "UNAUTHORIZED"
	ErrCodeForbidden              = "FORBIDDEN"
	ErrCodeNotFound               = "NOT_FOUND"
	ErrCodeTenantMismatch         = "TENANT_MISMATCH"
	ErrCodeUniquenessConflict     = "UNIQUENESS_CONFLICT"
	ErrCodeConcurrencyConflict    = "CONCURRENCY_CONFLICT"
	ErrCodeInvalidStateTransition = "INVALID_STATE_TRANSITION"
	ErrCodeVehicleNotAvailable    = "VEHICLE_NOT_AVAILABLE"
	ErrCodeStorage                = "STORAGE_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,
	ErrCodeStorage:  http.StatusInternalServerError,

	// Input errors -> 400 Bad Request
	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	// Cross-dealer references read as missing rather than leaking existence
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeTenantMismatch: http.StatusNotFound,

	// Conflicts -> 409
	ErrCodeUniquenessConflict:  http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,
	ErrCodeVehicleNotAvailable: http.StatusConflict,

	// Lifecycle rule violations -> 422 Unprocessable Entity
	ErrCodeInvalidStateTransition: http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
