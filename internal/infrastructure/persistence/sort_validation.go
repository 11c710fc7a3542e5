package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// Per-table sort field whitelists. Sort fields come from query strings, so
// anything not listed here falls back to the default instead of reaching
// the ORDER BY clause.

// DealerSortFields contains allowed sort fields for dealers
var DealerSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"business_name": true,
	"status":        true,
}

// ConcesionarioSortFields contains allowed sort fields for concesionarios
var ConcesionarioSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"status":     true,
}

// ClientSortFields contains allowed sort fields for clients
var ClientSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"cedula":     true,
	"name":       true,
}

// VehicleSortFields contains allowed sort fields for vehicles
var VehicleSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"brand":      true,
	"model":      true,
	"year":       true,
	"vin":        true,
	"price":      true,
	"status":     true,
	"mileage":    true,
	"entry_date": true,
}

// ContractSortFields contains allowed sort fields for contracts
var ContractSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"date":       true,
	"price":      true,
	"status":     true,
}

// InsuranceSortFields contains allowed sort fields for insurance policies
var InsuranceSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"start_date":  true,
	"expiry_date": true,
	"premium":     true,
	"status":      true,
}
