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

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// TourSortFields contains allowed sort fields for tours
var TourSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"price":      true,
}

// BookingSortFields contains allowed sort fields for bookings
var BookingSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"tour_start_date": true,
	"status":          true,
	"total_amount":    true,
}

// VendorSortFields contains allowed sort fields for vendors
var VendorSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"business_name": true,
	"rating":        true,
}

// CommissionSortFields contains allowed sort fields for commissions
var CommissionSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"amount":     true,
	"status":     true,
}
