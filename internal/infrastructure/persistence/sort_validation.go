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

// CustomerSortFields contains allowed sort fields for customers
var CustomerSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"phone":      true,
}

// TransactionSortFields contains allowed sort fields for transactions
var TransactionSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"date":          true,
	"customer_name": true,
	"gold_in":       true,
	"gold_out":      true,
	"cash_in":       true,
	"labour_charge": true,
}

// JobSortFields contains allowed sort fields for jobs
var JobSortFields = map[string]bool{
	"id":                true,
	"created_at":        true,
	"updated_at":        true,
	"customer_name":     true,
	"status":            true,
	"expected_delivery": true,
}

// orderClause builds a safe ORDER BY clause from a filter, with id as a
// tie-breaker so paging is stable
func orderClause(orderBy, orderDir string, allowed map[string]bool, defaultField, defaultDir string) string {
	field := ValidateSortField(orderBy, allowed, defaultField)
	dir := defaultDir
	if strings.TrimSpace(orderDir) != "" {
		dir = ValidateSortOrder(orderDir)
	}
	return field + " " + dir + ", id " + dir
}
