package persistence

import (
	"strings"

	"github.com/fleetledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	if strings.ToUpper(strings.TrimSpace(orderDir)) == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// fields. Returns defaultField if the input is empty or not whitelisted.
// Sort fields are interpolated into ORDER BY, so they must never come from
// user input unchecked.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" || !allowedFields[trimmed] {
		return defaultField
	}
	return trimmed
}

// MasterSortFields contains allowed sort fields for master accounts
var MasterSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

// TripSortFields contains allowed sort fields for trips
var TripSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"trip_no":    true,
	"date":       true,
	"veh_no":     true,
}

// TransactionSortFields contains allowed sort fields for transaction entries
var TransactionSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"trip_no":    true,
	"date":       true,
}

// applyFilter applies date range, pagination and whitelisted ordering to a query.
func applyFilter(query *gorm.DB, filter shared.Filter, allowedSort map[string]bool, defaultOrder string) *gorm.DB {
	query = applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, allowedSort, "created_at")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order(defaultOrder)
	}

	return query
}

// applyFilterWithoutPagination applies the date range bounds only. Search and
// per-entity filters are applied by the individual repositories.
func applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", *filter.DateTo)
	}
	return query
}
