// Package search implements the catalog's text search and structured filtering.
//
// Text search is plain case-insensitive substring containment over a fixed set
// of device fields. There is no tokenising, ranking, diacritic folding or fuzzy
// matching; results keep the candidate order. Structured filters are exact
// equality on category, manufacturer and safety status. Both passes are pure
// and never modify the candidate slice.
package search

import (
	"strings"

	"mrisafe/internal/domain/entity"
)

// IsBlank reports whether a query carries no searchable text.
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// Search returns the devices matching query, in candidate order.
// A blank query matches nothing.
func Search(devices []*entity.Device, query string) []*entity.Device {
	result := make([]*entity.Device, 0)
	if IsBlank(query) {
		return result
	}

	needle := strings.ToLower(query)
	for _, device := range devices {
		if matches(device, needle) {
			result = append(result, device)
		}
	}

	return result
}

// MatchesQuery reports whether a single device matches query.
func MatchesQuery(device *entity.Device, query string) bool {
	if device == nil || IsBlank(query) {
		return false
	}

	return matches(device, strings.ToLower(query))
}

// matches expects needle to be lowercased already.
func matches(device *entity.Device, needle string) bool {
	if device == nil {
		return false
	}

	if contains(device.Name, needle) {
		return true
	}
	if device.ModelNumber != nil && contains(*device.ModelNumber, needle) {
		return true
	}
	if device.Manufacturer != nil && contains(device.Manufacturer.Name, needle) {
		return true
	}
	if device.Category != nil && contains(device.Category.Name, needle) {
		return true
	}
	if device.Conditions != nil && contains(*device.Conditions, needle) {
		return true
	}

	return false
}

func contains(field, needle string) bool {
	return strings.Contains(strings.ToLower(field), needle)
}

// Filter keeps the devices satisfying every set dimension of filters.
// The Query dimension is ignored here; see Apply.
func Filter(devices []*entity.Device, filters entity.SearchFilters) []*entity.Device {
	result := make([]*entity.Device, 0, len(devices))
	for _, device := range devices {
		if MatchesFilters(device, filters) {
			result = append(result, device)
		}
	}

	return result
}

// MatchesFilters reports whether device satisfies the structured dimensions of filters.
func MatchesFilters(device *entity.Device, filters entity.SearchFilters) bool {
	if device == nil {
		return false
	}
	if filters.CategoryID != nil && device.CategoryID != *filters.CategoryID {
		return false
	}
	if filters.ManufacturerID != nil && device.ManufacturerID != *filters.ManufacturerID {
		return false
	}
	if filters.SafetyStatus != nil && device.SafetyStatus != *filters.SafetyStatus {
		return false
	}

	return true
}

// Apply is the listing-page pipeline: text search when a non-blank query is
// set, then the structured filters. With no query only the filters apply.
func Apply(devices []*entity.Device, filters entity.SearchFilters) []*entity.Device {
	candidates := devices
	if filters.HasQuery() {
		candidates = Search(devices, *filters.Query)
	}

	return Filter(candidates, filters)
}
