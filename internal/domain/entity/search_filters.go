package entity

import "strings"

// SearchFilters narrows a device listing. Unset dimensions do not constrain
// the result; set dimensions combine with AND.
type SearchFilters struct {
	CategoryID     *int64        `json:"categoryId,omitempty"`
	ManufacturerID *int64        `json:"manufacturerId,omitempty"`
	SafetyStatus   *SafetyStatus `json:"safetyStatus,omitempty"`
	Query          *string       `json:"query,omitempty"`
}

// HasQuery reports whether the free-text part is set and non-blank.
func (f SearchFilters) HasQuery() bool {
	return f.Query != nil && strings.TrimSpace(*f.Query) != ""
}

// IsStructured reports whether any exact-match dimension is set.
func (f SearchFilters) IsStructured() bool {
	return f.CategoryID != nil || f.ManufacturerID != nil || f.SafetyStatus != nil
}

