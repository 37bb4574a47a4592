// Package entity contains the core business objects of the catalog.
package entity

import "time"

// Device is a medical device with its MRI-safety classification.
// Manufacturer and Category are only populated when the joined view was requested
// and the reference resolved upstream.
type Device struct {
	ID               int64         `json:"id"`
	Name             string        `json:"name"`
	ModelNumber      *string       `json:"modelNumber,omitempty"`
	ManufacturerID   int64         `json:"manufacturerId"`
	Manufacturer     *Manufacturer `json:"manufacturer,omitempty"`
	CategoryID       int64         `json:"categoryId"`
	Category         *Category     `json:"category,omitempty"`
	SafetyStatus     SafetyStatus  `json:"safetyStatus"`
	Conditions       *string       `json:"conditions,omitempty"`
	FieldStrength    *string       `json:"fieldStrength,omitempty"`
	AdditionalInfo   *string       `json:"additionalInfo,omitempty"`
	DocumentationURL *string       `json:"documentationUrl,omitempty"`
	ImageURL         *string       `json:"imageUrl,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// ManufacturerName returns the joined manufacturer's name, or "" when absent.
func (d *Device) ManufacturerName() string {
	if d.Manufacturer == nil {
		return ""
	}

	return d.Manufacturer.Name
}

// CategoryName returns the joined category's name, or "" when absent.
func (d *Device) CategoryName() string {
	if d.Category == nil {
		return ""
	}

	return d.Category.Name
}

// StringValue dereferences an optional text field.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
