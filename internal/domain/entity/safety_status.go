package entity

import "encoding/json"

// SafetyStatus is the MRI-environment compatibility classification of a device.
type SafetyStatus string

const (
	SafetyStatusSafe        SafetyStatus = "MR Safe"
	SafetyStatusConditional SafetyStatus = "MR Conditional"
	SafetyStatusUnsafe      SafetyStatus = "MR Unsafe"
	SafetyStatusUnknown     SafetyStatus = "Unknown"
)

// SafetyStatuses lists the classifications in display order.
var SafetyStatuses = []SafetyStatus{
	SafetyStatusSafe,
	SafetyStatusConditional,
	SafetyStatusUnsafe,
	SafetyStatusUnknown,
}

// ParseSafetyStatus maps a raw value onto one of the four classifications.
// Anything unrecognised, including the empty string, becomes SafetyStatusUnknown.
func ParseSafetyStatus(raw string) SafetyStatus {
	switch SafetyStatus(raw) {
	case SafetyStatusSafe, SafetyStatusConditional, SafetyStatusUnsafe:
		return SafetyStatus(raw)
	default:
		return SafetyStatusUnknown
	}
}

// IsValid reports whether s is exactly one of the four classifications.
func (s SafetyStatus) IsValid() bool {
	switch s {
	case SafetyStatusSafe, SafetyStatusConditional, SafetyStatusUnsafe, SafetyStatusUnknown:
		return true
	default:
		return false
	}
}

// Description is the standard one-line explanation shown next to a status.
func (s SafetyStatus) Description() string {
	switch s {
	case SafetyStatusSafe:
		return "Items that pose no known hazards in all MRI environments"
	case SafetyStatusConditional:
		return "Items that have been demonstrated to pose no hazards in a specified MRI environment"
	case SafetyStatusUnsafe:
		return "Items that are known to pose hazards in all MRI environments"
	default:
		return "Safety information is not available for this item"
	}
}

// UnmarshalJSON normalises unrecognised values to SafetyStatusUnknown.
func (s *SafetyStatus) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*s = SafetyStatusUnknown

		return nil
	}
	*s = ParseSafetyStatus(*raw)

	return nil
}
