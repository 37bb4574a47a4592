package remote

import (
	"encoding/json"
	"strings"
	"time"

	"mrisafe/internal/domain/entity"
	"mrisafe/internal/errors"
)

// timestamp accepts the timestamp layouts PostgREST emits for both
// "timestamptz" and plain "timestamp" columns.
type timestamp time.Time

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02",
}

func (t *timestamp) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decode timestamp")
	}
	if raw == nil || *raw == "" {
		*t = timestamp{}

		return nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, *raw); err == nil {
			*t = timestamp(parsed)

			return nil
		}
	}

	return errors.Errorf("unrecognised timestamp %q", *raw)
}

type manufacturerRow struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Website      *string   `json:"website"`
	ContactEmail *string   `json:"contact_email"`
	ContactPhone *string   `json:"contact_phone"`
	CreatedAt    timestamp `json:"created_at"`
	UpdatedAt    timestamp `json:"updated_at"`
}

type categoryRow struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	CreatedAt   timestamp `json:"created_at"`
	UpdatedAt   timestamp `json:"updated_at"`
}

type deviceRow struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	ModelNumber      *string          `json:"model_number"`
	ManufacturerID   int64            `json:"manufacturer_id"`
	Manufacturer     *manufacturerRow `json:"manufacturer"`
	CategoryID       int64            `json:"category_id"`
	Category         *categoryRow     `json:"category"`
	SafetyStatus     *string          `json:"safety_status"`
	Conditions       *string          `json:"conditions"`
	FieldStrength    *string          `json:"field_strength"`
	AdditionalInfo   *string          `json:"additional_info"`
	DocumentationURL *string          `json:"documentation_url"`
	ImageURL         *string          `json:"image_url"`
	CreatedAt        timestamp        `json:"created_at"`
	UpdatedAt        timestamp        `json:"updated_at"`
}

type waitlistRow struct {
	Email     string     `json:"email"`
	Source    string     `json:"source"`
	CreatedAt *timestamp `json:"created_at,omitempty"`
}

// --- Mapper Functions ---

func (r *manufacturerRow) toDomain() *entity.Manufacturer {
	if r == nil {
		return nil
	}

	return &entity.Manufacturer{
		ID:           r.ID,
		Name:         r.Name,
		Website:      r.Website,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		CreatedAt:    time.Time(r.CreatedAt),
		UpdatedAt:    time.Time(r.UpdatedAt),
	}
}

func (r *categoryRow) toDomain() *entity.Category {
	if r == nil {
		return nil
	}

	return &entity.Category{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Icon:        r.Icon,
		CreatedAt:   time.Time(r.CreatedAt),
		UpdatedAt:   time.Time(r.UpdatedAt),
	}
}

func (r *deviceRow) toDomain() *entity.Device {
	if r == nil {
		return nil
	}

	status := entity.SafetyStatusUnknown
	if r.SafetyStatus != nil {
		status = entity.ParseSafetyStatus(strings.TrimSpace(*r.SafetyStatus))
	}

	return &entity.Device{
		ID:               r.ID,
		Name:             r.Name,
		ModelNumber:      r.ModelNumber,
		ManufacturerID:   r.ManufacturerID,
		Manufacturer:     r.Manufacturer.toDomain(),
		CategoryID:       r.CategoryID,
		Category:         r.Category.toDomain(),
		SafetyStatus:     status,
		Conditions:       r.Conditions,
		FieldStrength:    r.FieldStrength,
		AdditionalInfo:   r.AdditionalInfo,
		DocumentationURL: r.DocumentationURL,
		ImageURL:         r.ImageURL,
		CreatedAt:        time.Time(r.CreatedAt),
		UpdatedAt:        time.Time(r.UpdatedAt),
	}
}

func toDevices(rows []deviceRow) []*entity.Device {
	devices := make([]*entity.Device, 0, len(rows))
	for i := range rows {
		devices = append(devices, rows[i].toDomain())
	}

	return devices
}
