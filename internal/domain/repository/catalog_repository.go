// Package repository defines the interfaces for the catalog data sources.
package repository

import (
	"context"

	"mrisafe/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for single-row catalog reads. A single-row fetch that
// yields zero or several rows reports the matching not-found error.
var (
	// ErrDeviceNotFound is returned when a device id does not resolve to exactly one row.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrCategoryNotFound is returned when a category id does not resolve to exactly one row.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrManufacturerNotFound is returned when a manufacturer id does not resolve to exactly one row.
	ErrManufacturerNotFound = errors.New("manufacturer not found")
)

// CatalogRepository is the read-only device catalog. Implementations exist for
// the hosted data service, a direct PostgreSQL connection and the in-process fixture.
type CatalogRepository interface {
	// ListDevices returns devices joined with manufacturer and category. A nil
	// filter returns every device; otherwise each set dimension must match.
	ListDevices(ctx context.Context, filters *entity.SearchFilters) ([]*entity.Device, error)

	// GetDeviceByID fetches exactly one joined device.
	GetDeviceByID(ctx context.Context, id int64) (*entity.Device, error)

	// SearchDevices returns devices matching the free-text query on name, model
	// number, manufacturer name, category name or conditions.
	SearchDevices(ctx context.Context, query string) ([]*entity.Device, error)

	// GetDevicesBySafetyStatus returns joined devices with the given classification.
	GetDevicesBySafetyStatus(ctx context.Context, status entity.SafetyStatus) ([]*entity.Device, error)

	// ListCategories returns every category.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// GetCategoryByID fetches exactly one category.
	GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error)

	// ListManufacturers returns every manufacturer.
	ListManufacturers(ctx context.Context) ([]*entity.Manufacturer, error)

	// GetManufacturerByID fetches exactly one manufacturer.
	GetManufacturerByID(ctx context.Context, id int64) (*entity.Manufacturer, error)
}

// CatalogWriter upserts catalog rows by id. Only the postgres source is writable;
// it is used to seed a database from the built-in catalog.
type CatalogWriter interface {
	// SaveManufacturers inserts or updates manufacturers by id.
	SaveManufacturers(ctx context.Context, manufacturers []*entity.Manufacturer) error

	// SaveCategories inserts or updates categories by id.
	SaveCategories(ctx context.Context, categories []*entity.Category) error

	// SaveDevices inserts or updates devices by id. Joined objects are ignored.
	SaveDevices(ctx context.Context, devices []*entity.Device) error
}
