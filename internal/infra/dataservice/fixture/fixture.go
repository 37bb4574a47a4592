// Package fixture is the in-process stand-in for the hosted data service.
// It serves a small static catalog and simulates network latency on search.
package fixture

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"mrisafe/internal/domain/entity"
	"mrisafe/internal/domain/repository"
	"mrisafe/internal/search"

	"mrisafe/internal/errors"
)

// DefaultSearchLatency mimics a round trip to the hosted service.
const DefaultSearchLatency = 500 * time.Millisecond

// Repository serves the fixture catalog. It implements both the catalog and the
// waitlist repositories; waitlist sign-ups are kept in memory.
type Repository struct {
	logger        *slog.Logger
	searchLatency time.Duration
	now           func() time.Time

	mu       sync.Mutex
	waitlist []*entity.WaitlistEntry
}

// Option customises a fixture Repository.
type Option func(*Repository)

// WithSearchLatency overrides the simulated search delay. Zero disables it.
func WithSearchLatency(d time.Duration) Option {
	return func(r *Repository) {
		r.searchLatency = d
	}
}

// WithClock overrides the clock used to stamp waitlist entries.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// NewRepository builds a fixture repository.
func NewRepository(logger *slog.Logger, opts ...Option) *Repository {
	r := &Repository{
		logger:        logger,
		searchLatency: DefaultSearchLatency,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

var (
	_ repository.CatalogRepository  = (*Repository)(nil)
	_ repository.WaitlistRepository = (*Repository)(nil)
)

// ListDevices applies the same equality and name-substring semantics as the hosted service.
func (r *Repository) ListDevices(ctx context.Context, filters *entity.SearchFilters) ([]*entity.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	devices := Devices()
	if filters == nil {
		return devices, nil
	}

	devices = search.Filter(devices, *filters)
	if filters.Query != nil && *filters.Query != "" {
		needle := strings.ToLower(*filters.Query)
		devices = slices.DeleteFunc(devices, func(d *entity.Device) bool {
			return !strings.Contains(strings.ToLower(d.Name), needle)
		})
	}

	return devices, nil
}

// GetDeviceByID returns the fixture device with the given id.
func (r *Repository) GetDeviceByID(ctx context.Context, id int64) (*entity.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	for _, device := range Devices() {
		if device.ID == id {
			return device, nil
		}
	}

	return nil, repository.ErrDeviceNotFound
}

// SearchDevices runs the search engine over the fixture after the simulated latency.
func (r *Repository) SearchDevices(ctx context.Context, query string) ([]*entity.Device, error) {
	r.logger.DebugContext(ctx, "Fixture search", slog.String("query", query))

	if r.searchLatency > 0 {
		timer := time.NewTimer(r.searchLatency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		case <-timer.C:
		}
	}

	results := search.Search(Devices(), query)
	r.logger.DebugContext(ctx, "Fixture search results",
		slog.String("query", query),
		slog.Int("count", len(results)),
	)

	return results, nil
}

// GetDevicesBySafetyStatus returns the fixture devices with the given classification.
func (r *Repository) GetDevicesBySafetyStatus(ctx context.Context, status entity.SafetyStatus) ([]*entity.Device, error) {
	return r.ListDevices(ctx, &entity.SearchFilters{SafetyStatus: &status})
}

// ListCategories returns every fixture category.
func (r *Repository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return Categories(), nil
}

// GetCategoryByID returns the fixture category with the given id.
func (r *Repository) GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	if c := findCategory(id); c != nil {
		return c, nil
	}

	return nil, repository.ErrCategoryNotFound
}

// ListManufacturers returns every fixture manufacturer.
func (r *Repository) ListManufacturers(ctx context.Context) ([]*entity.Manufacturer, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return Manufacturers(), nil
}

// GetManufacturerByID returns the fixture manufacturer with the given id.
func (r *Repository) GetManufacturerByID(ctx context.Context, id int64) (*entity.Manufacturer, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	if m := findManufacturer(id); m != nil {
		return m, nil
	}

	return nil, repository.ErrManufacturerNotFound
}

// AddEntry records a sign-up in memory. Emails compare case-insensitively.
func (r *Repository) AddEntry(ctx context.Context, entry *entity.WaitlistEntry) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.waitlist {
		if strings.EqualFold(existing.Email, entry.Email) {
			return repository.ErrDuplicateWaitlistEntry
		}
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now()
	}
	stored := *entry
	r.waitlist = append(r.waitlist, &stored)

	return nil
}

// ListEntries returns the in-memory sign-ups, newest first.
func (r *Repository) ListEntries(ctx context.Context) ([]*entity.WaitlistEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.WaitlistEntry, 0, len(r.waitlist))
	for i := len(r.waitlist) - 1; i >= 0; i-- {
		entry := *r.waitlist[i]
		out = append(out, &entry)
	}

	return out, nil
}
