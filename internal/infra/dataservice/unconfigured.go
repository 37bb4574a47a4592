package dataservice

import (
	"context"

	"mrisafe/internal/domain/entity"
	domainerrors "mrisafe/internal/domain/errors"
	"mrisafe/internal/domain/repository"
)

// unconfiguredRepository answers every call with the configuration error.
type unconfiguredRepository struct {
	err *domainerrors.ConfigurationError
}

var (
	_ repository.CatalogRepository  = (*unconfiguredRepository)(nil)
	_ repository.WaitlistRepository = (*unconfiguredRepository)(nil)
	_ repository.TransactionManager = (*unconfiguredRepository)(nil)
)

func (r *unconfiguredRepository) ListDevices(context.Context, *entity.SearchFilters) ([]*entity.Device, error) {
	return nil, r.err
}

func (r *unconfiguredRepository) GetDeviceByID(context.Context, int64) (*entity.Device, error) {
	return nil, r.err
}

func (r *unconfiguredRepository) SearchDevices(context.Context, string) ([]*entity.Device, error) {
	return nil, r.err
}

func (r *unconfiguredRepository) GetDevicesBySafetyStatus(context.Context, entity.SafetyStatus) ([]*entity.Device, error) {
	return nil, r.err
}

func (r *unconfiguredRepository) ListCategories(context.Context) ([]*entity.Category, error) {
	return nil, r.err
}

func (r *unconfiguredRepository) GetCategoryByID(context.Context, int64) (*entity.Category, error) {
	return nil, r.err
}

func (r *unconfiguredRepository) ListManufacturers(context.Context) ([]*entity.Manufacturer, error) {
	return nil, r.err
}

func (r *unconfiguredRepository) GetManufacturerByID(context.Context, int64) (*entity.Manufacturer, error) {
	return nil, r.err
}

func (r *unconfiguredRepository) AddEntry(context.Context, *entity.WaitlistEntry) error {
	return r.err
}

func (r *unconfiguredRepository) ListEntries(context.Context) ([]*entity.WaitlistEntry, error) {
	return nil, r.err
}

func (r *unconfiguredRepository) Execute(context.Context, func(repository.RepositoryFactory) error) error {
	return r.err
}

// readOnlyTransactionManager backs the sources that cannot be written to.
type readOnlyTransactionManager struct{}

func (readOnlyTransactionManager) Execute(context.Context, func(repository.RepositoryFactory) error) error {
	return domainerrors.ErrReadOnlySource
}
