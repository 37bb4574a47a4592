package postgres

import (
	"context"

	"mrisafe/internal/domain/entity"
	domainerrors "mrisafe/internal/domain/errors"
	"mrisafe/internal/domain/repository"
	"mrisafe/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// catalogWriter implements the repository.CatalogWriter interface.
type catalogWriter struct {
	db *gorm.DB
}

// NewCatalogWriter is the constructor for catalogWriter.
func NewCatalogWriter(db *gorm.DB) repository.CatalogWriter {
	return &catalogWriter{
		db: db,
	}
}

var upsertByID = clause.OnConflict{
	Columns:   []clause.Column{{Name: "id"}},
	UpdateAll: true,
}

// SaveManufacturers upserts manufacturers by id.
func (w *catalogWriter) SaveManufacturers(ctx context.Context, manufacturers []*entity.Manufacturer) error {
	if len(manufacturers) == 0 {
		return nil
	}

	models := make([]*model.ManufacturerModel, 0, len(manufacturers))
	for _, m := range manufacturers {
		models = append(models, fromManufacturerDomain(m))
	}

	if err := w.db.WithContext(ctx).Clauses(upsertByID).Create(&models).Error; err != nil {
		return domainerrors.NewDataServiceError(err, "save manufacturers")
	}

	return nil
}

// SaveCategories upserts categories by id.
func (w *catalogWriter) SaveCategories(ctx context.Context, categories []*entity.Category) error {
	if len(categories) == 0 {
		return nil
	}

	models := make([]*model.CategoryModel, 0, len(categories))
	for _, c := range categories {
		models = append(models, fromCategoryDomain(c))
	}

	if err := w.db.WithContext(ctx).Clauses(upsertByID).Create(&models).Error; err != nil {
		return domainerrors.NewDataServiceError(err, "save categories")
	}

	return nil
}

// SaveDevices upserts devices by id without touching the referenced rows.
func (w *catalogWriter) SaveDevices(ctx context.Context, devices []*entity.Device) error {
	if len(devices) == 0 {
		return nil
	}

	models := make([]*model.DeviceModel, 0, len(devices))
	for _, d := range devices {
		models = append(models, fromDeviceDomain(d))
	}

	err := w.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(upsertByID).
		Create(&models).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("device is missing a required field")
		}

		return domainerrors.NewDataServiceError(err, "save devices")
	}

	return nil
}
