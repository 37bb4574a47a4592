package usecase

import (
	"context"

	"mrisafe/internal/domain/entity"
)

// CatalogSeed is a complete catalog to be written to a writable source.
type CatalogSeed struct {
	Manufacturers []*entity.Manufacturer
	Categories    []*entity.Category
	Devices       []*entity.Device
}

// SeedReport counts the rows written by a seed.
type SeedReport struct {
	Manufacturers int `json:"manufacturers"`
	Categories    int `json:"categories"`
	Devices       int `json:"devices"`
}

// SeedUsecase writes a catalog into the configured source.
type SeedUsecase interface {
	// SeedCatalog upserts the whole seed in one transaction
	SeedCatalog(ctx context.Context, seed *CatalogSeed) (*SeedReport, error)
}
