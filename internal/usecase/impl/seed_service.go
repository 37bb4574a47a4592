package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "mrisafe/internal/delivery/context"
	"mrisafe/internal/domain/repository"
	"mrisafe/internal/usecase"
)

type seedService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSeedService creates a new seed service instance
func NewSeedService(txManager repository.TransactionManager, logger *slog.Logger) usecase.SeedUsecase {
	return &seedService{
		txManager: txManager,
		logger:    logger,
	}
}

// SeedCatalog writes manufacturers and categories before the devices that reference them
func (srv *seedService) SeedCatalog(ctx context.Context, seed *usecase.CatalogSeed) (*usecase.SeedReport, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		writer := txRepoFactory.NewCatalogWriter()

		if err := writer.SaveManufacturers(ctx, seed.Manufacturers); err != nil {
			return fmt.Errorf("failed to save manufacturers: %w", err)
		}
		if err := writer.SaveCategories(ctx, seed.Categories); err != nil {
			return fmt.Errorf("failed to save categories: %w", err)
		}
		if err := writer.SaveDevices(ctx, seed.Devices); err != nil {
			return fmt.Errorf("failed to save devices: %w", err)
		}

		return nil
	})
	if err != nil {
		logger.ErrorContext(ctx, "Catalog seed failed",
			slog.String("operation", "SeedCatalog"),
			slog.Any("error", err),
		)

		return nil, err
	}

	report := &usecase.SeedReport{
		Manufacturers: len(seed.Manufacturers),
		Categories:    len(seed.Categories),
		Devices:       len(seed.Devices),
	}
	logger.InfoContext(ctx, "Catalog seeded",
		slog.Int("manufacturers", report.Manufacturers),
		slog.Int("categories", report.Categories),
		slog.Int("devices", report.Devices),
	)

	return report, nil
}
