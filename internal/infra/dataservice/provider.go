// Package dataservice selects the catalog data source from configuration.
package dataservice

import (
	"log/slog"

	"mrisafe/config"
	domainerrors "mrisafe/internal/domain/errors"
	"mrisafe/internal/domain/repository"
	"mrisafe/internal/infra/dataservice/fixture"
	"mrisafe/internal/infra/dataservice/remote"
	"mrisafe/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the data source, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Sources are the repositories backed by the configured data source.
type Sources struct {
	fx.Out

	Catalog            repository.CatalogRepository
	Waitlist           repository.WaitlistRepository
	TransactionManager repository.TransactionManager
}

// New builds the repositories for cfg.DataService.Source. An incomplete
// configuration does not fail start-up: every repository call then reports
// the ConfigurationError so that surfaces can explain what is missing.
func New(params Params) (Sources, error) {
	cfg := params.Config
	logger := params.Logger

	if err := cfg.Validate(); err != nil {
		var cfgErr *domainerrors.ConfigurationError
		if !errors.As(err, &cfgErr) {
			return Sources{}, err
		}
		logger.Error("Data service is not configured", slog.Any("missing", cfgErr.Missing()))

		unconfigured := &unconfiguredRepository{err: cfgErr}

		return Sources{
			Catalog:            unconfigured,
			Waitlist:           unconfigured,
			TransactionManager: unconfigured,
		}, nil
	}

	ds := cfg.DataService
	switch ds.Source {
	case config.SourceFixture:
		logger.Info("Using built-in fixture catalog",
			slog.Duration("search_latency", ds.SearchLatency),
		)

		repo := fixture.NewRepository(logger, fixture.WithSearchLatency(ds.SearchLatency))

		return Sources{
			Catalog:            repo,
			Waitlist:           repo,
			TransactionManager: readOnlyTransactionManager{},
		}, nil

	case config.SourcePostgres:
		logger.Info("Using PostgreSQL catalog",
			slog.Int("replicas", len(cfg.Postgres.Replicas)),
		)

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    cfg,
			Logger:    logger,
		})
		if err != nil {
			return Sources{}, err
		}

		return Sources{
			Catalog:            postgres.NewCatalogRepository(db),
			Waitlist:           postgres.NewWaitlistRepository(db),
			TransactionManager: postgres.NewTransactionManager(db),
		}, nil

	default:
		logger.Info("Using hosted data service",
			slog.String("base_url", ds.BaseURL),
		)

		client := remote.NewClient(ds, logger)

		return Sources{
			Catalog:            remote.NewCatalogRepository(client),
			Waitlist:           remote.NewWaitlistRepository(client),
			TransactionManager: readOnlyTransactionManager{},
		}, nil
	}
}
