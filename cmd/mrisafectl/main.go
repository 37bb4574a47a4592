// Command mrisafectl searches and manages the MRI device safety catalog from a terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"mrisafe/config"
	domainerrors "mrisafe/internal/domain/errors"
	"mrisafe/internal/domain/lifecycle"
	"mrisafe/internal/domain/service"
	"mrisafe/internal/errors"
	"mrisafe/internal/infra/dataservice"
	"mrisafe/internal/infra/export"
	logs "mrisafe/internal/infra/log"
	"mrisafe/internal/query"
	"mrisafe/internal/usecase"
	"mrisafe/internal/usecase/impl"

	"go.uber.org/fx"
)

// cli carries the flags and the wired use cases shared by every command.
type cli struct {
	out    io.Writer
	errOut io.Writer

	source  string
	verbose bool
	jsonOut bool
	timeout time.Duration

	cfg      *config.Config
	logger   *slog.Logger
	catalog  usecase.CatalogUsecase
	waitlist usecase.WaitlistUsecase
	seeder   usecase.SeedUsecase
	exporter service.CatalogExporter

	bootstrap func(ctx context.Context, c *cli) error
	shutdown  func(ctx context.Context) error
}

func newCLI(out, errOut io.Writer) *cli {
	return &cli{
		out:       out,
		errOut:    errOut,
		timeout:   30 * time.Second,
		bootstrap: bootstrapFx,
	}
}

func main() {
	c := newCLI(os.Stdout, os.Stderr)
	if err := c.rootCommand().Execute(); err != nil {
		os.Exit(reportError(c.errOut, err))
	}
}

// reportError prints err for a person and returns the process exit code.
func reportError(w io.Writer, err error) int {
	var cfgErr *domainerrors.ConfigurationError
	if errors.As(err, &cfgErr) {
		fmt.Fprintln(w, "Error: "+cfgErr.Message())
		if missing := cfgErr.Missing(); len(missing) > 0 {
			fmt.Fprintln(w, "Missing: "+strings.Join(missing, ", "))
		}

		return 2
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		fmt.Fprintln(w, "Error: "+appErr.Message())
		if details := appErr.Details(); details != "" {
			fmt.Fprintln(w, "Details: "+details)
		}

		return 1
	}

	fmt.Fprintln(w, "Error: "+err.Error())

	return 1
}

// loadConfig reads the config file, applies flag overrides and validates the data source.
func (c *cli) loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	if c.source != "" {
		cfg.DataService.Source = c.source
	}
	if c.verbose {
		cfg.Env.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// bootstrapFx wires the use cases with the same providers as the server.
func bootstrapFx(ctx context.Context, c *cli) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			fx.Annotate(
				func() io.Writer { return c.errOut },
				fx.ResultTags(`name:"logOutput"`),
			),
			logs.New,
			dataservice.New,
			impl.NewCatalogService,
			impl.NewWaitlistService,
			impl.NewSeedService,
			export.NewXLSXExporter,
		),
		fx.Populate(&c.logger, &c.catalog, &c.waitlist, &c.seeder, &c.exporter),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "wire dependencies")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start dependencies")
	}

	c.cfg = cfg
	c.shutdown = app.Stop

	return nil
}

func (c *cli) searchTimeout() time.Duration {
	if c.cfg == nil || c.cfg.DataService == nil {
		return query.DefaultTimeout
	}

	return c.cfg.DataService.SearchTimeout
}

func (c *cli) close() {
	if c.shutdown == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := c.shutdown(ctx); err != nil && c.logger != nil {
		c.logger.Warn("Shutdown failed", slog.Any("error", err))
	}
	c.shutdown = nil
}
