package main

import (
	"context"
	"log/slog"
	"os"

	"mrisafe/config"
	"mrisafe/internal/delivery"
	"mrisafe/internal/delivery/api"
	"mrisafe/internal/delivery/api/middleware"
	"mrisafe/internal/delivery/api/router/handler"
	"mrisafe/internal/domain/service"
	"mrisafe/internal/infra/auth"
	"mrisafe/internal/infra/dataservice"
	"mrisafe/internal/infra/export"
	logs "mrisafe/internal/infra/log"
	"mrisafe/internal/infra/qrcode"
	"mrisafe/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			dataservice.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newTokenVerifier,
			newQRCodeService,
			export.NewXLSXExporter,
		),
	)
}

// newTokenVerifier leaves protected routes rejecting every request when no secret is configured
func newTokenVerifier(cfg *config.Config, logger *slog.Logger) service.TokenVerifier {
	verifier, err := auth.NewJWTService(cfg)
	if err != nil {
		logger.Warn("Token verification disabled", slog.Any("error", err))

		return nil
	}

	return verifier
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewWaitlistService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDeviceHandler,
			handler.NewCatalogHandler,
			handler.NewWaitlistHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
