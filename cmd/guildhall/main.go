package main

import (
	"context"
	"log/slog"
	"os"

	"guildhall/config"
	"guildhall/internal/delivery"
	"guildhall/internal/delivery/http"
	"guildhall/internal/delivery/http/middleware"
	"guildhall/internal/delivery/http/router/handler"
	"guildhall/internal/domain/service"
	"guildhall/internal/infra/auth"
	"guildhall/internal/infra/auth/google"
	"guildhall/internal/infra/cache"
	logs "guildhall/internal/infra/log"
	"guildhall/internal/infra/metrics"
	"guildhall/internal/infra/persistence/postgres"
	"guildhall/internal/infra/pubsub"
	"guildhall/internal/infra/qrcode"
	"guildhall/internal/infra/storage"
	"guildhall/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
		postgres.New,
		cache.New,
		storage.New,
		metrics.New,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewPlayerRepository,
			postgres.NewRetailerRepository,
			postgres.NewConnectionRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewCampaignRepository,
			postgres.NewTournamentRepository,
			postgres.NewGameAccountRepository,
			postgres.NewConventionRepository,
			postgres.NewBlogRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewVerifier,
			newQRCodeService,
		),
	)
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
			impl.NewAuthService,
			impl.NewPlayerService,
			impl.NewRetailerService,
			impl.NewProximityService,
			impl.NewConnectionService,
			impl.NewCampaignService,
			impl.NewTournamentService,
			impl.NewGameAccountService,
			impl.NewConventionService,
			impl.NewBlogService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPlayerHandler,
			handler.NewRetailerHandler,
			handler.NewConnectionHandler,
			handler.NewCampaignHandler,
			handler.NewTournamentHandler,
			handler.NewGameAccountHandler,
			handler.NewContentHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
