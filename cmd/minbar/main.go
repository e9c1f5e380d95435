package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"minbar/config"
	"minbar/internal/delivery"
	"minbar/internal/delivery/http"
	"minbar/internal/delivery/http/middleware"
	"minbar/internal/delivery/http/router/handler"
	"minbar/internal/domain/service"
	"minbar/internal/infra/auth"
	"minbar/internal/infra/fcm"
	logs "minbar/internal/infra/log"
	"minbar/internal/infra/persistence/postgres"
	"minbar/internal/infra/webpush"
	"minbar/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
			postgres.NewOutcomeRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			webpush.NewClient,
			newMobilePushSender,
		),
	)
}

// newMobilePushSender creates the FCM sender when a Firebase credential is
// configured. A nil sender makes the dispatcher drop native targets.
func newMobilePushSender(ctx context.Context, cfg *config.Config) (service.MobilePushSender, error) {
	if cfg.Firebase == nil {
		return nil, nil
	}

	sender, err := fcm.NewSender(ctx, cfg.Firebase)
	if err != nil {
		return nil, fmt.Errorf("failed to create FCM sender: %w", err)
	}

	return sender, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewDeviceService,
			impl.NewNotificationService,
			impl.NewPushService,
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
			handler.NewDeviceHandler,
			handler.NewNotificationHandler,
			handler.NewPushHandler,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
