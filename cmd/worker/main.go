package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"minbar/config"
	"minbar/internal/delivery"
	"minbar/internal/delivery/worker"
	"minbar/internal/delivery/worker/handler"
	"minbar/internal/domain/service"
	"minbar/internal/infra/fcm"
	logs "minbar/internal/infra/log"
	"minbar/internal/infra/persistence/postgres"
	"minbar/internal/infra/prayertime"
	"minbar/internal/infra/pubsub"
	"minbar/internal/infra/webpush"
	"minbar/internal/usecase"
	"minbar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type schedulerParams struct {
	fx.In
	fx.Lifecycle

	Cfg      *config.Config
	Logger   *slog.Logger
	PrayerUC usecase.PrayerUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
			startScheduler,
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
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
			postgres.NewOutcomeRepository,
			postgres.NewPrayerLogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			webpush.NewClient,
			newMobilePushSender,
			newPrayerTimeProvider,
			pubsub.NewEventPublisher,
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

// newPrayerTimeProvider builds the timings API client, honoring the base URL
// override from configuration.
func newPrayerTimeProvider(cfg *config.Config) service.PrayerTimeProvider {
	baseURL := ""
	if cfg.PrayerSchedule != nil {
		baseURL = cfg.PrayerSchedule.APIBaseURL
	}

	return prayertime.NewAladhanProvider(baseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPushService,
			impl.NewPrayerService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPrayerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

// startScheduler runs the prayer-window ticker. Each tick is independent: a
// failed tick logs and waits for the next one rather than stopping the loop.
func startScheduler(params schedulerParams) {
	schedule := params.Cfg.PrayerSchedule
	if schedule == nil || !schedule.Enabled {
		params.Logger.Info("Prayer scheduler disabled")

		return
	}

	tickInterval := schedule.TickInterval
	if tickInterval <= 0 {
		tickInterval = time.Minute
	}

	loopCtx, cancel := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go runSchedulerLoop(loopCtx, tickInterval, params)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()

			return nil
		},
	})
}

func runSchedulerLoop(ctx context.Context, tickInterval time.Duration, params schedulerParams) {
	params.Logger.Info("Prayer scheduler started",
		slog.Duration("tick_interval", tickInterval),
	)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			params.Logger.Info("Prayer scheduler stopped")

			return
		case <-ticker.C:
			announced, err := params.PrayerUC.RunOnce(ctx, time.Now())
			if err != nil {
				params.Logger.Error("Prayer scheduler tick failed", slog.Any("error", err))

				continue
			}
			if len(announced) > 0 {
				params.Logger.Info("Prayer reminders announced",
					slog.Any("prayers", announced),
				)
			}
		}
	}
}
