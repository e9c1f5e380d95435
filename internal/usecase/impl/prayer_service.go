package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"minbar/config"
	"minbar/internal/domain/entity"
	"minbar/internal/domain/repository"
	"minbar/internal/domain/service"
	"minbar/internal/errors"
	"minbar/internal/usecase"

	"github.com/google/uuid"
)

// matchWindow bounds how late a reminder may still go out. A tick landing
// hours after the prayer time must not announce it retroactively.
const matchWindow = 30 * time.Minute

type prayerService struct {
	notificationRepo repository.NotificationRepository
	prayerLogRepo    repository.PrayerLogRepository
	timeProvider     service.PrayerTimeProvider
	publisher        service.EventPublisher
	schedule         *config.PrayerScheduleConfig
	logger           *slog.Logger
}

// NewPrayerService creates the prayer reminder scheduler use case.
func NewPrayerService(
	notificationRepo repository.NotificationRepository,
	prayerLogRepo repository.PrayerLogRepository,
	timeProvider service.PrayerTimeProvider,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PrayerUsecase {
	return &prayerService{
		notificationRepo: notificationRepo,
		prayerLogRepo:    prayerLogRepo,
		timeProvider:     timeProvider,
		publisher:        publisher,
		schedule:         cfg.PrayerSchedule,
		logger:           logger,
	}
}

// RunOnce checks the current prayer windows and announces newly matched ones.
// Provider failures are returned as-is; the caller retries on the next tick.
func (s *prayerService) RunOnce(ctx context.Context, now time.Time) ([]string, error) {
	if s.schedule == nil {
		return nil, errors.New("prayer schedule is not configured")
	}

	timings, err := s.timeProvider.Timings(ctx, now, s.schedule.City, s.schedule.Country, s.schedule.Method)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve prayer timings")
	}

	day := entity.DayKey(now)
	var announced []string

	for _, prayer := range entity.PrayerNames {
		at, ok := timings[prayer]
		if !ok {
			continue
		}
		if now.Before(at) || now.Sub(at) >= matchWindow {
			continue
		}

		already, err := s.prayerLogRepo.Exists(ctx, prayer, day)
		if err != nil {
			return announced, errors.Wrapf(err, "failed to check dedup log for %s", prayer)
		}
		if already {
			continue
		}

		if err := s.announce(ctx, prayer, day); err != nil {
			// One failed prayer must not block the others in the same tick.
			s.logger.Error("failed to announce prayer",
				slog.String("prayer", prayer),
				slog.String("error", err.Error()),
			)

			continue
		}

		announced = append(announced, prayer)
	}

	return announced, nil
}

// announce creates the reminder notification, publishes the delivery event,
// and records the dedup log entry, in that order. The log entry is written
// last so a crash mid-announce re-announces rather than silently drops.
func (s *prayerService) announce(ctx context.Context, prayer, day string) error {
	notification := &entity.Notification{
		Title:          fmt.Sprintf("It's time for %s", prayer),
		Body:           fmt.Sprintf("The %s prayer time has arrived in %s.", prayer, s.schedule.City),
		TargetPlatform: entity.PlatformAll,
		Status:         entity.NotificationStatusDraft,
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to create reminder notification")
	}

	event := &service.PrayerEvent{
		RequestID:      uuid.NewString(),
		NotificationID: notification.ID.String(),
		Prayer:         prayer,
		Day:            day,
	}
	if err := s.publisher.PublishPrayerEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish prayer event")
	}

	log := &entity.PrayerNotificationLog{
		Prayer:         prayer,
		Day:            day,
		NotificationID: notification.ID,
	}
	if err := s.prayerLogRepo.CreateLog(ctx, log); err != nil {
		return errors.Wrap(err, "failed to record prayer log")
	}

	s.logger.Info("prayer reminder announced",
		slog.String("prayer", prayer),
		slog.String("day", day),
		slog.String("notification_id", notification.ID.String()),
	)

	return nil
}
