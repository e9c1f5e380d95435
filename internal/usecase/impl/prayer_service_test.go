package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"minbar/config"
	"minbar/internal/domain/entity"
	"minbar/internal/domain/service"
	mockRepo "minbar/internal/mocks/repository"
	mockSvc "minbar/internal/mocks/service"
	"minbar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func prayerConfig() *config.Config {
	return &config.Config{
		PrayerSchedule: &config.PrayerScheduleConfig{
			City:    "London",
			Country: "UK",
			Method:  2,
		},
	}
}

func createTestPrayerService(t *testing.T, cfg *config.Config) (
	usecase.PrayerUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockPrayerLogRepository,
	*mockSvc.MockPrayerTimeProvider,
	*mockSvc.MockEventPublisher,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	prayerLogRepo := mockRepo.NewMockPrayerLogRepository(t)
	timeProvider := mockSvc.NewMockPrayerTimeProvider(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewPrayerService(notificationRepo, prayerLogRepo, timeProvider, publisher, cfg, logger)

	return svc, notificationRepo, prayerLogRepo, timeProvider, publisher
}

func TestPrayerService_RunOnce_AnnouncesMatchedPrayer(t *testing.T) {
	svc, notificationRepo, prayerLogRepo, timeProvider, publisher := createTestPrayerService(t, prayerConfig())

	ctx := context.Background()
	now := time.Date(2026, 8, 28, 13, 10, 0, 0, time.UTC)
	day := entity.DayKey(now)

	// Dhuhr is 10 minutes in the past, inside the match window. Everything
	// else is either in the future or too far gone.
	timeProvider.EXPECT().Timings(ctx, now, "London", "UK", 2).Return(map[string]time.Time{
		"Fajr":    now.Add(-8 * time.Hour),
		"Dhuhr":   now.Add(-10 * time.Minute),
		"Asr":     now.Add(3 * time.Hour),
		"Maghrib": now.Add(7 * time.Hour),
		"Isha":    now.Add(9 * time.Hour),
	}, nil)

	prayerLogRepo.EXPECT().Exists(ctx, "Dhuhr", day).Return(false, nil)

	notificationRepo.EXPECT().CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.Title == "It's time for Dhuhr" && n.TargetPlatform == entity.PlatformAll
	})).Return(nil)

	publisher.EXPECT().PublishPrayerEvent(ctx, mock.MatchedBy(func(e *service.PrayerEvent) bool {
		return e.Prayer == "Dhuhr" && e.Day == day && e.RequestID != ""
	})).Return(nil)

	prayerLogRepo.EXPECT().CreateLog(ctx, mock.MatchedBy(func(l *entity.PrayerNotificationLog) bool {
		return l.Prayer == "Dhuhr" && l.Day == day
	})).Return(nil)

	announced, err := svc.RunOnce(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dhuhr"}, announced)
}

func TestPrayerService_RunOnce_DeduplicatesWithinDay(t *testing.T) {
	svc, _, prayerLogRepo, timeProvider, _ := createTestPrayerService(t, prayerConfig())

	ctx := context.Background()
	now := time.Date(2026, 8, 28, 13, 10, 0, 0, time.UTC)

	timeProvider.EXPECT().Timings(ctx, now, "London", "UK", 2).Return(map[string]time.Time{
		"Dhuhr": now.Add(-10 * time.Minute),
	}, nil)

	prayerLogRepo.EXPECT().Exists(ctx, "Dhuhr", entity.DayKey(now)).Return(true, nil)

	announced, err := svc.RunOnce(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, announced)
}

func TestPrayerService_RunOnce_WindowBounds(t *testing.T) {
	tests := []struct {
		name   string
		offset time.Duration
	}{
		{"prayer still in the future", time.Minute},
		{"exactly at the window edge", -matchWindow},
		{"long past", -2 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, timeProvider, _ := createTestPrayerService(t, prayerConfig())

			ctx := context.Background()
			now := time.Date(2026, 8, 28, 13, 0, 0, 0, time.UTC)

			timeProvider.EXPECT().Timings(ctx, now, "London", "UK", 2).Return(map[string]time.Time{
				"Dhuhr": now.Add(tt.offset),
			}, nil)

			announced, err := svc.RunOnce(ctx, now)
			require.NoError(t, err)
			assert.Empty(t, announced)
		})
	}
}

func TestPrayerService_RunOnce_ProviderFailure(t *testing.T) {
	svc, _, _, timeProvider, _ := createTestPrayerService(t, prayerConfig())

	ctx := context.Background()
	now := time.Now()

	timeProvider.EXPECT().Timings(ctx, now, "London", "UK", 2).
		Return(nil, errors.New("upstream returned status 502"))

	_, err := svc.RunOnce(ctx, now)
	assert.ErrorContains(t, err, "failed to resolve prayer timings")
}

func TestPrayerService_RunOnce_AnnounceFailureDoesNotBlockOthers(t *testing.T) {
	svc, notificationRepo, prayerLogRepo, timeProvider, publisher := createTestPrayerService(t, prayerConfig())

	ctx := context.Background()
	// Both Fajr and Dhuhr land inside the window in the same tick.
	now := time.Date(2026, 8, 28, 13, 10, 0, 0, time.UTC)
	day := entity.DayKey(now)

	timeProvider.EXPECT().Timings(ctx, now, "London", "UK", 2).Return(map[string]time.Time{
		"Fajr":  now.Add(-5 * time.Minute),
		"Dhuhr": now.Add(-10 * time.Minute),
	}, nil)

	prayerLogRepo.EXPECT().Exists(ctx, "Fajr", day).Return(false, nil)
	prayerLogRepo.EXPECT().Exists(ctx, "Dhuhr", day).Return(false, nil)

	notificationRepo.EXPECT().CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.Title == "It's time for Fajr"
	})).Return(errors.New("database unavailable"))

	notificationRepo.EXPECT().CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.Title == "It's time for Dhuhr"
	})).Return(nil)
	publisher.EXPECT().PublishPrayerEvent(ctx, mock.Anything).Return(nil)
	prayerLogRepo.EXPECT().CreateLog(ctx, mock.Anything).Return(nil)

	announced, err := svc.RunOnce(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dhuhr"}, announced)
}

func TestPrayerService_RunOnce_MissingSchedule(t *testing.T) {
	svc, _, _, _, _ := createTestPrayerService(t, &config.Config{})

	_, err := svc.RunOnce(context.Background(), time.Now())
	assert.ErrorContains(t, err, "prayer schedule is not configured")
}
