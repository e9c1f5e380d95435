package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"minbar/config"
	"minbar/internal/domain/entity"
	domainerrors "minbar/internal/domain/errors"
	"minbar/internal/domain/repository"
	mockRepo "minbar/internal/mocks/repository"
	mockSvc "minbar/internal/mocks/service"
	"minbar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fastPushConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Push = config.PushConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
		JitterFactor:   0.1,
	}

	return cfg
}

func createTestPushService(t *testing.T, withMobile bool) (
	usecase.PushUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockDeviceRepository,
	*mockRepo.MockOutcomeRepository,
	*mockSvc.MockWebPushSender,
	*mockSvc.MockMobilePushSender,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	outcomeRepo := mockRepo.NewMockOutcomeRepository(t)
	webSender := mockSvc.NewMockWebPushSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var mobileSender *mockSvc.MockMobilePushSender
	if withMobile {
		mobileSender = mockSvc.NewMockMobilePushSender(t)
	}

	var svc usecase.PushUsecase
	if withMobile {
		svc = NewPushService(notificationRepo, deviceRepo, outcomeRepo, webSender, mobileSender, fastPushConfig(), logger)
	} else {
		svc = NewPushService(notificationRepo, deviceRepo, outcomeRepo, webSender, nil, fastPushConfig(), logger)
	}

	return svc, notificationRepo, deviceRepo, outcomeRepo, webSender, mobileSender
}

func webNotification(id uuid.UUID) *entity.Notification {
	return &entity.Notification{
		ID:             id,
		Title:          "Test",
		Body:           "Body",
		TargetPlatform: entity.PlatformWeb,
		Status:         entity.NotificationStatusDraft,
	}
}

func webToken(endpoint string) *entity.DeviceToken {
	return &entity.DeviceToken{
		ID:       uuid.New(),
		DeviceID: "device-1",
		Platform: entity.PlatformWeb,
		Endpoint: endpoint,
		P256dh:   "p256dh-key",
		Auth:     "auth-secret",
		Enabled:  true,
	}
}

func TestPushService_Send_MixedOutcomes(t *testing.T) {
	svc, notificationRepo, deviceRepo, outcomeRepo, webSender, _ := createTestPushService(t, false)

	ctx := context.Background()
	notificationID := uuid.New()
	t1 := webToken("https://fcm.googleapis.com/fcm/send/ok")
	t2 := webToken("https://updates.push.services.mozilla.com/wpush/v2/gone")

	notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(webNotification(notificationID), nil)
	deviceRepo.EXPECT().
		FindEligibleTokens(ctx, repository.TokenFilter{Platforms: []string{entity.PlatformWeb}}).
		Return([]*entity.DeviceToken{t1, t2}, nil)

	webSender.EXPECT().Send(mock.Anything, t1, mock.Anything).Return("webpush:201", nil).Once()
	// Gone endpoints fail on every attempt of the retry budget.
	webSender.EXPECT().Send(mock.Anything, t2, mock.Anything).
		Return("", errors.New("push service returned status 410: subscription expired")).Times(3)

	deviceRepo.EXPECT().DisableToken(mock.Anything, t2.ID).Return(nil).Once()

	var outcomes []*entity.DeliveryOutcome
	outcomeRepo.EXPECT().CreateOutcome(mock.Anything, mock.Anything).
		Run(func(_ context.Context, outcome *entity.DeliveryOutcome) {
			outcomes = append(outcomes, outcome)
		}).
		Return(nil).Times(2)

	notificationRepo.EXPECT().
		UpdateSendResult(mock.Anything, notificationID, entity.NotificationStatusSent, mock.Anything, 1, 1).
		Return(nil).Once()

	result, err := svc.Send(ctx, &usecase.SendRequest{NotificationID: notificationID})
	require.NoError(t, err)

	assert.Equal(t, entity.NotificationStatusSent, result.Status)
	assert.Equal(t, usecase.Totals{Sent: 1, Failed: 1, Targets: 2}, result.Totals)
	assert.Equal(t, usecase.PlatformTally{Sent: 1, Failed: 1}, result.PerPlatform[entity.PlatformWeb])

	require.Len(t, outcomes, 2)
	assert.Equal(t, entity.OutcomeStatusSent, outcomes[0].Status)
	assert.Equal(t, "webpush:201", outcomes[0].ProviderMessageID)
	assert.Equal(t, "fcm.googleapis.com", outcomes[0].EndpointHost)
	assert.Equal(t, "chrome", outcomes[0].Browser)

	assert.Equal(t, entity.OutcomeStatusFailed, outcomes[1].Status)
	assert.Equal(t, "http_410", outcomes[1].ErrorCode)
	assert.Equal(t, "firefox", outcomes[1].Browser)
}

func TestPushService_Send_RetryBudgetExhausted(t *testing.T) {
	svc, notificationRepo, deviceRepo, outcomeRepo, webSender, _ := createTestPushService(t, false)

	ctx := context.Background()
	notificationID := uuid.New()
	token := webToken("https://push.example.com/sub/1")

	notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(webNotification(notificationID), nil)
	deviceRepo.EXPECT().FindEligibleTokens(ctx, mock.Anything).Return([]*entity.DeviceToken{token}, nil)

	// 2 retries means 3 total attempts, no more, no fewer.
	webSender.EXPECT().Send(mock.Anything, token, mock.Anything).
		Return("", errors.New("connection timeout")).Times(3)

	outcomeRepo.EXPECT().CreateOutcome(mock.Anything, mock.MatchedBy(func(o *entity.DeliveryOutcome) bool {
		return o.Status == entity.OutcomeStatusFailed && o.ErrorCode == "timeout"
	})).Return(nil).Once()

	notificationRepo.EXPECT().
		UpdateSendResult(mock.Anything, notificationID, entity.NotificationStatusFailed, mock.Anything, 0, 1).
		Return(nil).Once()

	result, err := svc.Send(ctx, &usecase.SendRequest{NotificationID: notificationID})
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusFailed, result.Status)
	assert.Equal(t, usecase.Totals{Sent: 0, Failed: 1, Targets: 1}, result.Totals)
}

func TestPushService_Send_TransientThenSuccess(t *testing.T) {
	svc, notificationRepo, deviceRepo, outcomeRepo, webSender, _ := createTestPushService(t, false)

	ctx := context.Background()
	notificationID := uuid.New()
	token := webToken("https://push.example.com/sub/1")

	notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(webNotification(notificationID), nil)
	deviceRepo.EXPECT().FindEligibleTokens(ctx, mock.Anything).Return([]*entity.DeviceToken{token}, nil)

	webSender.EXPECT().Send(mock.Anything, token, mock.Anything).
		Return("", errors.New("push service returned status 503: try later")).Twice()
	webSender.EXPECT().Send(mock.Anything, token, mock.Anything).
		Return("webpush:201", nil).Once()

	outcomeRepo.EXPECT().CreateOutcome(mock.Anything, mock.MatchedBy(func(o *entity.DeliveryOutcome) bool {
		return o.Status == entity.OutcomeStatusSent
	})).Return(nil).Once()

	notificationRepo.EXPECT().
		UpdateSendResult(mock.Anything, notificationID, entity.NotificationStatusSent, mock.Anything, 1, 0).
		Return(nil).Once()

	result, err := svc.Send(ctx, &usecase.SendRequest{NotificationID: notificationID})
	require.NoError(t, err)
	assert.Equal(t, usecase.Totals{Sent: 1, Failed: 0, Targets: 1}, result.Totals)
}

func TestPushService_Send_DryRunPurity(t *testing.T) {
	svc, notificationRepo, deviceRepo, _, _, _ := createTestPushService(t, false)

	ctx := context.Background()
	notificationID := uuid.New()

	notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(webNotification(notificationID), nil)
	deviceRepo.EXPECT().FindEligibleTokens(ctx, mock.Anything).
		Return([]*entity.DeviceToken{webToken("https://a"), webToken("https://b")}, nil)

	// No sender, ledger or update expectations: dry run must not touch them.
	result, err := svc.Send(ctx, &usecase.SendRequest{NotificationID: notificationID, DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, usecase.Totals{Sent: 0, Failed: 0, Targets: 2}, result.Totals)
	assert.Equal(t, entity.NotificationStatusDraft, result.Status)
}

func TestPushService_Send_ZeroTargetsIsSent(t *testing.T) {
	svc, notificationRepo, deviceRepo, _, _, _ := createTestPushService(t, false)

	ctx := context.Background()
	notificationID := uuid.New()

	notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(webNotification(notificationID), nil)
	deviceRepo.EXPECT().FindEligibleTokens(ctx, mock.Anything).Return(nil, nil)

	notificationRepo.EXPECT().
		UpdateSendResult(mock.Anything, notificationID, entity.NotificationStatusSent, mock.Anything, 0, 0).
		Return(nil).Once()

	result, err := svc.Send(ctx, &usecase.SendRequest{NotificationID: notificationID})
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusSent, result.Status)
	assert.Equal(t, usecase.Totals{}, result.Totals)
}

func TestPushService_Send_NativeDroppedWithoutMobileSender(t *testing.T) {
	svc, notificationRepo, deviceRepo, _, _, _ := createTestPushService(t, false)

	ctx := context.Background()
	notificationID := uuid.New()
	notification := webNotification(notificationID)
	notification.TargetPlatform = entity.PlatformAll

	notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(notification, nil)

	// Only web remains after the capability-based platform drop.
	deviceRepo.EXPECT().
		FindEligibleTokens(ctx, repository.TokenFilter{Platforms: []string{entity.PlatformWeb}}).
		Return(nil, nil)

	notificationRepo.EXPECT().
		UpdateSendResult(mock.Anything, notificationID, entity.NotificationStatusSent, mock.Anything, 0, 0).
		Return(nil).Once()

	_, err := svc.Send(ctx, &usecase.SendRequest{NotificationID: notificationID})
	require.NoError(t, err)
}

func TestPushService_Send_AndroidOnlyBatchWithoutMobileSenderResolvesNothing(t *testing.T) {
	svc, notificationRepo, _, _, _, _ := createTestPushService(t, false)

	ctx := context.Background()
	notificationID := uuid.New()
	notification := webNotification(notificationID)
	notification.TargetPlatform = entity.PlatformAndroid

	notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(notification, nil)

	// The capability drop leaves no deliverable platform, so resolution is
	// skipped entirely and the zero-target policy applies.
	notificationRepo.EXPECT().
		UpdateSendResult(mock.Anything, notificationID, entity.NotificationStatusSent, mock.Anything, 0, 0).
		Return(nil).Once()

	result, err := svc.Send(ctx, &usecase.SendRequest{NotificationID: notificationID})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Totals.Targets)
}

func TestPushService_Send_MobileUnregisteredDisablesToken(t *testing.T) {
	svc, notificationRepo, deviceRepo, outcomeRepo, _, mobileSender := createTestPushService(t, true)

	ctx := context.Background()
	notificationID := uuid.New()
	notification := webNotification(notificationID)
	notification.TargetPlatform = entity.PlatformAndroid

	token := &entity.DeviceToken{
		ID:       uuid.New(),
		DeviceID: "device-2",
		Platform: entity.PlatformAndroid,
		FCMToken: "stale-registration-token",
		Enabled:  true,
	}

	notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(notification, nil)
	deviceRepo.EXPECT().
		FindEligibleTokens(ctx, repository.TokenFilter{Platforms: []string{entity.PlatformAndroid}}).
		Return([]*entity.DeviceToken{token}, nil)

	unregistered := errors.New("registration-token-not-registered")
	// The provider invalidated the token, so the retry loop stops after one attempt.
	mobileSender.EXPECT().Send(mock.Anything, token, notification.Title, notification.Body, mock.Anything).
		Return("", unregistered).Once()
	mobileSender.EXPECT().IsUnregistered(mock.Anything).Return(true)

	deviceRepo.EXPECT().DisableToken(mock.Anything, token.ID).Return(nil).Once()

	outcomeRepo.EXPECT().CreateOutcome(mock.Anything, mock.MatchedBy(func(o *entity.DeliveryOutcome) bool {
		return o.Status == entity.OutcomeStatusFailed && o.Platform == entity.PlatformAndroid
	})).Return(nil).Once()

	notificationRepo.EXPECT().
		UpdateSendResult(mock.Anything, notificationID, entity.NotificationStatusFailed, mock.Anything, 0, 1).
		Return(nil).Once()

	result, err := svc.Send(ctx, &usecase.SendRequest{NotificationID: notificationID})
	require.NoError(t, err)
	assert.Equal(t, usecase.Totals{Sent: 0, Failed: 1, Targets: 1}, result.Totals)
}

func TestPushService_Send_LedgerWriteFailureDoesNotAbortBatch(t *testing.T) {
	svc, notificationRepo, deviceRepo, outcomeRepo, webSender, _ := createTestPushService(t, false)

	ctx := context.Background()
	notificationID := uuid.New()
	t1 := webToken("https://push.example.com/sub/1")
	t2 := webToken("https://push.example.com/sub/2")

	notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(webNotification(notificationID), nil)
	deviceRepo.EXPECT().FindEligibleTokens(ctx, mock.Anything).Return([]*entity.DeviceToken{t1, t2}, nil)

	webSender.EXPECT().Send(mock.Anything, t1, mock.Anything).Return("webpush:201", nil).Once()
	webSender.EXPECT().Send(mock.Anything, t2, mock.Anything).Return("webpush:201", nil).Once()

	// Ledger writes are best-effort: a failure is logged and the batch continues.
	outcomeRepo.EXPECT().CreateOutcome(mock.Anything, mock.Anything).
		Return(errors.New("ledger unavailable")).Times(2)

	notificationRepo.EXPECT().
		UpdateSendResult(mock.Anything, notificationID, entity.NotificationStatusSent, mock.Anything, 2, 0).
		Return(nil).Once()

	result, err := svc.Send(ctx, &usecase.SendRequest{NotificationID: notificationID})
	require.NoError(t, err)
	assert.Equal(t, usecase.Totals{Sent: 2, Failed: 0, Targets: 2}, result.Totals)
}

func TestPushService_Send_InvalidPlatform(t *testing.T) {
	svc, _, _, _, _, _ := createTestPushService(t, false)

	_, err := svc.Send(context.Background(), &usecase.SendRequest{
		NotificationID: uuid.New(),
		Platform:       "desktop",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPlatform)
}

func TestPushService_Send_NotificationNotFound(t *testing.T) {
	svc, notificationRepo, _, _, _, _ := createTestPushService(t, false)

	ctx := context.Background()
	notificationID := uuid.New()

	notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).
		Return(nil, repository.ErrNotificationNotFound)

	_, err := svc.Send(ctx, &usecase.SendRequest{NotificationID: notificationID})
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestPushService_Send_TokenIDFilterIsForwarded(t *testing.T) {
	svc, notificationRepo, deviceRepo, _, _, _ := createTestPushService(t, false)

	ctx := context.Background()
	notificationID := uuid.New()
	tokenID := uuid.New()

	notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(webNotification(notificationID), nil)
	deviceRepo.EXPECT().
		FindEligibleTokens(ctx, repository.TokenFilter{
			Platforms: []string{entity.PlatformWeb},
			DeviceID:  "device-9",
			TokenID:   &tokenID,
		}).
		Return(nil, nil)

	notificationRepo.EXPECT().
		UpdateSendResult(mock.Anything, notificationID, entity.NotificationStatusSent, mock.Anything, 0, 0).
		Return(nil).Once()

	_, err := svc.Send(ctx, &usecase.SendRequest{
		NotificationID: notificationID,
		DeviceID:       "device-9",
		TokenID:        &tokenID,
	})
	require.NoError(t, err)
}

func TestResolvePlatforms(t *testing.T) {
	allPlatforms := []string{entity.PlatformAndroid, entity.PlatformIOS, entity.PlatformWeb}

	tests := []struct {
		name     string
		target   string
		override string
		want     []string
	}{
		{"stored all, no override", entity.PlatformAll, "", allPlatforms},
		{"stored empty defaults to all", "", "", allPlatforms},
		{"stored all, override web", entity.PlatformAll, entity.PlatformWeb, []string{entity.PlatformWeb}},
		{"stored web, override all widens", entity.PlatformWeb, entity.PlatformAll, allPlatforms},
		{"stored web, no override", entity.PlatformWeb, "", []string{entity.PlatformWeb}},
		{"override replaces stored target", entity.PlatformWeb, entity.PlatformAndroid, []string{entity.PlatformAndroid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolvePlatforms(tt.target, tt.override))
		})
	}
}

func TestPushService_Send_RequestPlatformOverridesStoredTarget(t *testing.T) {
	svc, notificationRepo, deviceRepo, outcomeRepo, _, mobileSender := createTestPushService(t, true)

	ctx := context.Background()
	notificationID := uuid.New()
	notification := webNotification(notificationID)

	token := &entity.DeviceToken{
		ID:       uuid.New(),
		DeviceID: "device-3",
		Platform: entity.PlatformAndroid,
		FCMToken: "registration-token",
		Enabled:  true,
	}

	notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(notification, nil)

	// The request platform replaces the stored web target outright.
	deviceRepo.EXPECT().
		FindEligibleTokens(ctx, repository.TokenFilter{Platforms: []string{entity.PlatformAndroid}}).
		Return([]*entity.DeviceToken{token}, nil)

	mobileSender.EXPECT().Send(mock.Anything, token, notification.Title, notification.Body, mock.Anything).
		Return("fcm:1", nil).Once()

	outcomeRepo.EXPECT().CreateOutcome(mock.Anything, mock.MatchedBy(func(o *entity.DeliveryOutcome) bool {
		return o.Status == entity.OutcomeStatusSent && o.Platform == entity.PlatformAndroid
	})).Return(nil).Once()

	notificationRepo.EXPECT().
		UpdateSendResult(mock.Anything, notificationID, entity.NotificationStatusSent, mock.Anything, 1, 0).
		Return(nil).Once()

	result, err := svc.Send(ctx, &usecase.SendRequest{
		NotificationID: notificationID,
		Platform:       entity.PlatformAndroid,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.Totals{Sent: 1, Failed: 0, Targets: 1}, result.Totals)
}
