package impl

import (
	"context"
	"testing"

	"minbar/internal/domain/entity"
	domainerrors "minbar/internal/domain/errors"
	"minbar/internal/domain/repository"
	mockRepo "minbar/internal/mocks/repository"
	"minbar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockOutcomeRepository,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	outcomeRepo := mockRepo.NewMockOutcomeRepository(t)

	return NewNotificationService(notificationRepo, outcomeRepo), notificationRepo, outcomeRepo
}

func TestNotificationService_CreateNotification(t *testing.T) {
	svc, notificationRepo, _ := createTestNotificationService(t)

	notificationRepo.EXPECT().CreateNotification(mock.Anything, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.Status == entity.NotificationStatusDraft && n.TargetPlatform == entity.PlatformAll
	})).Return(nil)

	notification, err := svc.CreateNotification(context.Background(), &usecase.CreateNotificationInput{
		Title: "Jumu'ah reminder",
		Body:  "Friday prayer starts at 13:00.",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusDraft, notification.Status)
	assert.Equal(t, entity.PlatformAll, notification.TargetPlatform)
}

func TestNotificationService_CreateNotification_Validation(t *testing.T) {
	svc, _, _ := createTestNotificationService(t)

	ctx := context.Background()

	_, err := svc.CreateNotification(ctx, &usecase.CreateNotificationInput{Body: "no title"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = svc.CreateNotification(ctx, &usecase.CreateNotificationInput{Title: "no body"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = svc.CreateNotification(ctx, &usecase.CreateNotificationInput{
		Title:          "bad platform",
		Body:           "x",
		TargetPlatform: "desktop",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPlatform)
}

func TestNotificationService_GetNotification_NotFound(t *testing.T) {
	svc, notificationRepo, _ := createTestNotificationService(t)

	id := uuid.New()
	notificationRepo.EXPECT().FindNotificationByID(mock.Anything, id).
		Return(nil, repository.ErrNotificationNotFound)

	_, err := svc.GetNotification(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_ListOutcomes(t *testing.T) {
	svc, notificationRepo, outcomeRepo := createTestNotificationService(t)

	id := uuid.New()
	notificationRepo.EXPECT().FindNotificationByID(mock.Anything, id).
		Return(&entity.Notification{ID: id}, nil)

	ledger := []*entity.DeliveryOutcome{
		{NotificationID: id, Status: entity.OutcomeStatusSent},
		{NotificationID: id, Status: entity.OutcomeStatusFailed, ErrorCode: "http_410"},
	}
	outcomeRepo.EXPECT().ListOutcomesByNotification(mock.Anything, id, 50, 0).Return(ledger, nil)

	outcomes, err := svc.ListOutcomes(context.Background(), id, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, ledger, outcomes)
}

func TestNotificationService_ListOutcomes_UnknownNotification(t *testing.T) {
	svc, notificationRepo, _ := createTestNotificationService(t)

	id := uuid.New()
	notificationRepo.EXPECT().FindNotificationByID(mock.Anything, id).
		Return(nil, repository.ErrNotificationNotFound)

	_, err := svc.ListOutcomes(context.Background(), id, 50, 0)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}
