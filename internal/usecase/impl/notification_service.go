package impl

import (
	"context"

	"minbar/internal/domain/entity"
	domainerrors "minbar/internal/domain/errors"
	"minbar/internal/domain/repository"
	"minbar/internal/errors"
	"minbar/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	outcomeRepo      repository.OutcomeRepository
}

// NewNotificationService creates the notification authoring use case.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	outcomeRepo repository.OutcomeRepository,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		outcomeRepo:      outcomeRepo,
	}
}

// CreateNotification persists a new draft notification.
func (s *notificationService) CreateNotification(ctx context.Context, input *usecase.CreateNotificationInput) (*entity.Notification, error) {
	if input.Title == "" || input.Body == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("title and body are required")
	}

	targetPlatform := input.TargetPlatform
	if targetPlatform == "" {
		targetPlatform = entity.PlatformAll
	}
	if !entity.ValidPlatform(targetPlatform) {
		return nil, domainerrors.ErrInvalidPlatform
	}

	notification := &entity.Notification{
		Title:          input.Title,
		Body:           input.Body,
		ImageURL:       input.ImageURL,
		Link:           input.Link,
		TargetPlatform: targetPlatform,
		Status:         entity.NotificationStatusDraft,
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, err
	}

	return notification, nil
}

// GetNotification retrieves one notification by ID.
func (s *notificationService) GetNotification(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, err
	}

	return notification, nil
}

// ListNotifications retrieves notifications, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, limit, offset int) ([]*entity.Notification, error) {
	return s.notificationRepo.ListNotifications(ctx, limit, offset)
}

// ListOutcomes retrieves the delivery ledger rows for one notification. The
// notification must exist; an empty ledger is a valid answer.
func (s *notificationService) ListOutcomes(ctx context.Context, notificationID uuid.UUID, limit, offset int) ([]*entity.DeliveryOutcome, error) {
	if _, err := s.notificationRepo.FindNotificationByID(ctx, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, err
	}

	return s.outcomeRepo.ListOutcomesByNotification(ctx, notificationID, limit, offset)
}
