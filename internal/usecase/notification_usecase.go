package usecase

import (
	"context"

	"minbar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNotificationInput is the payload for authoring a notification.
type CreateNotificationInput struct {
	Title          string `json:"title" validate:"required"`
	Body           string `json:"body" validate:"required"`
	ImageURL       string `json:"image_url,omitempty" validate:"omitempty,url"`
	Link           string `json:"link,omitempty" validate:"omitempty,url"`
	TargetPlatform string `json:"target_platform,omitempty"`
}

// NotificationUsecase defines notification authoring and inspection use cases.
type NotificationUsecase interface {
	// CreateNotification persists a new draft notification.
	CreateNotification(ctx context.Context, input *CreateNotificationInput) (*entity.Notification, error)

	// GetNotification retrieves one notification by ID.
	GetNotification(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListNotifications retrieves notifications, newest first.
	ListNotifications(ctx context.Context, limit, offset int) ([]*entity.Notification, error)

	// ListOutcomes retrieves the delivery ledger rows for one notification.
	ListOutcomes(ctx context.Context, notificationID uuid.UUID, limit, offset int) ([]*entity.DeliveryOutcome, error)
}
