// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"minbar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new draft notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListNotifications retrieves notifications ordered by creation time, newest first.
	ListNotifications(ctx context.Context, limit, offset int) ([]*entity.Notification, error)

	// UpdateSendResult writes the terminal status, sent timestamp and the
	// aggregate counts of a completed batch onto the notification record.
	UpdateSendResult(ctx context.Context, id uuid.UUID, status string, sentAt time.Time, totalSent, totalFailed int) error
}
