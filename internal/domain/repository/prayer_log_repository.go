// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"minbar/internal/domain/entity"
)

// PrayerLogRepository defines the "already notified today" deduplication table
// owned by the prayer scheduler.
type PrayerLogRepository interface {
	// CreateLog records that a reminder for (prayer, day) was sent.
	CreateLog(ctx context.Context, log *entity.PrayerNotificationLog) error

	// Exists reports whether a reminder for (prayer, day) was already recorded.
	Exists(ctx context.Context, prayer, day string) (bool, error)
}
