package usecase

import (
	"context"
	"time"
)

// PrayerUsecase drives the prayer reminder scheduler. RunOnce is invoked on
// every scheduler tick; it is safe to call repeatedly because delivered
// reminders are deduplicated per (prayer, day).
type PrayerUsecase interface {
	// RunOnce checks the current prayer windows for the configured location
	// and, for each newly matched window, creates a reminder notification
	// and publishes a delivery event. Returns the prayers acted on.
	RunOnce(ctx context.Context, now time.Time) ([]string, error)
}
