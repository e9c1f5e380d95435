// Package service defines interfaces for core, stateless domain logic.
package service

import (
	"context"
	"time"
)

// PrayerTimeProvider resolves the five daily prayer times for a location and
// date. Backed by a third-party timings API; the scheduler treats provider
// failures as transient and retries on the next tick.
type PrayerTimeProvider interface {
	// Timings returns prayer name -> local time for the given date.
	Timings(ctx context.Context, date time.Time, city, country string, method int) (map[string]time.Time, error)
}
