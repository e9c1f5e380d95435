// Package service defines interfaces for core, stateless domain logic.
package service

import (
	"context"
)

// PrayerEvent is the message the scheduler publishes when a prayer window is
// matched. The worker consumes it and invokes the push delivery core.
type PrayerEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing.
	NotificationID string `json:"notification_id"`
	Prayer         string `json:"prayer"`
	Day            string `json:"day"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishPrayerEvent publishes a prayer reminder event for async delivery.
	PublishPrayerEvent(ctx context.Context, event *PrayerEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
