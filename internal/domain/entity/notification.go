// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification statuses. A notification only moves forward: draft -> sent|failed.
const (
	NotificationStatusDraft  = "draft"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// Target platforms accepted by a notification and by the send request.
const (
	PlatformAll     = "all"
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
	PlatformWeb     = "web"
)

// Notification represents one message to broadcast to registered devices.
type Notification struct {
	ID             uuid.UUID  `json:"id"`              // The Global Unique Identifier (GUID) for the notification.
	Title          string     `json:"title"`           // Notification title shown to the user.
	Body           string     `json:"body"`            // Notification body text.
	ImageURL       string     `json:"image_url"`       // Optional image URL attached to the payload.
	Link           string     `json:"link"`            // Optional deep-link path opened on tap.
	TargetPlatform string     `json:"target_platform"` // Stored platform filter (all, android, ios, web).
	Status         string     `json:"status"`          // Lifecycle status (draft, sent, failed).
	TotalSent      int        `json:"total_sent"`      // Total deliveries acknowledged in the last batch.
	TotalFailed    int        `json:"total_failed"`    // Total deliveries that failed in the last batch.
	SentAt         *time.Time `json:"sent_at"`         // Timestamp of the last send attempt, nil for drafts.
	CreatedAt      time.Time  `json:"created_at"`      // Timestamp of when this record was created.
	UpdatedAt      time.Time  `json:"updated_at"`      // Timestamp of the last modification.
}

// ValidPlatform reports whether p is one of the accepted platform filters.
func ValidPlatform(p string) bool {
	switch p {
	case PlatformAll, PlatformAndroid, PlatformIOS, PlatformWeb:
		return true
	default:
		return false
	}
}
