// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PrayerNames lists the five daily prayers the scheduler announces, in order.
var PrayerNames = []string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

// PrayerNotificationLog records that a prayer reminder was already sent on a
// given day. The scheduler owns this table and uses it to deduplicate: one
// reminder per prayer per day, regardless of how often the tick fires.
type PrayerNotificationLog struct {
	ID             uuid.UUID `json:"id"`              // The Global Unique Identifier (GUID) for the log entry.
	Prayer         string    `json:"prayer"`          // Prayer name (Fajr, Dhuhr, Asr, Maghrib, Isha).
	Day            string    `json:"day"`             // Calendar day in YYYY-MM-DD, unique together with Prayer.
	NotificationID uuid.UUID `json:"notification_id"` // The notification created for this reminder.
	CreatedAt      time.Time `json:"created_at"`      // Timestamp of when the reminder was recorded.
}

// DayKey formats t as the deduplication day key used by the log table.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
