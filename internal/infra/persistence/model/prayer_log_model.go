package model

import (
	"time"

	"github.com/google/uuid"
)

// PrayerNotificationLogModel is the GORM-specific struct for the
// 'prayer_notification_logs' table. The (prayer, day) unique index keeps
// the scheduler from announcing the same prayer twice on one day.
type PrayerNotificationLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Prayer         string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_prayer_logs_prayer_day"`
	Day            string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_prayer_logs_prayer_day"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrayerNotificationLogModel) TableName() string {
	return "prayer_notification_logs"
}
