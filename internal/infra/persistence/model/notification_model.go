package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents a push notification authored by an admin.
type NotificationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title          string    `gorm:"type:text;not null"`
	Body           string    `gorm:"type:text;not null"`
	ImageURL       string    `gorm:"type:text"`
	Link           string    `gorm:"type:text"`
	TargetPlatform string    `gorm:"type:varchar(20);not null;default:'all'"`
	Status         string    `gorm:"type:varchar(20);not null;default:'draft'"`
	TotalSent      int       `gorm:"not null;default:0"`
	TotalFailed    int       `gorm:"not null;default:0"`
	SentAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
