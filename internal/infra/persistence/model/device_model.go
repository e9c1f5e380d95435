package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens' table.
// It represents a device registered for push notifications. Web tokens carry
// the endpoint and key columns; native tokens carry the FCM token column.
type DeviceTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID  string    `gorm:"type:varchar(255);not null;index"`
	Platform  string    `gorm:"type:varchar(20);not null"`
	FCMToken  string    `gorm:"type:text"`
	Endpoint  string    `gorm:"type:text;uniqueIndex:idx_device_tokens_endpoint"`
	P256dh    string    `gorm:"type:text"`
	Auth      string    `gorm:"type:text"`
	Enabled   bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}
