package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryOutcomeModel is the GORM-specific struct for the 'delivery_outcomes' table.
// One row per token attempted during a send. The table is append-only.
type DeliveryOutcomeModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NotificationID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Platform          string    `gorm:"type:varchar(20);not null"`
	Status            string    `gorm:"type:varchar(20);not null"`
	ProviderMessageID string    `gorm:"type:text"`
	ErrorCode         string    `gorm:"type:varchar(50)"`
	ErrorMessage      string    `gorm:"type:text"`
	Endpoint          string    `gorm:"type:text"`
	EndpointHost      string    `gorm:"type:text"`
	Browser           string    `gorm:"type:varchar(20)"`
	Stage             string    `gorm:"type:varchar(20);not null"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryOutcomeModel) TableName() string {
	return "delivery_outcomes"
}
