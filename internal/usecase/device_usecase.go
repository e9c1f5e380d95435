package usecase

import (
	"context"

	"minbar/internal/domain/entity"
)

// RegisterTokenInput is the payload for registering a device token. Web
// registrations must carry the full subscription triple; native ones the
// FCM registration token.
type RegisterTokenInput struct {
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=android ios web"`

	// Native platforms.
	FCMToken string `json:"fcm_token,omitempty"`

	// Web platform subscription triple.
	Endpoint string `json:"endpoint,omitempty"`
	P256dh   string `json:"p256dh,omitempty"`
	Auth     string `json:"auth,omitempty"`
}

// DeviceUsecase defines device-token registration use cases.
type DeviceUsecase interface {
	// RegisterToken validates and persists a device token. Web tokens are
	// structurally validated at ingestion so the dispatch path can trust
	// every stored subscription.
	RegisterToken(ctx context.Context, input *RegisterTokenInput) (*entity.DeviceToken, error)

	// ListTokens returns registered tokens for the admin diagnostics view.
	ListTokens(ctx context.Context, limit, offset int) ([]*entity.DeviceToken, error)
}
