package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SendRequest selects the notification and narrows its audience. Platform,
// DeviceID and TokenID are optional filters; DryRun resolves targets without
// dispatching or writing anything.
type SendRequest struct {
	NotificationID uuid.UUID  `json:"notificationId" validate:"required"`
	Platform       string     `json:"platform,omitempty" validate:"omitempty,oneof=all android ios web"`
	DeviceID       string     `json:"deviceId,omitempty" validate:"omitempty,max=255"`
	TokenID        *uuid.UUID `json:"tokenId,omitempty"`
	DryRun         bool       `json:"dryRun,omitempty"`
}

// Totals aggregates a completed batch.
type Totals struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Targets int `json:"targets"`
}

// PlatformTally is the per-platform breakdown of a batch.
type PlatformTally struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// SendResult is the outcome of one send invocation.
type SendResult struct {
	NotificationID uuid.UUID                `json:"notificationId"`
	Status         string                   `json:"status"`
	Totals         Totals                   `json:"totals"`
	PerPlatform    map[string]PlatformTally `json:"perPlatform"`
}

// PushUsecase is the delivery core: it resolves eligible targets, dispatches
// to each sequentially with retries, records ledger rows, and aggregates the
// batch result onto the notification.
type PushUsecase interface {
	// Send executes one delivery batch for a notification.
	Send(ctx context.Context, req *SendRequest) (*SendResult, error)
}
