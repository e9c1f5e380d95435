// Package service defines interfaces for core, stateless domain logic.
package service

import (
	"context"

	"minbar/internal/domain/entity"
)

// MobilePushSender delivers one notification to a native (android/ios) device
// token. The implementation is optional: when no mobile-push credential is
// configured the dispatcher receives a nil sender and silently drops native
// targets instead of failing them.
type MobilePushSender interface {
	// Send pushes title/body/data to a single registration token and returns
	// the provider message identifier.
	Send(ctx context.Context, token *entity.DeviceToken, title, body string, data map[string]string) (string, error)

	// IsUnregistered reports whether err marks the token as permanently gone,
	// in which case the dispatcher disables it.
	IsUnregistered(err error) bool
}
