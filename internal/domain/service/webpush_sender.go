// Package service defines interfaces for core, stateless domain logic.
package service

import (
	"context"

	"minbar/internal/domain/entity"
)

// WebPushSender delivers one encrypted, VAPID-signed payload to a web push
// subscription. Implementations hold the server identity (key pair + contact
// subject), constructed once at startup and read-only thereafter.
type WebPushSender interface {
	// Send performs the Web Push protocol handshake for one subscription and
	// returns a synthetic provider acknowledgment identifier derived from the
	// HTTP status. A non-2xx response is returned as an error whose text
	// embeds the HTTP status code and response body.
	Send(ctx context.Context, token *entity.DeviceToken, payload []byte) (string, error)
}
