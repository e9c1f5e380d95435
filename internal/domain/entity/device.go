// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceToken represents one addressable push endpoint for one device.
//
// The token is a tagged variant keyed on Platform: web tokens carry the push
// subscription triple (Endpoint, P256dh, Auth) validated once at registration,
// native tokens carry an FCM registration token. The dispatcher never parses
// opaque payloads at send time.
type DeviceToken struct {
	ID       uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the token.
	DeviceID string    `json:"device_id"` // Unique device identifier from the client.
	Platform string    `json:"platform"`  // Token platform (android, ios, web).

	// Native (android/ios) tokens.
	FCMToken string `json:"fcm_token,omitempty"` // Firebase Cloud Messaging registration token.

	// Web tokens: the push subscription as handed out by the browser.
	Endpoint string `json:"endpoint,omitempty"` // Push service endpoint URL.
	P256dh   string `json:"p256dh,omitempty"`   // Client public key for payload encryption.
	Auth     string `json:"auth,omitempty"`     // Client auth secret.

	Enabled   bool      `json:"enabled"`    // Only enabled tokens are eligible dispatch targets.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this token was registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// IsWeb reports whether the token addresses a web push endpoint.
func (t *DeviceToken) IsWeb() bool {
	return t.Platform == PlatformWeb
}
