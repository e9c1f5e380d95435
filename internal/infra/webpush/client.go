// Package webpush implements the Web Push sender on top of VAPID signing.
package webpush

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"minbar/config"
	"minbar/internal/domain/entity"
	"minbar/internal/domain/service"
	"minbar/internal/errors"

	webpushgo "github.com/SherClockHolmes/webpush-go"
)

const (
	// responseBodyLimit caps how much of a push-service error body is kept
	// for the ledger. Bodies are small in practice; this is an upper bound.
	responseBodyLimit = 2048

	defaultTTLSeconds = 86400
)

// client is a concrete implementation of the WebPushSender interface. The
// VAPID identity is validated once at construction and immutable afterwards.
type client struct {
	publicKey  string
	privateKey string
	subject    string
	ttl        int
}

// NewClient validates the VAPID configuration and constructs the sender.
// Construction fails fast on a malformed key pair or contact subject so a
// misconfigured process never reaches the dispatch path.
func NewClient(cfg *config.Config) (service.WebPushSender, error) {
	wp := cfg.WebPush

	if err := validatePublicKey(wp.PublicKey); err != nil {
		return nil, err
	}
	if err := validatePrivateKey(wp.PrivateKey); err != nil {
		return nil, err
	}
	if err := validateSubject(wp.Subject); err != nil {
		return nil, err
	}

	ttl := wp.TTL
	if ttl <= 0 {
		ttl = defaultTTLSeconds
	}

	return &client{
		publicKey:  wp.PublicKey,
		privateKey: wp.PrivateKey,
		subject:    wp.Subject,
		ttl:        ttl,
	}, nil
}

// Send performs the Web Push protocol handshake for one subscription.
func (c *client) Send(ctx context.Context, token *entity.DeviceToken, payload []byte) (string, error) {
	sub := &webpushgo.Subscription{
		Endpoint: token.Endpoint,
		Keys: webpushgo.Keys{
			P256dh: token.P256dh,
			Auth:   token.Auth,
		},
	}

	resp, err := webpushgo.SendNotificationWithContext(ctx, payload, sub, &webpushgo.Options{
		Subscriber:      c.subject,
		VAPIDPublicKey:  c.publicKey,
		VAPIDPrivateKey: c.privateKey,
		TTL:             c.ttl,
	})
	if err != nil {
		return "", errors.Wrap(err, "web push request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyLimit))

		return "", errors.Errorf("push service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	// Push services do not return a message identifier; synthesize one from
	// the accepted status so ledger rows still carry an acknowledgment.
	return fmt.Sprintf("webpush:%d", resp.StatusCode), nil
}

// validatePublicKey checks that the key decodes to an uncompressed P-256
// point: 65 bytes starting with 0x04.
func validatePublicKey(key string) error {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(key, "="))
	if err != nil {
		return errors.Wrap(err, "vapid public key is not valid base64url")
	}
	if len(raw) != 65 || raw[0] != 0x04 {
		return errors.New("vapid public key must be a 65-byte uncompressed P-256 point")
	}

	return nil
}

// validatePrivateKey checks that the key decodes to a 32-byte scalar.
func validatePrivateKey(key string) error {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(key, "="))
	if err != nil {
		return errors.Wrap(err, "vapid private key is not valid base64url")
	}
	if len(raw) != 32 {
		return errors.New("vapid private key must be a 32-byte scalar")
	}

	return nil
}

// validateSubject checks the VAPID contact: a mailto: address or https: URL.
func validateSubject(subject string) error {
	if strings.HasPrefix(subject, "mailto:") || strings.HasPrefix(subject, "https:") {
		return nil
	}

	return errors.New("vapid subject must be a mailto: address or https: URL")
}
