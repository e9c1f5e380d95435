// Package fcm implements the optional mobile push sender backed by Firebase
// Cloud Messaging.
package fcm

import (
	"context"
	"fmt"

	"minbar/config"
	"minbar/internal/domain/entity"
	"minbar/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type fcmSender struct {
	client *messaging.Client
}

// NewSender creates the Firebase-backed mobile push sender. Callers wire it
// only when a credential is configured; without one the delivery core runs
// with a nil sender and native targets are dropped at resolution time.
func NewSender(ctx context.Context, cfg *config.FirebaseConfig) (service.MobilePushSender, error) {
	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmSender{
		client: client,
	}, nil
}

// Send pushes title/body/data to a single registration token.
func (s *fcmSender) Send(ctx context.Context, token *entity.DeviceToken, title, body string, data map[string]string) (string, error) {
	message := &messaging.Message{
		Token: token.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to send notification: %w", err)
	}

	return messageID, nil
}

// IsUnregistered reports whether err marks the token as permanently gone.
func (s *fcmSender) IsUnregistered(err error) bool {
	return messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err)
}
