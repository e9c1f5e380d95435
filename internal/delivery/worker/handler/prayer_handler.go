// Package handler contains the worker's Pub/Sub push handlers.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"minbar/config"
	deliverycontext "minbar/internal/delivery/context"
	"minbar/internal/domain/constants"
	domainerrors "minbar/internal/domain/errors"
	"minbar/internal/domain/service"
	"minbar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PrayerHandler consumes prayer reminder events and invokes the delivery core.
type PrayerHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	pushSvc        usecase.PushUsecase
}

// PrayerHandlerParams holds dependencies for the PrayerHandler.
type PrayerHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	PushSvc usecase.PushUsecase
}

// NewPrayerHandler creates a new Pub/Sub push handler.
func NewPrayerHandler(params PrayerHandlerParams) *PrayerHandler {
	// Google-signed push tokens are only present on real Pub/Sub subscriptions,
	// so verification is skipped for the local provider and in development.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PrayerHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		pushSvc:        params.PushSvc,
	}
}

// HandlePush handles an incoming Pub/Sub push message carrying a prayer event.
func (h *PrayerHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.PrayerEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse prayer event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing prayer event",
		slog.String("notification_id", event.NotificationID),
		slog.String("prayer", event.Prayer),
		slog.String("day", event.Day),
	)

	notificationID, err := uuid.Parse(event.NotificationID)
	if err != nil {
		reqLogger.Error("[Worker] Invalid notification ID in event",
			slog.String("notification_id", event.NotificationID),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	result, err := h.pushSvc.Send(ctx, &usecase.SendRequest{NotificationID: notificationID})
	if err != nil {
		reqLogger.Error("[Worker] Failed to dispatch prayer notification",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
		)

		// A missing or malformed notification will never succeed; ack it so
		// Pub/Sub does not redeliver forever. Anything else gets a retry.
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			return c.NoContent(http.StatusOK)
		}

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Prayer notification dispatched",
		slog.String("notification_id", event.NotificationID),
		slog.String("status", result.Status),
		slog.Int("sent", result.Totals.Sent),
		slog.Int("failed", result.Totals.Failed),
		slog.Int("targets", result.Totals.Targets),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, the event, or
// generates a new one.
func (h *PrayerHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.PrayerEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this push endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
