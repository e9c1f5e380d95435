package impl

import (
	"context"
	"encoding/base64"
	"net/url"
	"strings"

	"minbar/internal/domain/entity"
	domainerrors "minbar/internal/domain/errors"
	"minbar/internal/domain/repository"
	"minbar/internal/usecase"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates the device-token registration use case.
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterToken validates and persists a device token. Validation happens
// here, at ingestion, so every stored web subscription is structurally sound
// and the dispatch path never parses opaque blobs.
func (s *deviceService) RegisterToken(ctx context.Context, input *usecase.RegisterTokenInput) (*entity.DeviceToken, error) {
	if input.DeviceID == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("device_id is required")
	}

	switch input.Platform {
	case entity.PlatformWeb:
		if err := validateWebSubscription(input); err != nil {
			return nil, err
		}
	case entity.PlatformAndroid, entity.PlatformIOS:
		if input.FCMToken == "" {
			return nil, domainerrors.ErrInvalidInput.WithDetails("fcm_token is required for native platforms")
		}
	default:
		return nil, domainerrors.ErrInvalidPlatform
	}

	token := &entity.DeviceToken{
		DeviceID: input.DeviceID,
		Platform: input.Platform,
		FCMToken: input.FCMToken,
		Endpoint: input.Endpoint,
		P256dh:   input.P256dh,
		Auth:     input.Auth,
		Enabled:  true,
	}

	if err := s.deviceRepo.CreateToken(ctx, token); err != nil {
		return nil, err
	}

	return token, nil
}

// ListTokens returns registered tokens for the admin diagnostics view.
func (s *deviceService) ListTokens(ctx context.Context, limit, offset int) ([]*entity.DeviceToken, error) {
	return s.deviceRepo.ListTokens(ctx, limit, offset)
}

// validateWebSubscription checks the subscription triple handed out by the
// browser: an https endpoint plus base64url-encoded p256dh and auth keys.
func validateWebSubscription(input *usecase.RegisterTokenInput) error {
	if input.Endpoint == "" || input.P256dh == "" || input.Auth == "" {
		return domainerrors.ErrInvalidInput.WithDetails("web tokens require endpoint, p256dh and auth")
	}

	u, err := url.Parse(input.Endpoint)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return domainerrors.ErrInvalidInput.WithDetails("endpoint must be an https URL")
	}

	if !isBase64URL(input.P256dh) {
		return domainerrors.ErrInvalidInput.WithDetails("p256dh is not valid base64url")
	}
	if !isBase64URL(input.Auth) {
		return domainerrors.ErrInvalidInput.WithDetails("auth is not valid base64url")
	}

	return nil
}

func isBase64URL(s string) bool {
	_, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))

	return err == nil
}
