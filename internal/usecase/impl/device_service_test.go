package impl

import (
	"context"
	"testing"

	"minbar/internal/domain/entity"
	domainerrors "minbar/internal/domain/errors"
	mockRepo "minbar/internal/mocks/repository"
	"minbar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validWebInput() *usecase.RegisterTokenInput {
	return &usecase.RegisterTokenInput{
		DeviceID: "browser-abc",
		Platform: entity.PlatformWeb,
		Endpoint: "https://fcm.googleapis.com/fcm/send/abc123",
		P256dh:   "BNcRdreALRFXTkOOUHK1EtK2wtaz5Ry4YfYCA_0QTpQtUbVlUls0VJXg7A8u-Ts1XbjhazAkj7I99e8QcYP7DkM",
		Auth:     "tBHItJI5svbpez7KI4CCXg",
	}
}

func TestDeviceService_RegisterToken_Web(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo)

	deviceRepo.EXPECT().CreateToken(mock.Anything, mock.MatchedBy(func(tok *entity.DeviceToken) bool {
		return tok.Platform == entity.PlatformWeb && tok.Enabled
	})).Return(nil)

	token, err := svc.RegisterToken(context.Background(), validWebInput())
	require.NoError(t, err)
	assert.True(t, token.Enabled)
	assert.Equal(t, "browser-abc", token.DeviceID)
}

func TestDeviceService_RegisterToken_Native(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo)

	deviceRepo.EXPECT().CreateToken(mock.Anything, mock.Anything).Return(nil)

	token, err := svc.RegisterToken(context.Background(), &usecase.RegisterTokenInput{
		DeviceID: "pixel-7",
		Platform: entity.PlatformAndroid,
		FCMToken: "fcm-registration-token",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PlatformAndroid, token.Platform)
}

func TestDeviceService_RegisterToken_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.RegisterTokenInput)
		wantErr error
	}{
		{
			name:    "missing device id",
			mutate:  func(in *usecase.RegisterTokenInput) { in.DeviceID = "" },
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "unknown platform",
			mutate:  func(in *usecase.RegisterTokenInput) { in.Platform = "windows" },
			wantErr: domainerrors.ErrInvalidPlatform,
		},
		{
			name:    "web without endpoint",
			mutate:  func(in *usecase.RegisterTokenInput) { in.Endpoint = "" },
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "web without p256dh",
			mutate:  func(in *usecase.RegisterTokenInput) { in.P256dh = "" },
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "web without auth",
			mutate:  func(in *usecase.RegisterTokenInput) { in.Auth = "" },
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "http endpoint",
			mutate:  func(in *usecase.RegisterTokenInput) { in.Endpoint = "http://push.example.com/sub" },
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "endpoint without host",
			mutate:  func(in *usecase.RegisterTokenInput) { in.Endpoint = "https://" },
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "p256dh not base64url",
			mutate:  func(in *usecase.RegisterTokenInput) { in.P256dh = "not/valid+base64url!" },
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "auth not base64url",
			mutate:  func(in *usecase.RegisterTokenInput) { in.Auth = "%%%" },
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name: "native without fcm token",
			mutate: func(in *usecase.RegisterTokenInput) {
				in.Platform = entity.PlatformIOS
				in.FCMToken = ""
			},
			wantErr: domainerrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deviceRepo := mockRepo.NewMockDeviceRepository(t)
			svc := NewDeviceService(deviceRepo)

			input := validWebInput()
			tt.mutate(input)

			_, err := svc.RegisterToken(context.Background(), input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeviceService_ListTokens(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo)

	expected := []*entity.DeviceToken{{DeviceID: "a"}, {DeviceID: "b"}}
	deviceRepo.EXPECT().ListTokens(mock.Anything, 20, 0).Return(expected, nil)

	tokens, err := svc.ListTokens(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, tokens)
}
