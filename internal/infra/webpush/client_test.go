package webpush

import (
	"encoding/base64"
	"testing"

	"minbar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validKeyPair() (string, string) {
	public := make([]byte, 65)
	public[0] = 0x04
	for i := 1; i < len(public); i++ {
		public[i] = byte(i)
	}

	private := make([]byte, 32)
	for i := range private {
		private[i] = byte(i + 1)
	}

	return base64.RawURLEncoding.EncodeToString(public), base64.RawURLEncoding.EncodeToString(private)
}

func webPushConfig(publicKey, privateKey, subject string) *config.Config {
	return &config.Config{
		WebPush: config.WebPushConfig{
			PublicKey:  publicKey,
			PrivateKey: privateKey,
			Subject:    subject,
		},
	}
}

func TestNewClient_ValidConfig(t *testing.T) {
	public, private := validKeyPair()

	sender, err := NewClient(webPushConfig(public, private, "mailto:ops@example.com"))
	require.NoError(t, err)
	assert.NotNil(t, sender)
}

func TestNewClient_HTTPSSubject(t *testing.T) {
	public, private := validKeyPair()

	sender, err := NewClient(webPushConfig(public, private, "https://example.com/contact"))
	require.NoError(t, err)
	assert.NotNil(t, sender)
}

func TestNewClient_RejectsBadPublicKey(t *testing.T) {
	_, private := validKeyPair()

	tests := []struct {
		name      string
		publicKey string
	}{
		{"not base64url", "!!!not-base64!!!"},
		{"wrong length", base64.RawURLEncoding.EncodeToString(make([]byte, 32))},
		{"missing point prefix", base64.RawURLEncoding.EncodeToString(make([]byte, 65))},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, err := NewClient(webPushConfig(tt.publicKey, private, "mailto:ops@example.com"))
			assert.Error(t, err)
			assert.Nil(t, sender)
		})
	}
}

func TestNewClient_RejectsBadPrivateKey(t *testing.T) {
	public, _ := validKeyPair()

	tests := []struct {
		name       string
		privateKey string
	}{
		{"not base64url", "###"},
		{"wrong length", base64.RawURLEncoding.EncodeToString(make([]byte, 16))},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, err := NewClient(webPushConfig(public, tt.privateKey, "mailto:ops@example.com"))
			assert.Error(t, err)
			assert.Nil(t, sender)
		})
	}
}

func TestNewClient_RejectsBadSubject(t *testing.T) {
	public, private := validKeyPair()

	for _, subject := range []string{"", "ops@example.com", "http://example.com"} {
		sender, err := NewClient(webPushConfig(public, private, subject))
		assert.Error(t, err, "subject %q should be rejected", subject)
		assert.Nil(t, sender)
	}
}
