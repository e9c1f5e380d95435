package webpush

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferBrowser(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{"chrome fcm", "https://fcm.googleapis.com/fcm/send/abc123", BrowserChrome},
		{"firefox", "https://updates.push.services.mozilla.com/wpush/v2/xyz", BrowserFirefox},
		{"edge wns", "https://wns2-par02p.notify.windows.com/w/?token=abc", BrowserEdge},
		{"edge microsoft", "https://par02p.notify.microsoft.com/w/?token=abc", BrowserEdge},
		{"safari", "https://web.push.apple.com/QGc0dDJz", BrowserSafari},
		{"unknown host", "https://push.example.com/sub/1", ""},
		{"unparseable", "://not-a-url", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferBrowser(tt.endpoint))
		})
	}
}

func TestEndpointHost(t *testing.T) {
	assert.Equal(t, "fcm.googleapis.com", EndpointHost("https://fcm.googleapis.com/fcm/send/abc"))
	assert.Equal(t, "", EndpointHost("://broken"))
}
