package webpush

import (
	"net/url"
	"strings"
)

// Browser labels derived from push-service endpoints.
const (
	BrowserChrome  = "chrome"
	BrowserFirefox = "firefox"
	BrowserEdge    = "edge"
	BrowserSafari  = "safari"
)

// EndpointHost extracts the host of a subscription endpoint for the ledger.
// Returns "" when the endpoint does not parse.
func EndpointHost(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return ""
	}

	return u.Host
}

// InferBrowser guesses the subscriber's browser family from the push-service
// host. Purely informational; delivery behavior never branches on it.
func InferBrowser(endpoint string) string {
	host := strings.ToLower(EndpointHost(endpoint))

	switch {
	case strings.Contains(host, "mozilla"):
		return BrowserFirefox
	case strings.Contains(host, "microsoft") || strings.Contains(host, "wns"):
		return BrowserEdge
	case strings.Contains(host, "push.apple") || strings.Contains(host, "apple"):
		return BrowserSafari
	case strings.Contains(host, "fcm") || strings.Contains(host, "google"):
		return BrowserChrome
	default:
		return ""
	}
}
