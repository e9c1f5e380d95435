package impl

import (
	"context"
	"errors"
	"net"
	"regexp"
	"strings"
)

// Coarse error codes recorded in the delivery ledger.
const (
	errCodeTimeout = "timeout"
	errCodeUnknown = "unknown"
)

// Anchored on the "status NNN" phrasing the push transports emit, so a bare
// in-range number elsewhere in the message never reads as an HTTP status.
var httpStatusPattern = regexp.MustCompile(`(?i)\bstatus:? ([1-5][0-9]{2})\b`)

// classifyError derives a coarse error code from a final send failure. An
// embedded HTTP status wins over a timeout signature so a response like
// "status 504: upstream timeout" classifies as http_504.
func classifyError(err error) string {
	if err == nil {
		return ""
	}

	text := err.Error()

	if match := httpStatusPattern.FindStringSubmatch(text); match != nil {
		return "http_" + match[1]
	}

	if isTimeout(err) || strings.Contains(strings.ToLower(text), "timeout") {
		return errCodeTimeout
	}

	return errCodeUnknown
}

// isTerminalCode reports whether an error code marks the subscription as
// permanently gone, which triggers the token disable side effect.
func isTerminalCode(code string) bool {
	return code == "http_404" || code == "http_410"
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}
