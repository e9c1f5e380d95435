// Package lifecycle holds shared timeouts for process start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful-shutdown waits.
const DefaultTimeout = 10 * time.Second
