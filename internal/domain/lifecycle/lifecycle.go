// Package lifecycle holds shared start/stop constants for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds server shutdown and connection checks on start.
const DefaultTimeout = 10 * time.Second
