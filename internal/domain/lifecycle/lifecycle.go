// Package lifecycle holds process-wide lifecycle settings shared by the binaries.
package lifecycle

import "time"

// DefaultTimeout bounds fx start and stop hooks.
const DefaultTimeout = 15 * time.Second
