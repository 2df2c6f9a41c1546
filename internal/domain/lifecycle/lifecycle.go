// Package lifecycle holds process lifecycle constants shared by the
// infrastructure and delivery layers.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown.
const DefaultTimeout = 10 * time.Second
