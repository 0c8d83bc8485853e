// Package lifecycle holds shared timeouts for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of infrastructure
// components such as the HTTP server and the database pool.
const DefaultTimeout = 10 * time.Second
