package scheduler

import "time"

// Tick configuration
const (
	// DefaultTickInterval matches the 20 ticks/second cadence of the host
	// game loop.
	DefaultTickInterval = 50 * time.Millisecond

	// TicksPerSecond at the default interval.
	TicksPerSecond = 20
)

// Async worker configuration
const (
	DefaultAsyncWorkers = 2
	AsyncQueueSize      = 64
)
