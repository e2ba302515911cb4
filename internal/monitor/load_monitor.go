package monitor

import "context"

// LoadMetrics is a snapshot of render progress.
type LoadMetrics struct {
	// ActiveTasks is the number of charts being rendered right now
	ActiveTasks int64
	// MaxTasks is the maximum number of concurrent renders
	MaxTasks int64
	// Done counts finished renders, failed ones included
	Done int64
	// Failed counts renders released with an error
	Failed int64
	// LoadPercentage is the current load as a percentage (0-100)
	LoadPercentage float64
}

// LoadMonitor bounds and tracks concurrent chart renders.
type LoadMonitor interface {
	// GetMetrics returns current load statistics
	GetMetrics() LoadMetrics

	// Acquire blocks until a render slot is free or ctx is done.
	// The caller MUST call Release when Acquire returned nil.
	Acquire(ctx context.Context) error

	// Release frees the slot and records the outcome of the render.
	Release(err error)
}
