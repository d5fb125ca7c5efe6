package observability

import (
	"context"
	"log/slog"
	"time"
)

// Timer tracks the duration of an operation.
type Timer struct {
	operation string
	start     time.Time
	logger    *slog.Logger
}

// StartTimer creates a new timer for the given operation.
func StartTimer(operation string) *Timer {
	return &Timer{
		operation: operation,
		start:     time.Now(),
	}
}

// WithLogger adds a logger to the timer for automatic logging on stop.
func (t *Timer) WithLogger(logger *slog.Logger) *Timer {
	t.logger = logger
	return t
}

// Stop logs the duration at debug level and returns it. A non-nil err is
// logged at warn instead.
func (t *Timer) Stop(ctx context.Context, err error) time.Duration {
	duration := time.Since(t.start)
	if t.logger == nil {
		return duration
	}

	if err != nil {
		t.logger.WarnContext(ctx, "operation failed",
			"operation", t.operation,
			DurationKey, duration.Milliseconds(),
			ErrorKey, err,
		)
		return duration
	}

	t.logger.DebugContext(ctx, "operation completed",
		"operation", t.operation,
		DurationKey, duration.Milliseconds(),
	)
	return duration
}

// Elapsed returns the time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
