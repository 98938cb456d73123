package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/go-todo-lists/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// Janitor periodically removes expired sessions from a SessionStore.
type Janitor struct {
	store    ports.SessionStore
	interval time.Duration
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewJanitor creates a Janitor that sweeps store every interval. metrics may
// be nil.
func NewJanitor(store ports.SessionStore, interval time.Duration, metrics *telemetry.Metrics, logger *slog.Logger) *Janitor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Janitor{store: store, interval: interval, metrics: metrics, logger: logger}
}

// Run sweeps until ctx is cancelled. A non-positive interval disables it.
func (j *Janitor) Run(ctx context.Context) {
	if j.interval <= 0 {
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep deletes expired sessions once and returns how many were removed.
// Failures are logged, not returned.
func (j *Janitor) Sweep(ctx context.Context) int {
	n, err := j.store.DeleteExpired(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "failed to sweep expired sessions",
			slog.String("operation", "Janitor.Sweep"),
			slog.Any("error", err),
		)
		return 0
	}
	if n > 0 {
		j.logger.InfoContext(ctx, "swept expired sessions", slog.Int("count", n))
		if j.metrics != nil {
			j.metrics.SessionsExpired.Add(ctx, int64(n))
		}
	}
	return n
}
