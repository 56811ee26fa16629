package main

import (
	"context"
	"log/slog"
	"time"
)

// shutdowner abstracts the telemetry providers so tests can verify cleanup
// order without a collector.
type shutdowner interface {
	Shutdown(context.Context) error
}

// newCleanup returns a hook that shuts the given components down in reverse
// order. Each component gets its own timeout so an unreachable collector
// cannot starve the ones after it.
func newCleanup(timeout time.Duration, components ...shutdowner) func() {
	return func() {
		for i := len(components) - 1; i >= 0; i-- {
			c := components[i]
			if c == nil {
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			if err := c.Shutdown(ctx); err != nil {
				slog.Error("failed to shut down component", "component", i, "error", err)
			}
			cancel()
		}
	}
}
