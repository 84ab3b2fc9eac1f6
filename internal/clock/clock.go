// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is
// canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Loop invokes fn immediately and then once per interval until the context is
// canceled, returning the context error.
func Loop(ctx context.Context, interval time.Duration, fn func(context.Context)) error {
	for {
		fn(ctx)
		if err := SleepWithContext(ctx, interval); err != nil {
			return err
		}
	}
}
