package translate

import (
	"context"
	"time"
)

// DelayFunc paces a translation before its result is returned, e.g. so a
// client can show progress. It must return promptly once ctx is done.
type DelayFunc func(ctx context.Context) error

// SleepDelay waits d, or until ctx is done.
func SleepDelay(d time.Duration) DelayFunc {
	return func(ctx context.Context) error {
		if d <= 0 {
			return ctx.Err()
		}
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
