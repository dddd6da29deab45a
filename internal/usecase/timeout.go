package usecase

import (
	"context"
	"errors"
	"os"
	"time"
)

// ErrOperationTimeout marks a remote call that exceeded the bounded wait.
// Callers may retry; no operation in this package retries automatically.
var ErrOperationTimeout = errors.New("operation timed out")

const defaultOpTimeout = 10 * time.Second

// opTimeoutFromEnv reads OP_TIMEOUT_SECONDS, falling back to 10s.
func opTimeoutFromEnv() time.Duration {
	if v := os.Getenv("OP_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil && d > 0 {
			return d
		}
	}
	return defaultOpTimeout
}

// withOpTimeout bounds a single remote operation. Every mutating use case
// call wraps its context here so a hung backend call cannot pin a caller
// indefinitely.
func withOpTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = defaultOpTimeout
	}
	return context.WithTimeout(ctx, d)
}

// mapTimeout translates a context deadline expiry into the domain timeout
// error, leaving other errors untouched.
func mapTimeout(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrOperationTimeout
	}
	return err
}
