package chat

import (
	"context"
	"errors"
	"time"
)

// Connection retry policy for remote storage backends.
const (
	connectAttempts  = 3
	connectBaseDelay = time.Second
)

// TransientError marks a storage backend failure worth retrying. Backends
// wrap ping and dial errors with their name so retry decisions and error
// messages both know which store was unreachable.
type TransientError struct {
	Backend string
	Err     error
}

func (e *TransientError) Error() string { return e.Backend + ": " + e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

// ConnectWithRetry runs ping until the backend answers or the connection
// policy is exhausted: three attempts with a one second delay that doubles
// after each failure. Only [TransientError] failures are retried; anything
// else aborts immediately. Returns ctx.Err() if cancelled while waiting.
func ConnectWithRetry(ctx context.Context, ping func() error) error {
	return retry(ctx, connectAttempts, connectBaseDelay, ping)
}

func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !isTransient(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

func isTransient(err error) bool {
	return errors.As(err, new(*TransientError))
}
