package retry

import (
	"context"
	"errors"
	"time"
)

// ErrRetry asks Blocking to call the function again.
var ErrRetry = errors.New("retry")

// ErrGaveUp is returned by a Backoff made by Limited after it runs out of attempts.
var ErrGaveUp = errors.New("gave up retrying")

// Backoff is a (blocking) function returns when to retry.
//
// # Args
//
// - context: context. If context is done, Backoff should return ctx.Err().
//
// # Returns
//
// - error: nil to retry, non-nil to stop retrying.
type Backoff func(context.Context) error

// StaticBackoff returns a Backoff which waits for a fixed interval.
//
// # Args
//
// - interval: interval to wait.
//
// # Returns
//
// Backoff, which waits for `interval` or for context to be done.
func StaticBackoff(interval time.Duration) Backoff {
	return ExponentialBackoff(interval, 1)
}

// ExponentialBackoff returns a Backoff which waits longer and longer.
//
// # Args
//
// - initial: the first interval.
//
// - r: multiplier of interval.
//
// # Returns
//
// Backoff. For N-th call, it waits for `initial * r^N` or context to be done.
func ExponentialBackoff(initial time.Duration, r float64) Backoff {
	interval := initial
	return func(ctx context.Context) error {
		timer := time.NewTimer(interval)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			interval = time.Duration(float64(interval) * r)
			return nil
		}
	}
}

// Limited lets b be waited at most n times.
//
// # Args
//
// - n: how many times b can be waited.
//
// - b: backoff to be limited.
//
// # Returns
//
// Backoff, which returns ErrGaveUp after n waits.
func Limited(n int, b Backoff) Backoff {
	count := 0
	return func(ctx context.Context) error {
		if n <= count {
			return ErrGaveUp
		}
		count += 1
		return b(ctx)
	}
}

// Blocking calls f until it returns nil or non-retry error.
//
// The first call is made without waiting.
//
// # Args
//
// - ctx: context
//
// - b: backoff function
//
// - f: function to be called. If f returns ErrRetry, Blocking calls f again after backoff.
//
// # Returns
//
// - T: last return value of f
//
// - error: error returned by f. When b stops retrying, it is joined with the error of b.
func Blocking[T any](ctx context.Context, b Backoff, f func() (T, error)) (T, error) {
	for {
		last, err := f()
		if err == nil || !errors.Is(err, ErrRetry) {
			return last, err
		}
		if berr := b(ctx); berr != nil {
			return last, errors.Join(err, berr)
		}
	}
}
