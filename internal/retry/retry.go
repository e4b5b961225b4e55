// Package retry re-runs failed remote calls with exponential backoff.
package retry

import (
	"context"
	"sync"
	"time"

	goretry "github.com/sethvargo/go-retry"
)

// Policy describes how often and how patiently a call is retried.
type Policy struct {
	// Attempts is the total number of runs, including the first one.
	Attempts int
	// InitialDelay is the pause after the first failure.
	InitialDelay time.Duration
	// MaxDelay caps every pause.
	MaxDelay time.Duration
	// Factor multiplies the pause after every failure.
	Factor float64
}

var (
	// DefaultIOPolicy retries transient I/O failures.
	DefaultIOPolicy = Policy{
		Attempts:     5,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     time.Second,
		Factor:       2,
	}

	// DefaultTooManyRequestsPolicy backs off after HTTP 429 answers.
	DefaultTooManyRequestsPolicy = Policy{
		Attempts:     3,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     2 * time.Second,
		Factor:       2,
	}
)

// Do runs fn until it succeeds, fails with an error shouldRetry rejects, or
// the policy runs out of attempts. The error of the last run is returned as
// is. A cancelled ctx stops the waiting and returns ctx.Err().
func Do(ctx context.Context, p Policy, shouldRetry func(error) bool, fn func(ctx context.Context) error) error {
	return goretry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && shouldRetry(err) {
			return goretry.RetryableError(err)
		}
		return err
	})
}

// Value is the value-returning form of [Do].
func Value[T any](ctx context.Context, p Policy, shouldRetry func(error) bool, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := Do(ctx, p, shouldRetry, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	})
	return result, err
}

func (p Policy) backoff() goretry.Backoff {
	var (
		mu   sync.Mutex
		next = p.InitialDelay
	)
	factor := p.Factor
	if factor < 1 {
		factor = 1
	}

	grow := goretry.BackoffFunc(func() (time.Duration, bool) {
		mu.Lock()
		defer mu.Unlock()

		current := next
		next = time.Duration(float64(next) * factor)
		if p.MaxDelay > 0 && next > p.MaxDelay {
			next = p.MaxDelay
		}
		return current, false
	})

	retries := uint64(0)
	if p.Attempts > 1 {
		retries = uint64(p.Attempts - 1)
	}

	b := goretry.WithMaxRetries(retries, grow)
	if p.MaxDelay > 0 {
		b = goretry.WithCappedDuration(p.MaxDelay, b)
	}
	return b
}
