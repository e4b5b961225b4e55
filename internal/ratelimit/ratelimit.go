// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit spaces calls to a remote API. A [Runner] admits one
// caller per interval in strict arrival order.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Runner admits at most one body start per interval. Waiting callers are
// served first come, first served. The zero value is not usable; use
// [NewRunner].
type Runner struct {
	interval time.Duration

	mu      sync.Mutex
	busy    bool
	waiters []chan struct{}
}

// NewRunner returns a runner admitting one call per interval.
func NewRunner(interval time.Duration) *Runner {
	return &Runner{interval: interval}
}

// Run waits for the slot, schedules its release interval after admission
// and runs body. The slot is released on time even if body is still
// running. If ctx ends while waiting, Run returns ctx.Err() without running
// body.
func (r *Runner) Run(ctx context.Context, body func(ctx context.Context) error) error {
	if err := r.acquire(ctx); err != nil {
		return err
	}
	time.AfterFunc(r.interval, r.release)

	return body(ctx)
}

// Do is the value-returning form of [Runner.Run].
func Do[T any](ctx context.Context, r *Runner, body func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := r.Run(ctx, func(ctx context.Context) error {
		var err error
		result, err = body(ctx)
		return err
	})
	return result, err
}

func (r *Runner) acquire(ctx context.Context) error {
	r.mu.Lock()
	if !r.busy {
		r.busy = true
		r.mu.Unlock()
		return nil
	}

	wait := make(chan struct{})
	r.waiters = append(r.waiters, wait)
	r.mu.Unlock()

	select {
	case <-wait:
		return nil
	case <-ctx.Done():
	}

	r.mu.Lock()
	for i, w := range r.waiters {
		if w == wait {
			r.waiters = append(r.waiters[:i], r.waiters[i+1:]...)
			r.mu.Unlock()
			return ctx.Err()
		}
	}
	r.mu.Unlock()

	// the slot was granted concurrently with the cancellation; pass it on
	r.release()
	return ctx.Err()
}

// release hands the slot to the oldest waiter, or frees it.
func (r *Runner) release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.waiters) == 0 {
		r.busy = false
		return
	}

	next := r.waiters[0]
	r.waiters = r.waiters[1:]
	close(next)
}
