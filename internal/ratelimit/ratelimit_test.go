package ratelimit

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_SpacesCalls(t *testing.T) {
	const interval = 50 * time.Millisecond
	r := NewRunner(interval)

	var (
		mu     sync.Mutex
		starts []time.Time
		wg     sync.WaitGroup
	)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Run(context.Background(), func(context.Context) error {
				mu.Lock()
				starts = append(starts, time.Now())
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	require.Len(t, starts, 4)
	for i := 1; i < len(starts); i++ {
		gap := starts[i].Sub(starts[i-1])
		assert.GreaterOrEqual(t, gap, interval-5*time.Millisecond, "gap %d", i)
	}
}

func TestRunner_FIFO(t *testing.T) {
	r := NewRunner(100 * time.Millisecond)

	// occupy the slot so every following caller queues
	require.NoError(t, r.Run(context.Background(), func(context.Context) error { return nil }))

	var (
		mu    sync.Mutex
		order []int
		wg    sync.WaitGroup
	)
	for i := range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Run(context.Background(), func(context.Context) error {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil
			})
		}()
		// make arrival order deterministic
		require.Eventually(t, func() bool {
			r.mu.Lock()
			defer r.mu.Unlock()
			return len(r.waiters) == i+1
		}, time.Second, time.Millisecond)
	}
	wg.Wait()

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestRunner_CancelWhileQueued(t *testing.T) {
	r := NewRunner(100 * time.Millisecond)
	require.NoError(t, r.Run(context.Background(), func(context.Context) error { return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	var ran atomic.Bool
	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx, func(context.Context) error {
			ran.Store(true)
			return nil
		})
	}()

	require.Eventually(t, func() bool {
		r.mu.Lock()
		defer r.mu.Unlock()
		return len(r.waiters) == 1
	}, time.Second, time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
	assert.False(t, ran.Load())

	// the queue does not keep the cancelled caller
	r.mu.Lock()
	assert.Empty(t, r.waiters)
	r.mu.Unlock()

	// and the next caller is still admitted
	require.NoError(t, r.Run(context.Background(), func(context.Context) error { return nil }))
}

func TestRunner_BodyDoesNotHoldSlotPastInterval(t *testing.T) {
	r := NewRunner(10 * time.Millisecond)
	release := make(chan struct{})

	go func() {
		_ = r.Run(context.Background(), func(context.Context) error {
			<-release
			return nil
		})
	}()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	time.Sleep(5 * time.Millisecond)

	assert.NoError(t, r.Run(ctx, func(context.Context) error { return nil }))
}

func TestDo(t *testing.T) {
	r := NewRunner(time.Millisecond)

	v, err := Do(context.Background(), r, func(context.Context) (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	boom := errors.New("boom")
	_, err = Do(context.Background(), r, func(context.Context) (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
}
