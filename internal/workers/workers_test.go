// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/mock"
	"github.com/MKhiriev/go-bookmark-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// countingTask counts its runs and fails when err is set.
type countingTask struct {
	calls atomic.Int64
	err   error
}

func (c *countingTask) Run(context.Context) error {
	c.calls.Add(1)
	return c.err
}

// funcWorker adapts a function to Worker.
type funcWorker func(ctx context.Context) error

func (f funcWorker) Run(ctx context.Context) error { return f(ctx) }

// ── PeriodicWorker ───────────────────────────────────────────────────────────

func TestPeriodicWorker_RunsImmediatelyAndOnTicks(t *testing.T) {
	task := &countingTask{}
	w := NewPeriodicWorker("test", 10*time.Millisecond, task.Run, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()

	require.NoError(t, w.Run(ctx))
	assert.GreaterOrEqual(t, task.calls.Load(), int64(3))
}

func TestPeriodicWorker_KeepsRunningAfterFailures(t *testing.T) {
	task := &countingTask{err: errors.New("remote down")}
	w := NewPeriodicWorker("test", 5*time.Millisecond, task.Run, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	require.NoError(t, w.Run(ctx))
	assert.GreaterOrEqual(t, task.calls.Load(), int64(2))
}

func TestPeriodicWorker_StopsRunningAfterCancel(t *testing.T) {
	task := &countingTask{}
	w := NewPeriodicWorker("test", 5*time.Millisecond, task.Run, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, w.Run(ctx))
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	<-done

	callsAfterStop := task.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, callsAfterStop, task.calls.Load())
}

func TestPeriodicWorker_DefaultInterval(t *testing.T) {
	w := NewPeriodicWorker("test", 0, (&countingTask{}).Run, logger.Nop())
	assert.Equal(t, DefaultInterval, w.interval)
}

// ── Workers ──────────────────────────────────────────────────────────────────

func TestWorkers_Run_AllWorkersAreStarted(t *testing.T) {
	var started atomic.Int64
	worker := funcWorker(func(ctx context.Context) error {
		started.Add(1)
		<-ctx.Done()
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.NoError(t, NewWorkers(worker, worker, worker).Run(ctx))
	assert.Equal(t, int64(3), started.Load())
}

func TestWorkers_Run_FirstErrorStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	failing := funcWorker(func(context.Context) error { return boom })

	stopped := make(chan struct{})
	waiting := funcWorker(func(ctx context.Context) error {
		<-ctx.Done()
		close(stopped)
		return nil
	})

	err := NewWorkers(waiting, failing).Run(context.Background())
	require.ErrorIs(t, err, boom)

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("sibling worker was not cancelled")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	require.NoError(t, NewWorkers().Run(context.Background()))
	require.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestNewClientWorkers_RunsServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pending := mock.NewMockPendingSyncService(ctrl)
	refresher := mock.NewMockCacheRefresher(ctrl)
	pending.EXPECT().SyncPending(gomock.Any()).Return(nil).MinTimes(1)
	refresher.EXPECT().Refresh(gomock.Any()).Return(nil).MinTimes(1)

	services := &service.ClientServices{PendingSync: pending, CacheRefresher: refresher}
	ws := NewClientWorkers(services, config.ClientWorkers{SyncInterval: time.Hour, PendingSyncInterval: time.Hour}, logger.Nop())
	require.Len(t, ws.workers, 2)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	require.NoError(t, ws.Run(ctx))
}
