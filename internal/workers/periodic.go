package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
)

// DefaultInterval is used when a worker is given a non-positive interval.
const DefaultInterval = 5 * time.Minute

// Task is one run of a periodic job.
type Task func(ctx context.Context) error

// PeriodicWorker runs a task right away and then every interval. Task
// failures are logged and do not stop the worker.
type PeriodicWorker struct {
	name     string
	interval time.Duration
	task     Task

	logger *logger.Logger
}

func NewPeriodicWorker(name string, interval time.Duration, task Task, logger *logger.Logger) *PeriodicWorker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &PeriodicWorker{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logger.WithComponent(name),
	}
}

func (w *PeriodicWorker) Run(ctx context.Context) error {
	w.logger.Info().Dur("interval", w.interval).Msg("worker started")
	defer w.logger.Info().Msg("worker stopped")

	ctx = w.logger.WithContext(ctx)

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		w.runOnce(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

func (w *PeriodicWorker) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	started := time.Now()
	if err := w.task(ctx); err != nil && ctx.Err() == nil {
		w.logger.Err(err).
			Str("func", "PeriodicWorker.runOnce").
			Str("worker", w.name).
			Msg("task failed")
		return
	}
	w.logger.Debug().Dur("took", time.Since(started)).Msg("task done")
}
