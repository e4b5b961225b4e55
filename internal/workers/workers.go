package workers

import (
	"context"

	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/service"
	"golang.org/x/sync/errgroup"
)

// Workers runs a group of workers concurrently.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewClientWorkers returns the pending-sync replay and the cache refresh
// workers of the client.
func NewClientWorkers(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	return NewWorkers(
		NewPeriodicWorker("pending_sync", cfg.PendingSyncInterval, services.PendingSync.SyncPending, logger),
		NewPeriodicWorker("cache_refresh", cfg.SyncInterval, services.CacheRefresher.Refresh, logger),
	)
}

// Run starts every worker and waits for all of them. The first worker error
// cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
