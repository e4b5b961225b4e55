package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/service"
	"github.com/MKhiriev/go-bookmark-keeper/internal/workers"
	"golang.org/x/sync/errgroup"
)

type App struct {
	services *service.ClientServices
	workers  workers.Worker

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, workers workers.Worker, logger *logger.Logger) (*App, error) {
	if services == nil || services.Modes == nil || services.Unauthorized == nil {
		return nil, fmt.Errorf("%w: services are not initialized", ErrInvalidDependencies)
	}
	if workers == nil {
		return nil, fmt.Errorf("%w: workers are not initialized", ErrInvalidDependencies)
	}

	return &App{
		services: services,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run resolves the app mode and runs the workers until ctx ends. It returns
// [ErrUnauthorized] as soon as a remote call is rejected as unauthorized.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	mode, err := a.services.Modes.Refresh(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("failed to resolve app mode")
		return fmt.Errorf("resolve app mode: %w", err)
	}
	a.logger.Info().Str("mode", mode.String()).Msg("client started")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.workers.Run(ctx)
	})
	g.Go(func() error {
		return a.watchUnauthorized(ctx)
	})

	if err = g.Wait(); err != nil {
		return err
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

func (a *App) watchUnauthorized(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	case <-a.services.Unauthorized.Events():
		a.logger.Error().
			Str("func", "App.watchUnauthorized").
			Str("mode", a.services.Modes.Current().String()).
			Msg("remote rejected the API token, check the configured token")
		return ErrUnauthorized
	}
}
