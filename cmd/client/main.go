package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bookmark-keeper/internal/adapter"
	"github.com/MKhiriev/go-bookmark-keeper/internal/client"
	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/mapper"
	"github.com/MKhiriev/go-bookmark-keeper/internal/service"
	"github.com/MKhiriev/go-bookmark-keeper/internal/store"
	"github.com/MKhiriev/go-bookmark-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("bookmark-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("bookmark-client", cfg.App.LogDir)
	if !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dates := mapper.NewDateFormatter(cfg.App.DisplayDateLayout)
	storages, err := store.NewClientStorages(ctx, cfg.Storage, dates, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	adapters, err := adapter.NewClientAdapters(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote adapters")
	}

	services := service.NewClientServices(storages, adapters, *cfg, log)

	app, err := client.NewApp(services, workers.NewClientWorkers(services, cfg.Workers, log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		stop()
		storages.Close()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
