package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses args into a partial configuration.
//
// Flags:
//
//	-c/-config         JSON config file path
//	-d                 SQLite database file
//	-driver            SQLite driver: sqlite3 or sqlite
//	-no-api            keep everything local
//	-linkding          use the Linkding backend
//	-pinboard-url      Pinboard API root
//	-pinboard-token    Pinboard API token
//	-pinboard-rate     minimum spacing between Pinboard calls (e.g. 3s)
//	-linkding-url      Linkding instance root
//	-linkding-token    Linkding API token
//	-request-timeout   outgoing request timeout (e.g. 15s)
//	-sync-interval     cache refresh interval (e.g. 5m)
//	-pending-interval  pending mutation replay interval (e.g. 1m)
//	-page-size         remote page size
//	-log-level         zerolog level name
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("bookmark-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		jsonConfigPath  string
		dsn             string
		driver          string
		noAPI           bool
		useLinkding     bool
		pinboardURL     string
		pinboardToken   string
		pinboardRate    time.Duration
		linkdingURL     string
		linkdingToken   string
		requestTimeout  time.Duration
		syncInterval    time.Duration
		pendingInterval time.Duration
		pageSize        int
		logLevel        string
	)

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dsn, "d", "", "SQLite database file")
	fs.StringVar(&driver, "driver", "", "SQLite driver: sqlite3 or sqlite")
	fs.BoolVar(&noAPI, "no-api", false, "Keep everything local")
	fs.BoolVar(&useLinkding, "linkding", false, "Use the Linkding backend")
	fs.StringVar(&pinboardURL, "pinboard-url", "", "Pinboard API root")
	fs.StringVar(&pinboardToken, "pinboard-token", "", "Pinboard API token")
	fs.DurationVar(&pinboardRate, "pinboard-rate", 0, "Minimum spacing between Pinboard calls")
	fs.StringVar(&linkdingURL, "linkding-url", "", "Linkding instance root")
	fs.StringVar(&linkdingToken, "linkding-token", "", "Linkding API token")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outgoing request timeout")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Cache refresh interval")
	fs.DurationVar(&pendingInterval, "pending-interval", 0, "Pending mutation replay interval")
	fs.IntVar(&pageSize, "page-size", 0, "Remote page size")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			NoAPIMode:   noAPI,
			UseLinkding: useLinkding,
			LogLevel:    logLevel,
		},
		Storage: Storage{
			DB: DB{DSN: dsn, Driver: driver},
		},
		Adapter: Adapter{
			Pinboard: Pinboard{
				BaseURL:   pinboardURL,
				AuthToken: pinboardToken,
				RateLimit: pinboardRate,
			},
			Linkding: Linkding{
				BaseURL: linkdingURL,
				Token:   linkdingToken,
			},
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval:        syncInterval,
			PendingSyncInterval: pendingInterval,
		},
		Sync: Sync{
			APIPageSize: pageSize,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
