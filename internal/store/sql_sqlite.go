// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
)

// busyTimeoutMillis is how long a connection waits on a locked database.
const busyTimeoutMillis = 5000

var connectPragmas = []string{
	"PRAGMA journal_mode=WAL",
	fmt.Sprintf("PRAGMA busy_timeout=%d", busyTimeoutMillis),
	"PRAGMA foreign_keys=ON",
}

// NewConnectSQLite opens the SQLite file named by cfg.DSN with the
// configured driver, creating the file when missing.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	driver := cfg.Driver
	switch driver {
	case "":
		driver = config.DriverMattn
	case config.DriverMattn, config.DriverModernc:
	default:
		log.Error().Str("func", "NewConnectSQLite").Str("driver", driver).Msg("unknown sqlite driver")
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}

	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}

	for _, pragma := range connectPragmas {
		if _, err = conn.ExecContext(ctx, pragma); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Str("pragma", pragma).Msg("error applying pragma")
			conn.Close()
			return nil, fmt.Errorf("error applying %q: %w", pragma, err)
		}
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("driver", driver).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
