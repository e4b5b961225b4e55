// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is filled by
// merging every configuration source.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds account mode switches, display and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local SQLite settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the background worker intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds paging and refresh tuning for synchronization.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG. Flags: -c, -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// NoAPIMode keeps every bookmark local and never touches the network.
	// Env: APP_NO_API_MODE
	NoAPIMode bool `env:"NO_API_MODE"`

	// ReviewMode behaves like NoAPIMode; it exists for store review builds.
	// Env: APP_REVIEW_MODE
	ReviewMode bool `env:"REVIEW_MODE"`

	// UseLinkding selects the Linkding backend instead of Pinboard.
	// Env: APP_USE_LINKDING
	UseLinkding bool `env:"USE_LINKDING"`

	// DisplayDateLayout is the Go time layout used for Post.DisplayDateTime.
	// Env: APP_DISPLAY_DATE_LAYOUT
	DisplayDateLayout string `env:"DISPLAY_DATE_LAYOUT"`

	// LogLevel is a zerolog level name (debug, info, warn, ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogDir is the directory of the client log file.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`
}

// Storage groups the local storage settings.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds SQLite connection settings.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`

	// Driver is "sqlite3" (mattn/go-sqlite3) or "sqlite" (modernc.org/sqlite).
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Adapter holds the remote API settings.
type Adapter struct {
	// Pinboard holds the Pinboard-compatible API settings.
	Pinboard Pinboard `envPrefix:"PINBOARD_"`

	// Linkding holds the Linkding-compatible API settings.
	Linkding Linkding `envPrefix:"LINKDING_"`

	// RequestTimeout bounds a single outgoing HTTP request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ConnectivityURL is probed to decide whether the remote is reachable.
	// Empty means the base URL of the active backend.
	// Env: ADAPTER_CONNECTIVITY_URL
	ConnectivityURL string `env:"CONNECTIVITY_URL"`

	// ConnectivityTTL is how long a probe result is reused.
	// Env: ADAPTER_CONNECTIVITY_TTL
	ConnectivityTTL time.Duration `env:"CONNECTIVITY_TTL"`
}

// Pinboard holds the Pinboard-compatible API settings.
type Pinboard struct {
	// BaseURL is the API root, e.g. https://api.pinboard.in/v1/.
	// Env: ADAPTER_PINBOARD_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// AuthToken is the "user:HEX" API token.
	// Env: ADAPTER_PINBOARD_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`

	// RateLimit is the minimum spacing between two API calls.
	// Env: ADAPTER_PINBOARD_RATE_LIMIT
	RateLimit time.Duration `env:"RATE_LIMIT"`
}

// Linkding holds the Linkding-compatible API settings.
type Linkding struct {
	// BaseURL is the instance root, e.g. https://links.example.com/.
	// Env: ADAPTER_LINKDING_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Token is the REST API token.
	// Env: ADAPTER_LINKDING_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds background worker intervals.
type Workers struct {
	// SyncInterval is how often the cache refresher runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// PendingSyncInterval is how often offline mutations are replayed.
	// Env: WORKERS_PENDING_SYNC_INTERVAL
	PendingSyncInterval time.Duration `env:"PENDING_SYNC_INTERVAL"`
}

// Sync holds paging and refresh tuning.
type Sync struct {
	// APIPageSize is the number of posts requested per remote page.
	// Env: SYNC_API_PAGE_SIZE
	APIPageSize int `env:"API_PAGE_SIZE"`

	// LocalPageSize is the default page size of local queries.
	// Env: SYNC_LOCAL_PAGE_SIZE
	LocalPageSize int `env:"LOCAL_PAGE_SIZE"`

	// MalformedObjectThreshold is how many posts a Pinboard page may fall
	// short of APIPageSize and still be treated as full. Pinboard drops
	// objects it cannot serialize, so pages are rarely exactly full.
	// Env: SYNC_MALFORMED_OBJECT_THRESHOLD
	MalformedObjectThreshold int `env:"MALFORMED_OBJECT_THRESHOLD"`

	// LinkdingRefreshThrottle is the minimum time between two full Linkding
	// refreshes that were not forced.
	// Env: SYNC_LINKDING_REFRESH_THROTTLE
	LinkdingRefreshThrottle time.Duration `env:"LINKDING_REFRESH_THROTTLE"`
}

// GetStructuredConfig loads and merges every configuration source using the
// process arguments for the flag layer.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
