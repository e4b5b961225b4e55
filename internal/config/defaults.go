package config

import "time"

// Default values applied before any other source.
const (
	DefaultDSN                      = "bookmarks.db"
	DefaultDriver                   = "sqlite3"
	DefaultDisplayDateLayout        = "02/01/06, 15:04"
	DefaultLogLevel                 = "debug"
	DefaultPinboardBaseURL          = "https://api.pinboard.in/v1/"
	DefaultPinboardRateLimit        = 3 * time.Second
	DefaultRequestTimeout           = 15 * time.Second
	DefaultConnectivityTTL          = 10 * time.Second
	DefaultSyncInterval             = 5 * time.Minute
	DefaultPendingSyncInterval      = time.Minute
	DefaultAPIPageSize              = 10000
	DefaultLocalPageSize            = 1000
	DefaultMalformedObjectThreshold = 1000
	DefaultLinkdingRefreshThrottle  = 2 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DisplayDateLayout: DefaultDisplayDateLayout,
			LogLevel:          DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN, Driver: DefaultDriver},
		},
		Adapter: Adapter{
			Pinboard: Pinboard{
				BaseURL:   DefaultPinboardBaseURL,
				RateLimit: DefaultPinboardRateLimit,
			},
			RequestTimeout:  DefaultRequestTimeout,
			ConnectivityTTL: DefaultConnectivityTTL,
		},
		Workers: Workers{
			SyncInterval:        DefaultSyncInterval,
			PendingSyncInterval: DefaultPendingSyncInterval,
		},
		Sync: Sync{
			APIPageSize:              DefaultAPIPageSize,
			LocalPageSize:            DefaultLocalPageSize,
			MalformedObjectThreshold: DefaultMalformedObjectThreshold,
			LinkdingRefreshThrottle:  DefaultLinkdingRefreshThrottle,
		},
	}
}
