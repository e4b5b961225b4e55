package config

import (
	"fmt"
	"time"
)

// ClientApp holds mode switches and presentation settings.
type ClientApp struct {
	// NoAPIMode and ReviewMode select the local-only backend.
	NoAPIMode  bool
	ReviewMode bool
	// UseLinkding selects the Linkding backend.
	UseLinkding bool
	// DisplayDateLayout formats Post.DisplayDateTime.
	DisplayDateLayout string
	// LogLevel is a zerolog level name.
	LogLevel string
	// LogDir is where the client log file is written.
	LogDir string
}

// ClientPinboard holds the Pinboard-compatible API settings.
type ClientPinboard struct {
	BaseURL   string
	AuthToken string
	RateLimit time.Duration
}

// ClientLinkding holds the Linkding-compatible API settings.
type ClientLinkding struct {
	BaseURL string
	Token   string
}

// ClientAdapter holds network settings used by the remote adapters.
type ClientAdapter struct {
	Pinboard ClientPinboard
	Linkding ClientLinkding
	// RequestTimeout is the timeout of a single outbound request.
	RequestTimeout time.Duration
	// ConnectivityURL is the probe target; empty means the backend base URL.
	ConnectivityURL string
	// ConnectivityTTL is how long a probe result stays valid.
	ConnectivityTTL time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	DSN    string
	Driver string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains background worker intervals.
type ClientWorkers struct {
	SyncInterval        time.Duration
	PendingSyncInterval time.Duration
}

// ClientSync contains paging and refresh tuning.
type ClientSync struct {
	APIPageSize              int
	LocalPageSize            int
	MalformedObjectThreshold int
	LinkdingRefreshThrottle  time.Duration
}

// ClientConfig is the configuration view consumed by the bookmark client.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Sync    ClientSync
}

// GetClientConfig builds and validates a client config view from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			NoAPIMode:         cfg.App.NoAPIMode,
			ReviewMode:        cfg.App.ReviewMode,
			UseLinkding:       cfg.App.UseLinkding,
			DisplayDateLayout: cfg.App.DisplayDateLayout,
			LogLevel:          cfg.App.LogLevel,
			LogDir:            cfg.App.LogDir,
		},
		Adapter: ClientAdapter{
			Pinboard: ClientPinboard{
				BaseURL:   cfg.Adapter.Pinboard.BaseURL,
				AuthToken: cfg.Adapter.Pinboard.AuthToken,
				RateLimit: cfg.Adapter.Pinboard.RateLimit,
			},
			Linkding: ClientLinkding{
				BaseURL: cfg.Adapter.Linkding.BaseURL,
				Token:   cfg.Adapter.Linkding.Token,
			},
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			ConnectivityURL: cfg.Adapter.ConnectivityURL,
			ConnectivityTTL: cfg.Adapter.ConnectivityTTL,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN:    cfg.Storage.DB.DSN,
				Driver: cfg.Storage.DB.Driver,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:        cfg.Workers.SyncInterval,
			PendingSyncInterval: cfg.Workers.PendingSyncInterval,
		},
		Sync: ClientSync{
			APIPageSize:              cfg.Sync.APIPageSize,
			LocalPageSize:            cfg.Sync.LocalPageSize,
			MalformedObjectThreshold: cfg.Sync.MalformedObjectThreshold,
			LinkdingRefreshThrottle:  cfg.Sync.LinkdingRefreshThrottle,
		},
	}
}
