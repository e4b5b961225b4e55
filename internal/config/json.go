package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		NoAPIMode         bool   `json:"no_api_mode"`
		ReviewMode        bool   `json:"review_mode"`
		UseLinkding       bool   `json:"use_linkding"`
		DisplayDateLayout string `json:"display_date_layout"`
		LogLevel          string `json:"log_level"`
		LogDir            string `json:"log_dir"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		Pinboard struct {
			BaseURL   string   `json:"base_url"`
			AuthToken string   `json:"auth_token"`
			RateLimit Duration `json:"rate_limit"`
		} `json:"pinboard,omitempty"`
		Linkding struct {
			BaseURL string `json:"base_url"`
			Token   string `json:"token"`
		} `json:"linkding,omitempty"`
		RequestTimeout  Duration `json:"request_timeout"`
		ConnectivityURL string   `json:"connectivity_url"`
		ConnectivityTTL Duration `json:"connectivity_ttl"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval        Duration `json:"sync_interval"`
		PendingSyncInterval Duration `json:"pending_sync_interval"`
	} `json:"workers,omitempty"`

	Sync struct {
		APIPageSize              int      `json:"api_page_size"`
		LocalPageSize            int      `json:"local_page_size"`
		MalformedObjectThreshold int      `json:"malformed_object_threshold"`
		LinkdingRefreshThrottle  Duration `json:"linkding_refresh_throttle"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			NoAPIMode:         jsonCfg.App.NoAPIMode,
			ReviewMode:        jsonCfg.App.ReviewMode,
			UseLinkding:       jsonCfg.App.UseLinkding,
			DisplayDateLayout: jsonCfg.App.DisplayDateLayout,
			LogLevel:          jsonCfg.App.LogLevel,
			LogDir:            jsonCfg.App.LogDir,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Adapter: Adapter{
			Pinboard: Pinboard{
				BaseURL:   jsonCfg.Adapter.Pinboard.BaseURL,
				AuthToken: jsonCfg.Adapter.Pinboard.AuthToken,
				RateLimit: time.Duration(jsonCfg.Adapter.Pinboard.RateLimit),
			},
			Linkding: Linkding{
				BaseURL: jsonCfg.Adapter.Linkding.BaseURL,
				Token:   jsonCfg.Adapter.Linkding.Token,
			},
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			ConnectivityURL: jsonCfg.Adapter.ConnectivityURL,
			ConnectivityTTL: time.Duration(jsonCfg.Adapter.ConnectivityTTL),
		},
		Workers: Workers{
			SyncInterval:        time.Duration(jsonCfg.Workers.SyncInterval),
			PendingSyncInterval: time.Duration(jsonCfg.Workers.PendingSyncInterval),
		},
		Sync: Sync{
			APIPageSize:              jsonCfg.Sync.APIPageSize,
			LocalPageSize:            jsonCfg.Sync.LocalPageSize,
			MalformedObjectThreshold: jsonCfg.Sync.MalformedObjectThreshold,
			LinkdingRefreshThrottle:  time.Duration(jsonCfg.Sync.LinkdingRefreshThrottle),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from JSON strings like "1h"
// or "30s", and from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
