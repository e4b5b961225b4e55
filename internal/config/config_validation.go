// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Supported values of [DB.Driver].
const (
	DriverMattn   = "sqlite3"
	DriverModernc = "sqlite"
)

// validate checks the merged [StructuredConfig] for values that are wrong no
// matter which runtime consumes them. Unset fields are accepted; the
// consumer view validates completeness.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "", DriverMattn, DriverModernc:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if !cfg.App.NoAPIMode {
		if cfg.App.UseLinkding && cfg.Adapter.Linkding.BaseURL == "" {
			return fmt.Errorf("%w: linkding base url is empty", ErrInvalidAdapterConfigs)
		}
		if !cfg.App.UseLinkding && cfg.Adapter.Pinboard.BaseURL == "" {
			return fmt.Errorf("%w: pinboard base url is empty", ErrInvalidAdapterConfigs)
		}
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.PendingSyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Sync.APIPageSize <= 0 || cfg.Sync.LocalPageSize <= 0 || cfg.Sync.MalformedObjectThreshold < 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.App.DisplayDateLayout == "" {
		return ErrInvalidAppConfigs
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return nil
}
