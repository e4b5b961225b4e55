// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_NO_API_MODE":         "false",
		"APP_REVIEW_MODE":         "true",
		"APP_USE_LINKDING":        "true",
		"APP_DISPLAY_DATE_LAYOUT": "02.01.2006",
		"APP_LOG_LEVEL":           "warn",
		"APP_LOG_DIR":             "/var/log/bookmarks",

		"STORAGE_DB_DSN":    "/data/bookmarks.db",
		"STORAGE_DB_DRIVER": DriverModernc,

		"ADAPTER_PINBOARD_BASE_URL":   "https://api.pinboard.in/v1",
		"ADAPTER_PINBOARD_AUTH_TOKEN": "user:TOKEN",
		"ADAPTER_PINBOARD_RATE_LIMIT": "3s",
		"ADAPTER_LINKDING_BASE_URL":   "https://links.example.com",
		"ADAPTER_LINKDING_TOKEN":      "ld-token",
		"ADAPTER_REQUEST_TIMEOUT":     "20s",
		"ADAPTER_CONNECTIVITY_URL":    "https://example.com",
		"ADAPTER_CONNECTIVITY_TTL":    "15s",

		"WORKERS_SYNC_INTERVAL":         "10m",
		"WORKERS_PENDING_SYNC_INTERVAL": "1m",

		"SYNC_API_PAGE_SIZE":              "500",
		"SYNC_LOCAL_PAGE_SIZE":            "50",
		"SYNC_MALFORMED_OBJECT_THRESHOLD": "25",
		"SYNC_LINKDING_REFRESH_THROTTLE":  "90s",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.False(t, cfg.App.NoAPIMode)
	assert.True(t, cfg.App.ReviewMode)
	assert.True(t, cfg.App.UseLinkding)
	assert.Equal(t, "02.01.2006", cfg.App.DisplayDateLayout)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "/var/log/bookmarks", cfg.App.LogDir)

	assert.Equal(t, "/data/bookmarks.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverModernc, cfg.Storage.DB.Driver)

	assert.Equal(t, "https://api.pinboard.in/v1", cfg.Adapter.Pinboard.BaseURL)
	assert.Equal(t, "user:TOKEN", cfg.Adapter.Pinboard.AuthToken)
	assert.Equal(t, 3*time.Second, cfg.Adapter.Pinboard.RateLimit)
	assert.Equal(t, "https://links.example.com", cfg.Adapter.Linkding.BaseURL)
	assert.Equal(t, "ld-token", cfg.Adapter.Linkding.Token)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "https://example.com", cfg.Adapter.ConnectivityURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.ConnectivityTTL)

	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, time.Minute, cfg.Workers.PendingSyncInterval)

	assert.Equal(t, 500, cfg.Sync.APIPageSize)
	assert.Equal(t, 50, cfg.Sync.LocalPageSize)
	assert.Equal(t, 25, cfg.Sync.MalformedObjectThreshold)
	assert.Equal(t, 90*time.Second, cfg.Sync.LinkdingRefreshThrottle)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_PINBOARD_AUTH_TOKEN": "user:TOKEN",
		"STORAGE_DB_DSN":              "bookmarks.db",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "user:TOKEN", cfg.Adapter.Pinboard.AuthToken)
	assert.Empty(t, cfg.Adapter.Pinboard.BaseURL)
	assert.Zero(t, cfg.Adapter.Pinboard.RateLimit)
	assert.Equal(t, "bookmarks.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Storage.DB.Driver)

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Workers{}, cfg.Workers)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"duration", "WORKERS_SYNC_INTERVAL", "soon"},
		{"int", "SYNC_API_PAGE_SIZE", "many"},
		{"bool", "APP_NO_API_MODE", "perhaps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			err := parseEnv(&StructuredConfig{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "env")
		})
	}
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{"SYNC_LINKDING_REFRESH_THROTTLE": tt.envValue})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.expected, cfg.Sync.LinkdingRefreshThrottle)
		})
	}
}

func TestParseDotEnv(t *testing.T) {
	path := writeTempDotEnv(t, "ADAPTER_LINKDING_BASE_URL=https://links.example.com\nSYNC_API_PAGE_SIZE=42\n")

	cfg, err := parseDotEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "https://links.example.com", cfg.Adapter.Linkding.BaseURL)
	assert.Equal(t, 42, cfg.Sync.APIPageSize)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
