package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(defaultConfig())
}

func TestClientConfig_ValidateDefaults(t *testing.T) {
	require.NoError(t, validClientConfig().validate())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{"empty dsn", func(c *ClientConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"zero timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"pinboard without url", func(c *ClientConfig) { c.Adapter.Pinboard.BaseURL = "" }, ErrInvalidAdapterConfigs},
		{"linkding without url", func(c *ClientConfig) { c.App.UseLinkding = true }, ErrInvalidAdapterConfigs},
		{"zero sync interval", func(c *ClientConfig) { c.Workers.SyncInterval = 0 }, ErrInvalidWorkerConfigs},
		{"zero pending interval", func(c *ClientConfig) { c.Workers.PendingSyncInterval = 0 }, ErrInvalidWorkerConfigs},
		{"zero page size", func(c *ClientConfig) { c.Sync.APIPageSize = 0 }, ErrInvalidSyncConfigs},
		{"negative threshold", func(c *ClientConfig) { c.Sync.MalformedObjectThreshold = -1 }, ErrInvalidSyncConfigs},
		{"empty layout", func(c *ClientConfig) { c.App.DisplayDateLayout = "" }, ErrInvalidAppConfigs},
		{"bad log level", func(c *ClientConfig) { c.App.LogLevel = "loud" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestClientConfig_NoAPISkipsRemoteURLs(t *testing.T) {
	cfg := validClientConfig()
	cfg.App.NoAPIMode = true
	cfg.Adapter.Pinboard.BaseURL = ""
	assert.NoError(t, cfg.validate())
}
