package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {"use_linkding": true, "display_date_layout": "2006-01-02", "log_level": "info"},
		"storage": {"db": {"dsn": "json.db", "driver": "sqlite"}},
		"adapter": {
			"linkding": {"base_url": "https://ld.example", "token": "t"},
			"request_timeout": "20s",
			"connectivity_ttl": 1000000000
		},
		"workers": {"sync_interval": "10m", "pending_sync_interval": "30s"},
		"sync": {"api_page_size": 100, "local_page_size": 50, "malformed_object_threshold": 5, "linkding_refresh_throttle": "1m"}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.True(t, cfg.App.UseLinkding)
	assert.Equal(t, "2006-01-02", cfg.App.DisplayDateLayout)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverModernc, cfg.Storage.DB.Driver)
	assert.Equal(t, "https://ld.example", cfg.Adapter.Linkding.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Second, cfg.Adapter.ConnectivityTTL)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 30*time.Second, cfg.Workers.PendingSyncInterval)
	assert.Equal(t, 100, cfg.Sync.APIPageSize)
	assert.Equal(t, 5, cfg.Sync.MalformedObjectThreshold)
	assert.Equal(t, time.Minute, cfg.Sync.LinkdingRefreshThrottle)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"app":`), 0o600))
		_, err := parseJSON(path)
		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"workers":{"sync_interval":"soon"}}`), 0o600))
		_, err := parseJSON(path)
		assert.Error(t, err)
	})
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))

	out, err := json.Marshal(Duration(3 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"3s"`, string(out))
}
