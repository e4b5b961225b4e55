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

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func writeTempDotEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterLayerOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "first.db", Driver: DriverMattn}}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "second.db"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverMattn, cfg.Storage.DB.Driver, "zero value must not override")
}

func TestBuild_RejectsUnknownDriver(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DB: DB{Driver: "postgres"}}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultPinboardRateLimit, cfg.Adapter.Pinboard.RateLimit)
	assert.Equal(t, DefaultAPIPageSize, cfg.Sync.APIPageSize)
	assert.Equal(t, DefaultLinkdingRefreshThrottle, cfg.Sync.LinkdingRefreshThrottle)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_ReadsFileFromDOTENV(t *testing.T) {
	path := writeTempDotEnv(t, "STORAGE_DB_DSN=dotenv.db\nADAPTER_LINKDING_TOKEN=abc\n")
	t.Setenv("DOTENV", path)

	b := newConfigBuilder().withDotEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "dotenv.db", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, "abc", b.configs[0].Adapter.Linkding.Token)

	_, set := os.LookupEnv("STORAGE_DB_DSN")
	assert.False(t, set, "dotenv must not leak into the process environment")
}

func TestWithDotEnv_MissingFileIsError(t *testing.T) {
	t.Setenv("DOTENV", filepath.Join(t.TempDir(), "absent.env"))

	b := newConfigBuilder().withDotEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithDotEnv_NoFileNoLayer(t *testing.T) {
	t.Setenv("DOTENV", "")

	b := newConfigBuilder().withDotEnv()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("WORKERS_SYNC_INTERVAL", "90s")
	t.Setenv("APP_USE_LINKDING", "true")
	t.Setenv("ADAPTER_LINKDING_BASE_URL", "https://links.example.com")

	cfg, err := newConfigBuilder().withDefaults().withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Workers.SyncInterval)
	assert.True(t, cfg.App.UseLinkding)
	assert.Equal(t, "https://links.example.com", cfg.Adapter.Linkding.BaseURL)
	assert.Equal(t, DefaultPendingSyncInterval, cfg.Workers.PendingSyncInterval)
}

func TestWithEnv_InvalidValueIsError(t *testing.T) {
	t.Setenv("SYNC_API_PAGE_SIZE", "lots")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_OverridesEnv(t *testing.T) {
	t.Setenv("STORAGE_DB_DSN", "env.db")

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-d", "flag.db"}).
		build()
	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
}

func TestWithFlags_UnknownFlagIsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathNoLayer(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_PathFromFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{
			"pinboard": map[string]any{"auth_token": "user:HEX", "rate_limit": "5s"},
		},
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-c", path}).
		withJSON().
		build()
	require.NoError(t, err)
	assert.Equal(t, "user:HEX", cfg.Adapter.Pinboard.AuthToken)
	assert.Equal(t, 5*time.Second, cfg.Adapter.Pinboard.RateLimit)
}

func TestWithJSON_BadFileIsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_FullChain(t *testing.T) {
	dotEnv := writeTempDotEnv(t, "STORAGE_DB_DSN=dotenv.db\nAPP_LOG_LEVEL=warn\n")
	t.Setenv("DOTENV", dotEnv)
	t.Setenv("APP_LOG_LEVEL", "info")

	jsonPath := writeTempJSONConfig(t, map[string]any{
		"sync": map[string]any{"api_page_size": 500},
	})
	t.Setenv("CONFIG", jsonPath)

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"bookmark-keeper", "-no-api"}

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)
	assert.Equal(t, "dotenv.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.True(t, cfg.App.NoAPIMode)
	assert.Equal(t, 500, cfg.Sync.APIPageSize)
}
