package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/mock"
	"github.com/MKhiriev/go-bookmark-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestAppModeProvider_Refresh(t *testing.T) {
	tests := []struct {
		name     string
		defaults config.ClientApp
		prefs    map[string]string
		want     models.AppMode
	}{
		{name: "pinboard by default", want: models.AppModePinboard},
		{name: "no api from config", defaults: config.ClientApp{NoAPIMode: true}, want: models.AppModeNoAPI},
		{name: "review mode is local only", prefs: map[string]string{PrefReviewMode: "true"}, want: models.AppModeNoAPI},
		{name: "linkding from preference", prefs: map[string]string{PrefUseLinkding: "true"}, want: models.AppModeLinkding},
		{
			name:     "preference overrides config",
			defaults: config.ClientApp{UseLinkding: true},
			prefs:    map[string]string{PrefUseLinkding: "false"},
			want:     models.AppModePinboard,
		},
		{
			name:     "no api wins over linkding",
			defaults: config.ClientApp{UseLinkding: true},
			prefs:    map[string]string{PrefNoAPIMode: "1"},
			want:     models.AppModeNoAPI,
		},
		{
			name:     "unparsable preference falls back to config",
			defaults: config.ClientApp{UseLinkding: true},
			prefs:    map[string]string{PrefUseLinkding: "maybe"},
			want:     models.AppModeLinkding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctx := context.Background()
			prefs := mock.NewMockPreferencesRepository(ctrl)
			prefs.EXPECT().GetPreference(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, key string) (string, error) {
				return tt.prefs[key], nil
			}).AnyTimes()

			provider := NewAppModeProvider(prefs, tt.defaults, logger.Nop())
			assert.Equal(t, models.AppModeUnset, provider.Current())

			got, err := provider.Refresh(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, provider.Current())
		})
	}
}

func TestAppModeProvider_Refresh_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	prefs := mock.NewMockPreferencesRepository(ctrl)
	prefs.EXPECT().GetPreference(ctx, PrefNoAPIMode).Return("", errors.New("disk"))

	provider := NewAppModeProvider(prefs, config.ClientApp{}, logger.Nop())
	_, err := provider.Refresh(ctx)
	require.Error(t, err)
	assert.Equal(t, models.AppModeUnset, provider.Current())
}

// ── SetMode ──────────────────────────────────────────────────────────────────

func TestAppModeProvider_SetMode_Persists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	prefs := mock.NewMockPreferencesRepository(ctrl)
	gomock.InOrder(
		prefs.EXPECT().SetPreference(ctx, PrefNoAPIMode, "false").Return(nil),
		prefs.EXPECT().SetPreference(ctx, PrefReviewMode, "false").Return(nil),
		prefs.EXPECT().SetPreference(ctx, PrefUseLinkding, "true").Return(nil),
	)

	provider := NewAppModeProvider(prefs, config.ClientApp{}, logger.Nop())
	require.NoError(t, provider.SetMode(ctx, models.AppModeLinkding))
	assert.Equal(t, models.AppModeLinkding, provider.Current())
}

func TestAppModeProvider_SetMode_RejectsUnset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := NewAppModeProvider(mock.NewMockPreferencesRepository(ctrl), config.ClientApp{}, logger.Nop())
	err := provider.SetMode(context.Background(), models.AppModeUnset)
	require.ErrorIs(t, err, ErrInvalidRequest)
}

// ── AwaitMode ────────────────────────────────────────────────────────────────

func TestAppModeProvider_AwaitMode_BlocksUntilSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prefs := mock.NewMockPreferencesRepository(ctrl)
	prefs.EXPECT().SetPreference(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	provider := NewAppModeProvider(prefs, config.ClientApp{}, logger.Nop())

	result := make(chan models.AppMode, 1)
	go func() {
		mode, err := provider.AwaitMode(context.Background())
		assert.NoError(t, err)
		result <- mode
	}()

	select {
	case <-result:
		t.Fatal("AwaitMode returned before a mode was set")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, provider.SetMode(context.Background(), models.AppModeNoAPI))

	select {
	case mode := <-result:
		assert.Equal(t, models.AppModeNoAPI, mode)
	case <-time.After(time.Second):
		t.Fatal("AwaitMode did not return after SetMode")
	}
}

func TestAppModeProvider_AwaitMode_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := NewAppModeProvider(mock.NewMockPreferencesRepository(ctrl), config.ClientApp{}, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	mode, err := provider.AwaitMode(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, models.AppModeUnset, mode)
}
