package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/store"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

// Preference keys.
const (
	PrefNoAPIMode          = "no_api_mode"
	PrefReviewMode         = "review_mode"
	PrefUseLinkding        = "use_linkding"
	PrefPinboardLastUpdate = "pinboard_last_update"
	PrefLinkdingLastUpdate = "linkding_last_update"
)

// AppModeProvider derives the [models.AppMode] from the configured defaults
// overridden by persisted preferences. The zero mode is
// [models.AppModeUnset] until Refresh or SetMode runs.
type AppModeProvider struct {
	preferences store.PreferencesRepository
	defaults    config.ClientApp

	mu      sync.Mutex
	mode    models.AppMode
	changed chan struct{}

	logger *logger.Logger
}

func NewAppModeProvider(preferences store.PreferencesRepository, defaults config.ClientApp, logger *logger.Logger) *AppModeProvider {
	return &AppModeProvider{
		preferences: preferences,
		defaults:    defaults,
		changed:     make(chan struct{}),
		logger:      logger,
	}
}

// Refresh recomputes the mode from the preferences.
func (p *AppModeProvider) Refresh(ctx context.Context) (models.AppMode, error) {
	noAPI, err := p.flag(ctx, PrefNoAPIMode, p.defaults.NoAPIMode)
	if err != nil {
		return models.AppModeUnset, err
	}
	review, err := p.flag(ctx, PrefReviewMode, p.defaults.ReviewMode)
	if err != nil {
		return models.AppModeUnset, err
	}
	linkding, err := p.flag(ctx, PrefUseLinkding, p.defaults.UseLinkding)
	if err != nil {
		return models.AppModeUnset, err
	}

	mode := models.AppModePinboard
	switch {
	case noAPI || review:
		mode = models.AppModeNoAPI
	case linkding:
		mode = models.AppModeLinkding
	}

	p.set(mode)
	return mode, nil
}

// SetMode persists mode so that the next Refresh computes it, and applies
// it right away.
func (p *AppModeProvider) SetMode(ctx context.Context, mode models.AppMode) error {
	var noAPI, linkding bool
	switch mode {
	case models.AppModeNoAPI:
		noAPI = true
	case models.AppModeLinkding:
		linkding = true
	case models.AppModePinboard:
	case models.AppModeUnset:
		return fmt.Errorf("%w: mode must be set", ErrInvalidRequest)
	default:
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidRequest, mode)
	}

	prefs := []struct {
		key   string
		value bool
	}{
		{PrefNoAPIMode, noAPI},
		{PrefReviewMode, false},
		{PrefUseLinkding, linkding},
	}
	for _, pref := range prefs {
		if err := p.preferences.SetPreference(ctx, pref.key, strconv.FormatBool(pref.value)); err != nil {
			return fmt.Errorf("store %s: %w", pref.key, err)
		}
	}

	p.set(mode)
	return nil
}

func (p *AppModeProvider) Current() models.AppMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

func (p *AppModeProvider) AwaitMode(ctx context.Context) (models.AppMode, error) {
	for {
		p.mu.Lock()
		mode, changed := p.mode, p.changed
		p.mu.Unlock()

		if mode != models.AppModeUnset {
			return mode, nil
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return models.AppModeUnset, ctx.Err()
		}
	}
}

func (p *AppModeProvider) set(mode models.AppMode) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mode == mode {
		return
	}
	p.logger.Info().
		Str("from", p.mode.String()).
		Str("to", mode.String()).
		Msg("app mode changed")

	p.mode = mode
	close(p.changed)
	p.changed = make(chan struct{})
}

// flag reads a boolean preference, falling back to def when it is unset
// or unreadable as a bool.
func (p *AppModeProvider) flag(ctx context.Context, key string, def bool) (bool, error) {
	raw, err := p.preferences.GetPreference(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, nil
	}
	return v, nil
}
