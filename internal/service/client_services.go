package service

import (
	"github.com/MKhiriev/go-bookmark-keeper/internal/adapter"
	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/mapper"
	"github.com/MKhiriev/go-bookmark-keeper/internal/store"
	"github.com/MKhiriev/go-bookmark-keeper/internal/utils"
	"github.com/MKhiriev/go-bookmark-keeper/models"
)

// ClientServices is the service layer of the client.
type ClientServices struct {
	// Modes selects the backend Posts forwards to.
	Modes *AppModeProvider
	// Unauthorized fires when a remote rejects the configured token.
	Unauthorized *UnauthorizedEvents

	Posts          PostsService
	PendingSync    PendingSyncService
	CacheRefresher CacheRefresher
}

// NewClientServices wires a posts service for the local-only mode and for
// every backend present in adapters behind a mode-switching proxy.
func NewClientServices(storages *store.ClientStorages, adapters *adapter.ClientAdapters, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	logger.Info().Msg("creating new services...")

	dates := mapper.NewDateFormatter(cfg.App.DisplayDateLayout)
	postMapper := mapper.NewPostMapper(dates)
	ids := utils.NewUUIDGenerator()
	unauthorized := NewUnauthorizedEvents()

	backends := map[models.AppMode]PostsService{
		models.AppModeNoAPI: NewNoAPIPostsService(storages.PinboardPosts, postMapper, ids, logger.WithComponent("noapi")),
	}
	if adapters.Pinboard != nil {
		backends[models.AppModePinboard] = NewPinboardPostsService(
			storages.PinboardPosts, storages.Preferences,
			adapters.Pinboard, adapters.PinboardConnectivity,
			postMapper, ids, unauthorized, cfg.Sync,
			logger.WithComponent("pinboard_posts"),
		)
	}
	if adapters.Linkding != nil {
		backends[models.AppModeLinkding] = NewLinkdingPostsService(
			storages.LinkdingPosts, storages.Preferences,
			adapters.Linkding, adapters.LinkdingConnectivity,
			postMapper, ids, unauthorized, cfg.Sync,
			logger.WithComponent("linkding_posts"),
		)
	}

	modes := NewAppModeProvider(storages.Preferences, cfg.App, logger.WithComponent("app_mode"))
	posts := NewPostsServiceProxy(modes, backends, logger)

	return &ClientServices{
		Modes:          modes,
		Unauthorized:   unauthorized,
		Posts:          posts,
		PendingSync:    NewPendingSyncService(posts, logger.WithComponent("pending_sync")),
		CacheRefresher: NewCacheRefresher(posts),
	}
}
