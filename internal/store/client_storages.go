package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/internal/mapper"
)

// ClientStorages groups every local repository of the client. All of them
// share one [DB].
type ClientStorages struct {
	// PinboardPosts caches posts for the Pinboard and local-only modes.
	PinboardPosts LocalPostsRepository
	// LinkdingPosts caches bookmarks for the Linkding mode.
	LinkdingPosts LocalPostsRepository
	// Preferences holds the persisted account state.
	Preferences PreferencesRepository

	db *DB
}

// NewClientStorages opens the SQLite database described by cfg, applies
// the migrations and builds the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, dates *mapper.DateFormatter, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, dates, logger), nil
}

func newClientStorages(db *DB, dates *mapper.DateFormatter, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		PinboardPosts: NewPostsRepository(db, PinboardPostsTable, dates, logger),
		LinkdingPosts: NewPostsRepository(db, LinkdingPostsTable, dates, logger),
		Preferences:   NewPreferencesRepository(db, logger),
		db:            db,
	}
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
