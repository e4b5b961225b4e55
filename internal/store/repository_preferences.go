package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
)

const (
	getPreference = `SELECT value FROM preferences WHERE key = ?;`

	setPreference = `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`
)

type preferencesRepository struct {
	*DB
	logger *logger.Logger
}

func NewPreferencesRepository(db *DB, logger *logger.Logger) PreferencesRepository {
	return &preferencesRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *preferencesRepository) GetPreference(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := p.DB.QueryRowContext(ctx, getPreference, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "preferencesRepository.GetPreference").
			Str("key", key).
			Msg("failed to read preference")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (p *preferencesRepository) SetPreference(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := p.DB.ExecContext(ctx, setPreference, key, value); err != nil {
		log.Err(err).
			Str("func", "preferencesRepository.SetPreference").
			Str("key", key).
			Msg("failed to write preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
