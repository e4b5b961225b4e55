package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Full-text modules a SQLite build may ship.
const (
	FTS4 = "fts4"
	FTS5 = "fts5"
)

// ftsMigrations holds the index migration of each module. They share one
// version; only the one matching the connection is applied.
var ftsMigrations = map[string]string{
	FTS4: "00004_create_fts4_index.sql",
	FTS5: "00004_create_fts5_index.sql",
}

var (
	errNilDB            = errors.New("db is nil")
	errUnknownFTSModule = errors.New("unknown full-text module")
)

// Migrate applies every embedded migration to the SQLite database, creating
// the full-text index with module fts.
func Migrate(ctx context.Context, db *sql.DB, fts string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}
	if _, ok := ftsMigrations[fts]; !ok {
		return fmt.Errorf("migration error: %w: %q", errUnknownFTSModule, fts)
	}

	exclude := make([]string, 0, len(ftsMigrations)-1)
	for module, file := range ftsMigrations {
		if module != fts {
			exclude = append(exclude, file)
		}
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, embedMigrations,
		goose.WithExcludeNames(exclude),
		goose.WithDisableGlobalRegistry(true),
	)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
