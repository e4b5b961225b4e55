package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
	"github.com/MKhiriev/go-bookmark-keeper/migrations"
)

// DB is the process-wide SQLite handle shared by every repository.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// FTSSyntax is the full-text module flavour of a SQLite build.
type FTSSyntax int

const (
	// FTS4 is compiled into the default mattn/go-sqlite3 build.
	FTS4 FTSSyntax = iota
	// FTS5 is the only full-text module of modernc.org/sqlite.
	FTS5
)

func ftsSyntaxFor(driver string) FTSSyntax {
	if driver == config.DriverModernc {
		return FTS5
	}
	return FTS4
}

func (s FTSSyntax) module() string {
	if s == FTS5 {
		return migrations.FTS5
	}
	return migrations.FTS4
}

// prefixPhrase quotes token as a phrase whose last word matches by prefix.
func (s FTSSyntax) prefixPhrase(token string) string {
	if s == FTS5 {
		return `"` + token + `"*`
	}
	return `"` + token + `*"`
}

// FTS reports the full-text module the connection's driver ships.
func (db *DB) FTS() FTSSyntax {
	return ftsSyntaxFor(db.driver)
}

func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.FTS().module())
}
