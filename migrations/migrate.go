// Package migrations embeds the schema of the local client store (SQLite)
// and of the reference backend (PostgreSQL) and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Dialect selects the embedded migration set.
type Dialect string

const (
	// SQLite is the local store of the sync client.
	SQLite Dialect = "sqlite3"
	// Postgres is the reference backend database.
	Postgres Dialect = "pgx"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

var gooseMu sync.Mutex

// ErrUnknownDialect is returned for a dialect without embedded migrations.
var ErrUnknownDialect = errors.New("unknown migration dialect")

func (d Dialect) dir() (string, error) {
	switch d {
	case SQLite:
		return "sqlite", nil
	case Postgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, string(d))
	}
}

// Migrate applies every pending migration of dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, err := dialect.dir()
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	// goose keeps the base FS and dialect in package state.
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
