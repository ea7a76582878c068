package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/migrations"
)

const sqliteInMemory = ":memory:"

// NewConnectSQLite opens the client database at cfg.DSN. Missing parent
// directories are created; SQLite creates the file itself.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if err := ensureParentDir(cfg.DSN); err != nil {
		log.Err(err).Str("path", cfg.DSN).Msg("cannot prepare local database directory")
		return nil, err
	}

	// A single connection serialises writers, which the read-modify-write
	// transactions of the entity store rely on.
	conn, err := openDB(ctx, "sqlite3", sqliteDSN(cfg.DSN), poolLimits{maxOpen: 1, maxIdle: 1})
	if err != nil {
		log.Err(err).Str("path", cfg.DSN).Msg("cannot open local database")
		return nil, err
	}

	log.Debug().Str("path", cfg.DSN).Msg("local database opened")
	return &DB{DB: conn, dialect: migrations.SQLite, logger: log}, nil
}

// sqliteDSN turns a file path into a go-sqlite3 URI with foreign keys,
// a busy timeout and WAL journaling.
func sqliteDSN(path string) string {
	if path == sqliteInMemory {
		return path
	}
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"
}

func ensureParentDir(path string) error {
	if path == sqliteInMemory {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create database dir %s: %w", dir, err)
	}
	return nil
}
