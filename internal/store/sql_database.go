package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is an open database together with the dialect-specific helpers the
// repositories need.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// poolLimits bounds a *sql.DB connection pool.
type poolLimits struct {
	maxOpen int
	maxIdle int
}

// openDB opens and pings a pool. The pool is closed again if the ping
// fails.
func openDB(ctx context.Context, driver, dsn string, limits poolLimits) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	conn.SetMaxOpenConns(limits.maxOpen)
	conn.SetMaxIdleConns(limits.maxIdle)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}
	return conn, nil
}

// Migrate applies the embedded schema of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder using the placeholder format
// of the connection's dialect.
func (db *DB) builder() sq.StatementBuilderType {
	return statementBuilder(db.dialect)
}

func statementBuilder(dialect migrations.Dialect) sq.StatementBuilderType {
	if dialect == migrations.Postgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
