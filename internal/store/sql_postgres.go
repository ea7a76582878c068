package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var postgresPool = poolLimits{maxOpen: 10, maxIdle: 4}

// NewConnectPostgres opens the reference backend database through the pgx
// database/sql driver.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := openDB(ctx, "pgx", cfg.DSN, postgresPool)
	if err != nil {
		log.Err(err).Msg("cannot open server database")
		return nil, err
	}

	log.Info().Int("max_open_conns", postgresPool.maxOpen).Msg("server database opened")
	return &DB{
		DB:                 conn,
		dialect:            migrations.Postgres,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

// postgresError returns the SQLSTATE of err, or "" if err did not come
// from the server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// wrapDBError marks err as [ErrTransient] when the classifier allows a
// retry.
func (db *DB) wrapDBError(sentinel, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrTransient, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
