package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
)

// Storages groups the repositories of the reference backend.
type Storages struct {
	UserRepository   UserRepository
	RecordRepository RemoteRecordRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies the migrations and builds
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		RecordRepository: NewRemoteRecordRepository(db, logger),
		db:               db,
	}, nil
}

// Close closes the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
