package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
)

// ClientStorages groups the client-side repositories. All three are served
// by the same backend.
type ClientStorages struct {
	Entities  LocalEntityRepository
	SyncState SyncStateRepository
	Sessions  SessionRepository

	closer func() error
}

// NewClientStorages initialises the client storage layer:
//   - ":memory:" keeps everything in process memory;
//   - a path ending in ".json" uses the memory store with a JSON snapshot
//     file;
//   - any other path opens (and migrates) a SQLite database file.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	if cfg.DB.DSN == ":memory:" || strings.HasSuffix(cfg.DB.DSN, ".json") {
		repo, err := NewMemoryRepository(cfg.DB.DSN)
		if err != nil {
			return nil, fmt.Errorf("memory storage error: %w", err)
		}
		return NewClientStoragesFrom(repo), nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewClientStoragesFrom(NewLocalRepository(db, logger)), nil
}

// NewClientStoragesFrom wires every repository to repo.
func NewClientStoragesFrom(repo LocalRepository) *ClientStorages {
	return &ClientStorages{
		Entities:  repo,
		SyncState: repo,
		Sessions:  repo,
		closer:    repo.Close,
	}
}

// Close releases the underlying backend.
func (s *ClientStorages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
