package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-offline-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

// UserRepository stores accounts of the reference backend.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// RemoteRecordRepository stores the records of the reference backend,
// partitioned by owner.
type RemoteRecordRepository interface {
	// UpsertRecord writes record for userID. If the stored row's updated_at
	// differs from record.BaseVersion (or a row exists while BaseVersion is
	// nil) it returns [ErrVersionConflict]. The stored updated_at is
	// max(now, last updated_at of the type + 1µs), so the per-type order of
	// updated_at values is strict.
	UpsertRecord(ctx context.Context, userID int64, record models.RemoteRecord, now time.Time) (models.RemoteRecord, error)

	// DeleteRecord tombstones the record. Returns [ErrRecordNotFound] if it
	// does not exist.
	DeleteRecord(ctx context.Context, userID int64, entityType models.EntityType, id string, now time.Time) (models.RemoteRecord, error)

	// GetRecord returns a single record, tombstones included.
	GetRecord(ctx context.Context, userID int64, entityType models.EntityType, id string) (models.RemoteRecord, error)

	// ListRecordsSince returns records with updated_at > since ordered by
	// updated_at ascending, at most limit of them.
	ListRecordsSince(ctx context.Context, userID int64, entityType models.EntityType, since time.Time, limit uint64) ([]models.RemoteRecord, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
