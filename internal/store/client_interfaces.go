package store

import (
	"context"

	"github.com/MKhiriev/go-offline-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// EntityMutation modifies an entity inside [LocalEntityRepository.UpdateEntity].
// Returning an error aborts the update and leaves the stored record as it was.
type EntityMutation func(e *models.Entity) error

// EntityReplacement decides the next state of a record inside
// [LocalEntityRepository.ReplaceEntity]. current is nil when there is no
// record. A nil result removes the record; an error aborts the replacement.
type EntityReplacement func(current *models.Entity) (*models.Entity, error)

// LocalEntityRepository is the low-level local entity store. It knows nothing
// about sync semantics; [EntityStore] builds them on top of it.
type LocalEntityRepository interface {
	// SaveEntity inserts e or replaces the stored record with the same
	// (Type, ID).
	SaveEntity(ctx context.Context, e models.Entity) error

	// GetEntity returns the stored record, soft-deleted ones included.
	// Returns [ErrEntityNotFound] if there is none.
	GetEntity(ctx context.Context, entityType models.EntityType, id string) (models.Entity, error)

	// QueryEntities returns the records matching filter ordered by
	// updated_at, then id.
	QueryEntities(ctx context.Context, filter models.EntityFilter) ([]models.Entity, error)

	// UpdateEntity atomically reads the record, applies mutate and writes
	// the result back. Concurrent readers observe either the old or the new
	// record, never a mix.
	UpdateEntity(ctx context.Context, entityType models.EntityType, id string, mutate EntityMutation) (models.Entity, error)

	// ReplaceEntity atomically reads the record (if any), asks replace for
	// its next state and writes or removes it.
	ReplaceEntity(ctx context.Context, entityType models.EntityType, id string, replace EntityReplacement) error

	// DeleteEntity removes the record. Returns [ErrEntityNotFound] if there
	// is none.
	DeleteEntity(ctx context.Context, entityType models.EntityType, id string) error

	// CountByStatus returns the number of records of entityType per sync
	// status.
	CountByStatus(ctx context.Context, entityType models.EntityType) (map[models.SyncStatus]int, error)
}

// SyncStateRepository persists the per-type bookkeeping of the sync engine.
type SyncStateRepository interface {
	// GetSyncState returns the stored state, or a zero state (epoch
	// watermark) if the type was never synced.
	GetSyncState(ctx context.Context, entityType models.EntityType) (models.SyncState, error)
	SaveSyncState(ctx context.Context, state models.SyncState) error
}

// SessionRepository persists the authenticated session of this device.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	// GetSession returns [ErrSessionNotFound] if no session is stored.
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}

// LocalRepository is implemented by every local storage backend.
type LocalRepository interface {
	LocalEntityRepository
	SyncStateRepository
	SessionRepository
	Close() error
}
