package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/network"
	"github.com/MKhiriev/go-offline-sync/internal/queue"
	"github.com/MKhiriev/go-offline-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientCryptoService applies field-level encryption to records crossing
// the network boundary. The entity store never sees ciphertext.
type ClientCryptoService interface {
	// EncryptRecord returns a copy of record with its sensitive fields
	// encrypted.
	EncryptRecord(record models.RemoteRecord) (models.RemoteRecord, error)

	// DecryptRecord reverses EncryptRecord. Fails if a sensitive field
	// cannot be authenticated.
	DecryptRecord(record models.RemoteRecord) (models.RemoteRecord, error)
}

// ClientAuthService manages the session this device uses against the
// remote backend.
type ClientAuthService interface {
	// Register creates an account and stores the issued session.
	Register(ctx context.Context, login, password string) (models.Session, error)

	// Login authenticates and stores the issued session.
	Login(ctx context.Context, login, password string) (models.Session, error)

	// Restore loads a stored session and hands its token to the backend.
	// ok is false when there is no usable session.
	Restore(ctx context.Context) (session models.Session, ok bool, err error)

	// Logout forgets the session locally. Local entities are kept.
	Logout(ctx context.Context) error
}

// SyncEngine runs sync cycles. At most one cycle per entity type runs at a
// time; different types sync concurrently.
type SyncEngine interface {
	// Sync runs one cycle for entityType. Cycle-level failures are returned;
	// item failures are recorded on the entities and reported via events.
	Sync(ctx context.Context, entityType models.EntityType) (models.SyncReport, error)

	// SyncWithRetry runs Sync up to maxAttempts times with exponential
	// backoff between network failures.
	SyncWithRetry(ctx context.Context, entityType models.EntityType, maxAttempts int) models.RetryResult

	// SyncAll runs SyncWithRetry for every configured type concurrently.
	SyncAll(ctx context.Context) []models.RetryResult

	// ScheduleSync requests a debounced run for types, or for every type
	// when none are given. A newer request supersedes a pending one.
	ScheduleSync(types ...models.EntityType)

	// RetryFailed puts a Failed record back into the push path.
	RetryFailed(ctx context.Context, entityType models.EntityType, id string) error

	// RetryAllFailed does RetryFailed for every Failed record of
	// entityType and returns how many were requeued.
	RetryAllFailed(ctx context.Context, entityType models.EntityType) (int, error)

	// RecoverQueue re-enqueues records left unsynced by a previous process.
	RecoverQueue(ctx context.Context) (int, error)

	// Subscribe registers fn for sync events. fn runs on the goroutine of
	// the cycle and must not block.
	Subscribe(fn func(models.SyncEvent)) (unsubscribe func())

	// EntityTypes returns the configured entity types in order.
	EntityTypes() []models.EntityType

	// Start wires the engine to the queue and the network monitor; Stop
	// undoes it and waits for scheduled runs to finish.
	Start(ctx context.Context)
	Stop()
}

// StatusReporter exposes sync status to the UI.
type StatusReporter interface {
	// GetSyncStatus returns per-type counts and their aggregate.
	GetSyncStatus(ctx context.Context) (models.SyncSnapshot, error)

	// HasPendingSyncs reports whether any local change awaits a push.
	HasPendingSyncs(ctx context.Context) (bool, error)

	// GetOfflineQueueVisualization groups queued operations by type.
	GetOfflineQueueVisualization() []models.QueueGroup

	NetworkState() models.NetworkState
	Subscribe(fn func(models.SyncEvent)) (unsubscribe func())
	RequestSync(entityType models.EntityType)
	RequestSyncAll()
	RetryFailed(ctx context.Context, entityType models.EntityType, id string) error
	RetryAllFailed(ctx context.Context, entityType models.EntityType) (int, error)
}

// SyncJob schedules a sync of every type on a fixed interval while online.
type SyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// EntityStore is the part of [store.EntityStore] the engine relies on.
type EntityStore interface {
	Get(ctx context.Context, entityType models.EntityType, id string) (models.Entity, error)
	Query(ctx context.Context, filter models.EntityFilter) ([]models.Entity, error)
	MarkSyncing(ctx context.Context, entityType models.EntityType, id string) (models.Entity, error)
	MarkSynced(ctx context.Context, entityType models.EntityType, id string, at time.Time) error
	MarkFailed(ctx context.Context, entityType models.EntityType, id string, reason string) error
	MarkPending(ctx context.Context, entityType models.EntityType, id string, remoteVersion *time.Time) (models.Entity, error)
	ApplyRemote(ctx context.Context, seen *models.Entity, remote models.Entity) error
	Evict(ctx context.Context, seen models.Entity) error
	StatusCounts(ctx context.Context, entityType models.EntityType) (pending, failed int, err error)
	RecoverPending(ctx context.Context) (int, error)
}

// SyncQueue is the part of [queue.Queue] the engine relies on.
type SyncQueue interface {
	OnReady(fn queue.ReadyFunc)
	DrainType(entityType models.EntityType) []models.SyncOperation
	Size() int
	Peek() []models.QueueGroup
}

// NetworkStatus is the part of [network.Monitor] the engine relies on.
type NetworkStatus interface {
	CurrentState() models.NetworkState
	Subscribe(obs network.Observer) (unsubscribe func())
}
