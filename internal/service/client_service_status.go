package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-offline-sync/internal/store"
	"github.com/MKhiriev/go-offline-sync/models"
)

type statusReporter struct {
	entities EntityStore
	states   store.SyncStateRepository
	queue    SyncQueue
	network  NetworkStatus
	engine   SyncEngine
}

// NewStatusReporter builds the read side used by the dashboard. Commands
// are forwarded to engine.
func NewStatusReporter(entities EntityStore, states store.SyncStateRepository, queue SyncQueue, network NetworkStatus, engine SyncEngine) StatusReporter {
	return &statusReporter{
		entities: entities,
		states:   states,
		queue:    queue,
		network:  network,
		engine:   engine,
	}
}

// GetSyncStatus implements [StatusReporter]. TotalPending is the sum of the
// per-type pending counts; IsFullySynced holds when no type has pending or
// failed records.
func (r *statusReporter) GetSyncStatus(ctx context.Context) (models.SyncSnapshot, error) {
	types := r.engine.EntityTypes()
	snapshot := models.SyncSnapshot{
		Types:         make(map[models.EntityType]models.EntityTypeStatus, len(types)),
		IsFullySynced: true,
	}

	for _, entityType := range types {
		pending, failed, err := r.entities.StatusCounts(ctx, entityType)
		if err != nil {
			return models.SyncSnapshot{}, fmt.Errorf("count %s: %w", entityType, err)
		}
		state, err := r.states.GetSyncState(ctx, entityType)
		if err != nil {
			return models.SyncSnapshot{}, fmt.Errorf("load sync state of %s: %w", entityType, err)
		}

		snapshot.Types[entityType] = models.EntityTypeStatus{
			PendingCount: pending,
			FailedCount:  failed,
			LastSyncedAt: state.LastSyncedAt,
		}
		snapshot.TotalPending += pending
		if pending > 0 || failed > 0 {
			snapshot.IsFullySynced = false
		}
	}
	return snapshot, nil
}

// HasPendingSyncs implements [StatusReporter]. A non-empty queue answers
// without touching the store.
func (r *statusReporter) HasPendingSyncs(ctx context.Context) (bool, error) {
	if r.queue.Size() > 0 {
		return true, nil
	}
	for _, entityType := range r.engine.EntityTypes() {
		pending, _, err := r.entities.StatusCounts(ctx, entityType)
		if err != nil {
			return false, fmt.Errorf("count %s: %w", entityType, err)
		}
		if pending > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (r *statusReporter) GetOfflineQueueVisualization() []models.QueueGroup {
	return r.queue.Peek()
}

func (r *statusReporter) NetworkState() models.NetworkState {
	return r.network.CurrentState()
}

func (r *statusReporter) Subscribe(fn func(models.SyncEvent)) (unsubscribe func()) {
	return r.engine.Subscribe(fn)
}

func (r *statusReporter) RequestSync(entityType models.EntityType) {
	r.engine.ScheduleSync(entityType)
}

func (r *statusReporter) RequestSyncAll() {
	r.engine.ScheduleSync()
}

func (r *statusReporter) RetryFailed(ctx context.Context, entityType models.EntityType, id string) error {
	return r.engine.RetryFailed(ctx, entityType, id)
}

func (r *statusReporter) RetryAllFailed(ctx context.Context, entityType models.EntityType) (int, error) {
	return r.engine.RetryAllFailed(ctx, entityType)
}
