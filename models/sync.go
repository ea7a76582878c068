package models

import "time"

// OperationKind is the type of change a queued operation pushes.
type OperationKind string

const (
	OperationCreate OperationKind = "create"
	OperationUpdate OperationKind = "update"
	OperationDelete OperationKind = "delete"
)

// SyncOperation identifies a record awaiting push. It never carries the
// payload; the current entity is loaded at dispatch time.
type SyncOperation struct {
	EntityType EntityType    `json:"entity_type"`
	EntityID   string        `json:"entity_id"`
	Kind       OperationKind `json:"kind"`
	EnqueuedAt time.Time     `json:"enqueued_at"`
}

// Key returns the coalescing identity of the operation.
func (o SyncOperation) Key() OperationKey {
	return OperationKey{EntityType: o.EntityType, EntityID: o.EntityID}
}

// OperationKey is the (entityType, entityId) identity of a queued operation.
type OperationKey struct {
	EntityType EntityType
	EntityID   string
}

// QueueGroup summarizes queued operations of one entity type.
type QueueGroup struct {
	EntityType       EntityType `json:"entity_type"`
	Count            int        `json:"count"`
	OldestEnqueuedAt time.Time  `json:"oldest_enqueued_at"`
}

// EventType distinguishes sync lifecycle notifications.
type EventType string

const (
	EventStarted   EventType = "started"
	EventProgress  EventType = "progress"
	EventCompleted EventType = "completed"
	EventFailed    EventType = "failed"
)

// SyncEvent is a fan-out notification about a sync cycle or one of its
// items. Events are not persisted.
type SyncEvent struct {
	Type       EventType  `json:"type"`
	EntityType EntityType `json:"entity_type"`
	EntityID   string     `json:"entity_id,omitempty"`
	Progress   int        `json:"progress,omitempty"`
	Err        error      `json:"-"`
	At         time.Time  `json:"at"`
}

// NetworkState is the process-wide connectivity state.
type NetworkState int

const (
	NetworkUnknown NetworkState = iota
	NetworkOnline
	NetworkOffline
)

func (s NetworkState) String() string {
	switch s {
	case NetworkOnline:
		return "online"
	case NetworkOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// EntityTypeStatus is the per-type part of a [SyncSnapshot].
type EntityTypeStatus struct {
	PendingCount int        `json:"pending_count"`
	FailedCount  int        `json:"failed_count"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// SyncSnapshot aggregates sync status across entity types.
type SyncSnapshot struct {
	Types         map[EntityType]EntityTypeStatus `json:"types"`
	TotalPending  int                             `json:"total_pending"`
	IsFullySynced bool                            `json:"is_fully_synced"`
}

// SyncReport counts what a single cycle did for one entity type.
type SyncReport struct {
	EntityType EntityType
	Pushed     int
	Failed     int
	Skipped    int
	Conflicts  int
	Pulled     int
	StartedAt  time.Time
	FinishedAt time.Time
}

// RetryResult is the outcome of a retried sync cycle.
type RetryResult struct {
	EntityType EntityType
	Attempts   int
	Success    bool
	Err        error
	Report     SyncReport
}

// SyncState is the persisted per-type bookkeeping of the sync engine.
type SyncState struct {
	EntityType EntityType
	// Watermark is the updatedAt of the most recent pulled remote record.
	Watermark time.Time
	// LastSyncedAt is the completion time of the last successful cycle.
	LastSyncedAt *time.Time
}
