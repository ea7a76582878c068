// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package queue implements the coalescing queue of pending sync operations.
//
// The queue stores only operation identities and kinds. Payloads are read
// from the entity store at dispatch time, so a drained operation always
// pushes the latest local state.
package queue

import (
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/clock"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/models"
)

// DefaultDrainWindow is the debounce window applied to drain notifications.
const DefaultDrainWindow = time.Second

// ReadyFunc is called once a burst of enqueues has settled. It receives the
// entity types that have operations waiting.
type ReadyFunc func(types []models.EntityType)

// Queue is a coalescing, debounced queue of [models.SyncOperation].
// It is safe for concurrent use.
type Queue struct {
	clock clock.Clock

	mu    sync.Mutex
	ops   map[models.OperationKey]models.SyncOperation
	order []models.OperationKey
	ready ReadyFunc

	drain *clock.Debouncer

	logger *logger.Logger
}

// NewQueue builds an empty queue. A non-positive window falls back to
// [DefaultDrainWindow].
func NewQueue(c clock.Clock, window time.Duration, logger *logger.Logger) *Queue {
	if window <= 0 {
		window = DefaultDrainWindow
	}
	q := &Queue{
		clock:  c,
		ops:    make(map[models.OperationKey]models.SyncOperation),
		logger: logger,
	}
	q.drain = clock.NewDebouncer(c, window, q.notifyReady)
	return q
}

// OnReady registers the drain notification handler.
func (q *Queue) OnReady(fn ReadyFunc) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ready = fn
}

// Enqueue adds op, coalescing it with a queued operation for the same
// (entityType, entityId). The coalesced operation keeps its queue position
// and first enqueue time and takes the newest kind.
func (q *Queue) Enqueue(op models.SyncOperation) {
	if op.EnqueuedAt.IsZero() {
		op.EnqueuedAt = q.clock.Now()
	}

	q.mu.Lock()
	key := op.Key()
	if existing, ok := q.ops[key]; ok {
		existing.Kind = op.Kind
		q.ops[key] = existing
	} else {
		q.ops[key] = op
		q.order = append(q.order, key)
	}
	q.mu.Unlock()

	q.logger.Debug().
		Str("entity_type", op.EntityType.String()).
		Str("entity_id", op.EntityID).
		Str("kind", string(op.Kind)).
		Msg("sync operation enqueued")

	q.drain.Trigger()
}

// Drain atomically removes and returns every queued operation in enqueue
// order.
func (q *Queue) Drain() []models.SyncOperation {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.SyncOperation, 0, len(q.order))
	for _, key := range q.order {
		out = append(out, q.ops[key])
	}
	q.ops = make(map[models.OperationKey]models.SyncOperation)
	q.order = nil
	return out
}

// DrainType atomically removes and returns the operations of one entity
// type in enqueue order. Other types stay queued.
func (q *Queue) DrainType(entityType models.EntityType) []models.SyncOperation {
	q.mu.Lock()
	defer q.mu.Unlock()

	var out []models.SyncOperation
	keep := make([]models.OperationKey, 0, len(q.order))
	for _, key := range q.order {
		if key.EntityType != entityType {
			keep = append(keep, key)
			continue
		}
		out = append(out, q.ops[key])
		delete(q.ops, key)
	}
	q.order = keep
	return out
}

// Size returns the number of queued operations.
func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.order)
}

// Contains reports whether an operation for key is queued.
func (q *Queue) Contains(key models.OperationKey) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.ops[key]
	return ok
}

// Peek groups queued operations by entity type without removing them.
// Groups are ordered by their oldest enqueue time.
func (q *Queue) Peek() []models.QueueGroup {
	q.mu.Lock()
	defer q.mu.Unlock()

	groups := make(map[models.EntityType]*models.QueueGroup)
	for _, key := range q.order {
		op := q.ops[key]
		g, ok := groups[op.EntityType]
		if !ok {
			g = &models.QueueGroup{EntityType: op.EntityType, OldestEnqueuedAt: op.EnqueuedAt}
			groups[op.EntityType] = g
		}
		g.Count++
		if op.EnqueuedAt.Before(g.OldestEnqueuedAt) {
			g.OldestEnqueuedAt = op.EnqueuedAt
		}
	}

	out := make([]models.QueueGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OldestEnqueuedAt.Equal(out[j].OldestEnqueuedAt) {
			return out[i].EntityType < out[j].EntityType
		}
		return out[i].OldestEnqueuedAt.Before(out[j].OldestEnqueuedAt)
	})
	return out
}

// Close cancels a pending drain notification.
func (q *Queue) Close() {
	q.drain.Cancel()
}

func (q *Queue) notifyReady() {
	q.mu.Lock()
	ready := q.ready
	seen := make(map[models.EntityType]struct{})
	var types []models.EntityType
	for _, key := range q.order {
		if _, ok := seen[key.EntityType]; ok {
			continue
		}
		seen[key.EntityType] = struct{}{}
		types = append(types, key.EntityType)
	}
	q.mu.Unlock()

	if ready == nil || len(types) == 0 {
		return
	}
	ready(types)
}
