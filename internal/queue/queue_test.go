// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package queue

import (
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/clock"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

const (
	budgets models.EntityType = "budgets"
	plans   models.EntityType = "bounce_plans"
)

func newTestQueue(t *testing.T) (*Queue, *clock.Fake) {
	t.Helper()
	c := clock.NewFake(start)
	return NewQueue(c, time.Second, logger.Nop()), c
}

func op(entityType models.EntityType, id string, kind models.OperationKind) models.SyncOperation {
	return models.SyncOperation{EntityType: entityType, EntityID: id, Kind: kind}
}

// ── Enqueue / Drain ──────────────────────────────────────────────────────────

func TestQueue_EnqueueCoalescesByIdentity(t *testing.T) {
	q, c := newTestQueue(t)

	q.Enqueue(op(budgets, "1", models.OperationCreate))
	c.Advance(100 * time.Millisecond)
	q.Enqueue(op(budgets, "1", models.OperationUpdate))

	require.Equal(t, 1, q.Size())
	batch := q.Drain()
	require.Len(t, batch, 1)
	assert.Equal(t, models.OperationUpdate, batch[0].Kind)
	assert.Equal(t, start, batch[0].EnqueuedAt, "first enqueue time is kept")
	assert.Zero(t, q.Size())
}

func TestQueue_DrainKeepsEnqueueOrder(t *testing.T) {
	q, _ := newTestQueue(t)

	q.Enqueue(op(budgets, "a", models.OperationCreate))
	q.Enqueue(op(budgets, "b", models.OperationCreate))
	q.Enqueue(op(budgets, "c", models.OperationCreate))
	q.Enqueue(op(budgets, "a", models.OperationDelete))

	batch := q.Drain()
	require.Len(t, batch, 3)
	assert.Equal(t, "a", batch[0].EntityID)
	assert.Equal(t, models.OperationDelete, batch[0].Kind)
	assert.Equal(t, "b", batch[1].EntityID)
	assert.Equal(t, "c", batch[2].EntityID)
}

func TestQueue_SameIDDifferentTypesAreDistinct(t *testing.T) {
	q, _ := newTestQueue(t)

	q.Enqueue(op(budgets, "1", models.OperationCreate))
	q.Enqueue(op(plans, "1", models.OperationCreate))

	assert.Equal(t, 2, q.Size())
	assert.True(t, q.Contains(models.OperationKey{EntityType: plans, EntityID: "1"}))
}

func TestQueue_DrainTypeLeavesOtherTypes(t *testing.T) {
	q, _ := newTestQueue(t)

	q.Enqueue(op(budgets, "1", models.OperationCreate))
	q.Enqueue(op(plans, "2", models.OperationUpdate))
	q.Enqueue(op(budgets, "3", models.OperationDelete))

	batch := q.DrainType(budgets)
	require.Len(t, batch, 2)
	assert.Equal(t, "1", batch[0].EntityID)
	assert.Equal(t, "3", batch[1].EntityID)

	rest := q.Drain()
	require.Len(t, rest, 1)
	assert.Equal(t, plans, rest[0].EntityType)
}

func TestQueue_DrainEmpty(t *testing.T) {
	q, _ := newTestQueue(t)
	assert.Empty(t, q.Drain())
	assert.Empty(t, q.DrainType(budgets))
}

// ── Peek ─────────────────────────────────────────────────────────────────────

func TestQueue_PeekGroupsByType(t *testing.T) {
	q, c := newTestQueue(t)

	q.Enqueue(op(plans, "p1", models.OperationCreate))
	c.Advance(time.Minute)
	q.Enqueue(op(budgets, "b1", models.OperationCreate))
	q.Enqueue(op(budgets, "b2", models.OperationCreate))
	q.Enqueue(op(plans, "p2", models.OperationCreate))

	groups := q.Peek()
	require.Len(t, groups, 2)
	assert.Equal(t, models.QueueGroup{EntityType: plans, Count: 2, OldestEnqueuedAt: start}, groups[0])
	assert.Equal(t, models.QueueGroup{EntityType: budgets, Count: 2, OldestEnqueuedAt: start.Add(time.Minute)}, groups[1])
	assert.Equal(t, 4, q.Size(), "peek must not remove")
}

// ── Debounced drain notification ─────────────────────────────────────────────

func TestQueue_ReadyIsDebounced(t *testing.T) {
	q, c := newTestQueue(t)

	var calls [][]models.EntityType
	q.OnReady(func(types []models.EntityType) { calls = append(calls, types) })

	q.Enqueue(op(budgets, "1", models.OperationCreate))
	c.Advance(300 * time.Millisecond)
	q.Enqueue(op(plans, "2", models.OperationCreate))
	c.Advance(300 * time.Millisecond)
	q.Enqueue(op(budgets, "3", models.OperationUpdate))
	assert.Empty(t, calls)

	c.Advance(time.Second)
	require.Len(t, calls, 1)
	assert.Equal(t, []models.EntityType{budgets, plans}, calls[0])
}

func TestQueue_ReadySkippedWhenDrainedBeforeWindow(t *testing.T) {
	q, c := newTestQueue(t)

	called := false
	q.OnReady(func([]models.EntityType) { called = true })

	q.Enqueue(op(budgets, "1", models.OperationCreate))
	q.Drain()
	c.Advance(2 * time.Second)

	assert.False(t, called)
}

func TestQueue_CloseCancelsPendingNotification(t *testing.T) {
	q, c := newTestQueue(t)

	called := false
	q.OnReady(func([]models.EntityType) { called = true })

	q.Enqueue(op(budgets, "1", models.OperationCreate))
	q.Close()
	c.Advance(2 * time.Second)

	assert.False(t, called)
	assert.Equal(t, 1, q.Size())
}

func TestQueue_ConcurrentEnqueue(t *testing.T) {
	q := NewQueue(clock.Real(), time.Hour, logger.Nop())
	defer q.Close()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q.Enqueue(op(budgets, string(rune('a'+i%10)), models.OperationUpdate))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, q.Size())
}
