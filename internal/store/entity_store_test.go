// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/clock"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEnqueuer struct {
	mu  sync.Mutex
	ops []models.SyncOperation
}

func (r *recordingEnqueuer) Enqueue(op models.SyncOperation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
}

func (r *recordingEnqueuer) kinds() []models.OperationKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.OperationKind, 0, len(r.ops))
	for _, op := range r.ops {
		out = append(out, op.Kind)
	}
	return out
}

type sequenceIDs struct{ n int }

func (s *sequenceIDs) Generate() string {
	s.n++
	return "id-" + strconv.Itoa(s.n)
}

type storeFixture struct {
	store *EntityStore
	repo  LocalRepository
	queue *recordingEnqueuer
	clock *clock.Fake
}

func newStoreFixture(t *testing.T) storeFixture {
	t.Helper()
	repo, err := NewMemoryRepository(":memory:")
	require.NoError(t, err)

	q := &recordingEnqueuer{}
	c := clock.NewFake(entityTime)
	return storeFixture{
		store: NewEntityStore(repo, q, c, &sequenceIDs{}, logger.Nop()),
		repo:  repo,
		queue: q,
		clock: c,
	}
}

func TestEntityStore_CreateEnqueuesPending(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	e, err := f.store.Create(ctx, "budgets", models.Fields{"amount": 5})
	require.NoError(t, err)

	assert.Equal(t, "id-1", e.ID)
	assert.Equal(t, models.SyncStatusPending, e.SyncStatus)
	assert.Equal(t, entityTime, e.CreatedAt)
	assert.Nil(t, e.LastSyncedAt)
	assert.Equal(t, []models.OperationKind{models.OperationCreate}, f.queue.kinds())

	_, err = f.store.CreateWithID(ctx, "budgets", "id-1", nil)
	assert.Error(t, err, "live record must not be overwritten by create")

	_, err = f.store.CreateWithID(ctx, "", "x", nil)
	assert.Error(t, err)
}

func TestEntityStore_CreateRevivesSoftDeleted(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	version := entityTime.Add(-time.Hour)
	deletedAt := entityTime
	require.NoError(t, f.repo.SaveEntity(ctx, models.Entity{
		ID: "r", Type: "budgets", DeletedAt: &deletedAt, RemoteVersion: &version,
		SyncStatus: models.SyncStatusSynced, LastSyncedAt: &deletedAt,
	}))

	e, err := f.store.CreateWithID(ctx, "budgets", "r", models.Fields{"a": 1})
	require.NoError(t, err)
	assert.False(t, e.IsDeleted())
	require.NotNil(t, e.RemoteVersion)
	assert.True(t, version.Equal(*e.RemoteVersion))
}

func TestEntityStore_UpdateMergesAndMarksPending(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	e, err := f.store.Create(ctx, "budgets", models.Fields{"amount": 5, "note": "x"})
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	updated, err := f.store.Update(ctx, "budgets", e.ID, models.Fields{"amount": 7, "note": nil})
	require.NoError(t, err)

	assert.Equal(t, 7, updated.Fields["amount"])
	assert.NotContains(t, updated.Fields, "note")
	assert.Equal(t, entityTime.Add(time.Minute), updated.UpdatedAt)
	assert.Equal(t, models.SyncStatusPending, updated.SyncStatus)
	assert.Equal(t, []models.OperationKind{models.OperationCreate, models.OperationUpdate}, f.queue.kinds())

	_, err = f.store.Update(ctx, "budgets", "missing", nil)
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestEntityStore_SoftDelete(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	e, err := f.store.Create(ctx, "budgets", nil)
	require.NoError(t, err)

	require.NoError(t, f.store.SoftDelete(ctx, "budgets", e.ID))

	got, err := f.store.Get(ctx, "budgets", e.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted())
	assert.Equal(t, models.SyncStatusPending, got.SyncStatus)

	live, err := f.store.Query(ctx, models.EntityFilter{Type: "budgets"})
	require.NoError(t, err)
	assert.Empty(t, live)

	assert.ErrorIs(t, f.store.SoftDelete(ctx, "budgets", e.ID), ErrEntityNotFound)
	_, err = f.store.Update(ctx, "budgets", e.ID, models.Fields{"a": 1})
	assert.ErrorIs(t, err, ErrEntityNotFound)

	assert.Equal(t, models.OperationDelete, f.queue.kinds()[1])
}

func TestEntityStore_SyncLifecycle(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	e, err := f.store.Create(ctx, "budgets", nil)
	require.NoError(t, err)

	syncing, err := f.store.MarkSyncing(ctx, "budgets", e.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSyncing, syncing.SyncStatus)

	pending, failed, err := f.store.StatusCounts(ctx, "budgets")
	require.NoError(t, err)
	assert.Equal(t, 1, pending, "syncing counts as pending")
	assert.Zero(t, failed)

	ack := entityTime.Add(time.Second)
	require.NoError(t, f.store.MarkSynced(ctx, "budgets", e.ID, ack))

	got, err := f.store.Get(ctx, "budgets", e.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, got.SyncStatus)
	require.NotNil(t, got.LastSyncedAt)
	assert.False(t, got.LastSyncedAt.Before(got.UpdatedAt))
	assert.True(t, ack.Equal(*got.RemoteVersion))

	_, err = f.store.MarkSyncing(ctx, "budgets", e.ID)
	assert.ErrorIs(t, err, ErrNothingToSync)
}

func TestEntityStore_EditDuringPushStaysPending(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	e, err := f.store.Create(ctx, "budgets", nil)
	require.NoError(t, err)
	_, err = f.store.MarkSyncing(ctx, "budgets", e.ID)
	require.NoError(t, err)

	_, err = f.store.Update(ctx, "budgets", e.ID, models.Fields{"a": 2})
	require.NoError(t, err)

	ack := entityTime.Add(time.Second)
	require.NoError(t, f.store.MarkSynced(ctx, "budgets", e.ID, ack))
	require.NoError(t, f.store.MarkFailed(ctx, "budgets", e.ID, "late failure"))

	got, err := f.store.Get(ctx, "budgets", e.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusPending, got.SyncStatus)
	assert.Empty(t, got.SyncError)
	require.NotNil(t, got.RemoteVersion, "acknowledged version is the next push base")
	assert.True(t, ack.Equal(*got.RemoteVersion))
}

func TestEntityStore_MarkFailed(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	e, err := f.store.Create(ctx, "budgets", nil)
	require.NoError(t, err)
	_, err = f.store.MarkSyncing(ctx, "budgets", e.ID)
	require.NoError(t, err)

	require.NoError(t, f.store.MarkFailed(ctx, "budgets", e.ID, "  remote\nrejected  "))

	got, err := f.store.Get(ctx, "budgets", e.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusFailed, got.SyncStatus)
	assert.Equal(t, "remote rejected", got.SyncError)

	_, failed, err := f.store.StatusCounts(ctx, "budgets")
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	retried, err := f.store.MarkPending(ctx, "budgets", e.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusPending, retried.SyncStatus)
	assert.Empty(t, retried.SyncError)
	assert.Equal(t, models.OperationCreate, f.queue.kinds()[len(f.queue.kinds())-1])
}

func TestEntityStore_MarkPendingReplacesRemoteVersion(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	e, err := f.store.Create(ctx, "budgets", nil)
	require.NoError(t, err)

	remote := entityTime.Add(time.Hour)
	got, err := f.store.MarkPending(ctx, "budgets", e.ID, &remote)
	require.NoError(t, err)
	require.NotNil(t, got.RemoteVersion)
	assert.True(t, remote.Equal(*got.RemoteVersion))
	assert.Equal(t, models.OperationUpdate, f.queue.kinds()[len(f.queue.kinds())-1])
}

func TestEntityStore_ApplyRemoteDoesNotEnqueue(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	remoteUpdated := entityTime.Add(time.Hour)
	rec := models.RemoteRecord{ID: "r", Type: "budgets", UpdatedAt: remoteUpdated, Fields: models.Fields{"a": 1}}
	e := rec.AsEntity(entityTime)
	e.LastSyncedAt = nil

	require.NoError(t, f.store.ApplyRemote(ctx, nil, e))

	got, err := f.store.Get(ctx, "budgets", "r")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, got.SyncStatus)
	require.NotNil(t, got.LastSyncedAt)
	assert.True(t, remoteUpdated.Equal(*got.LastSyncedAt))
	assert.Empty(t, f.queue.kinds())
}

func TestEntityStore_ApplyRemoteKeepsConcurrentEdit(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	e, err := f.store.Create(ctx, "budgets", models.Fields{"title": "draft"})
	require.NoError(t, err)
	_, err = f.store.MarkSyncing(ctx, "budgets", e.ID)
	require.NoError(t, err)
	require.NoError(t, f.store.MarkSynced(ctx, "budgets", e.ID, entityTime))
	seen, err := f.store.Get(ctx, "budgets", e.ID)
	require.NoError(t, err)

	require.Equal(t, models.SyncStatusSynced, seen.SyncStatus)

	f.clock.Advance(time.Minute)
	_, err = f.store.Update(ctx, "budgets", e.ID, models.Fields{"title": "user edit"})
	require.NoError(t, err)

	remote := models.RemoteRecord{ID: e.ID, Type: "budgets", UpdatedAt: entityTime.Add(time.Hour), Fields: models.Fields{"title": "remote"}}
	err = f.store.ApplyRemote(ctx, &seen, remote.AsEntity(entityTime))
	require.ErrorIs(t, err, ErrEntityChanged)

	got, err := f.store.Get(ctx, "budgets", e.ID)
	require.NoError(t, err)
	assert.Equal(t, "user edit", got.Fields["title"])
	assert.Equal(t, models.SyncStatusPending, got.SyncStatus)
}

func TestEntityStore_ApplyRemoteExpectsAbsence(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	_, err := f.store.CreateWithID(ctx, "budgets", "b1", models.Fields{"title": "local"})
	require.NoError(t, err)

	remote := models.RemoteRecord{ID: "b1", Type: "budgets", UpdatedAt: entityTime, Fields: models.Fields{"title": "remote"}}
	assert.ErrorIs(t, f.store.ApplyRemote(ctx, nil, remote.AsEntity(entityTime)), ErrEntityChanged)
}

func TestEntityStore_ApplyRemoteTombstoneEvicts(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	e, err := f.store.Create(ctx, "budgets", nil)
	require.NoError(t, err)
	_, err = f.store.MarkSyncing(ctx, "budgets", e.ID)
	require.NoError(t, err)
	require.NoError(t, f.store.MarkSynced(ctx, "budgets", e.ID, entityTime))
	seen, err := f.store.Get(ctx, "budgets", e.ID)
	require.NoError(t, err)

	deletedAt := entityTime.Add(time.Hour)
	remote := models.RemoteRecord{ID: e.ID, Type: "budgets", UpdatedAt: deletedAt, DeletedAt: &deletedAt}
	require.NoError(t, f.store.ApplyRemote(ctx, &seen, remote.AsEntity(entityTime)))

	_, err = f.store.Get(ctx, "budgets", e.ID)
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestEntityStore_EvictSkipsRevivedRecord(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	_, err := f.store.CreateWithID(ctx, "budgets", "b1", nil)
	require.NoError(t, err)
	require.NoError(t, f.store.SoftDelete(ctx, "budgets", "b1"))
	tombstone, err := f.store.Get(ctx, "budgets", "b1")
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	_, err = f.store.CreateWithID(ctx, "budgets", "b1", models.Fields{"title": "again"})
	require.NoError(t, err)

	require.ErrorIs(t, f.store.Evict(ctx, tombstone), ErrEntityChanged)
	got, err := f.store.Get(ctx, "budgets", "b1")
	require.NoError(t, err)
	assert.False(t, got.IsDeleted())

	assert.NoError(t, f.store.Evict(ctx, got), "a missing or unchanged record is evicted silently")
	assert.NoError(t, f.store.Evict(ctx, got))
}

func TestEntityStore_RecoverPending(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	a, err := f.store.Create(ctx, "budgets", nil)
	require.NoError(t, err)
	b, err := f.store.Create(ctx, "tasks", nil)
	require.NoError(t, err)
	_, err = f.store.MarkSyncing(ctx, "tasks", b.ID)
	require.NoError(t, err)
	require.NoError(t, f.repo.SaveEntity(ctx, models.Entity{ID: "s", Type: "tasks", SyncStatus: models.SyncStatusSynced}))

	f.queue.ops = nil
	n, err := f.store.RecoverPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, f.queue.ops, 2)

	got, err := f.store.Get(ctx, "tasks", b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusPending, got.SyncStatus)

	_, err = f.store.Get(ctx, "budgets", a.ID)
	require.NoError(t, err)
}

func TestEntityStore_HardDelete(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	e, err := f.store.Create(ctx, "budgets", nil)
	require.NoError(t, err)

	require.NoError(t, f.store.HardDelete(ctx, "budgets", e.ID))
	_, err = f.store.Get(ctx, "budgets", e.ID)
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func Test_sanitizeReason(t *testing.T) {
	assert.Equal(t, "unknown sync error", sanitizeReason(" \n\t"))
	assert.Equal(t, "a b", sanitizeReason("a\n\nb"))

	long := sanitizeReason(strings.Repeat("ж", 1000))
	assert.Equal(t, maxSyncErrorLength, len([]rune(long)))
	assert.True(t, strings.HasSuffix(long, "..."))
}
