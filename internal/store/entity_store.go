// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/clock"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/models"
)

// maxSyncErrorLength bounds the diagnostic kept on a Failed record.
const maxSyncErrorLength = 512

// Enqueuer receives the sync operations produced by local mutations.
type Enqueuer interface {
	Enqueue(op models.SyncOperation)
}

// IDGenerator assigns ids to locally created entities.
type IDGenerator interface {
	Generate() string
}

// EntityStore owns the local entities and their sync metadata. It is the
// only component that changes SyncStatus, SyncError and LastSyncedAt.
//
// Every user-visible mutation (Create, Update, SoftDelete) marks the record
// Pending and enqueues a [models.SyncOperation]. Writes coming from the pull
// phase go through ApplyRemote, which never enqueues and refuses to
// overwrite a record that changed after the caller read it.
//
// Status changes run as a single read-modify-write in the repository, so a
// concurrent reader sees a record either before or after the change.
type EntityStore struct {
	repo   LocalEntityRepository
	queue  Enqueuer
	clock  clock.Clock
	ids    IDGenerator
	logger *logger.Logger
}

// NewEntityStore builds an [EntityStore].
func NewEntityStore(repo LocalEntityRepository, queue Enqueuer, c clock.Clock, ids IDGenerator, logger *logger.Logger) *EntityStore {
	return &EntityStore{
		repo:   repo,
		queue:  queue,
		clock:  c,
		ids:    ids,
		logger: logger,
	}
}

// Create stores a new Pending entity with a generated id.
func (s *EntityStore) Create(ctx context.Context, entityType models.EntityType, fields models.Fields) (models.Entity, error) {
	return s.CreateWithID(ctx, entityType, s.ids.Generate(), fields)
}

// CreateWithID stores a new Pending entity under a caller-assigned id.
// Creating over an existing soft-deleted record revives it.
func (s *EntityStore) CreateWithID(ctx context.Context, entityType models.EntityType, id string, fields models.Fields) (models.Entity, error) {
	if entityType == "" || id == "" {
		return models.Entity{}, fmt.Errorf("create entity: empty type or id")
	}

	now := s.clock.Now()
	e := models.Entity{
		ID:         id,
		Type:       entityType,
		Fields:     fields.Clone(),
		CreatedAt:  now,
		UpdatedAt:  now,
		SyncStatus: models.SyncStatusPending,
	}

	// keep the acknowledged remote version of a revived record so the push
	// does not look like a conflicting create
	if prev, err := s.repo.GetEntity(ctx, entityType, id); err == nil {
		if !prev.IsDeleted() {
			return models.Entity{}, fmt.Errorf("create entity %s/%s: already exists", entityType, id)
		}
		e.RemoteVersion = prev.RemoteVersion
	} else if !errors.Is(err, ErrEntityNotFound) {
		return models.Entity{}, err
	}

	if err := s.repo.SaveEntity(ctx, e); err != nil {
		return models.Entity{}, err
	}

	s.enqueue(e, models.OperationCreate)
	return e, nil
}

// Update applies patch to a live entity. A nil value in patch removes the
// field. Returns [ErrEntityNotFound] for a missing or soft-deleted record.
func (s *EntityStore) Update(ctx context.Context, entityType models.EntityType, id string, patch models.Fields) (models.Entity, error) {
	now := s.clock.Now()

	e, err := s.repo.UpdateEntity(ctx, entityType, id, func(e *models.Entity) error {
		if e.IsDeleted() {
			return ErrEntityNotFound
		}
		e.Fields = e.Fields.Merge(patch)
		e.UpdatedAt = laterOf(now, e.UpdatedAt)
		e.SyncStatus = models.SyncStatusPending
		e.SyncError = ""
		return nil
	})
	if err != nil {
		return models.Entity{}, err
	}

	s.enqueue(e, models.OperationUpdate)
	return e, nil
}

// SoftDelete marks the entity deleted and Pending. The record stays in the
// store until the remote delete is confirmed.
func (s *EntityStore) SoftDelete(ctx context.Context, entityType models.EntityType, id string) error {
	now := s.clock.Now()

	e, err := s.repo.UpdateEntity(ctx, entityType, id, func(e *models.Entity) error {
		if e.IsDeleted() {
			return ErrEntityNotFound
		}
		deletedAt := now
		e.DeletedAt = &deletedAt
		e.UpdatedAt = laterOf(now, e.UpdatedAt)
		e.SyncStatus = models.SyncStatusPending
		e.SyncError = ""
		return nil
	})
	if err != nil {
		return err
	}

	s.enqueue(e, models.OperationDelete)
	return nil
}

// HardDelete removes the entity immediately without syncing.
func (s *EntityStore) HardDelete(ctx context.Context, entityType models.EntityType, id string) error {
	return s.repo.DeleteEntity(ctx, entityType, id)
}

// Get returns the entity, soft-deleted ones included.
func (s *EntityStore) Get(ctx context.Context, entityType models.EntityType, id string) (models.Entity, error) {
	return s.repo.GetEntity(ctx, entityType, id)
}

// Query returns the entities matching filter.
func (s *EntityStore) Query(ctx context.Context, filter models.EntityFilter) ([]models.Entity, error) {
	return s.repo.QueryEntities(ctx, filter)
}

// MarkSyncing moves a Pending or Failed entity to Syncing and returns the
// snapshot that is about to be pushed. Returns [ErrNothingToSync] if the
// entity is already Synced.
func (s *EntityStore) MarkSyncing(ctx context.Context, entityType models.EntityType, id string) (models.Entity, error) {
	return s.repo.UpdateEntity(ctx, entityType, id, func(e *models.Entity) error {
		if e.SyncStatus == models.SyncStatusSynced {
			return ErrNothingToSync
		}
		e.SyncStatus = models.SyncStatusSyncing
		e.SyncError = ""
		return nil
	})
}

// MarkSynced records a remote acknowledgment with the server's updatedAt.
//
// The remote version is always stored. The status only becomes Synced if
// the entity is still Syncing: a record edited while its push was in flight
// stays Pending, and its next push is based on the acknowledged version.
// LastSyncedAt is max(at, UpdatedAt).
func (s *EntityStore) MarkSynced(ctx context.Context, entityType models.EntityType, id string, at time.Time) error {
	_, err := s.repo.UpdateEntity(ctx, entityType, id, func(e *models.Entity) error {
		version := at
		e.RemoteVersion = &version
		if e.SyncStatus != models.SyncStatusSyncing {
			return nil
		}
		syncedAt := laterOf(at, e.UpdatedAt)
		e.LastSyncedAt = &syncedAt
		e.SyncStatus = models.SyncStatusSynced
		e.SyncError = ""
		return nil
	})
	return err
}

// MarkFailed records a push failure. A record edited while its push was in
// flight stays Pending.
func (s *EntityStore) MarkFailed(ctx context.Context, entityType models.EntityType, id string, reason string) error {
	reason = sanitizeReason(reason)

	_, err := s.repo.UpdateEntity(ctx, entityType, id, func(e *models.Entity) error {
		if e.SyncStatus != models.SyncStatusSyncing {
			return nil
		}
		e.SyncStatus = models.SyncStatusFailed
		e.SyncError = reason
		return nil
	})
	return err
}

// MarkPending puts the entity back into the push path and enqueues it. A
// non-nil remoteVersion replaces the stored optimistic-concurrency base, so
// the next push overwrites that remote version.
func (s *EntityStore) MarkPending(ctx context.Context, entityType models.EntityType, id string, remoteVersion *time.Time) (models.Entity, error) {
	e, err := s.repo.UpdateEntity(ctx, entityType, id, func(e *models.Entity) error {
		if remoteVersion != nil {
			v := *remoteVersion
			e.RemoteVersion = &v
		}
		e.SyncStatus = models.SyncStatusPending
		e.SyncError = ""
		return nil
	})
	if err != nil {
		return models.Entity{}, err
	}

	s.enqueue(e, operationKindOf(e))
	return e, nil
}

// ApplyRemote writes remote as the Synced state of the record without
// enqueueing. A remote tombstone evicts the local copy instead. It is the
// only write path of the pull phase.
//
// seen is the local copy the caller decided on, nil if there was none. If
// the stored record no longer matches it, nothing is written and
// [ErrEntityChanged] is returned, so a local edit made in the meantime is
// never overwritten.
func (s *EntityStore) ApplyRemote(ctx context.Context, seen *models.Entity, remote models.Entity) error {
	if remote.LastSyncedAt == nil {
		syncedAt := laterOf(s.clock.Now(), remote.UpdatedAt)
		remote.LastSyncedAt = &syncedAt
	}
	remote.SyncStatus = models.SyncStatusSynced
	remote.SyncError = ""

	return s.repo.ReplaceEntity(ctx, remote.Type, remote.ID, func(current *models.Entity) (*models.Entity, error) {
		if !unchangedSince(current, seen) {
			return nil, ErrEntityChanged
		}
		if remote.IsDeleted() {
			return nil, nil
		}
		return &remote, nil
	})
}

// Evict removes a record after its remote delete was confirmed, unless it
// changed since seen was read (for example, revived by CreateWithID).
func (s *EntityStore) Evict(ctx context.Context, seen models.Entity) error {
	return s.repo.ReplaceEntity(ctx, seen.Type, seen.ID, func(current *models.Entity) (*models.Entity, error) {
		if current == nil {
			return nil, nil
		}
		if !unchangedSince(current, &seen) {
			return nil, ErrEntityChanged
		}
		return nil, nil
	})
}

// unchangedSince reports whether current is still the revision seen. Both
// nil means the record is still absent.
func unchangedSince(current, seen *models.Entity) bool {
	if current == nil || seen == nil {
		return current == nil && seen == nil
	}
	return current.UpdatedAt.Equal(seen.UpdatedAt) &&
		current.SyncStatus == seen.SyncStatus &&
		current.IsDeleted() == seen.IsDeleted() &&
		reflect.DeepEqual(current.Fields, seen.Fields)
}

// StatusCounts returns the pending and failed counts of entityType.
// Syncing records count as pending.
func (s *EntityStore) StatusCounts(ctx context.Context, entityType models.EntityType) (pending, failed int, err error) {
	counts, err := s.repo.CountByStatus(ctx, entityType)
	if err != nil {
		return 0, 0, err
	}
	return counts[models.SyncStatusPending] + counts[models.SyncStatusSyncing], counts[models.SyncStatusFailed], nil
}

// RecoverPending re-enqueues every entity left Pending or Syncing by a
// previous process and returns how many were recovered. Syncing records
// are reset to Pending since no cycle is running yet.
func (s *EntityStore) RecoverPending(ctx context.Context) (int, error) {
	entities, err := s.repo.QueryEntities(ctx, models.EntityFilter{
		Statuses:       []models.SyncStatus{models.SyncStatusPending, models.SyncStatusSyncing},
		IncludeDeleted: true,
	})
	if err != nil {
		return 0, err
	}

	for _, e := range entities {
		if e.SyncStatus == models.SyncStatusSyncing {
			if _, err = s.MarkPending(ctx, e.Type, e.ID, nil); err != nil {
				return 0, err
			}
			continue
		}
		s.enqueue(e, operationKindOf(e))
	}

	if len(entities) > 0 {
		s.logger.Info().Int("count", len(entities)).Msg("recovered pending entities into the sync queue")
	}
	return len(entities), nil
}

func (s *EntityStore) enqueue(e models.Entity, kind models.OperationKind) {
	if s.queue == nil {
		return
	}
	s.queue.Enqueue(models.SyncOperation{
		EntityType: e.Type,
		EntityID:   e.ID,
		Kind:       kind,
		EnqueuedAt: s.clock.Now(),
	})
}

func operationKindOf(e models.Entity) models.OperationKind {
	switch {
	case e.IsDeleted():
		return models.OperationDelete
	case e.RemoteVersion == nil:
		return models.OperationCreate
	default:
		return models.OperationUpdate
	}
}

func laterOf(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// sanitizeReason keeps Failed records displayable: one line, bounded, never
// empty.
func sanitizeReason(reason string) string {
	reason = strings.Join(strings.Fields(reason), " ")
	if reason == "" {
		return "unknown sync error"
	}
	if runes := []rune(reason); len(runes) > maxSyncErrorLength {
		reason = string(runes[:maxSyncErrorLength-3]) + "..."
	}
	return reason
}
