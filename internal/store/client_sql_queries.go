// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-offline-sync/migrations"
	"github.com/MKhiriev/go-offline-sync/models"
	sq "github.com/Masterminds/squirrel"
)

const entitiesTable = "entities"

// entityColumns is the column order shared by every entity SELECT and the
// upsert.
var entityColumns = []string{
	"entity_type",
	"id",
	"fields",
	"created_at",
	"updated_at",
	"deleted_at",
	"sync_status",
	"last_synced_at",
	"sync_error",
	"remote_version",
}

const (
	upsertEntitySuffix = `ON CONFLICT (entity_type, id) DO UPDATE SET
			fields         = excluded.fields,
			created_at     = excluded.created_at,
			updated_at     = excluded.updated_at,
			deleted_at     = excluded.deleted_at,
			sync_status    = excluded.sync_status,
			last_synced_at = excluded.last_synced_at,
			sync_error     = excluded.sync_error,
			remote_version = excluded.remote_version`

	getSyncState = `
		SELECT entity_type, watermark, last_synced_at
		FROM sync_state
		WHERE entity_type = ?;`

	saveSyncState = `
		INSERT INTO sync_state (entity_type, watermark, last_synced_at)
		VALUES (?, ?, ?)
		ON CONFLICT (entity_type) DO UPDATE SET
			watermark      = excluded.watermark,
			last_synced_at = excluded.last_synced_at;`

	saveSession = `
		INSERT INTO sessions (slot, user_id, token, expires_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET
			user_id    = excluded.user_id,
			token      = excluded.token,
			expires_at = excluded.expires_at;`

	getSession = `
		SELECT user_id, token, expires_at
		FROM sessions
		WHERE slot = 1;`

	deleteSession = `DELETE FROM sessions WHERE slot = 1;`
)

var sqliteBuilder = statementBuilder(migrations.SQLite)

// buildSaveEntityQuery builds the upsert of a single entity.
func buildSaveEntityQuery(e models.Entity) (string, []any, error) {
	fields, err := encodeFields(e.Fields)
	if err != nil {
		return "", nil, err
	}

	query, args, err := sqliteBuilder.
		Insert(entitiesTable).
		Columns(entityColumns...).
		Values(
			string(e.Type),
			e.ID,
			fields,
			e.CreatedAt,
			e.UpdatedAt,
			e.DeletedAt,
			string(e.SyncStatus),
			e.LastSyncedAt,
			e.SyncError,
			e.RemoteVersion,
		).
		Suffix(upsertEntitySuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildGetEntityQuery selects one entity by its identity.
func buildGetEntityQuery(entityType models.EntityType, id string) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Select(entityColumns...).
		From(entitiesTable).
		Where(sq.Eq{"entity_type": string(entityType), "id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildQueryEntitiesQuery translates filter into a SELECT. Zero-valued
// filter fields add no condition.
func buildQueryEntitiesQuery(filter models.EntityFilter) (string, []any, error) {
	b := sqliteBuilder.
		Select(entityColumns...).
		From(entitiesTable).
		OrderBy("updated_at ASC", "id ASC")

	if filter.Type != "" {
		b = b.Where(sq.Eq{"entity_type": string(filter.Type)})
	}
	if len(filter.IDs) > 0 {
		b = b.Where(sq.Eq{"id": filter.IDs})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		b = b.Where(sq.Eq{"sync_status": statuses})
	}
	if !filter.IncludeDeleted {
		b = b.Where(sq.Eq{"deleted_at": nil})
	}
	if filter.Limit > 0 {
		b = b.Limit(filter.Limit)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteEntityQuery(entityType models.EntityType, id string) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Delete(entitiesTable).
		Where(sq.Eq{"entity_type": string(entityType), "id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildCountByStatusQuery counts live and soft-deleted records per status.
// Soft-deleted records are included on purpose: a pending delete is a
// pending change.
func buildCountByStatusQuery(entityType models.EntityType) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Select("sync_status", "COUNT(*)").
		From(entitiesTable).
		Where(sq.Eq{"entity_type": string(entityType)}).
		GroupBy("sync_status").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func encodeFields(fields models.Fields) (string, error) {
	if fields == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}
	return string(raw), nil
}

func decodeFields(raw []byte) (models.Fields, error) {
	fields := make(models.Fields)
	if len(raw) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}
	return fields, nil
}
