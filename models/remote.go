// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RemoteRecord is the wire representation of an entity on the remote
// backend. Sensitive fields are encrypted.
type RemoteRecord struct {
	ID        string     `json:"id"`
	Type      EntityType `json:"entity_type"`
	Fields    Fields     `json:"fields"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	// BaseVersion is the remote updatedAt the client's change is based on.
	// Nil means the client believes the record does not exist remotely.
	BaseVersion *time.Time `json:"base_version,omitempty"`

	// UserID is the owner. Server side only.
	UserID int64 `json:"-"`
}

// AsEntity converts a remote record into a local entity marked Synced at
// syncedAt.
func (r RemoteRecord) AsEntity(syncedAt time.Time) Entity {
	version := r.UpdatedAt
	if syncedAt.Before(r.UpdatedAt) {
		syncedAt = r.UpdatedAt
	}
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.UpdatedAt
	}
	return Entity{
		ID:            r.ID,
		Type:          r.Type,
		Fields:        r.Fields.Clone(),
		CreatedAt:     createdAt,
		UpdatedAt:     r.UpdatedAt,
		DeletedAt:     r.DeletedAt,
		SyncStatus:    SyncStatusSynced,
		LastSyncedAt:  &syncedAt,
		RemoteVersion: &version,
	}
}

// RecordFromEntity builds the upsert payload for e.
func RecordFromEntity(e Entity) RemoteRecord {
	return RemoteRecord{
		ID:          e.ID,
		Type:        e.Type,
		Fields:      e.Fields.Clone(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		DeletedAt:   e.DeletedAt,
		BaseVersion: e.RemoteVersion,
	}
}

// RecordsPage is the response of a fetch-since request.
type RecordsPage struct {
	Records []RemoteRecord `json:"records"`
	Length  int            `json:"length"`
}
