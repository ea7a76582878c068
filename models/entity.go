// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// EntityType names a family of synchronized records (e.g. "budgets").
// Every entity type has its own sync state machine, watermark and queue
// partition.
type EntityType string

// String implements [fmt.Stringer].
func (t EntityType) String() string {
	return string(t)
}

// SyncStatus is the position of a single entity in the sync state machine.
type SyncStatus string

const (
	// SyncStatusPending marks a record with local changes not yet confirmed
	// by the remote backend.
	SyncStatusPending SyncStatus = "pending"

	// SyncStatusSyncing marks a record that is being pushed by an active
	// sync cycle.
	SyncStatusSyncing SyncStatus = "syncing"

	// SyncStatusSynced marks a record whose local state matches the remote
	// acknowledgment.
	SyncStatusSynced SyncStatus = "synced"

	// SyncStatusFailed marks a record whose last push failed. SyncError
	// carries the reason.
	SyncStatusFailed SyncStatus = "failed"
)

// Valid reports whether s is one of the known statuses.
func (s SyncStatus) Valid() bool {
	switch s {
	case SyncStatusPending, SyncStatusSyncing, SyncStatusSynced, SyncStatusFailed:
		return true
	}
	return false
}

// Fields is the application payload of an entity: a JSON object keyed by
// field name. Sensitive fields are encrypted in place before transmission.
type Fields map[string]any

// Clone returns a shallow copy of f. Nested values are shared.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Merge returns a copy of f with every key from patch applied on top.
// A nil value in patch removes the key.
func (f Fields) Merge(patch Fields) Fields {
	out := f.Clone()
	if out == nil {
		out = make(Fields, len(patch))
	}
	for k, v := range patch {
		if v == nil {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

// Entity is a locally stored record together with its sync metadata.
//
// Invariants maintained by the entity store:
//   - SyncStatus == Synced implies LastSyncedAt != nil, SyncError == "" and
//     LastSyncedAt is not before UpdatedAt.
//   - SyncStatus == Failed implies SyncError != "".
type Entity struct {
	ID     string     `json:"id"`
	Type   EntityType `json:"entity_type"`
	Fields Fields     `json:"fields"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	SyncStatus   SyncStatus `json:"sync_status"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	SyncError    string     `json:"sync_error,omitempty"`

	// RemoteVersion is the remote updatedAt this copy was last reconciled
	// with. It is sent as the optimistic-concurrency base on upsert.
	RemoteVersion *time.Time `json:"remote_version,omitempty"`
}

// IsDeleted reports whether the entity carries a soft-delete marker.
func (e Entity) IsDeleted() bool {
	return e.DeletedAt != nil
}

// HasLocalChanges reports whether the entity holds changes the remote
// backend has not acknowledged yet.
func (e Entity) HasLocalChanges() bool {
	return e.SyncStatus == SyncStatusPending || e.SyncStatus == SyncStatusFailed || e.SyncStatus == SyncStatusSyncing
}

// Typed is an entity with its payload decoded into an application type.
type Typed[T any] struct {
	Entity
	Data T
}

// Decode converts the entity's Fields into T by a JSON round trip.
func Decode[T any](e Entity) (Typed[T], error) {
	var data T
	raw, err := json.Marshal(e.Fields)
	if err != nil {
		return Typed[T]{}, fmt.Errorf("marshal fields of %s/%s: %w", e.Type, e.ID, err)
	}
	if err = json.Unmarshal(raw, &data); err != nil {
		return Typed[T]{}, fmt.Errorf("decode fields of %s/%s: %w", e.Type, e.ID, err)
	}
	return Typed[T]{Entity: e, Data: data}, nil
}

// FieldsOf converts an application value into entity Fields.
func FieldsOf[T any](v T) (Fields, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	var fields Fields
	if err = json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("payload is not a JSON object: %w", err)
	}
	return fields, nil
}

// EntityFilter narrows an entity query. Zero values mean "no restriction".
type EntityFilter struct {
	Type           EntityType
	IDs            []string
	Statuses       []SyncStatus
	IncludeDeleted bool
	Limit          uint64
}
