// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package conflict decides which side wins when a record changed both
// locally and remotely.
package conflict

import "github.com/MKhiriev/go-offline-sync/models"

// Winner names the side selected by a [Resolver].
type Winner string

const (
	WinnerLocal  Winner = "local"
	WinnerRemote Winner = "remote"
)

// Resolution is the outcome of a conflict decision. Merged is the record
// that should become the local state.
type Resolution struct {
	Winner Winner
	Merged models.Entity
}

// Resolver decides between a local and a remote version of one record.
// Implementations must be pure: no I/O and no mutation of the inputs.
type Resolver interface {
	Resolve(local, remote models.Entity) Resolution
}

// ResolverFunc adapts a function to [Resolver].
type ResolverFunc func(local, remote models.Entity) Resolution

// Resolve implements [Resolver].
func (f ResolverFunc) Resolve(local, remote models.Entity) Resolution {
	return f(local, remote)
}

// LastWriterWins compares UpdatedAt; the strictly later side wins and ties
// go to the remote side.
type LastWriterWins struct{}

// NewLastWriterWins returns the default resolver.
func NewLastWriterWins() LastWriterWins {
	return LastWriterWins{}
}

// Resolve implements [Resolver].
func (LastWriterWins) Resolve(local, remote models.Entity) Resolution {
	if local.UpdatedAt.After(remote.UpdatedAt) {
		merged := local
		merged.Fields = local.Fields.Clone()
		// the local change now builds on the remote version it beat
		version := remote.UpdatedAt
		merged.RemoteVersion = &version
		return Resolution{Winner: WinnerLocal, Merged: merged}
	}

	merged := remote
	merged.ID = local.ID
	merged.Type = local.Type
	merged.Fields = remote.Fields.Clone()
	if !local.CreatedAt.IsZero() {
		merged.CreatedAt = local.CreatedAt
	}
	merged.SyncStatus = models.SyncStatusSynced
	merged.SyncError = ""
	version := remote.UpdatedAt
	merged.RemoteVersion = &version
	return Resolution{Winner: WinnerRemote, Merged: merged}
}
