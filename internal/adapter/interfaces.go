// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the remote backend.
//
// The primary abstraction is [RemoteBackend], which decouples the sync
// engine from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteBackend]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-offline-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_backend_mock.go -package=mock

// RemoteBackend is the authoritative store the client synchronizes with.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type RemoteBackend interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// AuthenticatedUser returns the user id of the current token. The second
	// result is false without a token or when the token has expired.
	AuthenticatedUser() (int64, bool)

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, user models.User) (models.Session, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// Upsert creates or replaces a record. record.BaseVersion is the remote
	// version the change is based on; a stale base yields [ErrConflict].
	// The returned record carries the server-assigned UpdatedAt.
	Upsert(ctx context.Context, record models.RemoteRecord) (models.RemoteRecord, error)

	// Delete removes a record remotely. Returns [ErrNotFound] if the record
	// never existed.
	Delete(ctx context.Context, entityType models.EntityType, id string) error

	// Fetch returns a single record, tombstones included.
	Fetch(ctx context.Context, entityType models.EntityType, id string) (models.RemoteRecord, error)

	// FetchSince returns every record of entityType changed strictly after
	// since, ordered by UpdatedAt ascending. Tombstones are included.
	FetchSince(ctx context.Context, entityType models.EntityType, since time.Time) ([]models.RemoteRecord, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}
