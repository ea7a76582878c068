// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-offline-sync/internal/adapter"
	"github.com/MKhiriev/go-offline-sync/internal/app"
	"github.com/MKhiriev/go-offline-sync/internal/store"
)

// mapAdapterError translates the adapter's transport error into the sync
// taxonomy. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrConflictDetected, err)
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrNoToken):
		return fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	case errors.Is(err, adapter.ErrNotFound), errors.Is(err, store.ErrEntityNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	case adapter.IsRetryable(err):
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	return err
}

// mapAuthError is mapAdapterError for register and login replies, whose
// body distinguishes errors that share a status code.
func mapAuthError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidLoginPassword {
			return ErrWrongPassword
		}
	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			return ErrLoginAlreadyExists
		}
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidDataProvided {
			return ErrInvalidDataProvided
		}
	}

	return mapAdapterError(err)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9\-_.=]+`)

// sanitizeSyncError renders err for the SyncError of a Failed record. Tokens
// are redacted; the entity store bounds the length.
func sanitizeSyncError(err error) string {
	if err == nil {
		return ""
	}
	return bearerPattern.ReplaceAllString(err.Error(), "Bearer [redacted]")
}

// isRetryableSyncError reports whether a failed cycle is worth another
// attempt.
func isRetryableSyncError(err error) bool {
	return errors.Is(err, ErrNetwork)
}
