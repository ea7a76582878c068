package service

import "errors"

// Sync taxonomy. Cycle-level errors are returned by [SyncEngine.Sync];
// item-level errors end up in the SyncError of the affected record.
var (
	// ErrNotAuthenticated aborts a cycle before it starts: there is no
	// valid session for the remote backend.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAlreadyInProgress rejects a cycle for an entity type that is
	// already syncing.
	ErrAlreadyInProgress = errors.New("sync already in progress")

	// ErrNetwork is a transport failure. It is the only retryable error.
	ErrNetwork = errors.New("network error")

	// ErrConflictDetected signals a version conflict. The engine resolves
	// it internally.
	ErrConflictDetected = errors.New("conflict detected")

	// ErrValidation means the payload or request was rejected.
	ErrValidation = errors.New("validation error")

	// ErrNotFound means the record vanished mid-cycle.
	ErrNotFound = errors.New("not found")
)

// Server-side business errors.
var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")
	ErrLoginAlreadyExists      = errors.New("login already exists")
)
