package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEntityNotFound is returned when a local entity identified by
	// (entity_type, id) does not exist, or was soft-deleted and the
	// operation requires a live record.
	ErrEntityNotFound = errors.New("entity was not found")

	// ErrNothingToSync is returned by [EntityStore.MarkSyncing] when the
	// entity has no unacknowledged local changes.
	ErrNothingToSync = errors.New("entity has nothing to sync")

	// ErrEntityChanged is returned by the guarded writes of [EntityStore]
	// when the stored record no longer matches the copy the caller read.
	ErrEntityChanged = errors.New("entity changed since it was read")

	// ErrSessionNotFound is returned when no session has been stored on
	// this device.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRecordNotFound is returned when a remote record identified by
	// (user_id, entity_type, id) does not exist.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the base version supplied by the client does not match the current
	// updated_at stored in the database, meaning another device has modified
	// the record since the client last synchronized.
	ErrVersionConflict = errors.New("record version conflict occurred")

	// ErrTransient wraps database errors the classifier considers
	// retryable (lost connection, serialization failure, deadlock).
	ErrTransient = errors.New("transient database error")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingFields is returned when an entity payload cannot be
	// serialized to or from its JSON column.
	ErrEncodingFields = errors.New("failed to encode entity fields")
)
