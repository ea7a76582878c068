package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It indicates whether a failed database operation should be retried or
// abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations, syntax errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable
)

// retryablePgCodes lists the PostgreSQL error codes after which the client
// may retry the same request. See
// https://www.postgresql.org/docs/current/errcodes-appendix.html.
var retryablePgCodes = map[string]struct{}{
	// Class 08 — connection exceptions
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},

	// Class 40 — transaction rollback
	pgerrcode.TransactionRollback:  {},
	pgerrcode.SerializationFailure: {},
	pgerrcode.DeadlockDetected:     {},

	// Class 53 — insufficient resources
	pgerrcode.TooManyConnections: {},

	// Class 55 — lock not available (advisory lock or NOWAIT)
	pgerrcode.LockNotAvailable: {},

	// Class 57 — operator intervention
	pgerrcode.CannotConnectNow: {},
	pgerrcode.AdminShutdown:    {},
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not
// *pgconn.PgError (including nil) are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
// Data exceptions (22), integrity violations (23) and syntax or access
// errors (42) never succeed on retry and fall into the default.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if _, ok := retryablePgCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}
