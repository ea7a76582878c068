package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "serialization", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "admin shutdown", err: pgError(pgerrcode.AdminShutdown), want: Retryable},
		{name: "lock not available", err: pgError(pgerrcode.LockNotAvailable), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
		{name: "wrapped", err: fmt.Errorf("exec: %w", pgError(pgerrcode.TooManyConnections)), want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestWrapDBError(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}

	err := db.wrapDBError(ErrExecutingQuery, pgError(pgerrcode.SerializationFailure))
	assert.ErrorIs(t, err, ErrTransient)
	assert.ErrorIs(t, err, ErrExecutingQuery)

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)

	err = db.wrapDBError(ErrExecutingQuery, pgError(pgerrcode.CheckViolation))
	assert.NotErrorIs(t, err, ErrTransient)
	assert.ErrorIs(t, err, ErrExecutingQuery)

	bare := &DB{}
	assert.NotErrorIs(t, bare.wrapDBError(ErrExecutingQuery, pgError(pgerrcode.DeadlockDetected)), ErrTransient)
}
