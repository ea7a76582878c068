package store

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-offline-sync/migrations"
	"github.com/MKhiriev/go-offline-sync/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	// lockRecordType serializes writers of one (user, entity type) so the
	// per-type updated_at sequence stays strictly increasing.
	lockRecordType = `SELECT pg_advisory_xact_lock($1);`

	selectRecordVersionForUpdate = `SELECT updated_at
    FROM records
    WHERE user_id = $1 AND entity_type = $2 AND id = $3
    FOR UPDATE;`

	selectLatestRecordVersion = `SELECT MAX(updated_at)
    FROM records
    WHERE user_id = $1 AND entity_type = $2;`

	upsertRecord = `INSERT INTO records (user_id, entity_type, id, fields, created_at, updated_at, deleted_at)
    VALUES ($1, $2, $3, $4, $5, $6, NULL)
    ON CONFLICT (user_id, entity_type, id) DO UPDATE SET
        fields     = excluded.fields,
        updated_at = excluded.updated_at,
        deleted_at = NULL
    RETURNING id, entity_type, fields, created_at, updated_at, deleted_at;`

	tombstoneRecord = `UPDATE records
    SET deleted_at = $4, updated_at = $4
    WHERE user_id = $1 AND entity_type = $2 AND id = $3
    RETURNING id, entity_type, fields, created_at, updated_at, deleted_at;`
)

// recordColumns is the column order scanned by [scanRecord].
var recordColumns = []string{"id", "entity_type", "fields", "created_at", "updated_at", "deleted_at"}

// userColumns is the column order scanned by [scanUser].
var userColumns = []string{"user_id", "login", "password_hash", "created_at"}

var postgresBuilder = statementBuilder(migrations.Postgres)

// buildInsertUserQuery inserts an account and returns the stored row.
func buildInsertUserQuery(login, passwordHash string) (string, []any, error) {
	query, args, err := postgresBuilder.
		Insert("users").
		Columns("login", "password_hash").
		Values(login, passwordHash).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildFindUserQuery selects the account with the given login.
func buildFindUserQuery(login string) (string, []any, error) {
	query, args, err := postgresBuilder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"login": login}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildGetRecordQuery selects a single record of a user.
func buildGetRecordQuery(userID int64, entityType models.EntityType, id string) (string, []any, error) {
	query, args, err := postgresBuilder.
		Select(recordColumns...).
		From("records").
		Where(sq.Eq{"user_id": userID, "entity_type": string(entityType), "id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListRecordsSinceQuery selects the records of one type changed after
// since, oldest first. A zero limit means no limit.
func buildListRecordsSinceQuery(userID int64, entityType models.EntityType, since time.Time, limit uint64) (string, []any, error) {
	b := postgresBuilder.
		Select(recordColumns...).
		From("records").
		Where(sq.Eq{"user_id": userID, "entity_type": string(entityType)}).
		Where(sq.Gt{"updated_at": since}).
		OrderBy("updated_at ASC", "id ASC")
	if limit > 0 {
		b = b.Limit(limit)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// recordTypeLockKey maps (user, entity type) to an advisory lock key.
func recordTypeLockKey(userID int64, entityType models.EntityType) int64 {
	h := fnv.New64a()
	h.Write([]byte(strconv.FormatInt(userID, 10)))
	h.Write([]byte{0})
	h.Write([]byte(entityType))
	return int64(h.Sum64())
}

// nextVersion returns the updated_at to assign: now truncated to the
// database precision, but strictly after latest.
func nextVersion(now time.Time, latest *time.Time) time.Time {
	ts := now.UTC().Truncate(time.Microsecond)
	if latest != nil && !ts.After(*latest) {
		ts = latest.UTC().Add(time.Microsecond)
	}
	return ts
}
