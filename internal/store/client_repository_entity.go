package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/models"
)

// sqliteRepository is the SQLite-backed implementation of [LocalRepository].
type sqliteRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalRepository constructs a [LocalRepository] over an open SQLite
// connection.
func NewLocalRepository(db *DB, logger *logger.Logger) LocalRepository {
	return &sqliteRepository{
		DB:     db,
		logger: logger,
	}
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (l *sqliteRepository) SaveEntity(ctx context.Context, e models.Entity) error {
	return l.saveEntity(ctx, l.DB.DB, e)
}

func (l *sqliteRepository) saveEntity(ctx context.Context, q queryer, e models.Entity) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveEntityQuery(e)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteRepository.SaveEntity").
			Str("entity_type", e.Type.String()).
			Str("id", e.ID).
			Msg("failed to build upsert")
		return err
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteRepository.SaveEntity").
			Str("entity_type", e.Type.String()).
			Str("id", e.ID).
			Msg("failed to execute upsert for entity")
		return fmt.Errorf("%w: save entity %s/%s: %w", ErrExecutingStatement, e.Type, e.ID, err)
	}

	return nil
}

func (l *sqliteRepository) GetEntity(ctx context.Context, entityType models.EntityType, id string) (models.Entity, error) {
	return l.getEntity(ctx, l.DB.DB, entityType, id)
}

func (l *sqliteRepository) getEntity(ctx context.Context, q queryer, entityType models.EntityType, id string) (models.Entity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntityQuery(entityType, id)
	if err != nil {
		return models.Entity{}, err
	}

	e, err := scanEntity(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entity{}, ErrEntityNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteRepository.GetEntity").
			Str("entity_type", entityType.String()).
			Str("id", id).
			Msg("failed to scan entity row")
		return models.Entity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return e, nil
}

func (l *sqliteRepository) QueryEntities(ctx context.Context, filter models.EntityFilter) ([]models.Entity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildQueryEntitiesQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteRepository.QueryEntities").
			Str("entity_type", filter.Type.String()).
			Msg("failed to execute entity query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Entity, 0, 16)
	for rows.Next() {
		e, scanErr := scanEntity(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "sqliteRepository.QueryEntities").
				Msg("failed to scan entity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, e)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "sqliteRepository.QueryEntities").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// UpdateEntity runs the read-modify-write in one transaction. The single
// connection of the SQLite pool serializes it against other writers.
func (l *sqliteRepository) UpdateEntity(ctx context.Context, entityType models.EntityType, id string, mutate EntityMutation) (models.Entity, error) {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqliteRepository.UpdateEntity").Msg("failed to begin transaction")
		return models.Entity{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	e, err := l.getEntity(ctx, tx, entityType, id)
	if err != nil {
		return models.Entity{}, err
	}

	if err = mutate(&e); err != nil {
		return models.Entity{}, err
	}

	if err = l.saveEntity(ctx, tx, e); err != nil {
		return models.Entity{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sqliteRepository.UpdateEntity").Msg("failed to commit transaction")
		return models.Entity{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return e, nil
}

// ReplaceEntity runs the decision and the write in one transaction, like
// UpdateEntity, but may also create or remove the record.
func (l *sqliteRepository) ReplaceEntity(ctx context.Context, entityType models.EntityType, id string, replace EntityReplacement) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqliteRepository.ReplaceEntity").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var current *models.Entity
	stored, err := l.getEntity(ctx, tx, entityType, id)
	switch {
	case err == nil:
		current = &stored
	case !errors.Is(err, ErrEntityNotFound):
		return err
	}

	next, err := replace(current)
	if err != nil {
		return err
	}

	switch {
	case next != nil:
		err = l.saveEntity(ctx, tx, *next)
	case current != nil:
		err = l.deleteEntity(ctx, tx, entityType, id)
	default:
		return nil
	}
	if err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sqliteRepository.ReplaceEntity").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (l *sqliteRepository) DeleteEntity(ctx context.Context, entityType models.EntityType, id string) error {
	return l.deleteEntity(ctx, l.DB.DB, entityType, id)
}

func (l *sqliteRepository) deleteEntity(ctx context.Context, q queryer, entityType models.EntityType, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntityQuery(entityType, id)
	if err != nil {
		return err
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteRepository.DeleteEntity").
			Str("entity_type", entityType.String()).
			Str("id", id).
			Msg("failed to delete entity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntityNotFound
	}

	return nil
}

func (l *sqliteRepository) CountByStatus(ctx context.Context, entityType models.EntityType) (map[models.SyncStatus]int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountByStatusQuery(entityType)
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteRepository.CountByStatus").
			Str("entity_type", entityType.String()).
			Msg("failed to count entities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[models.SyncStatus]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		counts[models.SyncStatus(status)] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}

// ── sync state ───────────────────────────────────────────────────────────────

func (l *sqliteRepository) GetSyncState(ctx context.Context, entityType models.EntityType) (models.SyncState, error) {
	var (
		state      models.SyncState
		typ        string
		lastSynced sql.NullTime
	)

	err := l.DB.QueryRowContext(ctx, getSyncState, string(entityType)).Scan(&typ, &state.Watermark, &lastSynced)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncState{EntityType: entityType, Watermark: time.Unix(0, 0).UTC()}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteRepository.GetSyncState").
			Str("entity_type", entityType.String()).
			Msg("failed to read sync state")
		return models.SyncState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	state.EntityType = models.EntityType(typ)
	state.LastSyncedAt = nullTimePtr(lastSynced)
	return state, nil
}

func (l *sqliteRepository) SaveSyncState(ctx context.Context, state models.SyncState) error {
	if _, err := l.DB.ExecContext(ctx, saveSyncState, string(state.EntityType), state.Watermark, state.LastSyncedAt); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteRepository.SaveSyncState").
			Str("entity_type", state.EntityType.String()).
			Msg("failed to save sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// ── session ──────────────────────────────────────────────────────────────────

func (l *sqliteRepository) SaveSession(ctx context.Context, session models.Session) error {
	var expiresAt *time.Time
	if !session.ExpiresAt.IsZero() {
		expiresAt = &session.ExpiresAt
	}
	if _, err := l.DB.ExecContext(ctx, saveSession, session.UserID, session.Token, expiresAt); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (l *sqliteRepository) GetSession(ctx context.Context) (models.Session, error) {
	var (
		session   models.Session
		expiresAt sql.NullTime
	)
	err := l.DB.QueryRowContext(ctx, getSession).Scan(&session.UserID, &session.Token, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if expiresAt.Valid {
		session.ExpiresAt = expiresAt.Time
	}
	return session, nil
}

func (l *sqliteRepository) DeleteSession(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, deleteSession); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (l *sqliteRepository) Close() error {
	return l.DB.Close()
}

// scanEntity reads one row in [entityColumns] order.
func scanEntity(row rowScanner) (models.Entity, error) {
	var (
		e                                 models.Entity
		typ, status                       string
		fields                            []byte
		deletedAt, lastSynced, remoteVers sql.NullTime
	)

	err := row.Scan(
		&typ,
		&e.ID,
		&fields,
		&e.CreatedAt,
		&e.UpdatedAt,
		&deletedAt,
		&status,
		&lastSynced,
		&e.SyncError,
		&remoteVers,
	)
	if err != nil {
		return models.Entity{}, err
	}

	if e.Fields, err = decodeFields(fields); err != nil {
		return models.Entity{}, err
	}
	e.Type = models.EntityType(typ)
	e.SyncStatus = models.SyncStatus(status)
	e.DeletedAt = nullTimePtr(deletedAt)
	e.LastSyncedAt = nullTimePtr(lastSynced)
	e.RemoteVersion = nullTimePtr(remoteVers)

	return e, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
