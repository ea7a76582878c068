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

// remoteRecordRepository is the PostgreSQL-backed implementation of
// [RemoteRecordRepository] over the "records" table.
type remoteRecordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRemoteRecordRepository constructs a [RemoteRecordRepository].
func NewRemoteRecordRepository(db *DB, logger *logger.Logger) RemoteRecordRepository {
	logger.Debug().Msg("creating record repository")
	return &remoteRecordRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *remoteRecordRepository) UpsertRecord(ctx context.Context, userID int64, record models.RemoteRecord, now time.Time) (models.RemoteRecord, error) {
	log := logger.FromContext(ctx)

	fields, err := encodeFields(record.Fields)
	if err != nil {
		return models.RemoteRecord{}, err
	}

	var saved models.RemoteRecord
	err = p.inTypeLock(ctx, userID, record.Type, func(tx *sql.Tx) error {
		current, exists, err := p.currentVersion(ctx, tx, userID, record.Type, record.ID)
		if err != nil {
			return err
		}
		if exists && (record.BaseVersion == nil || !record.BaseVersion.Equal(current)) {
			return ErrVersionConflict
		}

		version, err := p.nextTypeVersion(ctx, tx, userID, record.Type, now)
		if err != nil {
			return err
		}

		createdAt := record.CreatedAt
		if createdAt.IsZero() {
			createdAt = version
		}

		row := tx.QueryRowContext(ctx, upsertRecord, userID, string(record.Type), record.ID, fields, createdAt, version)
		saved, err = scanRecord(row)
		if err != nil {
			return p.wrapDBError(ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrVersionConflict) {
			log.Err(err).
				Str("func", "remoteRecordRepository.UpsertRecord").
				Int64("user_id", userID).
				Str("entity_type", record.Type.String()).
				Str("id", record.ID).
				Msg("failed to upsert record")
		}
		return models.RemoteRecord{}, err
	}

	saved.UserID = userID
	return saved, nil
}

func (p *remoteRecordRepository) DeleteRecord(ctx context.Context, userID int64, entityType models.EntityType, id string, now time.Time) (models.RemoteRecord, error) {
	log := logger.FromContext(ctx)

	var deleted models.RemoteRecord
	err := p.inTypeLock(ctx, userID, entityType, func(tx *sql.Tx) error {
		_, exists, err := p.currentVersion(ctx, tx, userID, entityType, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrRecordNotFound
		}

		version, err := p.nextTypeVersion(ctx, tx, userID, entityType, now)
		if err != nil {
			return err
		}

		row := tx.QueryRowContext(ctx, tombstoneRecord, userID, string(entityType), id, version)
		deleted, err = scanRecord(row)
		if err != nil {
			return p.wrapDBError(ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrRecordNotFound) {
			log.Err(err).
				Str("func", "remoteRecordRepository.DeleteRecord").
				Int64("user_id", userID).
				Str("entity_type", entityType.String()).
				Str("id", id).
				Msg("failed to delete record")
		}
		return models.RemoteRecord{}, err
	}

	deleted.UserID = userID
	return deleted, nil
}

func (p *remoteRecordRepository) GetRecord(ctx context.Context, userID int64, entityType models.EntityType, id string) (models.RemoteRecord, error) {
	query, args, err := buildGetRecordQuery(userID, entityType, id)
	if err != nil {
		return models.RemoteRecord{}, err
	}

	record, err := scanRecord(p.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.RemoteRecord{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteRecordRepository.GetRecord").
			Int64("user_id", userID).
			Msg("failed to get record")
		return models.RemoteRecord{}, p.wrapDBError(ErrScanningRow, err)
	}

	record.UserID = userID
	return record, nil
}

func (p *remoteRecordRepository) ListRecordsSince(ctx context.Context, userID int64, entityType models.EntityType, since time.Time, limit uint64) ([]models.RemoteRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsSinceQuery(userID, entityType, since, limit)
	if err != nil {
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "remoteRecordRepository.ListRecordsSince").
			Int64("user_id", userID).
			Str("entity_type", entityType.String()).
			Msg("failed to execute query")
		return nil, p.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.RemoteRecord, 0, 50)
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "remoteRecordRepository.ListRecordsSince").
				Int64("user_id", userID).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		record.UserID = userID
		results = append(results, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "remoteRecordRepository.ListRecordsSince").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// inTypeLock runs fn in a transaction holding the advisory lock of
// (userID, entityType).
func (p *remoteRecordRepository) inTypeLock(ctx context.Context, userID int64, entityType models.EntityType, fn func(tx *sql.Tx) error) error {
	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return p.wrapDBError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, lockRecordType, recordTypeLockKey(userID, entityType)); err != nil {
		return p.wrapDBError(ErrExecutingStatement, err)
	}

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return p.wrapDBError(ErrCommitingTransaction, err)
	}
	return nil
}

func (p *remoteRecordRepository) currentVersion(ctx context.Context, tx *sql.Tx, userID int64, entityType models.EntityType, id string) (time.Time, bool, error) {
	var updatedAt time.Time
	err := tx.QueryRowContext(ctx, selectRecordVersionForUpdate, userID, string(entityType), id).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, p.wrapDBError(ErrScanningRow, err)
	}
	return updatedAt.UTC(), true, nil
}

func (p *remoteRecordRepository) nextTypeVersion(ctx context.Context, tx *sql.Tx, userID int64, entityType models.EntityType, now time.Time) (time.Time, error) {
	var latest sql.NullTime
	if err := tx.QueryRowContext(ctx, selectLatestRecordVersion, userID, string(entityType)).Scan(&latest); err != nil {
		return time.Time{}, p.wrapDBError(ErrScanningRow, err)
	}
	return nextVersion(now, nullTimePtr(latest)), nil
}

// scanRecord reads one row in [recordColumns] order.
func scanRecord(row rowScanner) (models.RemoteRecord, error) {
	var (
		r         models.RemoteRecord
		typ       string
		fields    []byte
		deletedAt sql.NullTime
	)
	if err := row.Scan(&r.ID, &typ, &fields, &r.CreatedAt, &r.UpdatedAt, &deletedAt); err != nil {
		return models.RemoteRecord{}, err
	}

	var err error
	if r.Fields, err = decodeFields(fields); err != nil {
		return models.RemoteRecord{}, err
	}
	r.Type = models.EntityType(typ)
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()
	r.DeletedAt = nullTimePtr(deletedAt)
	return r, nil
}
