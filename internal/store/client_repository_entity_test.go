package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/migrations"
	"github.com/MKhiriev/go-offline-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteRepo(t *testing.T) (*sqliteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &sqliteRepository{
		DB:     &DB{DB: db, dialect: migrations.SQLite, logger: logger.Nop()},
		logger: logger.Nop(),
	}, mock
}

func entityRows() *sqlmock.Rows {
	return sqlmock.NewRows(entityColumns)
}

var entityTime = time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC)

func TestSQLiteRepository_SaveEntity(t *testing.T) {
	repo, mock := newTestSQLiteRepo(t)

	mock.ExpectExec("INSERT INTO entities").
		WithArgs("tasks", "t1", `{"title":"x"}`, entityTime, entityTime, nil, "pending", nil, "", nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveEntity(context.Background(), models.Entity{
		ID:         "t1",
		Type:       "tasks",
		Fields:     models.Fields{"title": "x"},
		CreatedAt:  entityTime,
		UpdatedAt:  entityTime,
		SyncStatus: models.SyncStatusPending,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_SaveEntity_Error(t *testing.T) {
	repo, mock := newTestSQLiteRepo(t)

	mock.ExpectExec("INSERT INTO entities").WillReturnError(errors.New("disk full"))

	err := repo.SaveEntity(context.Background(), models.Entity{ID: "t1", Type: "tasks"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteRepository_GetEntity(t *testing.T) {
	repo, mock := newTestSQLiteRepo(t)
	version := entityTime.Add(-time.Hour)

	mock.ExpectQuery("SELECT entity_type, id").
		WithArgs("tasks", "t1").
		WillReturnRows(entityRows().AddRow(
			"tasks", "t1", []byte(`{"done":true}`), entityTime, entityTime, nil,
			"synced", entityTime, "", version,
		))

	e, err := repo.GetEntity(context.Background(), "tasks", "t1")
	require.NoError(t, err)

	assert.Equal(t, models.SyncStatusSynced, e.SyncStatus)
	assert.Equal(t, true, e.Fields["done"])
	assert.Nil(t, e.DeletedAt)
	require.NotNil(t, e.LastSyncedAt)
	require.NotNil(t, e.RemoteVersion)
	assert.True(t, version.Equal(*e.RemoteVersion))
}

func TestSQLiteRepository_GetEntity_NotFound(t *testing.T) {
	repo, mock := newTestSQLiteRepo(t)

	mock.ExpectQuery("SELECT entity_type, id").WillReturnRows(entityRows())

	_, err := repo.GetEntity(context.Background(), "tasks", "missing")
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestSQLiteRepository_QueryEntities(t *testing.T) {
	repo, mock := newTestSQLiteRepo(t)

	mock.ExpectQuery("SELECT entity_type, id").
		WithArgs("tasks", "failed").
		WillReturnRows(entityRows().
			AddRow("tasks", "a", []byte(`{}`), entityTime, entityTime, nil, "failed", nil, "timeout", nil).
			AddRow("tasks", "b", []byte(`{}`), entityTime, entityTime, nil, "failed", nil, "conflict", nil))

	entities, err := repo.QueryEntities(context.Background(), models.EntityFilter{
		Type:     "tasks",
		Statuses: []models.SyncStatus{models.SyncStatusFailed},
	})
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "timeout", entities[0].SyncError)
	assert.Equal(t, "b", entities[1].ID)
}

func TestSQLiteRepository_UpdateEntity(t *testing.T) {
	repo, mock := newTestSQLiteRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT entity_type, id").
		WithArgs("tasks", "t1").
		WillReturnRows(entityRows().AddRow(
			"tasks", "t1", []byte(`{}`), entityTime, entityTime, nil, "pending", nil, "", nil,
		))
	mock.ExpectExec("INSERT INTO entities").
		WithArgs("tasks", "t1", "{}", entityTime, entityTime, nil, "syncing", nil, "", nil).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	e, err := repo.UpdateEntity(context.Background(), "tasks", "t1", func(e *models.Entity) error {
		e.SyncStatus = models.SyncStatusSyncing
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSyncing, e.SyncStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_UpdateEntity_MutationErrorRollsBack(t *testing.T) {
	repo, mock := newTestSQLiteRepo(t)
	stop := errors.New("stop")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT entity_type, id").
		WillReturnRows(entityRows().AddRow(
			"tasks", "t1", []byte(`{}`), entityTime, entityTime, nil, "synced", entityTime, "", nil,
		))
	mock.ExpectRollback()

	_, err := repo.UpdateEntity(context.Background(), "tasks", "t1", func(*models.Entity) error { return stop })
	assert.ErrorIs(t, err, stop)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_UpdateEntity_NotFound(t *testing.T) {
	repo, mock := newTestSQLiteRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT entity_type, id").WillReturnRows(entityRows())
	mock.ExpectRollback()

	_, err := repo.UpdateEntity(context.Background(), "tasks", "t1", func(*models.Entity) error { return nil })
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestSQLiteRepository_DeleteEntity(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: ErrEntityNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSQLiteRepo(t)

			mock.ExpectExec("DELETE FROM entities").
				WithArgs("tasks", "t1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.DeleteEntity(context.Background(), "tasks", "t1")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSQLiteRepository_ReplaceEntity(t *testing.T) {
	stored := func() *sqlmock.Rows {
		return entityRows().AddRow("tasks", "t1", []byte(`{}`), entityTime, entityTime, nil, "synced", entityTime, "", nil)
	}
	next := &models.Entity{ID: "t1", Type: "tasks", Fields: models.Fields{}, CreatedAt: entityTime, UpdatedAt: entityTime, SyncStatus: models.SyncStatusSynced}

	t.Run("insert when absent", func(t *testing.T) {
		repo, mock := newTestSQLiteRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT entity_type, id").WithArgs("tasks", "t1").WillReturnRows(entityRows())
		mock.ExpectExec("INSERT INTO entities").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.ReplaceEntity(context.Background(), "tasks", "t1", func(current *models.Entity) (*models.Entity, error) {
			assert.Nil(t, current)
			return next, nil
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete inside the transaction", func(t *testing.T) {
		repo, mock := newTestSQLiteRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT entity_type, id").WillReturnRows(stored())
		mock.ExpectExec("DELETE FROM entities").WithArgs("tasks", "t1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.ReplaceEntity(context.Background(), "tasks", "t1", func(current *models.Entity) (*models.Entity, error) {
			require.NotNil(t, current)
			assert.Equal(t, models.SyncStatusSynced, current.SyncStatus)
			return nil, nil
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("refusal rolls back", func(t *testing.T) {
		repo, mock := newTestSQLiteRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT entity_type, id").WillReturnRows(stored())
		mock.ExpectRollback()

		err := repo.ReplaceEntity(context.Background(), "tasks", "t1", func(*models.Entity) (*models.Entity, error) {
			return nil, ErrEntityChanged
		})
		assert.ErrorIs(t, err, ErrEntityChanged)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLiteRepository_CountByStatus(t *testing.T) {
	repo, mock := newTestSQLiteRepo(t)

	mock.ExpectQuery("SELECT sync_status, COUNT").
		WithArgs("tasks").
		WillReturnRows(sqlmock.NewRows([]string{"sync_status", "count"}).
			AddRow("pending", 3).
			AddRow("failed", 1))

	counts, err := repo.CountByStatus(context.Background(), "tasks")
	require.NoError(t, err)
	assert.Equal(t, 3, counts[models.SyncStatusPending])
	assert.Equal(t, 1, counts[models.SyncStatusFailed])
	assert.Zero(t, counts[models.SyncStatusSynced])
}

func TestSQLiteRepository_SyncState(t *testing.T) {
	repo, mock := newTestSQLiteRepo(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT entity_type, watermark").
		WithArgs("tasks").
		WillReturnRows(sqlmock.NewRows([]string{"entity_type", "watermark", "last_synced_at"}))

	state, err := repo.GetSyncState(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, models.EntityType("tasks"), state.EntityType)
	assert.True(t, state.Watermark.Equal(time.Unix(0, 0)))
	assert.Nil(t, state.LastSyncedAt)

	mock.ExpectExec("INSERT INTO sync_state").
		WithArgs("tasks", entityTime, &entityTime).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SaveSyncState(ctx, models.SyncState{EntityType: "tasks", Watermark: entityTime, LastSyncedAt: &entityTime})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_Session(t *testing.T) {
	repo, mock := newTestSQLiteRepo(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id, token, expires_at").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "token", "expires_at"}))

	_, err := repo.GetSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	mock.ExpectQuery("SELECT user_id, token, expires_at").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "token", "expires_at"}).AddRow(9, "jwt", entityTime))

	session, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9), session.UserID)
	assert.Equal(t, "jwt", session.Token)

	mock.ExpectExec("DELETE FROM sessions").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteSession(ctx))
}
