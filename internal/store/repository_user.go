package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/models"
	"github.com/jackc/pgerrcode"
)

// userRepository keeps the accounts that own synced records in the
// "users" table.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

// CreateUser inserts user and returns it with the assigned id and
// creation time. A taken login is [ErrLoginAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := buildInsertUserQuery(strings.TrimSpace(user.Login), user.PasswordHash)
	if err != nil {
		return models.User{}, err
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return created, nil
	case postgresError(err) == pgerrcode.UniqueViolation:
		return models.User{}, ErrLoginAlreadyExists
	default:
		logger.FromContext(ctx).Err(err).Str("login", user.Login).Msg("insert user failed")
		return models.User{}, r.db.wrapDBError(ErrExecutingStatement, err)
	}
}

// FindUserByLogin returns the account named by user.Login, or
// [ErrNoUserWasFound].
func (r *userRepository) FindUserByLogin(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := buildFindUserQuery(strings.TrimSpace(user.Login))
	if err != nil {
		return models.User{}, err
	}

	found, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.NoDataFound:
		return models.User{}, ErrNoUserWasFound
	default:
		logger.FromContext(ctx).Err(err).Str("login", user.Login).Msg("select user failed")
		return models.User{}, r.db.wrapDBError(ErrExecutingQuery, err)
	}
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Login, &u.PasswordHash, &u.CreatedAt)
	return u, err
}
