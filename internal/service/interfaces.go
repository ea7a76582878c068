package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-offline-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=RecordServiceWrapper

// RecordService is the record API of the reference backend. Every call is
// scoped to userID.
type RecordService interface {
	// UpsertRecord stores record if its BaseVersion matches the stored
	// version and returns it with the server-assigned UpdatedAt.
	UpsertRecord(ctx context.Context, userID int64, record models.RemoteRecord) (models.RemoteRecord, error)

	// DeleteRecord tombstones the record.
	DeleteRecord(ctx context.Context, userID int64, entityType models.EntityType, id string) (models.RemoteRecord, error)

	GetRecord(ctx context.Context, userID int64, entityType models.EntityType, id string) (models.RemoteRecord, error)

	// ListRecordsSince returns records changed after since in ascending
	// UpdatedAt order, tombstones included.
	ListRecordsSince(ctx context.Context, userID int64, entityType models.EntityType, since time.Time, limit uint64) ([]models.RemoteRecord, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports what build of the server is running.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// logging or validating.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService // returns a decorated RecordService applying additional behavior
}
