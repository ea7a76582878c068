package service

import (
	"fmt"

	"github.com/MKhiriev/go-offline-sync/internal/clock"
	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/store"
	"github.com/MKhiriev/go-offline-sync/models"
)

// Services groups the services of the reference server.
type Services struct {
	AuthService    AuthService
	RecordService  RecordService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	records := NewRecordValidationService().Wrap(NewRecordService(storages.RecordRepository, clock.Real(), logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		RecordService:  records,
		AppInfoService: appInfo,
	}, nil
}
