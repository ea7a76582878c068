package service

import (
	"context"

	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService prefers the configured version over the one linked
// into the binary. One of them must be set.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	info := build.AppInfo(cfg.Version)
	if info.Version == models.NotAvailable {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", info.Version).Msg("app info resolved")
	return &appInfoService{info: info, logger: logger}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
