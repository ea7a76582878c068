package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-offline-sync/internal/client"
	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("go-offline-sync-client", logger.FileOptions{}).
			Fatal().Err(err).Msg("error getting configs")
	}

	// The terminal belongs to the dashboard; logs go to a rotated file.
	log := logger.NewClientLogger("go-offline-sync-client", logger.FileOptions{
		Path:  cfg.Log.File,
		Level: cfg.Log.Level,
	})

	log.Debug().
		Str("server", cfg.Adapter.HTTPAddress).
		Str("dsn", cfg.Storage.DB.DSN).
		Strs("entity_types", cfg.Sync.EntityTypes).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app, err := client.NewApp(ctx, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
