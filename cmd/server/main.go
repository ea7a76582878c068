package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/handler"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/server"
	"github.com/MKhiriev/go-offline-sync/internal/service"
	"github.com/MKhiriev/go-offline-sync/internal/store"
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

	log := logger.NewLogger("go-offline-sync-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http", cfg.Server.HTTPAddress).
		Str("grpc", cfg.Server.GRPCAddress).
		Float64("rate_limit", cfg.Server.RateLimit).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server failed")
	}
}
