package handler

import (
	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/handler/grpc"
	"github.com/MKhiriev/go-offline-sync/internal/handler/http"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/service"
)

// Handlers holds one handler per enabled transport of the reference
// backend. A nil field is a disabled transport.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers enables a transport for each address set in cfg.Server: the
// REST record API on HTTPAddress and the health service on GRPCAddress.
func NewHandlers(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	var h Handlers
	enabled := make([]string, 0, 2)

	if cfg.Server.HTTPAddress != "" {
		h.HTTP = http.NewHandler(services, cfg, logger)
		enabled = append(enabled, "http")
	}
	if cfg.Server.GRPCAddress != "" {
		h.GRPC = grpc.NewHandler(services, logger)
		enabled = append(enabled, "grpc")
	}

	if len(enabled) == 0 {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().Strs("transports", enabled).Msg("handlers created")
	return &h, nil
}
