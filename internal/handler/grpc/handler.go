// Package grpc exposes the server's gRPC surface: the standard
// grpc.health.v1 service, which load balancers and the client probe use
// alongside GET /api/health.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// RecordsServiceName is the health entry reporting the record API.
const RecordsServiceName = "offlinesync.Records"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler builds a Handler whose health entries start out SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(RecordsServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// ServerOptions are the interceptors every gRPC server built around h
// should carry.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{grpc.ChainUnaryInterceptor(h.withLogging)}
}

// Shutdown flips every entry to NOT_SERVING so watchers see the server
// draining before connections close.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	event := h.logger.Debug()
	if err != nil {
		event = h.logger.Warn().Err(err)
	}
	event.
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
