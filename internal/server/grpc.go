package server

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/config"
	myGRPC "github.com/MKhiriev/go-offline-sync/internal/handler/grpc"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler
	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) name() string { return "grpc" }

func (g *grpcServer) serve() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server listen on %s: %w", g.address, err)
	}

	g.logger.Info().Str("address", listener.Addr().String()).Msg("launching gRPC server")
	if err = g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown reports NOT_SERVING, then drains. Open health Watch streams
// would hold GracefulStop forever, so it is bounded by shutdownTimeout.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		g.logger.Warn().Msg("gRPC graceful stop timed out, forcing")
		g.server.Stop()
	}
}
