package server

import (
	"context"

	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/handler"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	transports []transport
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		s.transports = append(s.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	logger.Info().Int("transports", len(s.transports)).Msg("server created")
	return s, nil
}

// Run starts every transport in its own goroutine. The first failure
// cancels the rest.
func (s *server) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	for _, t := range s.transports {
		g.Go(t.serve)
	}
	g.Go(func() error {
		<-gCtx.Done()
		s.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}
	s.logger.Info().Msg("server shut down gracefully")
	return nil
}

func (s *server) Shutdown() {
	for _, t := range s.transports {
		s.logger.Debug().Str("transport", t.name()).Msg("shutting down")
		t.Shutdown()
	}
}
