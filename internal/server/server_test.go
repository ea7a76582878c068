package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/handler"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg config.Server) (*server, error) {
	t.Helper()
	handlers, err := handler.NewHandlers(&service.Services{}, &config.ServerConfig{Server: cfg}, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, cfg, logger.Nop())
	if err != nil {
		return nil, err
	}
	return s.(*server), nil
}

func TestNewServer_NoTransports(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_StopsOnContextCancel(t *testing.T) {
	s, err := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"})
	require.NoError(t, err)
	require.Len(t, s.transports, 2)
	assert.Equal(t, "http", s.transports[0].name())
	assert.Equal(t, "grpc", s.transports[1].name())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServer_ListenFailureStopsOthers(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s, err := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: busy.Addr().String()})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	select {
	case err = <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gRPC server listen")
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after a listener failed")
	}
}

func TestNewServer_HTTPOnly(t *testing.T) {
	s, err := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0"})
	require.NoError(t, err)
	require.Len(t, s.transports, 1)
	assert.Equal(t, "http", s.transports[0].name())
}
