package server

import "context"

// Server owns the listeners of the reference backend.
type Server interface {
	// Run serves until ctx is done or a listener fails, and shuts every
	// listener down before returning. A clean stop returns nil.
	Run(ctx context.Context) error

	// Shutdown drains and closes all listeners.
	Shutdown()
}

// transport is a single listener, HTTP or gRPC.
type transport interface {
	name() string
	serve() error
	Shutdown()
}
