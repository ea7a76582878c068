// Package server runs the reference backend's transports.
//
// It owns the HTTP and gRPC listener lifecycles. Run serves every enabled
// transport until its context is cancelled and then drains them; a
// transport that fails to start takes the others down with it.
package server
