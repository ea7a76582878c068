package adapter

import "errors"

// Sentinel errors mapped from HTTP responses by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("version conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrTransport wraps failures where no response was received at all:
	// refused connections, DNS errors, timeouts.
	ErrTransport = errors.New("transport failure")

	// ErrNoToken is returned by authenticated calls made before a token was
	// set.
	ErrNoToken = errors.New("no bearer token")
)
