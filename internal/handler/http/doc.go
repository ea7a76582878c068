// Package http implements the HTTP transport of the reference sync backend.
//
// It exposes the auth and record routes consumed by the offline client,
// plus health and version probes. Tracing, access logging, compression,
// body integrity checks, authentication and per-user rate limiting are
// applied here before requests reach the service layer.
package http
