// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// sync client and the reference server. It is populated by merging values
// from environment variables, command-line flags, and an optional JSON
// file; each binary then takes its own validated view of it
// ([GetClientConfig], [GetServerConfig]).
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds credentials, keys and token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds the database settings of either binary.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the reference server's listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's remote backend endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the sync engine tuning.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds intervals of the client's background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the client log file settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// PasswordHashKey is the server's HMAC key for stored password hashes.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// TokenSignKey signs and verifies JWT tokens on the server.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key of the HashSHA256 request integrity header.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// EncryptionPassphrase derives the field encryption key on the client.
	// Env: APP_ENCRYPTION_PASSPHRASE
	EncryptionPassphrase string `env:"ENCRYPTION_PASSPHRASE"`

	// EncryptionSalt is mixed into the field key derivation. It must be
	// the same on every device of a user.
	// Env: APP_ENCRYPTION_SALT
	EncryptionSalt string `env:"ENCRYPTION_SALT"`

	// Login and Password are used by the client when no stored session is
	// available.
	// Env: APP_LOGIN, APP_PASSWORD
	Login    string `env:"LOGIN"`
	Password string `env:"PASSWORD"`
}

// Storage groups storage settings.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN is a PostgreSQL URL on the server and a SQLite file path (or
	// ":memory:") on the client.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the REST listener, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the gRPC health listener, "host:port".
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the sustained number of requests per second allowed per
	// user; RateBurst is the bucket size.
	// Env: SERVER_RATE_LIMIT, SERVER_RATE_BURST
	RateLimit float64 `env:"RATE_LIMIT"`
	RateBurst int     `env:"RATE_BURST"`
}

// Adapter holds the client's outbound transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the remote backend.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every remote call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds sync engine tuning.
type Sync struct {
	// EntityTypes lists the synchronized entity types.
	// Env: SYNC_ENTITY_TYPES (comma separated)
	EntityTypes []string `env:"ENTITY_TYPES" envSeparator:","`

	// SensitiveFields is the allow-list of field names encrypted before
	// transmission.
	// Env: SYNC_SENSITIVE_FIELDS (comma separated)
	SensitiveFields []string `env:"SENSITIVE_FIELDS" envSeparator:","`

	// QueueDebounce batches rapid local edits into one drain.
	// Env: SYNC_QUEUE_DEBOUNCE
	QueueDebounce time.Duration `env:"QUEUE_DEBOUNCE"`

	// NetworkQuietPeriod is how long a connectivity state must hold before
	// it is considered settled.
	// Env: SYNC_NETWORK_QUIET_PERIOD
	NetworkQuietPeriod time.Duration `env:"NETWORK_QUIET_PERIOD"`

	// RetryBase and RetryMax bound the exponential backoff of retried
	// cycles; MaxAttempts is the number of tries per retried cycle.
	// Env: SYNC_RETRY_BASE, SYNC_RETRY_MAX, SYNC_MAX_ATTEMPTS
	RetryBase   time.Duration `env:"RETRY_BASE"`
	RetryMax    time.Duration `env:"RETRY_MAX"`
	MaxAttempts int           `env:"MAX_ATTEMPTS"`

	// PushConcurrency bounds parallel remote calls in the push phase.
	// Env: SYNC_PUSH_CONCURRENCY
	PushConcurrency int `env:"PUSH_CONCURRENCY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the timer-triggered sync.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ProbeInterval is the period of the connectivity probe.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Log holds the client log file settings.
type Log struct {
	// File is the log file path.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// in the following priority order (later sources override earlier non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left empty by every source take the values of [defaults].
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
