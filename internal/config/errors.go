package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid. Several may be joined in one error.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing backend address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing keys: the field encryption
	// passphrase on the client, token or password keys on the server.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidSyncConfigs indicates unusable sync engine tuning.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidServerConfigs indicates an unusable listener setup.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
