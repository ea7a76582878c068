package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key for request integrity headers. Optional.
	HashKey string
	// EncryptionPassphrase and EncryptionSalt derive the field key.
	EncryptionPassphrase string
	EncryptionSalt       string
	// Login and Password are used when no stored session exists.
	Login    string
	Password string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote backend base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path, or ":memory:" for a process-local store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync holds the sync engine tuning.
type ClientSync struct {
	EntityTypes        []string
	SensitiveFields    []string
	QueueDebounce      time.Duration
	NetworkQuietPeriod time.Duration
	RetryBase          time.Duration
	RetryMax           time.Duration
	MaxAttempts        int
	PushConcurrency    int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the periodic sync runs.
	SyncInterval time.Duration
	// ProbeInterval defines how often connectivity is probed.
	ProbeInterval time.Duration
}

// ClientLog holds client log file settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    ClientSync
	Workers ClientWorkers
	Log     ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps the fields relevant to the client runtime and
// validates the result.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = DefaultClientDSN
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:              cfg.App.HashKey,
			EncryptionPassphrase: cfg.App.EncryptionPassphrase,
			EncryptionSalt:       cfg.App.EncryptionSalt,
			Login:                cfg.App.Login,
			Password:             cfg.App.Password,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: dsn},
		},
		Sync: ClientSync{
			EntityTypes:        cfg.Sync.EntityTypes,
			SensitiveFields:    cfg.Sync.SensitiveFields,
			QueueDebounce:      cfg.Sync.QueueDebounce,
			NetworkQuietPeriod: cfg.Sync.NetworkQuietPeriod,
			RetryBase:          cfg.Sync.RetryBase,
			RetryMax:           cfg.Sync.RetryMax,
			MaxAttempts:        cfg.Sync.MaxAttempts,
			PushConcurrency:    cfg.Sync.PushConcurrency,
		},
		Workers: ClientWorkers{
			SyncInterval:  cfg.Workers.SyncInterval,
			ProbeInterval: cfg.Workers.ProbeInterval,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}

	return clientCfg, clientCfg.validate()
}
