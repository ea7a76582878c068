package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		PasswordHashKey      string   `json:"password_hash_key"`
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		TokenDuration        Duration `json:"token_duration"`
		HashKey              string   `json:"hash_key"`
		Version              string   `json:"version"`
		EncryptionPassphrase string   `json:"encryption_passphrase"`
		EncryptionSalt       string   `json:"encryption_salt"`
		Login                string   `json:"login"`
		Password             string   `json:"password"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Sync struct {
		EntityTypes        []string `json:"entity_types"`
		SensitiveFields    []string `json:"sensitive_fields"`
		QueueDebounce      Duration `json:"queue_debounce"`
		NetworkQuietPeriod Duration `json:"network_quiet_period"`
		RetryBase          Duration `json:"retry_base"`
		RetryMax           Duration `json:"retry_max"`
		MaxAttempts        int      `json:"max_attempts"`
		PushConcurrency    int      `json:"push_concurrency"`
	} `json:"sync,omitempty"`

	Workers struct {
		SyncInterval  Duration `json:"sync_interval"`
		ProbeInterval Duration `json:"probe_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			PasswordHashKey:      jsonCfg.App.PasswordHashKey,
			TokenSignKey:         jsonCfg.App.TokenSignKey,
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			TokenDuration:        time.Duration(jsonCfg.App.TokenDuration),
			HashKey:              jsonCfg.App.HashKey,
			Version:              jsonCfg.App.Version,
			EncryptionPassphrase: jsonCfg.App.EncryptionPassphrase,
			EncryptionSalt:       jsonCfg.App.EncryptionSalt,
			Login:                jsonCfg.App.Login,
			Password:             jsonCfg.App.Password,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimit:      jsonCfg.Server.RateLimit,
			RateBurst:      jsonCfg.Server.RateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Sync: Sync{
			EntityTypes:        jsonCfg.Sync.EntityTypes,
			SensitiveFields:    jsonCfg.Sync.SensitiveFields,
			QueueDebounce:      time.Duration(jsonCfg.Sync.QueueDebounce),
			NetworkQuietPeriod: time.Duration(jsonCfg.Sync.NetworkQuietPeriod),
			RetryBase:          time.Duration(jsonCfg.Sync.RetryBase),
			RetryMax:           time.Duration(jsonCfg.Sync.RetryMax),
			MaxAttempts:        jsonCfg.Sync.MaxAttempts,
			PushConcurrency:    jsonCfg.Sync.PushConcurrency,
		},
		Workers: Workers{
			SyncInterval:  time.Duration(jsonCfg.Workers.SyncInterval),
			ProbeInterval: time.Duration(jsonCfg.Workers.ProbeInterval),
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
