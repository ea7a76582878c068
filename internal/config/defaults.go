package config

import "time"

// Default values filled into fields no source has set.
const (
	DefaultServerAddress      = "localhost:8080"
	DefaultRequestTimeout     = 15 * time.Second
	DefaultTokenIssuer        = "go-offline-sync"
	DefaultTokenDuration      = 24 * time.Hour
	DefaultRateLimit          = 20
	DefaultRateBurst          = 40
	DefaultQueueDebounce      = time.Second
	DefaultNetworkQuietPeriod = 2 * time.Second
	DefaultRetryBase          = 500 * time.Millisecond
	DefaultRetryMax           = 30 * time.Second
	DefaultMaxAttempts        = 3
	DefaultPushConcurrency    = 4
	DefaultSyncInterval       = 5 * time.Minute
	DefaultProbeInterval      = 10 * time.Second
	DefaultClientDSN          = "sync-client.db"
)

// DefaultEntityTypes are the record families of the mobile application.
var DefaultEntityTypes = []string{
	"bounce_plans",
	"job_applications",
	"budgets",
	"wellness_checkins",
	"coach_sessions",
}

// DefaultSensitiveFields are encrypted unless configured otherwise.
var DefaultSensitiveFields = []string{"notes", "amount", "account_number", "mood", "journal"}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       "dev",
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
			RateLimit:      DefaultRateLimit,
			RateBurst:      DefaultRateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Sync: Sync{
			EntityTypes:        append([]string(nil), DefaultEntityTypes...),
			SensitiveFields:    append([]string(nil), DefaultSensitiveFields...),
			QueueDebounce:      DefaultQueueDebounce,
			NetworkQuietPeriod: DefaultNetworkQuietPeriod,
			RetryBase:          DefaultRetryBase,
			RetryMax:           DefaultRetryMax,
			MaxAttempts:        DefaultMaxAttempts,
			PushConcurrency:    DefaultPushConcurrency,
		},
		Workers: Workers{
			SyncInterval:  DefaultSyncInterval,
			ProbeInterval: DefaultProbeInterval,
		},
	}
}
