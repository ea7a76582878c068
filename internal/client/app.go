package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-offline-sync/internal/adapter"
	"github.com/MKhiriev/go-offline-sync/internal/clock"
	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/crypto"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/network"
	"github.com/MKhiriev/go-offline-sync/internal/queue"
	"github.com/MKhiriev/go-offline-sync/internal/service"
	"github.com/MKhiriev/go-offline-sync/internal/store"
	"github.com/MKhiriev/go-offline-sync/internal/tui"
	"github.com/MKhiriev/go-offline-sync/internal/utils"
	"github.com/MKhiriev/go-offline-sync/internal/validators"
	"github.com/MKhiriev/go-offline-sync/internal/workers"
	"github.com/MKhiriev/go-offline-sync/models"
)

var _ Client = (*App)(nil)

type App struct {
	auth    service.ClientAuthService
	engine  service.SyncEngine
	workers *workers.Workers
	ui      UI

	login    string
	password string

	closers []func() error
	logger  *logger.Logger
}

// NewApp builds the client runtime from cfg: local storage, the remote
// backend, the queue and network monitor, the sync services, background
// workers and the dashboard.
func NewApp(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	types, err := parseEntityTypes(cfg.Sync.EntityTypes)
	if err != nil {
		return nil, err
	}

	cipher, err := crypto.NewFieldCipher(cfg.App.EncryptionPassphrase, cfg.App.EncryptionSalt, cfg.Sync.SensitiveFields)
	if err != nil {
		return nil, fmt.Errorf("create field cipher: %w", err)
	}

	backend, err := adapter.NewHTTPRemoteBackend(cfg.Adapter, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("create remote backend: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	c := clock.Real()
	q := queue.NewQueue(c, cfg.Sync.QueueDebounce, logger)
	monitor := network.NewMonitor(c, cfg.Sync.NetworkQuietPeriod, logger)
	entities := store.NewEntityStore(storages.Entities, q, c, utils.NewUUIDGenerator(), logger)

	services := service.NewClientServices(service.ClientDependencies{
		Entities: entities,
		Storages: storages,
		Queue:    q,
		Backend:  backend,
		Cipher:   cipher,
		Network:  monitor,
		Clock:    c,
	}, service.SyncConfig{
		EntityTypes:     types,
		PushConcurrency: cfg.Sync.PushConcurrency,
		RetryBase:       cfg.Sync.RetryBase,
		RetryMax:        cfg.Sync.RetryMax,
		MaxAttempts:     cfg.Sync.MaxAttempts,
		ScheduleDelay:   cfg.Sync.QueueDebounce,
	}, logger)

	prober := network.NewProber(backend, monitor, cfg.Workers.ProbeInterval, cfg.Adapter.RequestTimeout, logger)

	return &App{
		auth:   services.Auth,
		engine: services.Engine,
		// The engine subscribes to the monitor before the prober reports.
		workers: workers.NewWorkers(
			services.Engine,
			prober,
			workers.WithInterval(services.SyncJob, cfg.Workers.SyncInterval),
		),
		ui:       tui.New(services, entities, build, logger),
		login:    cfg.App.Login,
		password: cfg.App.Password,
		closers: []func() error{
			func() error { q.Close(); return nil },
			func() error { monitor.Close(); return nil },
			storages.Close,
		},
		logger: logger,
	}, nil
}

// Run restores or opens a session, recovers the queue, starts the
// background workers and blocks in the UI until the user quits or ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	authenticated := a.authenticate(ctx)

	recovered, err := a.engine.RecoverQueue(ctx)
	if err != nil {
		return fmt.Errorf("recover sync queue: %w", err)
	}
	if recovered > 0 {
		a.logger.Info().Int("count", recovered).Msg("re-enqueued unsynced records")
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.engine.ScheduleSync()

	return a.ui.Run(ctx, authenticated)
}

// authenticate restores the stored session or signs in with the configured
// credentials, registering the account on first use. Failures only cost
// the remote half: the UI still works on local data.
func (a *App) authenticate(ctx context.Context) bool {
	session, ok, err := a.auth.Restore(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("restore session")
	}
	if ok {
		a.logger.Info().Int64("user_id", session.UserID).Msg("session restored")
		return true
	}

	if a.login == "" || a.password == "" {
		return false
	}

	session, err = a.auth.Login(ctx, a.login, a.password)
	if errors.Is(err, service.ErrWrongPassword) {
		a.logger.Info().Str("login", a.login).Msg("login rejected, trying to register")
		session, err = a.auth.Register(ctx, a.login, a.password)
	}
	if err != nil {
		a.logger.Warn().Err(err).Str("login", a.login).Msg("sign in failed, continuing offline")
		return false
	}

	a.logger.Info().Int64("user_id", session.UserID).Msg("signed in")
	return true
}

func (a *App) close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Err(err).Msg("close client resources")
		}
	}
}

func parseEntityTypes(raw []string) ([]models.EntityType, error) {
	types := make([]models.EntityType, 0, len(raw))
	seen := make(map[models.EntityType]struct{}, len(raw))
	for _, s := range raw {
		t := models.EntityType(strings.TrimSpace(s))
		if !validators.IsValidEntityType(t) {
			return nil, fmt.Errorf("%w: %q", validators.ErrInvalidEntityType, s)
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("%w: no entity types configured", validators.ErrInvalidEntityType)
	}
	return types, nil
}
