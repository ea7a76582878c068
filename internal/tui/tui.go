// Package tui implements the client's terminal dashboard.
//
// It shows per-type sync status, network state, the offline queue and a
// feed of recent sync events, and lets the user trigger syncs, retry
// failed records, add entities and copy the last error.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/service"
	"github.com/MKhiriev/go-offline-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// eventBuffer bounds the sync events waiting for the UI. Events beyond it
// are dropped; the periodic refresh still catches the counters up.
const eventBuffer = 64

// EntityCreator creates local entities from the dashboard.
type EntityCreator interface {
	Create(ctx context.Context, entityType models.EntityType, fields models.Fields) (models.Entity, error)
}

type TUI struct {
	auth     service.ClientAuthService
	status   service.StatusReporter
	entities EntityCreator
	types    []models.EntityType
	build    models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, entities EntityCreator, build models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		auth:     services.Auth,
		status:   services.Status,
		entities: entities,
		types:    services.Engine.EntityTypes(),
		build:    build,
		logger:   logger,
	}
}

// Run shows the dashboard until the user quits or ctx is cancelled. A
// login form comes first when authenticated is false.
func (t *TUI) Run(ctx context.Context, authenticated bool) error {
	events := make(chan models.SyncEvent, eventBuffer)
	unsubscribe := t.status.Subscribe(func(e models.SyncEvent) {
		select {
		case events <- e:
		default:
		}
	})
	defer unsubscribe()

	pages := map[string]tea.Model{
		pageDashboard: NewDashboardModel(ctx, t.status, t.entities, t.types, events),
		pageLogin:     NewLoginModel(ctx, t.auth),
	}
	start := pageDashboard
	if !authenticated {
		start = pageLogin
	}

	_, err := tea.NewProgram(NewRootModel(pages, start, t.build), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		t.logger.Err(err).Msg("dashboard stopped")
	}
	return err
}
