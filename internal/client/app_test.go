package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/mock"
	"github.com/MKhiriev/go-offline-sync/internal/service"
	"github.com/MKhiriev/go-offline-sync/internal/validators"
	"github.com/MKhiriev/go-offline-sync/internal/workers"
	"github.com/MKhiriev/go-offline-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	runs          int
	authenticated bool
	err           error
}

func (f *fakeUI) Run(_ context.Context, authenticated bool) error {
	f.runs++
	f.authenticated = authenticated
	return f.err
}

func newTestApp(t *testing.T, login, password string) (*App, *mock.MockClientAuthService, *mock.MockSyncEngine, *fakeUI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	engine := mock.NewMockSyncEngine(ctrl)
	ui := &fakeUI{}

	return &App{
		auth:     auth,
		engine:   engine,
		workers:  workers.NewWorkers(),
		ui:       ui,
		login:    login,
		password: password,
		logger:   logger.Nop(),
	}, auth, engine, ui
}

func TestApp_Authenticate(t *testing.T) {
	session := models.Session{UserID: 7, Token: "token"}
	offline := fmt.Errorf("login %q: %w", "ann", service.ErrNetwork)

	tests := []struct {
		name     string
		login    string
		password string
		setup    func(auth *mock.MockClientAuthService)
		want     bool
	}{
		{
			name: "restored session",
			setup: func(auth *mock.MockClientAuthService) {
				auth.EXPECT().Restore(gomock.Any()).Return(session, true, nil)
			},
			want: true,
		},
		{
			name: "no session, no credentials",
			setup: func(auth *mock.MockClientAuthService) {
				auth.EXPECT().Restore(gomock.Any()).Return(models.Session{}, false, nil)
			},
		},
		{
			name:  "login only",
			login: "ann",
			setup: func(auth *mock.MockClientAuthService) {
				auth.EXPECT().Restore(gomock.Any()).Return(models.Session{}, false, nil)
			},
		},
		{
			name:     "configured credentials",
			login:    "ann",
			password: "secret",
			setup: func(auth *mock.MockClientAuthService) {
				auth.EXPECT().Restore(gomock.Any()).Return(models.Session{}, false, errors.New("database is locked"))
				auth.EXPECT().Login(gomock.Any(), "ann", "secret").Return(session, nil)
			},
			want: true,
		},
		{
			name:     "first run registers",
			login:    "ann",
			password: "secret",
			setup: func(auth *mock.MockClientAuthService) {
				auth.EXPECT().Restore(gomock.Any()).Return(models.Session{}, false, nil)
				auth.EXPECT().Login(gomock.Any(), "ann", "secret").Return(models.Session{}, fmt.Errorf("login: %w", service.ErrWrongPassword))
				auth.EXPECT().Register(gomock.Any(), "ann", "secret").Return(session, nil)
			},
			want: true,
		},
		{
			name:     "wrong password for existing login",
			login:    "ann",
			password: "guess",
			setup: func(auth *mock.MockClientAuthService) {
				auth.EXPECT().Restore(gomock.Any()).Return(models.Session{}, false, nil)
				auth.EXPECT().Login(gomock.Any(), "ann", "guess").Return(models.Session{}, service.ErrWrongPassword)
				auth.EXPECT().Register(gomock.Any(), "ann", "guess").Return(models.Session{}, service.ErrLoginAlreadyExists)
			},
		},
		{
			name:     "offline",
			login:    "ann",
			password: "secret",
			setup: func(auth *mock.MockClientAuthService) {
				auth.EXPECT().Restore(gomock.Any()).Return(models.Session{}, false, nil)
				auth.EXPECT().Login(gomock.Any(), "ann", "secret").Return(models.Session{}, offline)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, auth, _, _ := newTestApp(t, tt.login, tt.password)
			tt.setup(auth)

			assert.Equal(t, tt.want, app.authenticate(context.Background()))
		})
	}
}

func TestApp_Run(t *testing.T) {
	app, auth, engine, ui := newTestApp(t, "", "")
	closed := false
	app.closers = []func() error{func() error { closed = true; return nil }}

	gomock.InOrder(
		auth.EXPECT().Restore(gomock.Any()).Return(models.Session{UserID: 7}, true, nil),
		engine.EXPECT().RecoverQueue(gomock.Any()).Return(2, nil),
		engine.EXPECT().ScheduleSync(),
	)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.runs)
	assert.True(t, ui.authenticated)
	assert.True(t, closed)
}

func TestApp_Run_RecoverFails(t *testing.T) {
	app, auth, engine, ui := newTestApp(t, "", "")
	closed := false
	app.closers = []func() error{func() error { closed = true; return nil }}

	auth.EXPECT().Restore(gomock.Any()).Return(models.Session{}, false, nil)
	engine.EXPECT().RecoverQueue(gomock.Any()).Return(0, errors.New("database is locked"))

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recover sync queue")
	assert.Zero(t, ui.runs)
	assert.True(t, closed, "resources are released on failure")
}

func TestApp_Run_UIError(t *testing.T) {
	app, auth, engine, ui := newTestApp(t, "", "")
	ui.err = errors.New("could not open a new TTY")

	auth.EXPECT().Restore(gomock.Any()).Return(models.Session{}, false, nil)
	engine.EXPECT().RecoverQueue(gomock.Any()).Return(0, nil)
	engine.EXPECT().ScheduleSync()

	assert.ErrorIs(t, app.Run(context.Background()), ui.err)
	assert.False(t, ui.authenticated)
}

func TestParseEntityTypes(t *testing.T) {
	got, err := parseEntityTypes([]string{"budgets", " job_applications ", "budgets"})
	require.NoError(t, err)
	assert.Equal(t, []models.EntityType{"budgets", "job_applications"}, got)

	_, err = parseEntityTypes([]string{"Budgets!"})
	assert.ErrorIs(t, err, validators.ErrInvalidEntityType)

	_, err = parseEntityTypes(nil)
	assert.ErrorIs(t, err, validators.ErrInvalidEntityType)
}
