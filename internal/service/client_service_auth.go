package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-offline-sync/internal/adapter"
	"github.com/MKhiriev/go-offline-sync/internal/clock"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/store"
	"github.com/MKhiriev/go-offline-sync/models"
)

type clientAuthService struct {
	backend  adapter.RemoteBackend
	sessions store.SessionRepository
	clock    clock.Clock
	logger   *logger.Logger
}

// NewClientAuthService builds a ClientAuthService. The stored session lets
// the client start offline and sync once the network is back.
func NewClientAuthService(backend adapter.RemoteBackend, sessions store.SessionRepository, c clock.Clock, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{backend: backend, sessions: sessions, clock: c, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, login, password string) (models.Session, error) {
	if login == "" || password == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	session, err := a.backend.Register(ctx, models.User{Login: login, Password: password})
	if err != nil {
		return models.Session{}, fmt.Errorf("register %q: %w", login, mapAuthError(err))
	}
	return session, a.keep(ctx, session)
}

func (a *clientAuthService) Login(ctx context.Context, login, password string) (models.Session, error) {
	if login == "" || password == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	session, err := a.backend.Login(ctx, models.User{Login: login, Password: password})
	if err != nil {
		return models.Session{}, fmt.Errorf("login %q: %w", login, mapAuthError(err))
	}
	return session, a.keep(ctx, session)
}

func (a *clientAuthService) keep(ctx context.Context, session models.Session) error {
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	a.backend.SetToken(session.Token)
	a.logger.Info().Int64("user_id", session.UserID).Msg("session stored")
	return nil
}

// Restore implements [ClientAuthService]. An expired session is removed.
func (a *clientAuthService) Restore(ctx context.Context) (models.Session, bool, error) {
	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, false, nil
	}
	if err != nil {
		return models.Session{}, false, fmt.Errorf("load session: %w", err)
	}

	if !session.Valid(a.clock.Now()) {
		a.logger.Info().Int64("user_id", session.UserID).Msg("stored session expired")
		if err = a.sessions.DeleteSession(ctx); err != nil {
			return models.Session{}, false, fmt.Errorf("delete expired session: %w", err)
		}
		return models.Session{}, false, nil
	}

	a.backend.SetToken(session.Token)
	return session, true, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.backend.SetToken("")
	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
