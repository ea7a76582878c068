package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-offline-sync/internal/mock"
	"github.com/MKhiriev/go-offline-sync/internal/service"
	"github.com/MKhiriev/go-offline-sync/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogin(t *testing.T) (*LoginModel, *mock.MockClientAuthService) {
	t.Helper()
	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	return NewLoginModel(context.Background(), auth), auth
}

func TestLoginModel_RequiresBothFields(t *testing.T) {
	m, _ := newTestLogin(t)
	m.inputs[0].SetValue("ann")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, "Login and password are required", m.errMsg)
}

func TestLoginModel_Submit(t *testing.T) {
	tests := []struct {
		name     string
		register bool
	}{
		{name: "login"},
		{name: "register", register: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, auth := newTestLogin(t)
			session := models.Session{UserID: 7, Token: "token"}
			if tt.register {
				auth.EXPECT().Register(gomock.Any(), "ann", "secret").Return(session, nil)
				m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
			} else {
				auth.EXPECT().Login(gomock.Any(), "ann", "secret").Return(session, nil)
			}

			m.inputs[0].SetValue(" ann ")
			m.inputs[1].SetValue("secret")

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			require.NotNil(t, cmd)
			assert.True(t, m.submitting)

			_, again := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			assert.Nil(t, again, "no double submit")

			assert.Equal(t, LoginResult{Session: session}, cmd())
		})
	}
}

func TestLoginModel_ResultError(t *testing.T) {
	m, _ := newTestLogin(t)
	m.submitting = true

	m.Update(LoginResult{Err: service.ErrWrongPassword})

	assert.False(t, m.submitting)
	assert.Equal(t, "Wrong login or password", m.errMsg)
}

func TestLoginModel_EscWorksOffline(t *testing.T) {
	m, _ := newTestLogin(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageDashboard}, cmd())
}

func TestLoginModel_FocusCycles(t *testing.T) {
	m, _ := newTestLogin(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.focus)
}

func TestLoginModel_ViewShowsMode(t *testing.T) {
	m, _ := newTestLogin(t)
	assert.Contains(t, m.View(), "SIGN IN")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Contains(t, m.View(), "REGISTER")
}
