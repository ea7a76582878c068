// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-offline-sync/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldLogin = iota
	fieldPassword
)

type authMode int

const (
	modeSignIn authMode = iota
	modeRegister
)

func (m authMode) toggle() authMode {
	if m == modeRegister {
		return modeSignIn
	}
	return modeRegister
}

func (m authMode) title() string {
	if m == modeRegister {
		return "REGISTER"
	}
	return "SIGN IN"
}

func (m authMode) action() string {
	if m == modeRegister {
		return "Register"
	}
	return "Sign in"
}

// LoginModel asks for credentials and signs in or registers against the
// sync server. Esc skips it: edits keep queueing locally until a session
// exists.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	mode       authMode
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	inputs := make([]textinput.Model, 2)
	inputs[fieldLogin] = newCredentialInput("login", 64)
	inputs[fieldPassword] = newCredentialInput("password", 256)
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'
	inputs[fieldLogin].Focus()

	return &LoginModel{ctx: ctx, auth: auth, inputs: inputs}
}

func newCredentialInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return in
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.Err)
		}
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.submitting, m.errMsg = false, ""
		return true, navigate(pageDashboard)
	case key.Matches(msg, keys.register):
		m.mode = m.mode.toggle()
		m.errMsg = ""
		return true, nil
	case key.Matches(msg, keys.tab):
		m.moveFocus(1)
		return true, nil
	case key.Matches(msg, keys.backtab):
		m.moveFocus(-1)
		return true, nil
	case key.Matches(msg, keys.enter):
		return true, m.submit()
	}
	return false, nil
}

func (m *LoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	login := strings.TrimSpace(m.inputs[fieldLogin].Value())
	password := m.inputs[fieldPassword].Value()
	if login == "" || password == "" {
		m.errMsg = "Login and password are required"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, call := m.ctx, m.auth.Login
	if m.mode == modeRegister {
		call = m.auth.Register
	}
	return func() tea.Msg {
		session, err := call(ctx, login, password)
		return LoginResult{Session: session, Err: err}
	}
}

func (m *LoginModel) moveFocus(step int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) View() string {
	lines := []string{
		"Login     " + m.inputs[fieldLogin].View(),
		"Password  " + m.inputs[fieldPassword].View(),
		"",
	}

	button := "[" + m.mode.action() + "]"
	if m.submitting {
		button = "[" + m.mode.action() + "...]"
	}
	lines = append(lines, selectedStyle.Render(button))

	if m.errMsg != "" {
		lines = append(lines, "", errorStyle.Render("Error: "+m.errMsg))
	}

	return renderPage(m.mode.title(), strings.Join(lines, "\n"),
		"esc: work offline │ tab: next field │ ctrl+r: sign in / register │ enter: submit")
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
