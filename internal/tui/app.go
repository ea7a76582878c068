package tui

import (
	"github.com/MKhiriev/go-offline-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageDashboard = "dashboard"
	pageLogin     = "login"
)

// RootModel routes messages to the active page. It owns the keys that work
// everywhere (ctrl+c) and the build info overlay, and switches pages on
// NavigateTo or a successful LoginResult.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	build       models.AppBuildInfo
	showingInfo bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, build models.AppBuildInfo) RootModel {
	return RootModel{pages: pages, current: pages[startPage], build: build}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return r, tea.Quit
		}
		if r.handleOverlayKey(msg) {
			return r, nil
		}

	case NavigateTo:
		next, ok := r.pages[msg.Page]
		if !ok {
			return r, nil
		}
		r.showingInfo = false
		r.current = next
		return r, next.Init()

	case LoginResult:
		if msg.Err == nil {
			return r, navigate(pageDashboard)
		}
	}

	if r.current == nil {
		return r, nil
	}
	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

// handleOverlayKey toggles the build info overlay and swallows every key
// while it is shown.
func (r *RootModel) handleOverlayKey(msg tea.KeyMsg) bool {
	switch {
	case msg.String() == "v" && r.acceptsHotkeys():
		r.showingInfo = !r.showingInfo
		return true
	case msg.Type == tea.KeyEsc && r.showingInfo:
		r.showingInfo = false
		return true
	}
	return r.showingInfo
}

func (r RootModel) View() string {
	switch {
	case r.showingInfo:
		return renderBuildInfoWindow(r.build)
	case r.current == nil:
		return renderPage("OFFLINE SYNC", "", "")
	}
	return r.current.View()
}

// acceptsHotkeys is false while the active page is collecting text.
func (r RootModel) acceptsHotkeys() bool {
	d, ok := r.current.(*DashboardModel)
	return ok && !d.adding
}
