package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/service"
	"github.com/MKhiriev/go-offline-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	refreshInterval = time.Second
	noticeTTL       = 3 * time.Second
	maxEventLines   = 8
	typeColumnWidth = 20
	errorLineWidth  = 72
)

// writeClipboard is swapped in tests; there is no clipboard on CI runners.
var writeClipboard = clipboard.WriteAll

// DashboardModel renders the sync status of every entity type and reacts to
// sync events as they arrive.
type DashboardModel struct {
	ctx      context.Context
	status   service.StatusReporter
	entities EntityCreator
	events   <-chan models.SyncEvent

	types    []models.EntityType
	selected int

	snapshot models.SyncSnapshot
	queue    []models.QueueGroup
	network  models.NetworkState
	syncing  map[models.EntityType]int
	recent   []models.SyncEvent

	lastErr   string
	notice    string
	errMsg    string
	showError bool

	indicator syncIndicator
	adding    bool
	input     textinput.Model
}

func NewDashboardModel(ctx context.Context, status service.StatusReporter, entities EntityCreator,
	types []models.EntityType, events <-chan models.SyncEvent) *DashboardModel {
	input := textinput.New()
	input.Placeholder = "title"
	input.CharLimit = 256
	input.Width = 40

	return &DashboardModel{
		ctx:       ctx,
		status:    status,
		entities:  entities,
		events:    events,
		types:     types,
		syncing:   make(map[models.EntityType]int),
		indicator: newSyncIndicator(),
		input:     input,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.cmdRequestSyncAll(),
		m.cmdRefresh(),
		tickRefresh(),
		waitForEvent(m.events),
		m.indicator.spinner.Tick,
	)
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.snapshot = msg.snapshot
		m.queue = msg.queue
		m.network = msg.network
		return m, nil

	case refreshTickMsg:
		return m, tea.Batch(m.cmdRefresh(), tickRefresh())

	case syncEventMsg:
		m.recordEvent(msg.event)
		return m, tea.Batch(waitForEvent(m.events), m.cmdRefresh())

	case entityCreatedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notice = createdNotice(msg.entity)
		return m, tea.Batch(m.cmdRefresh(), clearNoticeAfter())

	case retryDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notice = fmt.Sprintf("Requeued %d failed %s record(s)", msg.count, msg.entityType)
		return m, tea.Batch(m.cmdRefresh(), clearNoticeAfter())

	case clearStatusMsg:
		m.notice = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.indicator.spinner, cmd = m.indicator.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.adding {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showError {
		switch {
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
			m.showError = false
		case key.Matches(msg, keys.copy):
			m.copyLastError()
			m.showError = false
			return m, clearNoticeAfter()
		}
		return m, nil
	}

	if m.adding {
		switch {
		case key.Matches(msg, keys.esc):
			m.stopAdding()
			return m, nil
		case key.Matches(msg, keys.enter):
			title := strings.TrimSpace(m.input.Value())
			if title == "" {
				m.errMsg = "Title is required"
				return m, nil
			}
			m.stopAdding()
			return m, m.cmdCreate(m.currentType(), title)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, keys.down):
		if m.selected < len(m.types)-1 {
			m.selected++
		}
	case key.Matches(msg, keys.sync):
		m.status.RequestSyncAll()
		m.notice = "Sync of all types requested"
		return m, clearNoticeAfter()
	case key.Matches(msg, keys.retry):
		if len(m.types) == 0 {
			return m, nil
		}
		return m, m.cmdRetry(m.currentType())
	case key.Matches(msg, keys.add):
		if len(m.types) == 0 {
			return m, nil
		}
		m.errMsg = ""
		m.adding = true
		m.input.Reset()
		return m, m.input.Focus()
	case key.Matches(msg, keys.copy):
		m.copyLastError()
		return m, clearNoticeAfter()
	case key.Matches(msg, keys.showError):
		m.showError = m.lastErr != ""
	}
	return m, nil
}

func (m *DashboardModel) View() string {
	if m.showError {
		return m.renderFrame(errorOverlayModel{message: m.lastErr}.View())
	}
	return m.renderFrame(m.renderBody())
}

func (m *DashboardModel) renderFrame(body string) string {
	hotKeys := "s: sync all │ r: retry failed │ a: add │ c: copy error │ e: show error │ ↑/↓: select │ v: about │ q: quit"
	if m.adding {
		hotKeys = "enter: create │ esc: cancel"
	}
	return renderPage("OFFLINE SYNC", body, hotKeys)
}

func (m *DashboardModel) renderBody() string {
	var b strings.Builder

	b.WriteString("Network: ")
	b.WriteString(renderNetwork(m.network))
	b.WriteString("    Pending: ")
	b.WriteString(itoa(m.snapshot.TotalPending))
	if m.snapshot.IsFullySynced {
		b.WriteString("    ")
		b.WriteString(onlineStyle.Render("all synced"))
	}
	b.WriteString("\n")
	b.WriteString("Queue:   ")
	b.WriteString(m.renderQueue(time.Now()))
	b.WriteString("\n\n")

	b.WriteString(padRight("  Type", typeColumnWidth+2))
	b.WriteString(" │ Pending │ Failed │ Last synced\n")
	b.WriteString(strings.Repeat("─", typeColumnWidth+2))
	b.WriteString("─┼─────────┼────────┼─────────────────────────────\n")
	for i, t := range m.types {
		b.WriteString(m.renderTypeRow(i, t))
		b.WriteString("\n")
	}

	if m.adding {
		b.WriteString("\nNew ")
		b.WriteString(m.currentType().String())
		b.WriteString(": [")
		b.WriteString(m.input.View())
		b.WriteString("]\n")
	}

	b.WriteString("\nRecent events\n")
	if len(m.recent) == 0 {
		b.WriteString(helpStyle.Render("  none yet"))
		b.WriteString("\n")
	}
	for i := len(m.recent) - 1; i >= 0; i-- {
		b.WriteString("  ")
		b.WriteString(renderEvent(m.recent[i]))
		b.WriteString("\n")
	}

	if m.lastErr != "" {
		b.WriteString("\nLast error: ")
		b.WriteString(errorStyle.Render(fitText(m.lastErr, errorLineWidth)))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.notice)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *DashboardModel) renderTypeRow(i int, t models.EntityType) string {
	st := m.snapshot.Types[t]

	cursor := "  "
	name := fitText(t.String(), typeColumnWidth)
	if i == m.selected {
		cursor = "> "
		name = selectedStyle.Render(padRight(name, typeColumnWidth))
	} else {
		name = padRight(name, typeColumnWidth)
	}

	failed := padRight(itoa(st.FailedCount), 6)
	if st.FailedCount > 0 {
		failed = errorStyle.Render(failed)
	}

	progress, running := m.syncing[t]
	return fmt.Sprintf("%s%s │ %-7d │ %s │ %s %s",
		cursor, name, st.PendingCount, failed, formatTime(st.LastSyncedAt), m.indicator.View(running, progress))
}

// renderQueue draws one block per queued operation, grouped by type.
func (m *DashboardModel) renderQueue(now time.Time) string {
	if len(m.queue) == 0 {
		return helpStyle.Render("empty")
	}

	parts := make([]string, 0, len(m.queue))
	for _, g := range m.queue {
		blocks := strings.Repeat("■", min(g.Count, 10))
		if g.Count > 10 {
			blocks += "+"
		}
		parts = append(parts, fmt.Sprintf("%s %s %d (oldest %s)",
			g.EntityType, blocks, g.Count, formatAge(g.OldestEnqueuedAt, now)))
	}
	return strings.Join(parts, " │ ")
}

func renderNetwork(state models.NetworkState) string {
	switch state {
	case models.NetworkOnline:
		return onlineStyle.Render(state.String())
	case models.NetworkOffline:
		return offlineStyle.Render(state.String())
	default:
		return unknownStyle.Render(state.String())
	}
}

func renderEvent(e models.SyncEvent) string {
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}

	line := at.Local().Format(time.TimeOnly) + " " + e.EntityType.String()
	if e.EntityID != "" {
		line += "/" + e.EntityID
	}
	line += " " + string(e.Type)
	if e.Err != nil {
		line += ": " + fitText(e.Err.Error(), errorLineWidth/2)
	}
	return line
}

// recordEvent folds e into the per-type spinners, the recent list and the
// last error. Progress events only move the spinner.
func (m *DashboardModel) recordEvent(e models.SyncEvent) {
	switch e.Type {
	case models.EventStarted:
		m.syncing[e.EntityType] = 0
	case models.EventProgress:
		if _, ok := m.syncing[e.EntityType]; ok {
			m.syncing[e.EntityType] = e.Progress
		}
		return
	case models.EventCompleted:
		delete(m.syncing, e.EntityType)
	case models.EventFailed:
		// Item failures arrive with an id; the cycle goes on.
		if e.EntityID == "" {
			delete(m.syncing, e.EntityType)
		}
		if e.Err != nil {
			subject := e.EntityType.String()
			if e.EntityID != "" {
				subject += "/" + e.EntityID
			}
			m.lastErr = subject + ": " + e.Err.Error()
		}
	}

	m.recent = append(m.recent, e)
	if len(m.recent) > maxEventLines {
		m.recent = m.recent[len(m.recent)-maxEventLines:]
	}
}

func (m *DashboardModel) copyLastError() {
	if m.lastErr == "" {
		m.notice = "No error to copy"
		return
	}
	if err := writeClipboard(m.lastErr); err != nil {
		m.errMsg = "Clipboard is unavailable: " + err.Error()
		return
	}
	m.notice = "Last error copied to clipboard"
}

func (m *DashboardModel) stopAdding() {
	m.adding = false
	m.input.Blur()
	m.input.Reset()
}

func (m *DashboardModel) currentType() models.EntityType {
	if m.selected < 0 || m.selected >= len(m.types) {
		return ""
	}
	return m.types[m.selected]
}

func (m *DashboardModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	status := m.status

	return func() tea.Msg {
		snapshot, err := status.GetSyncStatus(ctx)
		return snapshotMsg{
			snapshot: snapshot,
			queue:    status.GetOfflineQueueVisualization(),
			network:  status.NetworkState(),
			err:      err,
		}
	}
}

func (m *DashboardModel) cmdRequestSyncAll() tea.Cmd {
	status := m.status
	return func() tea.Msg {
		status.RequestSyncAll()
		return nil
	}
}

func (m *DashboardModel) cmdRetry(entityType models.EntityType) tea.Cmd {
	ctx := m.ctx
	status := m.status

	return func() tea.Msg {
		n, err := status.RetryAllFailed(ctx, entityType)
		return retryDoneMsg{entityType: entityType, count: n, err: err}
	}
}

func (m *DashboardModel) cmdCreate(entityType models.EntityType, title string) tea.Cmd {
	ctx := m.ctx
	entities := m.entities

	return func() tea.Msg {
		fields, err := models.FieldsOf(titledItem{Title: title})
		if err != nil {
			return entityCreatedMsg{err: err}
		}
		entity, err := entities.Create(ctx, entityType, fields)
		return entityCreatedMsg{entity: entity, err: err}
	}
}

func createdNotice(e models.Entity) string {
	item, err := models.Decode[titledItem](e)
	if err != nil || item.Data.Title == "" {
		return fmt.Sprintf("Created %s/%s", e.Type, e.ID)
	}
	return fmt.Sprintf("Created %s/%s %q", e.Type, e.ID, item.Data.Title)
}

func waitForEvent(events <-chan models.SyncEvent) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return syncEventMsg{event: e}
	}
}

func tickRefresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func clearNoticeAfter() tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
