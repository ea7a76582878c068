package tui

import "github.com/charmbracelet/bubbles/spinner"

// syncIndicator marks entity types with a cycle in flight.
type syncIndicator struct {
	spinner spinner.Model
}

func newSyncIndicator() syncIndicator {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return syncIndicator{spinner: s}
}

func (m syncIndicator) View(running bool, progress int) string {
	if !running {
		return ""
	}
	if progress > 0 {
		return m.spinner.View() + " syncing " + itoa(progress) + "%"
	}
	return m.spinner.View() + " syncing"
}
