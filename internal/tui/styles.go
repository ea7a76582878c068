package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	onlineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	unknownStyle = lipgloss.NewStyle().Faint(true)
)
