package tui

// errorOverlayModel shows the full text of the last sync error; the
// dashboard only has room for a truncated line.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Last sync error") + "\n\n" + m.message + "\n\n" + helpStyle.Render("c: copy │ enter / esc: close")
	return overlayBoxStyle.Render(content)
}
