package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	sync      key.Binding
	retry     key.Binding
	add       key.Binding
	copy      key.Binding
	showError key.Binding
	register  key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	sync:      key.NewBinding(key.WithKeys("s")),
	retry:     key.NewBinding(key.WithKeys("r")),
	add:       key.NewBinding(key.WithKeys("a")),
	copy:      key.NewBinding(key.WithKeys("c")),
	showError: key.NewBinding(key.WithKeys("e")),
	register:  key.NewBinding(key.WithKeys("ctrl+r")),
}
