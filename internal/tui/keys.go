package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up    key.Binding
	down  key.Binding
	enter key.Binding
	esc   key.Binding
	tab   key.Binding
	copy  key.Binding
	yes   key.Binding
	no    key.Binding
	quit  key.Binding
}

var keys = keyMap{
	up:    key.NewBinding(key.WithKeys("up", "k")),
	down:  key.NewBinding(key.WithKeys("down", "j")),
	enter: key.NewBinding(key.WithKeys("enter")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	tab:   key.NewBinding(key.WithKeys("tab")),
	copy:  key.NewBinding(key.WithKeys("c")),
	yes:   key.NewBinding(key.WithKeys("y")),
	no:    key.NewBinding(key.WithKeys("n")),
	quit:  key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
