package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	back   key.Binding
	shelf  key.Binding
	have   key.Binding
	want   key.Binding
	remove key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		shelf:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "shelves")),
		have:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "add to have")),
		want:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "add to want")),
		remove: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.shelf, k.remove},
		{k.have, k.want, k.quit},
	}
}
