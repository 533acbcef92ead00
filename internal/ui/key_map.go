package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	submit  key.Binding
	next    key.Binding
	back    key.Binding
	restart key.Binding
	quit    key.Binding
	abort   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer")),
		next:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "categories")),
		restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "play again")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		// While typing an answer only ctrl+c quits.
		abort: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.submit, k.back},
		{k.restart, k.quit},
	}
}
