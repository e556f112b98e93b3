package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the player's keyboard bindings.
type keyMap struct {
	Quit key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
