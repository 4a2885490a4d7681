package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the today view.
type KeyMap struct {
	Ack     key.Binding // Dismiss the interrupt banner for good
	Snooze  key.Binding // Hide the banner, let it resurface
	Refresh key.Binding // Reload the schedule now
	Quit    key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Ack: key.NewBinding(
			key.WithKeys("a", "enter"),
			key.WithHelp("a", "acknowledge"),
		),
		Snooze: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "snooze"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
