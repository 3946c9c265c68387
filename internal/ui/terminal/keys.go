package terminal

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the terminal key bindings.
type KeyMap struct {
	Focus      key.Binding
	ShortBreak key.Binding
	LongBreak  key.Binding
	Toggle     key.Binding
	Reset      key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Focus: key.NewBinding(
			key.WithKeys("1", "f"),
			key.WithHelp("1/f", "focus"),
		),
		ShortBreak: key.NewBinding(
			key.WithKeys("2", "s"),
			key.WithHelp("2/s", "short break"),
		),
		LongBreak: key.NewBinding(
			key.WithKeys("3", "l"),
			key.WithHelp("3/l", "long break"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (keys KeyMap) bindings() []key.Binding {
	return []key.Binding{keys.Focus, keys.ShortBreak, keys.LongBreak, keys.Toggle, keys.Reset, keys.Quit}
}
