package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Horizontal key.Binding
	Vertical   key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Horizontal: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "flip scroll"),
		),
		Vertical: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "flip switch"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Horizontal, k.Vertical, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Horizontal, k.Vertical, k.Quit}}
}
