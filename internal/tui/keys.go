package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextFamily   key.Binding
	PrevFamily   key.Binding
	ToggleScheme key.Binding
	Scroll       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

var keys = keyMap{
	NextFamily: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab/→", "next family"),
	),
	PrevFamily: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift+tab/←", "previous family"),
	),
	ToggleScheme: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "toggle light/dark"),
	),
	Scroll: key.NewBinding(
		key.WithKeys("up", "down", "k", "j", "pgup", "pgdown"),
		key.WithHelp("↑/↓", "scroll"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFamily, k.ToggleScheme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFamily, k.PrevFamily, k.ToggleScheme},
		{k.Scroll, k.Help, k.Quit},
	}
}
