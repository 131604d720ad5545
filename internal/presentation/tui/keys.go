package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the panel key bindings.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	Focus          key.Binding
	Start          key.Binding
	NextDifficulty key.Binding
	PrevDifficulty key.Binding
	Restart        key.Binding
	Submit         key.Binding
	Hint           key.Binding
	Diagnostics    key.Binding
	Dismiss        key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "tasks/steps"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start task"),
		),
		NextDifficulty: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "harder"),
		),
		PrevDifficulty: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "easier"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "submit step"),
		),
		Hint: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "hint"),
		),
		Diagnostics: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy diagnostics"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "enter", " "),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Start, k.Submit, k.Hint, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus},
		{k.PrevDifficulty, k.NextDifficulty, k.Start, k.Restart},
		{k.Submit, k.Hint, k.Diagnostics},
		{k.Help, k.Quit},
	}
}
