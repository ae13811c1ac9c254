package board

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the board's key bindings.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Play    key.Binding
	Menu    key.Binding
	Loop    key.Binding
	StopAll key.Binding
	Record  key.Binding
	Import  key.Binding
	Rename  key.Binding
	Delete  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Play:    key.NewBinding(key.WithKeys("enter", "p"), key.WithHelp("enter", "play")),
		Menu:    key.NewBinding(key.WithKeys("m", " "), key.WithHelp("m", "actions")),
		Loop:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "loop")),
		StopAll: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop all")),
		Record:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "record")),
		Import:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add file")),
		Rename:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
		Delete:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Loop, k.StopAll, k.Record, k.Import, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Play, k.Menu},
		{k.Loop, k.StopAll, k.Record},
		{k.Import, k.Rename, k.Delete},
		{k.Help, k.Quit},
	}
}
