package picker

import "charm.land/bubbles/v2/key"

// KeyMap defines the picker's keybindings. They apply to the focused column.
type KeyMap struct {
	PrevRow  key.Binding
	NextRow  key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	First    key.Binding
	Last     key.Binding

	PrevComponent key.Binding
	NextComponent key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevRow: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous row"),
		),
		NextRow: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next row"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "first row"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "last row"),
		),
		PrevComponent: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous column"),
		),
		NextComponent: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next column"),
		),
	}
}

// ShortHelp lists the bindings worth showing in a one-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevRow, k.NextRow, k.PrevComponent, k.NextComponent}
}

// FullHelp lists every binding.
func (k KeyMap) FullHelp() []key.Binding {
	return []key.Binding{
		k.PrevRow, k.NextRow, k.PageUp, k.PageDown,
		k.First, k.Last, k.PrevComponent, k.NextComponent,
	}
}
