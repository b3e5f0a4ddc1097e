package app

import "charm.land/bubbles/v2/key"

// KeyMap defines the global keybindings. Row and column movement belong to
// the picker's own key map.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding

	// Toggles
	ToggleIndicator key.Binding
	ToggleRail      key.Binding
	CycleTheme      key.Binding

	// Columns
	Reload key.Binding
	Copy   key.Binding
	Save   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "help"),
		),
		ToggleIndicator: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "selection band"),
		),
		ToggleRail: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "position rail"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload columns"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy selection"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save settings"),
		),
	}
}

// ShortHelp is the status-line subset.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp lists every global binding.
func (k KeyMap) FullHelp() []key.Binding {
	return []key.Binding{
		k.ToggleIndicator, k.ToggleRail, k.CycleTheme,
		k.Reload, k.Copy, k.Save, k.Help, k.Quit,
	}
}
