package cmd

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the application. It satisfies key.Map so
// it can be passed directly to bubbles/help.Model for automatic rendering.
type keyMap struct {
	Earlier key.Binding
	Later   key.Binding
	History key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings shown in the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Later, k.Earlier, k.History, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view (columns).
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Later, k.Earlier}, // stepping, debug only
		{k.History},
		{k.Help, k.Quit},
	}
}

// newKeyMap returns the bindings. Stepping through minutes is only offered
// in debug mode.
func newKeyMap(debug bool) keyMap {
	k := keyMap{
		Earlier: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "minute back"),
		),
		Later: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "minute forward"),
		),
		History: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "transition log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	k.Earlier.SetEnabled(debug)
	k.Later.SetEnabled(debug)
	return k
}
