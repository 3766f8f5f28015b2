package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings shown in the help footer.
// Duck tag keys are letters drawn next to each duck and are matched
// dynamically in the model.
type keyMap struct {
	Confirm key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
	Shoot   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Shoot, k.Confirm, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Shoot, k.Confirm},
		{k.Pause, k.Restart, k.Quit},
	}
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/next"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Shoot: key.NewBinding(
			key.WithKeys(),
			key.WithHelp("tag/click", "shoot duck"),
		),
	}
}
