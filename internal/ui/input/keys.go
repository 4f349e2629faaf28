package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the slideshow key bindings
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Jump     key.Binding
	Pause    key.Binding
	QR       key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/l", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h", "previous"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "pause"),
		),
		QR: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "qr code"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Pause, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.Jump},
		{k.Pause, k.QR},
		{k.Help, k.Quit},
	}
}

// SetNavigationEnabled hides and disables navigation when there is only one slide
func (k *KeyMap) SetNavigationEnabled(enabled bool) {
	k.Next.SetEnabled(enabled)
	k.Previous.SetEnabled(enabled)
	k.Jump.SetEnabled(enabled)
	k.Pause.SetEnabled(enabled)
}
