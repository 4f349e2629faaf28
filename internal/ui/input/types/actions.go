package types

// Navigation actions
type NextAction struct{}

func (a NextAction) Type() string { return "next" }

type PreviousAction struct{}

func (a PreviousAction) Type() string { return "previous" }

type SelectSlideAction struct {
	Index int
}

func (a SelectSlideAction) Type() string { return "select_slide" }

// Playback actions
type TogglePauseAction struct{}

func (a TogglePauseAction) Type() string { return "toggle_pause" }

// Overlay actions
type ToggleQRAction struct{}

func (a ToggleQRAction) Type() string { return "toggle_qr" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

// System actions
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
