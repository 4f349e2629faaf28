package types

import tea "github.com/charmbracelet/bubbletea"

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	SlideCount() int
	HasControls() bool
	CurrentIndex() int
}

// KeyHandler turns key presses into actions
type KeyHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)
}
