package ui

import (
	"time"

	"slidereel/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// frameMsg drives the transition animation
type frameMsg time.Time

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}
