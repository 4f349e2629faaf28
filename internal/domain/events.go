package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlidesRequested EventType = "SlidesRequested"
	EventSlidesLoaded    EventType = "SlidesLoaded"
	EventSlideChanged    EventType = "SlideChanged"
	EventPlaybackToggled EventType = "PlaybackToggled"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SlidesRequestedEvent is emitted when the one-shot slide fetch starts
type SlidesRequestedEvent struct {
	Source string
}

func (e SlidesRequestedEvent) Type() EventType { return EventSlidesRequested }

// SlidesLoadedEvent carries the resolved slide set.
// Fallback is true when the source failed or returned nothing usable.
type SlidesLoadedEvent struct {
	Slides   SlideSet
	Fallback bool
}

func (e SlidesLoadedEvent) Type() EventType { return EventSlidesLoaded }

// SlideChangedEvent is emitted when a transition commits
type SlideChangedEvent struct {
	Index   int
	Forward bool
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// PlaybackToggledEvent is emitted when autoplay is paused or resumed
type PlaybackToggledEvent struct {
	Paused bool
}

func (e PlaybackToggledEvent) Type() EventType { return EventPlaybackToggled }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
