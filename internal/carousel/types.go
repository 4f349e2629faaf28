package carousel

import "time"

// Direction records which way a transition travels. It only drives styling.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Default timings used when Options leaves a field at zero
const (
	DefaultInterval           = 5000 * time.Millisecond
	DefaultTransitionDuration = 450 * time.Millisecond
)

// Options configures a Controller
type Options struct {
	Interval           time.Duration // autoplay period
	TransitionDuration time.Duration // delay between starting and committing a transition
	Autoplay           bool
}

// DefaultOptions returns the reference configuration
func DefaultOptions() Options {
	return Options{
		Interval:           DefaultInterval,
		TransitionDuration: DefaultTransitionDuration,
		Autoplay:           true,
	}
}

func (o Options) withDefaults() Options {
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.TransitionDuration <= 0 {
		o.TransitionDuration = DefaultTransitionDuration
	}
	return o
}

// State is a read-only copy of the controller state
type State struct {
	CurrentIndex  int
	PendingIndex  int // equals CurrentIndex when idle
	Direction     Direction
	Transitioning bool
	Paused        bool
	Length        int
	StartedAt     time.Time // when the in-flight transition began
}

// Progress returns how far the in-flight transition is, in [0, 1]
func (s State) Progress(now time.Time, duration time.Duration) float64 {
	if !s.Transitioning || duration <= 0 {
		return 0
	}
	p := float64(now.Sub(s.StartedAt)) / float64(duration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Observer receives transition notifications. The display surface
// implements it to start and finish its outgoing-slide effect.
type Observer interface {
	TransitionStarted(from, to int, dir Direction)
	TransitionCompleted(index int, dir Direction)
}

type nopObserver struct{}

func (nopObserver) TransitionStarted(int, int, Direction) {}
func (nopObserver) TransitionCompleted(int, Direction)    {}
