// Package carousel implements the slideshow controller: the index and
// transition state machine plus its autoplay timer.
//
// A Controller is either idle, showing CurrentIndex, or transitioning toward
// a pending index. Accepted navigation starts a transition and schedules a
// single completion task; the index only changes when that task runs. While a
// transition is in flight every navigation request is ignored.
//
// Controllers are not safe for concurrent use. All methods and all scheduler
// callbacks must run on the host's event loop.
package carousel

import (
	"slidereel/internal/domain"
	"slidereel/internal/schedule"
)

// Controller owns the carousel state for one mounted view
type Controller struct {
	opts   Options
	sched  schedule.Scheduler
	obs    Observer
	slides domain.SlideSet
	state  State

	started    bool
	autoplay   schedule.Task
	completion schedule.Task
}

// New creates an idle controller at index 0. An empty slide set is replaced
// by the built-in fallback slide.
func New(slides domain.SlideSet, opts Options, sched schedule.Scheduler, obs Observer) *Controller {
	if obs == nil {
		obs = nopObserver{}
	}
	c := &Controller{
		opts:  opts.withDefaults(),
		sched: sched,
		obs:   obs,
	}
	c.replace(slides)
	return c
}

// Options returns the effective options
func (c *Controller) Options() Options {
	return c.opts
}

// Slides returns the current slide set
func (c *Controller) Slides() domain.SlideSet {
	return c.slides.Clone()
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() State {
	return c.state
}

// Current returns the slide at CurrentIndex
func (c *Controller) Current() domain.Slide {
	return c.slides[c.state.CurrentIndex]
}

// HasControls reports whether navigation controls should be shown
func (c *Controller) HasControls() bool {
	return c.slides.Len() > 1
}

// Start arms autoplay. Call when the view mounts.
func (c *Controller) Start() {
	if c.started {
		return
	}
	c.started = true
	c.armAutoplay()
}

// Stop cancels autoplay and any pending transition commit. Call when the
// view unmounts. An in-flight transition is abandoned without committing.
func (c *Controller) Stop() {
	c.started = false
	c.cancelAutoplay()
	c.abandonTransition()
}

// Running reports whether Start has been called without a matching Stop
func (c *Controller) Running() bool {
	return c.started
}

// SetSlides replaces the slide set wholesale. Timers are cleared and the
// controller returns to idle at index 0; autoplay is re-armed when running.
func (c *Controller) SetSlides(slides domain.SlideSet) {
	c.cancelAutoplay()
	c.abandonTransition()
	c.replace(slides)
	c.armAutoplay()
}

// GoTo starts a transition to target. It is a no-op, returning false, while
// a transition is in flight, when target is already current, or when target
// is out of range.
func (c *Controller) GoTo(target int, dir Direction) bool {
	if c.state.Transitioning || target == c.state.CurrentIndex {
		return false
	}
	if target < 0 || target >= c.slides.Len() {
		return false
	}

	from := c.state.CurrentIndex
	c.state.Transitioning = true
	c.state.PendingIndex = target
	c.state.Direction = dir
	c.state.StartedAt = c.sched.Now()
	c.obs.TransitionStarted(from, target, dir)

	c.completion = c.sched.After(c.opts.TransitionDuration, func() {
		c.completion = nil
		c.commit(target, dir)
	})
	return true
}

// Next advances to the following slide, wrapping to the first
func (c *Controller) Next() bool {
	accepted := c.GoTo(c.nextIndex(), Forward)
	c.resetAutoplay()
	return accepted
}

// Previous retreats to the preceding slide, wrapping to the last
func (c *Controller) Previous() bool {
	n := c.slides.Len()
	accepted := c.GoTo((c.state.CurrentIndex-1+n)%n, Backward)
	c.resetAutoplay()
	return accepted
}

// SelectSlide jumps directly to index
func (c *Controller) SelectSlide(index int) bool {
	dir := Backward
	if index > c.state.CurrentIndex {
		dir = Forward
	}
	accepted := c.GoTo(index, dir)
	c.resetAutoplay()
	return accepted
}

// Pause suspends autoplay. Manual navigation keeps working.
func (c *Controller) Pause() {
	if c.state.Paused {
		return
	}
	c.state.Paused = true
	c.cancelAutoplay()
}

// Resume re-arms autoplay after Pause with a full interval
func (c *Controller) Resume() {
	if !c.state.Paused {
		return
	}
	c.state.Paused = false
	c.armAutoplay()
}

// TogglePause flips between Pause and Resume and returns the new paused state
func (c *Controller) TogglePause() bool {
	if c.state.Paused {
		c.Resume()
	} else {
		c.Pause()
	}
	return c.state.Paused
}

// AutoplayArmed reports whether an autoplay tick is scheduled
func (c *Controller) AutoplayArmed() bool {
	return c.autoplay != nil
}

func (c *Controller) commit(target int, dir Direction) {
	c.state.CurrentIndex = target
	c.state.PendingIndex = target
	c.state.Transitioning = false
	c.obs.TransitionCompleted(target, dir)
}

func (c *Controller) nextIndex() int {
	return (c.state.CurrentIndex + 1) % c.slides.Len()
}

func (c *Controller) replace(slides domain.SlideSet) {
	if slides.Len() == 0 {
		slides = domain.FallbackSlideSet("")
	}
	c.slides = slides.Clone()
	c.state = State{
		Length: c.slides.Len(),
		Paused: c.state.Paused,
	}
}

func (c *Controller) abandonTransition() {
	schedule.Stop(c.completion)
	c.completion = nil
	if c.state.Transitioning {
		c.state.Transitioning = false
		c.state.PendingIndex = c.state.CurrentIndex
	}
}

// resetAutoplay restarts the autoplay phase so the next tick is a full
// interval away
func (c *Controller) resetAutoplay() {
	if c.autoplay == nil {
		return
	}
	c.cancelAutoplay()
	c.armAutoplay()
}

func (c *Controller) armAutoplay() {
	if !c.started || !c.opts.Autoplay || c.state.Paused || c.slides.Len() <= 1 {
		return
	}
	c.cancelAutoplay()
	c.autoplay = c.sched.After(c.opts.Interval, c.tick)
}

func (c *Controller) tick() {
	c.autoplay = nil
	c.GoTo(c.nextIndex(), Forward)
	c.armAutoplay()
}

func (c *Controller) cancelAutoplay() {
	schedule.Stop(c.autoplay)
	c.autoplay = nil
}
