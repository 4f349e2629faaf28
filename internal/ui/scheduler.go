package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"slidereel/internal/schedule"
)

// timerFiredMsg is delivered when a scheduled task's delay has elapsed
type timerFiredMsg struct {
	id uint64
}

// teaScheduler bridges schedule.Scheduler onto Bubble Tea. After queues a
// tea.Tick and the callback runs when the resulting message reaches Update,
// so every callback executes on the program's event loop. Cancelled tasks
// still produce a message; it is ignored on arrival.
type teaScheduler struct {
	now     func() time.Time
	nextID  uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

type teaTask struct {
	s  *teaScheduler
	id uint64
}

var _ schedule.Scheduler = (*teaScheduler)(nil)

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{
		now:     time.Now,
		pending: make(map[uint64]func()),
	}
}

func (s *teaScheduler) Now() time.Time {
	return s.now()
}

func (s *teaScheduler) After(d time.Duration, fn func()) schedule.Task {
	s.nextID++
	id := s.nextID
	s.pending[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return teaTask{s: s, id: id}
}

func (t teaTask) Cancel() bool {
	if _, ok := t.s.pending[t.id]; !ok {
		return false
	}
	delete(t.s.pending, t.id)
	return true
}

// fire runs the task's callback unless it was cancelled
func (s *teaScheduler) fire(id uint64) bool {
	fn, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	fn()
	return true
}

// drain returns the ticks queued since the last call
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// size returns the number of live tasks
func (s *teaScheduler) size() int {
	return len(s.pending)
}
