package schedule

import (
	"sync"
	"time"
)

// Manual is a Scheduler driven by simulated time. Tasks only run from
// Advance, on the caller's goroutine.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	m   *Manual
	at  time.Time
	seq uint64
	fn  func()
}

// NewManual creates a manual scheduler whose clock starts at start
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the simulated time
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// After schedules fn at Now()+d
func (m *Manual) After(d time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTask{m: m, at: m.now.Add(d), seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Cancel removes the task from the pending list
func (t *manualTask) Cancel() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	return t.m.remove(t)
}

// Advance moves the clock forward by d, running every task that falls due,
// in deadline order (FIFO for equal deadlines). Tasks scheduled by a running
// task fire within the same call if they are due before the new time.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	for {
		next := m.earliest(target)
		if next == nil {
			break
		}
		m.remove(next)
		m.now = next.at
		m.mu.Unlock()
		next.fn()
		m.mu.Lock()
	}
	m.now = target
	m.mu.Unlock()
}

// Pending returns the number of tasks still waiting to run
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

func (m *Manual) earliest(limit time.Time) *manualTask {
	var best *manualTask
	for _, t := range m.tasks {
		if t.at.After(limit) {
			continue
		}
		if best == nil || t.at.Before(best.at) || (t.at.Equal(best.at) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) remove(t *manualTask) bool {
	for i, p := range m.tasks {
		if p == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return true
		}
	}
	return false
}
