package schedule

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrLoopClosed is returned when work is posted to a closed loop
var ErrLoopClosed = errors.New("schedule: loop closed")

const (
	taskPending int32 = iota
	taskFired
	taskCancelled
)

// Loop is a real-time Scheduler that runs every callback on a single
// goroutine. Work posted with Do and fired timers are executed in arrival
// order, which gives hosts without their own event loop the same
// serialization a UI loop would.
type Loop struct {
	work chan func()
	quit chan struct{}
	done chan struct{}

	mu     sync.Mutex
	timers map[*loopTask]struct{}
	closed bool
}

type loopTask struct {
	l     *Loop
	state atomic.Int32
	timer *time.Timer
}

// NewLoop starts a new event loop
func NewLoop() *Loop {
	l := &Loop{
		work:   make(chan func(), 64),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
		timers: make(map[*loopTask]struct{}),
	}
	go l.run()
	return l
}

// Now returns the wall clock time
func (l *Loop) Now() time.Time {
	return time.Now()
}

// After schedules fn to run on the loop goroutine after d
func (l *Loop) After(d time.Duration, fn func()) Task {
	t := &loopTask{l: l}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		t.state.Store(taskCancelled)
		return t
	}
	l.timers[t] = struct{}{}
	t.timer = time.AfterFunc(d, func() {
		_ = l.Do(func() {
			if !t.state.CompareAndSwap(taskPending, taskFired) {
				return
			}
			l.forget(t)
			fn()
		})
	})
	return t
}

// Cancel stops the task if it has not fired yet
func (t *loopTask) Cancel() bool {
	if !t.state.CompareAndSwap(taskPending, taskCancelled) {
		return false
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.l.forget(t)
	return true
}

// Do posts fn to the loop
func (l *Loop) Do(fn func()) error {
	select {
	case <-l.quit:
		return ErrLoopClosed
	default:
	}
	select {
	case l.work <- fn:
		return nil
	case <-l.quit:
		return ErrLoopClosed
	}
}

// DoWait posts fn and blocks until it has run
func (l *Loop) DoWait(fn func()) error {
	ran := make(chan struct{})
	if err := l.Do(func() {
		defer close(ran)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-ran:
		return nil
	case <-l.done:
		return ErrLoopClosed
	}
}

// Close cancels all pending timers and stops the loop goroutine
func (l *Loop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.closed = true
	pending := make([]*loopTask, 0, len(l.timers))
	for t := range l.timers {
		pending = append(pending, t)
	}
	l.mu.Unlock()

	for _, t := range pending {
		t.Cancel()
	}
	close(l.quit)
	<-l.done
}

func (l *Loop) forget(t *loopTask) {
	l.mu.Lock()
	delete(l.timers, t)
	l.mu.Unlock()
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		select {
		case fn := <-l.work:
			fn()
		case <-l.quit:
			return
		}
	}
}
