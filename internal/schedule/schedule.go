// Package schedule provides cancellable delayed tasks.
//
// A Scheduler hands out Tasks that run a callback once after a delay unless
// cancelled first. Implementations guarantee that callbacks never run
// concurrently with each other, so state touched only from callbacks and
// from the host's own event loop needs no locking.
package schedule

import "time"

// Task is a scheduled callback
type Task interface {
	// Cancel prevents the callback from running. It reports whether the
	// task was still pending.
	Cancel() bool
}

// Scheduler creates delayed tasks
type Scheduler interface {
	Now() time.Time
	After(d time.Duration, fn func()) Task
}

// Stop cancels t if it is non-nil
func Stop(t Task) {
	if t != nil {
		t.Cancel()
	}
}
