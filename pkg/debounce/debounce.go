// Package debounce coalesces bursts of calls into a single delayed call.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delays fn until wait has elapsed without another Trigger.
//
// A Debouncer owns at most one live timer. Trigger stops the pending timer
// before arming a new one, so only the last call of a burst executes.
//
// Fields:
//   - mu: Guards timer and stopped
//   - wait: Quiet period required before fn runs
//   - fn: The coalesced call
//   - timer: The pending timer, nil when idle
//   - gen: Incremented per Trigger so a timer that fired late can tell it was superseded
//   - stopped: Set by Stop; later Triggers are ignored
type Debouncer struct {
	mu      sync.Mutex
	wait    time.Duration
	fn      func()
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// New creates a Debouncer for fn.
//
// Parameters:
//   - wait: Quiet period after the latest Trigger before fn runs
//   - fn: Function to run; it executes on the timer's goroutine
//
// Returns:
//   - *Debouncer: An idle debouncer
func New(wait time.Duration, fn func()) *Debouncer {
	return &Debouncer{wait: wait, fn: fn}
}

// Trigger cancels any pending call and schedules fn to run after the wait.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.wait, func() { d.fire(gen) })
}

// Pending reports whether a call is scheduled and has not run yet.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Flush runs a pending call immediately. It returns false when nothing was pending.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if d.timer == nil || d.stopped {
		d.mu.Unlock()
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	d.mu.Unlock()

	d.fn()
	return true
}

// Stop cancels any pending call. Subsequent Triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn()
}

// Func wraps fn so that each call re-arms a wait-long timer and only the last
// call in a burst runs. The returned cancel stops any pending call.
//
// Parameters:
//   - fn: Function to debounce
//   - wait: Quiet period
//
// Returns:
//   - func(): The debounced call
//   - func(): Cancels the pending call and disables the debounced call
func Func(fn func(), wait time.Duration) (call func(), cancel func()) {
	d := New(wait, fn)
	return d.Trigger, d.Stop
}
