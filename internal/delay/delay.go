// Package delay provides abortable timeouts for "do X after N ms unless
// cancelled" side effects.
//
// Cancellation is not an error: waiting on a Timeout yields a tagged Outcome,
// and the caller decides which outcomes matter.
package delay

import (
	"context"
	"sync"
	"time"
)

// Clock provides time-related operations for testability.
// Use RealClock for production and a fake clock in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// NewTimer creates a Timer that delivers the current time on its channel
	// after at least duration d.
	NewTimer(d time.Duration) Timer
}

// Timer represents a timer that can be stopped and provides a channel.
type Timer interface {
	// Stop prevents the Timer from firing. Returns true if the call stops
	// the timer, false if the timer has already expired or been stopped.
	Stop() bool
	// C returns the channel on which the time is delivered.
	C() <-chan time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// NewTimer creates a new time.Timer.
func (RealClock) NewTimer(d time.Duration) Timer {
	return &realTimer{timer: time.NewTimer(d)}
}

type realTimer struct {
	timer *time.Timer
}

func (t *realTimer) Stop() bool          { return t.timer.Stop() }
func (t *realTimer) C() <-chan time.Time { return t.timer.C }

// Outcome is how a wait on a Timeout ended.
type Outcome int

const (
	// Elapsed means the full duration passed.
	Elapsed Outcome = iota
	// Aborted means Abort was called before the duration passed.
	Aborted
)

func (o Outcome) String() string {
	switch o {
	case Elapsed:
		return "elapsed"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Timeouts creates Timeouts driven by a Clock.
type Timeouts struct {
	clock Clock
}

// NewTimeouts returns a factory using clock, or RealClock when clock is nil.
func NewTimeouts(clock Clock) *Timeouts {
	if clock == nil {
		clock = RealClock{}
	}
	return &Timeouts{clock: clock}
}

// CreateTimeout starts a timer of duration d.
func (f *Timeouts) CreateTimeout(d time.Duration) *Timeout {
	return &Timeout{
		timer:   f.clock.NewTimer(d),
		aborted: make(chan struct{}),
	}
}

// Timeout is a single pending delay.
type Timeout struct {
	timer   Timer
	aborted chan struct{}
	once    sync.Once
}

// Elapsed blocks until the timeout fires, is aborted, or ctx is done.
// An abort that races with the timer firing wins, so once Abort has returned
// no waiter observes Elapsed. The error is non-nil only when ctx ended first.
func (t *Timeout) Elapsed(ctx context.Context) (Outcome, error) {
	select {
	case <-t.aborted:
		return Aborted, nil
	default:
	}

	select {
	case <-t.timer.C():
		if t.IsAborted() {
			return Aborted, nil
		}
		return Elapsed, nil
	case <-t.aborted:
		return Aborted, nil
	case <-ctx.Done():
		t.timer.Stop()
		return Aborted, ctx.Err()
	}
}

// Abort cancels the timeout. It is idempotent.
func (t *Timeout) Abort() {
	t.once.Do(func() {
		t.timer.Stop()
		close(t.aborted)
	})
}

// IsAborted reports whether Abort has been called.
func (t *Timeout) IsAborted() bool {
	select {
	case <-t.aborted:
		return true
	default:
		return false
	}
}

// Dispose aborts the timeout, so a Timeout can be tracked as a resource.
func (t *Timeout) Dispose() { t.Abort() }
