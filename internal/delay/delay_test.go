package delay

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// mockClock implements Clock for deterministic testing.
type mockClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*mockTimer
}

func newMockClock() *mockClock {
	return &mockClock{now: time.Date(2026, 1, 17, 12, 0, 0, 0, time.UTC)}
}

func (c *mockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *mockClock) NewTimer(d time.Duration) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &mockTimer{deadline: c.now.Add(d), ch: make(chan time.Time, 1)}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward and fires any expired timers.
func (c *mockClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	timers := c.timers
	c.mu.Unlock()

	for _, t := range timers {
		t.mu.Lock()
		if !t.stopped && !t.fired && !t.deadline.After(now) {
			t.fired = true
			t.ch <- now
		}
		t.mu.Unlock()
	}
}

type mockTimer struct {
	mu       sync.Mutex
	deadline time.Time
	ch       chan time.Time
	stopped  bool
	fired    bool
}

func (t *mockTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	wasRunning := !t.stopped && !t.fired
	t.stopped = true
	return wasRunning
}

func (t *mockTimer) C() <-chan time.Time { return t.ch }

func wait(ctx context.Context, to *Timeout) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		o, _ := to.Elapsed(ctx)
		out <- o
	}()
	return out
}

func TestTimeout_Elapses(t *testing.T) {
	clock := newMockClock()
	to := NewTimeouts(clock).CreateTimeout(200 * time.Millisecond)
	done := wait(context.Background(), to)

	clock.Advance(100 * time.Millisecond)
	select {
	case <-done:
		require.Fail(t, "timeout elapsed early")
	case <-time.After(20 * time.Millisecond):
	}

	clock.Advance(100 * time.Millisecond)
	select {
	case o := <-done:
		require.Equal(t, Elapsed, o)
	case <-time.After(time.Second):
		require.Fail(t, "timeout never elapsed")
	}
}

func TestTimeout_AbortResolvesWaiter(t *testing.T) {
	clock := newMockClock()
	to := NewTimeouts(clock).CreateTimeout(time.Second)
	done := wait(context.Background(), to)

	to.Abort()

	select {
	case o := <-done:
		require.Equal(t, Aborted, o)
	case <-time.After(time.Second):
		require.Fail(t, "abort did not wake the waiter")
	}
	require.True(t, to.IsAborted())
}

func TestTimeout_AbortBeforeWait(t *testing.T) {
	to := NewTimeouts(newMockClock()).CreateTimeout(time.Second)
	to.Abort()

	o, err := to.Elapsed(context.Background())
	require.NoError(t, err)
	require.Equal(t, Aborted, o)
}

func TestTimeout_AbortIsIdempotent(t *testing.T) {
	to := NewTimeouts(newMockClock()).CreateTimeout(time.Second)
	require.NotPanics(t, func() {
		to.Abort()
		to.Abort()
		to.Dispose()
	})
}

func TestTimeout_AbortAfterFireWins(t *testing.T) {
	clock := newMockClock()
	to := NewTimeouts(clock).CreateTimeout(time.Millisecond)
	clock.Advance(time.Millisecond)
	to.Abort()

	o, err := to.Elapsed(context.Background())
	require.NoError(t, err)
	require.Equal(t, Aborted, o)
}

func TestTimeout_ContextCancelled(t *testing.T) {
	to := NewTimeouts(newMockClock()).CreateTimeout(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o, err := to.Elapsed(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, Aborted, o)
}

func TestTimeouts_DefaultsToRealClock(t *testing.T) {
	to := NewTimeouts(nil).CreateTimeout(time.Millisecond)
	o, err := to.Elapsed(context.Background())
	require.NoError(t, err)
	require.Equal(t, Elapsed, o)
}

func TestOutcome_String(t *testing.T) {
	require.Equal(t, "elapsed", Elapsed.String())
	require.Equal(t, "aborted", Aborted.String())
	require.Equal(t, "unknown", Outcome(9).String())
}
