// Package lifecycle provides ownership tracking for disposable resources.
//
// A Tracker owns child resources and releases each of them exactly once:
// either explicitly through DisposeTracked, or in reverse acquisition order
// when the Tracker itself is disposed.
package lifecycle

import "sync"

// Disposable is anything that holds resources which must be released.
// Implementations must tolerate being disposed more than once.
type Disposable interface {
	Dispose()
}

// Func adapts a plain function (typically an unsubscribe callback) to Disposable.
type Func func()

// Dispose calls f.
func (f Func) Dispose() {
	if f != nil {
		f()
	}
}

// Handle identifies a tracked child. The zero Handle tracks nothing.
type Handle struct {
	id uint64
}

// IsZero reports whether h refers to no child.
func (h Handle) IsZero() bool { return h.id == 0 }

type entry struct {
	id uint64
	d  Disposable
}

// Tracker owns a set of disposables. The zero value is ready to use.
type Tracker struct {
	mu       sync.Mutex
	entries  []entry
	nextID   uint64
	disposed bool
}

// Track takes ownership of d and returns a handle for releasing it early.
// Tracking on a disposed Tracker disposes d immediately and returns the zero Handle,
// so late completions of asynchronous work cannot leak.
func (t *Tracker) Track(d Disposable) Handle {
	if d == nil {
		return Handle{}
	}
	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		d.Dispose()
		return Handle{}
	}
	t.nextID++
	id := t.nextID
	t.entries = append(t.entries, entry{id: id, d: d})
	t.mu.Unlock()
	return Handle{id: id}
}

// TrackFunc is shorthand for Track(Func(fn)).
func (t *Tracker) TrackFunc(fn func()) Handle {
	if fn == nil {
		return Handle{}
	}
	return t.Track(Func(fn))
}

// DisposeTracked disposes the child behind h and forgets it.
// It always returns the zero Handle so callers can write h = t.DisposeTracked(h).
// Unknown or zero handles are ignored.
func (t *Tracker) DisposeTracked(h Handle) Handle {
	if d := t.Untrack(h); d != nil {
		d.Dispose()
	}
	return Handle{}
}

// Untrack releases ownership of the child behind h without disposing it.
func (t *Tracker) Untrack(h Handle) Disposable {
	if h.IsZero() {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, e := range t.entries {
		if e.id == h.id {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return e.d
		}
	}
	return nil
}

// Len returns the number of children currently tracked.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// IsDisposed reports whether Dispose has been called.
func (t *Tracker) IsDisposed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.disposed
}

// Dispose releases every tracked child, most recently tracked first.
// Calling Dispose again is a no-op.
func (t *Tracker) Dispose() {
	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return
	}
	t.disposed = true
	entries := t.entries
	t.entries = nil
	t.mu.Unlock()

	// Children may call back into the tracker while disposing.
	for i := len(entries) - 1; i >= 0; i-- {
		entries[i].d.Dispose()
	}
}
