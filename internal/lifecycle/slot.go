package lifecycle

import "sync"

// Slot is an owned, optional child whose lifetime follows a derived condition
// rather than the owner's lifetime alone. The previous occupant is always
// disposed before a replacement is built, so two occupants never coexist.
type Slot[T Disposable] struct {
	owner  *Tracker
	mu     sync.Mutex
	value  T
	handle Handle
	full   bool
}

// NewSlot creates an empty slot whose occupants are tracked by owner.
func NewSlot[T Disposable](owner *Tracker) *Slot[T] {
	return &Slot[T]{owner: owner}
}

// Get returns the current occupant.
func (s *Slot[T]) Get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.full
}

// Replace disposes the current occupant, then builds and tracks a new one.
// A nil build leaves the slot empty. If the owner is already disposed the new
// occupant is disposed immediately and the slot stays empty.
func (s *Slot[T]) Replace(build func() T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	if build == nil {
		return
	}
	v := build()
	h := s.owner.Track(v)
	if h.IsZero() {
		return
	}
	s.value, s.handle, s.full = v, h, true
}

// Clear disposes the current occupant, if any.
func (s *Slot[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *Slot[T]) clearLocked() {
	if !s.full {
		return
	}
	s.handle = s.owner.DisposeTracked(s.handle)
	var zero T
	s.value, s.full = zero, false
}
