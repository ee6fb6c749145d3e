// Package observable provides synchronous reactive primitives: a single-slot
// Value with subscribe/notify semantics and a keyed ObservableMap whose
// insert/update/remove events can be filtered into live views.
//
// Notification is synchronous: by the time a mutating call returns, every
// subscriber registered at the start of the dispatch has run (unless it
// unsubscribed first). Nothing in this package recovers panics raised by
// subscribers.
package observable

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Readable is a value that can be read and observed.
type Readable[T any] interface {
	Get() T
	Subscribe(cb func(T)) (unsubscribe func())
}

type subscriber[T any] struct {
	cb     func(T)
	active atomic.Bool
}

// Value is a single mutable slot that notifies subscribers when it changes.
type Value[T any] struct {
	mu          sync.Mutex
	value       T
	equal       func(a, b T) bool
	subs        []*subscriber[T]
	dispatching bool
	queue       []T
}

// NewValue creates a Value that skips notification when the new value is == the old one.
func NewValue[T comparable](initial T) *Value[T] {
	return NewValueFunc(initial, func(a, b T) bool { return a == b })
}

// NewValueFunc creates a Value with a custom equality. A nil equal notifies on every Set.
func NewValueFunc[T any](initial T, equal func(a, b T) bool) *Value[T] {
	return &Value[T]{value: initial, equal: equal}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Set stores next and notifies subscribers in registration order.
//
// A Set issued while subscribers are being notified is queued and delivered
// once the current round completes, so no subscriber ever observes a nested
// notification.
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	if v.dispatching {
		v.queue = append(v.queue, next)
		v.mu.Unlock()
		return
	}
	if !v.applyLocked(next) {
		v.mu.Unlock()
		return
	}
	v.dispatching = true
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.dispatching = false
		v.queue = nil
		v.mu.Unlock()
	}()

	for {
		v.notify()
		if !v.dequeue() {
			return
		}
	}
}

// Subscribe registers cb and returns a function that removes it.
// Removal takes effect immediately, even in the middle of a notification round.
func (v *Value[T]) Subscribe(cb func(T)) (unsubscribe func()) {
	s := &subscriber[T]{cb: cb}
	s.active.Store(true)

	v.mu.Lock()
	v.subs = append(v.subs, s)
	v.mu.Unlock()

	return func() {
		if !s.active.CompareAndSwap(true, false) {
			return
		}
		v.mu.Lock()
		defer v.mu.Unlock()
		v.subs = slices.DeleteFunc(v.subs, func(o *subscriber[T]) bool { return o == s })
	}
}

// SubscriberCount returns the number of active subscribers.
func (v *Value[T]) SubscriberCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}

func (v *Value[T]) applyLocked(next T) bool {
	if v.equal != nil && v.equal(v.value, next) {
		return false
	}
	v.value = next
	return true
}

func (v *Value[T]) notify() {
	v.mu.Lock()
	val := v.value
	subs := slices.Clone(v.subs)
	v.mu.Unlock()

	for _, s := range subs {
		if s.active.Load() {
			s.cb(val)
		}
	}
}

// dequeue applies queued values until one actually changes the slot.
func (v *Value[T]) dequeue() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for len(v.queue) > 0 {
		next := v.queue[0]
		v.queue = v.queue[1:]
		if v.applyLocked(next) {
			return true
		}
	}
	return false
}
