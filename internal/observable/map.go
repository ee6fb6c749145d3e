package observable

import (
	"slices"
	"sync"
	"sync/atomic"
)

// MapHandlers receives the mutations of a Collection. Nil handlers are skipped.
type MapHandlers[K comparable, V any] struct {
	OnAdd    func(key K, value V)
	OnUpdate func(key K, value V)
	OnRemove func(key K, value V)
}

// Collection is a keyed set of values whose mutations can be observed.
type Collection[K comparable, V any] interface {
	Get(key K) (V, bool)
	Len() int
	// Range calls fn for every entry until fn returns false. Order is unspecified.
	Range(fn func(key K, value V) bool)
	Subscribe(h MapHandlers[K, V]) (unsubscribe func())
}

type mapSubscriber[K comparable, V any] struct {
	h      MapHandlers[K, V]
	active atomic.Bool
}

// mapEmitter fans collection events out to subscribers in registration order.
type mapEmitter[K comparable, V any] struct {
	mu   sync.Mutex
	subs []*mapSubscriber[K, V]
}

// subscribe returns an unsubscribe func reporting how many subscribers remain,
// or -1 if it already ran.
func (e *mapEmitter[K, V]) subscribe(h MapHandlers[K, V]) func() int {
	s := &mapSubscriber[K, V]{h: h}
	s.active.Store(true)

	e.mu.Lock()
	e.subs = append(e.subs, s)
	e.mu.Unlock()

	return func() int {
		if !s.active.CompareAndSwap(true, false) {
			return -1
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		e.subs = slices.DeleteFunc(e.subs, func(o *mapSubscriber[K, V]) bool { return o == s })
		return len(e.subs)
	}
}

func (e *mapEmitter[K, V]) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs)
}

func (e *mapEmitter[K, V]) snapshot() []*mapSubscriber[K, V] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.subs)
}

func (e *mapEmitter[K, V]) emitAdd(key K, value V) {
	for _, s := range e.snapshot() {
		if s.active.Load() && s.h.OnAdd != nil {
			s.h.OnAdd(key, value)
		}
	}
}

func (e *mapEmitter[K, V]) emitUpdate(key K, value V) {
	for _, s := range e.snapshot() {
		if s.active.Load() && s.h.OnUpdate != nil {
			s.h.OnUpdate(key, value)
		}
	}
}

func (e *mapEmitter[K, V]) emitRemove(key K, value V) {
	for _, s := range e.snapshot() {
		if s.active.Load() && s.h.OnRemove != nil {
			s.h.OnRemove(key, value)
		}
	}
}

// ObservableMap is a mutable Collection. Events are delivered synchronously on
// the mutating goroutine, after the map itself has been updated.
type ObservableMap[K comparable, V any] struct {
	mu      sync.RWMutex
	values  map[K]V
	emitter mapEmitter[K, V]
}

// NewObservableMap creates an empty map.
func NewObservableMap[K comparable, V any]() *ObservableMap[K, V] {
	return &ObservableMap[K, V]{values: make(map[K]V)}
}

// Add inserts value under key. It returns false, changing nothing, when key already exists.
func (m *ObservableMap[K, V]) Add(key K, value V) bool {
	m.mu.Lock()
	if _, ok := m.values[key]; ok {
		m.mu.Unlock()
		return false
	}
	m.values[key] = value
	m.mu.Unlock()

	m.emitter.emitAdd(key, value)
	return true
}

// Set inserts or replaces value under key, emitting add or update accordingly.
func (m *ObservableMap[K, V]) Set(key K, value V) {
	m.mu.Lock()
	_, existed := m.values[key]
	m.values[key] = value
	m.mu.Unlock()

	if existed {
		m.emitter.emitUpdate(key, value)
		return
	}
	m.emitter.emitAdd(key, value)
}

// Update re-announces the value under key, for values mutated in place.
func (m *ObservableMap[K, V]) Update(key K) bool {
	m.mu.RLock()
	value, ok := m.values[key]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	m.emitter.emitUpdate(key, value)
	return true
}

// Remove deletes key and emits its last value.
func (m *ObservableMap[K, V]) Remove(key K) bool {
	m.mu.Lock()
	value, ok := m.values[key]
	if ok {
		delete(m.values, key)
	}
	m.mu.Unlock()
	if !ok {
		return false
	}
	m.emitter.emitRemove(key, value)
	return true
}

// Get returns the value under key.
func (m *ObservableMap[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of entries.
func (m *ObservableMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

// Range iterates over a snapshot of the entries, so fn may mutate the map.
func (m *ObservableMap[K, V]) Range(fn func(key K, value V) bool) {
	m.mu.RLock()
	keys := make([]K, 0, len(m.values))
	vals := make([]V, 0, len(m.values))
	for k, v := range m.values {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	m.mu.RUnlock()

	for i := range keys {
		if !fn(keys[i], vals[i]) {
			return
		}
	}
}

// Subscribe registers h. Unsubscription takes effect immediately.
func (m *ObservableMap[K, V]) Subscribe(h MapHandlers[K, V]) func() {
	unsub := m.emitter.subscribe(h)
	return func() { unsub() }
}

// SubscriberCount returns the number of active subscribers.
func (m *ObservableMap[K, V]) SubscriberCount() int {
	return m.emitter.count()
}
