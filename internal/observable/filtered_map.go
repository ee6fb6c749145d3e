package observable

import "sync"

// FilteredMap is a live view over a Collection containing only the values
// that satisfy a predicate. An update that flips the predicate is reported to
// subscribers as a remove or an add.
//
// The view attaches to its source when it gains its first subscriber and
// detaches when it loses its last one, so an unobserved view holds no
// subscription on the source.
type FilteredMap[K comparable, V any] struct {
	src  Collection[K, V]
	pred func(V) bool

	mu       sync.Mutex
	included map[K]V
	detach   func()
	emitter  mapEmitter[K, V]
}

// FilterValues returns a live view of src restricted to values satisfying pred.
func FilterValues[K comparable, V any](src Collection[K, V], pred func(V) bool) *FilteredMap[K, V] {
	return &FilteredMap[K, V]{src: src, pred: pred}
}

// Get returns the value under key if it passes the predicate.
func (f *FilteredMap[K, V]) Get(key K) (V, bool) {
	f.mu.Lock()
	if f.included != nil {
		v, ok := f.included[key]
		f.mu.Unlock()
		return v, ok
	}
	f.mu.Unlock()

	v, ok := f.src.Get(key)
	if !ok || !f.pred(v) {
		var zero V
		return zero, false
	}
	return v, true
}

// Len returns the number of entries passing the predicate.
func (f *FilteredMap[K, V]) Len() int {
	n := 0
	f.Range(func(K, V) bool {
		n++
		return true
	})
	return n
}

// Range iterates over the entries passing the predicate.
func (f *FilteredMap[K, V]) Range(fn func(key K, value V) bool) {
	f.mu.Lock()
	if f.included != nil {
		keys := make([]K, 0, len(f.included))
		vals := make([]V, 0, len(f.included))
		for k, v := range f.included {
			keys = append(keys, k)
			vals = append(vals, v)
		}
		f.mu.Unlock()
		for i := range keys {
			if !fn(keys[i], vals[i]) {
				return
			}
		}
		return
	}
	f.mu.Unlock()

	f.src.Range(func(k K, v V) bool {
		if !f.pred(v) {
			return true
		}
		return fn(k, v)
	})
}

// Subscribe registers h, attaching to the source if this is the first subscriber.
func (f *FilteredMap[K, V]) Subscribe(h MapHandlers[K, V]) func() {
	f.mu.Lock()
	if f.included == nil {
		f.attachLocked()
	}
	f.mu.Unlock()

	unsub := f.emitter.subscribe(h)
	return func() {
		if n := unsub(); n == 0 {
			f.mu.Lock()
			f.detachLocked()
			f.mu.Unlock()
		}
	}
}

func (f *FilteredMap[K, V]) attachLocked() {
	f.included = make(map[K]V)
	f.src.Range(func(k K, v V) bool {
		if f.pred(v) {
			f.included[k] = v
		}
		return true
	})
	f.detach = f.src.Subscribe(MapHandlers[K, V]{
		OnAdd:    f.onAdd,
		OnUpdate: f.onUpdate,
		OnRemove: f.onRemove,
	})
}

func (f *FilteredMap[K, V]) detachLocked() {
	if f.detach != nil {
		f.detach()
		f.detach = nil
	}
	f.included = nil
}

func (f *FilteredMap[K, V]) onAdd(key K, value V) {
	if !f.pred(value) {
		return
	}
	f.mu.Lock()
	if f.included == nil {
		f.mu.Unlock()
		return
	}
	f.included[key] = value
	f.mu.Unlock()
	f.emitter.emitAdd(key, value)
}

func (f *FilteredMap[K, V]) onUpdate(key K, value V) {
	pass := f.pred(value)

	f.mu.Lock()
	if f.included == nil {
		f.mu.Unlock()
		return
	}
	_, was := f.included[key]
	if pass {
		f.included[key] = value
	} else {
		delete(f.included, key)
	}
	f.mu.Unlock()

	switch {
	case was && pass:
		f.emitter.emitUpdate(key, value)
	case was && !pass:
		f.emitter.emitRemove(key, value)
	case !was && pass:
		f.emitter.emitAdd(key, value)
	}
}

func (f *FilteredMap[K, V]) onRemove(key K, value V) {
	f.mu.Lock()
	if f.included == nil {
		f.mu.Unlock()
		return
	}
	_, was := f.included[key]
	delete(f.included, key)
	f.mu.Unlock()

	if was {
		f.emitter.emitRemove(key, value)
	}
}
