// Package arbiter selects a single winner from a dynamic keyed collection.
//
// PickLowest keeps the entry with the lowest key among the visible entries of
// a collection and republishes it as an observable value. Every insert, update
// or removal is processed synchronously on the goroutine that mutated the
// collection; there is no batching. Mutations racing on other goroutines are
// coalesced into a republish of the latest pick.
package arbiter

import (
	"cmp"
	"sync"

	"github.com/samber/lo"

	"github.com/zjrosen/parlor/internal/observable"
)

// Picker publishes the value with the lowest key in its source collection.
// The zero value of V stands for "nothing picked".
//
// Keys are unique in the source, so the minimum needs no tie-break. The
// working set is rescanned only when the current winner leaves; the number of
// concurrent candidates (calls in a room) is expected to stay small.
//
// Only one goroutine publishes at a time. A change made while another
// goroutine is publishing marks the pick dirty and the active publisher
// republishes before it returns, so the last published value always matches
// Key once the source is quiet.
type Picker[K cmp.Ordered, V any] struct {
	mu      sync.Mutex
	working map[K]V
	key     K
	picked  bool

	// touched records keys seen through events while the initial contents
	// are read, so stale snapshot entries do not override them.
	touched map[K]struct{}

	dirty      bool
	publishing bool

	out         *observable.Value[V]
	unsubscribe func()
}

// PickLowest subscribes to src and starts arbitrating immediately.
// Dispose releases the subscription.
func PickLowest[K cmp.Ordered, V any](src observable.Collection[K, V]) *Picker[K, V] {
	p := &Picker[K, V]{
		working: make(map[K]V),
		touched: make(map[K]struct{}),
		// Every pick is republished, including an update of the current winner,
		// so observers decide for themselves whether the identity changed.
		out: observable.NewValueFunc[V](lo.Empty[V](), nil),
	}

	unsub := src.Subscribe(observable.MapHandlers[K, V]{
		OnAdd:    p.onAdd,
		OnUpdate: p.onUpdate,
		OnRemove: p.onRemove,
	})

	var seed []lo.Entry[K, V]
	src.Range(func(k K, v V) bool {
		seed = append(seed, lo.Entry[K, V]{Key: k, Value: v})
		return true
	})

	p.mu.Lock()
	p.unsubscribe = unsub
	for _, e := range seed {
		if _, ok := p.touched[e.Key]; !ok {
			p.working[e.Key] = e.Value
		}
	}
	p.touched = nil
	p.repickLocked()
	p.dirty = p.dirty || p.picked
	p.mu.Unlock()

	p.flush()
	return p
}

// Get returns the picked value, or the zero value when nothing is picked.
func (p *Picker[K, V]) Get() V { return p.out.Get() }

// Subscribe registers cb for every change of the pick.
func (p *Picker[K, V]) Subscribe(cb func(V)) func() { return p.out.Subscribe(cb) }

// Key returns the key of the picked entry.
func (p *Picker[K, V]) Key() (K, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.key, p.picked
}

// Dispose detaches the picker from its source. Calling it twice is harmless.
func (p *Picker[K, V]) Dispose() {
	p.mu.Lock()
	unsub := p.unsubscribe
	p.unsubscribe = nil
	p.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

func (p *Picker[K, V]) touchLocked(key K) {
	if p.touched != nil {
		p.touched[key] = struct{}{}
	}
}

func (p *Picker[K, V]) onAdd(key K, value V) {
	p.mu.Lock()
	p.touchLocked(key)
	p.working[key] = value
	if !p.picked || key < p.key {
		p.key, p.picked = key, true
		p.dirty = true
	}
	p.mu.Unlock()

	p.flush()
}

func (p *Picker[K, V]) onUpdate(key K, value V) {
	p.mu.Lock()
	if _, ok := p.working[key]; !ok {
		p.mu.Unlock()
		p.onAdd(key, value)
		return
	}
	p.touchLocked(key)
	p.working[key] = value
	if p.picked && p.key == key {
		p.dirty = true
	}
	p.mu.Unlock()

	p.flush()
}

func (p *Picker[K, V]) onRemove(key K, _ V) {
	p.mu.Lock()
	p.touchLocked(key)
	if _, ok := p.working[key]; !ok {
		p.mu.Unlock()
		return
	}
	delete(p.working, key)
	if p.picked && p.key == key {
		p.repickLocked()
		p.dirty = true
	}
	p.mu.Unlock()

	p.flush()
}

// repickLocked rescans the working set for the lowest key.
func (p *Picker[K, V]) repickLocked() {
	if len(p.working) == 0 {
		var zeroKey K
		p.key, p.picked = zeroKey, false
		return
	}
	p.key = lo.Min(lo.Keys(p.working))
	p.picked = true
}

// flush publishes the current pick until no change is pending.
func (p *Picker[K, V]) flush() {
	p.mu.Lock()
	if p.publishing {
		p.mu.Unlock()
		return
	}
	p.publishing = true
	for p.dirty {
		p.dirty = false
		var next V
		if p.picked {
			next = p.working[p.key]
		}
		p.mu.Unlock()
		p.out.Set(next)
		p.mu.Lock()
	}
	p.publishing = false
	p.mu.Unlock()
}
