package memroom

import "sync"

// listeners is a set of change callbacks. notify never runs a callback while
// holding the lock.
type listeners struct {
	mu   sync.Mutex
	next int
	cbs  map[int]func()
}

func (l *listeners) add(cb func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cbs == nil {
		l.cbs = make(map[int]func())
	}
	id := l.next
	l.next++
	l.cbs[id] = cb
	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			delete(l.cbs, id)
		})
	}
}

func (l *listeners) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.cbs)
}

func (l *listeners) notify() {
	l.mu.Lock()
	cbs := make([]func(), 0, len(l.cbs))
	for i := 0; i < l.next; i++ {
		if cb, ok := l.cbs[i]; ok {
			cbs = append(cbs, cb)
		}
	}
	l.mu.Unlock()
	for _, cb := range cbs {
		cb()
	}
}
