package observable

// Derived views hold no state and own nothing: each Subscribe call subscribes
// straight through to the source, and the returned unsubscribe releases it.

type mapped[S, T any] struct {
	src Readable[S]
	fn  func(S) T
}

// Map projects src through fn.
func Map[S, T any](src Readable[S], fn func(S) T) Readable[T] {
	return mapped[S, T]{src: src, fn: fn}
}

func (m mapped[S, T]) Get() T { return m.fn(m.src.Get()) }

func (m mapped[S, T]) Subscribe(cb func(T)) func() {
	return m.src.Subscribe(func(s S) { cb(m.fn(s)) })
}

type filtered[T any] struct {
	src  Readable[T]
	pred func(T) bool
}

// Filter forwards only the values of src that satisfy pred.
// Get returns the zero value while the current source value fails pred.
func Filter[T any](src Readable[T], pred func(T) bool) Readable[T] {
	return filtered[T]{src: src, pred: pred}
}

func (f filtered[T]) Get() T {
	v := f.src.Get()
	if f.pred(v) {
		return v
	}
	var zero T
	return zero
}

func (f filtered[T]) Subscribe(cb func(T)) func() {
	return f.src.Subscribe(func(v T) {
		if f.pred(v) {
			cb(v)
		}
	})
}
