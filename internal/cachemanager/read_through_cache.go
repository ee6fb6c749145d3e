package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache loads missing values with fn and remembers them for ttl.
// Errors are never cached.
type ReadThroughCache[V any] struct {
	cache CacheManager[V]
	fn    func(ctx context.Context, key string) (V, error)
	ttl   time.Duration
}

// NewReadThroughCache wraps cache with loader fn.
func NewReadThroughCache[V any](cache CacheManager[V], ttl time.Duration, fn func(ctx context.Context, key string) (V, error)) *ReadThroughCache[V] {
	return &ReadThroughCache[V]{cache: cache, fn: fn, ttl: ttl}
}

// Get returns the cached value for key, loading it on a miss.
func (r *ReadThroughCache[V]) Get(ctx context.Context, key string) (V, error) {
	if v, ok := r.cache.Get(ctx, key); ok {
		return v, nil
	}
	v, err := r.fn(ctx, key)
	if err != nil {
		return v, err
	}
	r.cache.Set(ctx, key, v, r.ttl)
	return v, nil
}

// Invalidate drops key so the next Get reloads it.
func (r *ReadThroughCache[V]) Invalidate(ctx context.Context, key string) {
	r.cache.Delete(ctx, key)
}
