// Package cache provides a keyed cache with TTL expiry, a bounded number of
// entries and a loader that fills missing entries.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/m-mizutani/goerr/v2"
)

// Loader returns the value of key when it is not cached
type Loader[K comparable, V any] func(ctx context.Context, key K) (V, error)

type Cache[K comparable, V any] struct {
	lru    *expirable.LRU[K, V]
	loader Loader[K, V]
}

const (
	DefaultSize = 128
	DefaultTTL  = time.Hour
)

type config struct {
	size int
	ttl  time.Duration
}

type Option func(*config)

// WithSize sets the number of keys kept. The least recently used key is
// evicted first.
func WithSize(size int) Option {
	return func(c *config) {
		c.size = size
	}
}

func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.ttl = ttl
	}
}

func New[K comparable, V any](loader Loader[K, V], options ...Option) *Cache[K, V] {
	cfg := &config{
		size: DefaultSize,
		ttl:  DefaultTTL,
	}
	for _, opt := range options {
		opt(cfg)
	}

	return &Cache[K, V]{
		lru:    expirable.NewLRU[K, V](cfg.size, nil, cfg.ttl),
		loader: loader,
	}
}

// Get returns the cached value of key, calling the loader on a miss or after
// expiry. Loader errors are not cached.
func (x *Cache[K, V]) Get(ctx context.Context, key K) (V, error) {
	if v, ok := x.lru.Get(key); ok {
		return v, nil
	}

	v, err := x.loader(ctx, key)
	if err != nil {
		var zero V
		return zero, goerr.Wrap(err, "failed to load cache entry", goerr.V("key", key))
	}

	x.lru.Add(key, v)
	return v, nil
}

// Set replaces the value of key and restarts its TTL
func (x *Cache[K, V]) Set(key K, value V) {
	x.lru.Add(key, value)
}

// Peek returns the cached value without loading it
func (x *Cache[K, V]) Peek(key K) (V, bool) {
	return x.lru.Peek(key)
}

func (x *Cache[K, V]) Remove(key K) {
	x.lru.Remove(key)
}

func (x *Cache[K, V]) Len() int {
	return x.lru.Len()
}
