package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/utils/cache"
)

type countingLoader struct {
	calls map[string]int
}

func (x *countingLoader) load(_ context.Context, key string) (int, error) {
	x.calls[key]++
	return len(key) * 10, nil
}

func newCountingLoader() *countingLoader {
	return &countingLoader{calls: map[string]int{}}
}

func TestCacheGet(t *testing.T) {
	ctx := context.Background()

	t.Run("second get within TTL does not call loader", func(t *testing.T) {
		loader := newCountingLoader()
		c := cache.New(loader.load)

		v1 := gt.R1(c.Get(ctx, "abc")).NoError(t)
		v2 := gt.R1(c.Get(ctx, "abc")).NoError(t)

		gt.V(t, v1).Equal(30)
		gt.V(t, v2).Equal(30)
		gt.V(t, loader.calls["abc"]).Equal(1)
	})

	t.Run("expired entry is loaded again", func(t *testing.T) {
		loader := newCountingLoader()
		c := cache.New(loader.load, cache.WithTTL(20*time.Millisecond))

		gt.R1(c.Get(ctx, "abc")).NoError(t)
		time.Sleep(60 * time.Millisecond)
		gt.R1(c.Get(ctx, "abc")).NoError(t)

		gt.V(t, loader.calls["abc"]).Equal(2)
	})

	t.Run("least recently used key is evicted at capacity", func(t *testing.T) {
		loader := newCountingLoader()
		c := cache.New(loader.load, cache.WithSize(2))

		gt.R1(c.Get(ctx, "a")).NoError(t)
		gt.R1(c.Get(ctx, "b")).NoError(t)
		// touch "a" so that "b" becomes the oldest
		gt.R1(c.Get(ctx, "a")).NoError(t)
		gt.R1(c.Get(ctx, "c")).NoError(t)

		gt.V(t, c.Len()).Equal(2)
		_, ok := c.Peek("b")
		gt.False(t, ok)

		gt.R1(c.Get(ctx, "a")).NoError(t)
		gt.V(t, loader.calls["a"]).Equal(1)
	})

	t.Run("loader error is returned and not cached", func(t *testing.T) {
		calls := 0
		c := cache.New(func(_ context.Context, key string) (int, error) {
			calls++
			if calls == 1 {
				return 0, errors.New("temporary")
			}
			return 1, nil
		})

		_, err := c.Get(ctx, "k")
		gt.Error(t, err)

		v := gt.R1(c.Get(ctx, "k")).NoError(t)
		gt.V(t, v).Equal(1)
		gt.V(t, calls).Equal(2)
	})
}

func TestCacheSet(t *testing.T) {
	loader := newCountingLoader()
	c := cache.New(loader.load)

	c.Set("abc", 7)
	v := gt.R1(c.Get(context.Background(), "abc")).NoError(t)
	gt.V(t, v).Equal(7)
	gt.V(t, loader.calls["abc"]).Equal(0)

	c.Remove("abc")
	_, ok := c.Peek("abc")
	gt.False(t, ok)
}
