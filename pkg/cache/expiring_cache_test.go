package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/geyuegui/RIDE/pkg/cache"
)

func TestExpiringCachePutGet(t *testing.T) {
	c, err := cache.NewExpiringCache(time.Minute)
	require.NoError(t, err)

	c.Put("key", "value")
	got, ok := c.Get("key")
	require.True(t, ok, "entry must be visible immediately after Put")
	require.Equal(t, "value", got)

	_, ok = c.Get("missing")
	require.False(t, ok)
}

func TestExpiringCacheExpiry(t *testing.T) {
	c, err := cache.NewExpiringCache(50 * time.Millisecond)
	require.NoError(t, err)

	c.Put("key", 1)
	_, ok := c.Get("key")
	require.True(t, ok)

	time.Sleep(200 * time.Millisecond)
	_, ok = c.Get("key")
	require.False(t, ok, "entry must expire after the TTL")
}

func TestExpiringCacheDelAndClear(t *testing.T) {
	c, err := cache.NewExpiringCache(time.Minute)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)

	c.Del("a")
	_, ok := c.Get("a")
	require.False(t, ok)
	_, ok = c.Get("b")
	require.True(t, ok)

	c.Clear()
	_, ok = c.Get("b")
	require.False(t, ok)
}

func TestExpiringCacheDefaultTTL(t *testing.T) {
	c, err := cache.NewExpiringCache(0)
	require.NoError(t, err)
	require.Equal(t, cache.DefaultTTL, c.TTL())
}
