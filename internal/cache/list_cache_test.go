package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newCache(t *testing.T) (*ListCache[item], *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewListCache[item](client, "test:items", time.Minute, zap.NewNop()), srv
}

func TestListCache_RoundTrip(t *testing.T) {
	c, srv := newCache(t)
	ctx := context.Background()

	_, ok := c.Get(ctx)
	assert.False(t, ok)

	c.Set(ctx, c.Generation(ctx), []item{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}})
	got, ok := c.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, []item{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}, got)

	assert.Equal(t, time.Minute, srv.TTL("test:items"))
}

func TestListCache_EmptyListingNotCached(t *testing.T) {
	c, srv := newCache(t)

	c.Set(context.Background(), 0, nil)
	c.Set(context.Background(), 0, []item{})

	assert.False(t, srv.Exists("test:items"))
}

func TestListCache_Invalidate(t *testing.T) {
	c, srv := newCache(t)
	ctx := context.Background()

	c.Set(ctx, c.Generation(ctx), []item{{ID: "1"}})
	require.NoError(t, c.Invalidate(ctx))

	assert.False(t, srv.Exists("test:items"))
	_, ok := c.Get(ctx)
	assert.False(t, ok)
}

func TestListCache_Expires(t *testing.T) {
	c, srv := newCache(t)
	ctx := context.Background()

	c.Set(ctx, c.Generation(ctx), []item{{ID: "1"}})
	srv.FastForward(2 * time.Minute)

	_, ok := c.Get(ctx)
	assert.False(t, ok)
}

func TestListCache_FailsSafeWhenRedisDown(t *testing.T) {
	c, srv := newCache(t)
	ctx := context.Background()
	srv.Close()

	c.Set(ctx, c.Generation(ctx), []item{{ID: "1"}})
	_, ok := c.Get(ctx)
	assert.False(t, ok)
	assert.NoError(t, c.Invalidate(ctx))
}

func TestListCache_CorruptEntryIsMiss(t *testing.T) {
	c, srv := newCache(t)
	require.NoError(t, srv.Set("test:items", "{not json"))

	_, ok := c.Get(context.Background())
	assert.False(t, ok)
}

func TestListCache_DisabledWithoutClient(t *testing.T) {
	c := NewListCache[item](nil, "test:items", time.Minute, zap.NewNop())
	ctx := context.Background()

	c.Set(ctx, c.Generation(ctx), []item{{ID: "1"}})
	_, ok := c.Get(ctx)
	assert.False(t, ok)
	assert.NoError(t, c.Invalidate(ctx))
}

func TestListCache_StaleListingNotCached(t *testing.T) {
	c, srv := newCache(t)
	ctx := context.Background()

	gen := c.Generation(ctx)
	assert.Zero(t, gen)
	// a write lands between reading the store and caching the result
	require.NoError(t, c.Invalidate(ctx))
	c.Set(ctx, gen, []item{{ID: "stale"}})

	assert.False(t, srv.Exists("test:items"))

	c.Set(ctx, c.Generation(ctx), []item{{ID: "fresh"}})
	got, ok := c.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, []item{{ID: "fresh"}}, got)
}

func TestListCache_InvalidateAdvancesGeneration(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Invalidate(ctx))
	require.NoError(t, c.Invalidate(ctx))

	assert.Equal(t, int64(2), c.Generation(ctx))
}

func TestListCache_NoGenerationSkipsWrite(t *testing.T) {
	c, srv := newCache(t)

	c.Set(context.Background(), NoGeneration, []item{{ID: "1"}})

	assert.False(t, srv.Exists("test:items"))
}
