package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testValue struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// newMemCache returns a Cache in pure in-memory mode with a controllable clock.
func newMemCache(ttl time.Duration) (*Cache, *time.Time) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	c := New(nil, "test", ttl)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestCache_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newMemCache(time.Minute)

	require.NoError(t, c.Set(ctx, "k", testValue{Name: "goa", Count: 3}, 0))

	var got testValue
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, testValue{Name: "goa", Count: 3}, got)
}

func TestCache_Miss(t *testing.T) {
	ctx := context.Background()
	c, _ := newMemCache(time.Minute)

	var got testValue
	found, err := c.Get(ctx, "absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	c, now := newMemCache(time.Minute)

	require.NoError(t, c.Set(ctx, "k", testValue{Name: "x"}, 5*time.Minute))

	*now = now.Add(4 * time.Minute)
	var got testValue
	found, _ := c.Get(ctx, "k", &got)
	assert.True(t, found)

	*now = now.Add(2 * time.Minute)
	found, _ = c.Get(ctx, "k", &got)
	assert.False(t, found, "entry should expire after its TTL")
}

func TestCache_DefaultTTL(t *testing.T) {
	ctx := context.Background()
	c, now := newMemCache(time.Minute)

	require.NoError(t, c.Set(ctx, "k", "v", 0))

	*now = now.Add(2 * time.Minute)
	var got string
	found, _ := c.Get(ctx, "k", &got)
	assert.False(t, found)
}

func TestCache_Delete(t *testing.T) {
	ctx := context.Background()
	c, _ := newMemCache(time.Minute)

	require.NoError(t, c.Set(ctx, "k", "v", 0))
	c.Delete(ctx, "k")

	var got string
	found, _ := c.Get(ctx, "k", &got)
	assert.False(t, found)
}

func TestCache_NamespaceIsolation(t *testing.T) {
	ctx := context.Background()
	a := New(nil, "alpha", time.Minute)
	b := New(nil, "beta", time.Minute)

	require.NoError(t, a.Set(ctx, "k", "v", 0))

	var got string
	found, _ := b.Get(ctx, "k", &got)
	assert.False(t, found, "namespaces must not collide")
}
