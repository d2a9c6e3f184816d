package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"route-optimization-service/internal/domain"
)

func TestMemoryRoundTrip(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "12 galle road")
	require.NoError(t, err)
	require.False(t, ok)

	want := domain.Coordinate{Lat: 6.9271, Lon: 79.8612}
	require.NoError(t, c.Put(ctx, "12 galle road", want))

	got, ok, err := c.Get(ctx, "12 galle road")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)
	require.Equal(t, 1, c.Len())
}

func TestMemoryOverwrite(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "k", domain.Coordinate{Lat: 1, Lon: 1}))
	require.NoError(t, c.Put(ctx, "k", domain.Coordinate{Lat: 2, Lon: 2}))

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, domain.Coordinate{Lat: 2, Lon: 2}, got)
	require.Equal(t, 1, c.Len())
}

func newTestRedis(t *testing.T, ttl time.Duration) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedis(client, ttl), mr
}

func TestRedisRoundTrip(t *testing.T) {
	c, _ := newTestRedis(t, 0)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "12 galle road")
	require.NoError(t, err)
	require.False(t, ok)

	want := domain.Coordinate{Lat: 6.9271, Lon: 79.8612}
	require.NoError(t, c.Put(ctx, "12 galle road", want))

	got, ok, err := c.Get(ctx, "12 galle road")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestRedisEntriesExpire(t *testing.T) {
	c, mr := newTestRedis(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "k", domain.Coordinate{Lat: 1, Lon: 1}))

	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisCorruptEntry(t *testing.T) {
	c, mr := newTestRedis(t, 0)

	require.NoError(t, mr.Set(redisKeyPrefix+"bad", "{not json"))

	_, ok, err := c.Get(context.Background(), "bad")
	require.Error(t, err)
	require.False(t, ok)
}
