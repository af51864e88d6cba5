package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylebot-ai/support-engine/internal/config"
)

func TestMemoryClientSetGet(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient(0)

	require.NoError(t, client.Set(ctx, "k", []byte("v"), 0))

	got, err := client.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryClientMiss(t *testing.T) {
	client := NewMemoryClient(0)

	_, err := client.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClientTTLExpiry(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient(0)

	require.NoError(t, client.Set(ctx, "k", []byte("v"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := client.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClientDelete(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient(0)

	require.NoError(t, client.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, client.Delete(ctx, "k"))

	_, err := client.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClientBounded(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient(2)

	require.NoError(t, client.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, client.Set(ctx, "b", []byte("2"), 0))
	require.NoError(t, client.Set(ctx, "c", []byte("3"), 0))

	hits := 0
	for _, k := range []string{"a", "b", "c"} {
		if _, err := client.Get(ctx, k); err == nil {
			hits++
		}
	}
	assert.Equal(t, 2, hits, "an entry is evicted to stay within the bound")
}

func TestMemoryClientEvictsExpiredFirst(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient(2)

	require.NoError(t, client.Set(ctx, "stale", []byte("1"), time.Millisecond))
	require.NoError(t, client.Set(ctx, "fresh", []byte("2"), 0))
	time.Sleep(5 * time.Millisecond)

	require.NoError(t, client.Set(ctx, "new", []byte("3"), 0))

	_, err := client.Get(ctx, "fresh")
	assert.NoError(t, err, "the expired entry makes room, live entries survive")
	_, err = client.Get(ctx, "new")
	assert.NoError(t, err)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "support:session:abc", Key("session", "abc"))
}

func TestNewMemoryDriver(t *testing.T) {
	client, err := New(config.CacheConfig{Driver: "memory", MaxEntries: 10})
	require.NoError(t, err)
	assert.NoError(t, client.Ping(context.Background()))
	assert.NoError(t, client.Close())
}

func TestNewUnknownDriver(t *testing.T) {
	_, err := New(config.CacheConfig{Driver: "memcached"})
	assert.Error(t, err)
}
