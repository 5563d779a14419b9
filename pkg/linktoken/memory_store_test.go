package linktoken_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	t.Run("get returns stored value before expiry", func(t *testing.T) {
		clock := newFakeClock()
		store := newMemoryStore(clock)

		require.NoError(t, store.Set(t.Context(), "k", "v", time.Minute))

		val, found, err := store.Get(t.Context(), "k")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "v", val)
	})

	t.Run("get reports absent key", func(t *testing.T) {
		store := newMemoryStore(newFakeClock())

		_, found, err := store.Get(t.Context(), "missing")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("expired entry reads as absent", func(t *testing.T) {
		clock := newFakeClock()
		store := newMemoryStore(clock)

		require.NoError(t, store.Set(t.Context(), "k", "v", time.Minute))
		clock.Advance(time.Minute + time.Second)

		_, found, err := store.Get(t.Context(), "k")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set overwrites value and ttl", func(t *testing.T) {
		clock := newFakeClock()
		store := newMemoryStore(clock)

		require.NoError(t, store.Set(t.Context(), "k", "old", time.Minute))
		clock.Advance(30 * time.Second)
		require.NoError(t, store.Set(t.Context(), "k", "new", time.Minute))

		ttl, err := store.TTL(t.Context(), "k")
		require.NoError(t, err)
		assert.Equal(t, time.Minute, ttl)

		val, found, err := store.Get(t.Context(), "k")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "new", val)
	})

	t.Run("setnx writes only when absent", func(t *testing.T) {
		store := newMemoryStore(newFakeClock())

		created, err := store.SetNX(t.Context(), "k", "first", time.Minute)
		require.NoError(t, err)
		assert.True(t, created)

		created, err = store.SetNX(t.Context(), "k", "second", time.Minute)
		require.NoError(t, err)
		assert.False(t, created)

		val, _, err := store.Get(t.Context(), "k")
		require.NoError(t, err)
		assert.Equal(t, "first", val)
	})

	t.Run("setnx treats expired entry as absent", func(t *testing.T) {
		clock := newFakeClock()
		store := newMemoryStore(clock)

		_, err := store.SetNX(t.Context(), "k", "first", time.Minute)
		require.NoError(t, err)
		clock.Advance(2 * time.Minute)

		created, err := store.SetNX(t.Context(), "k", "second", time.Minute)
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("ttl follows redis conventions", func(t *testing.T) {
		clock := newFakeClock()
		store := newMemoryStore(clock)

		ttl, err := store.TTL(t.Context(), "missing")
		require.NoError(t, err)
		assert.Equal(t, time.Duration(-2), ttl)

		require.NoError(t, store.Set(t.Context(), "forever", "v", 0))
		ttl, err = store.TTL(t.Context(), "forever")
		require.NoError(t, err)
		assert.Equal(t, time.Duration(-1), ttl)

		require.NoError(t, store.Set(t.Context(), "k", "v", time.Hour))
		clock.Advance(15 * time.Minute)
		ttl, err = store.TTL(t.Context(), "k")
		require.NoError(t, err)
		assert.Equal(t, 45*time.Minute, ttl)
	})

	t.Run("live always succeeds", func(t *testing.T) {
		store := newMemoryStore(newFakeClock())
		assert.NoError(t, store.Live(t.Context()))
	})
}
