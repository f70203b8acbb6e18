package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestStore(t *testing.T) (*InMemoryIdempotencyStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)}
	store := newInMemoryIdempotencyStore(time.Hour, clock.Now)
	t.Cleanup(func() { _ = store.Close() })
	return store, clock
}

func TestInMemoryIdempotencyStore_Reserve(t *testing.T) {
	ctx := context.Background()

	t.Run("first reservation wins", func(t *testing.T) {
		store, _ := newTestStore(t)

		ok, err := store.Reserve(ctx, "POST /transactions:abc", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Reserve(ctx, "POST /transactions:abc", time.Hour)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("expired key can be reserved again", func(t *testing.T) {
		store, clock := newTestStore(t)

		ok, _ := store.Reserve(ctx, "k", time.Minute)
		require.True(t, ok)

		clock.Advance(time.Minute)

		ok, err := store.Reserve(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("cancelled context", func(t *testing.T) {
		store, _ := newTestStore(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Reserve(cctx, "k", time.Minute)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("concurrent reservations have one winner", func(t *testing.T) {
		store, _ := newTestStore(t)

		var wins atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if ok, _ := store.Reserve(ctx, "same", time.Hour); ok {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), wins.Load())
	})
}

func TestInMemoryIdempotencyStore_ExistsAndRelease(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore(t)

	exists, err := store.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)

	_, _ = store.Reserve(ctx, "k", time.Minute)
	exists, _ = store.Exists(ctx, "k")
	assert.True(t, exists)

	require.NoError(t, store.Release(ctx, "k"))
	exists, _ = store.Exists(ctx, "k")
	assert.False(t, exists)

	_, _ = store.Reserve(ctx, "k", time.Minute)
	clock.Advance(2 * time.Minute)
	exists, _ = store.Exists(ctx, "k")
	assert.False(t, exists)
}

func TestInMemoryIdempotencyStore_Sweep(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore(t)

	_, _ = store.Reserve(ctx, "short", time.Minute)
	_, _ = store.Reserve(ctx, "long", time.Hour)
	require.Equal(t, 2, store.Size())

	clock.Advance(10 * time.Minute)
	store.sweep()

	assert.Equal(t, 1, store.Size())
	exists, _ := store.Exists(ctx, "long")
	assert.True(t, exists)
}

func TestInMemoryIdempotencyStore_CloseTwice(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
