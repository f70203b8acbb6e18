package cache

import (
	"context"
	"testing"

	"github.com/goldledger/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestIdempotencyStoreFactory_CreateStore(t *testing.T) {
	ctx := context.Background()
	unreachable := config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1}

	t.Run("redis disabled uses memory", func(t *testing.T) {
		store, err := NewIdempotencyStoreFactory(config.RedisConfig{}).CreateStore(ctx)
		require.NoError(t, err)
		defer store.Close()

		assert.IsType(t, &InMemoryIdempotencyStore{}, store)
	})

	t.Run("falls back when redis is down", func(t *testing.T) {
		core, recorded := observer.New(zapcore.WarnLevel)

		store, err := NewIdempotencyStoreFactory(unreachable, WithLogger(zap.New(core))).CreateStore(ctx)
		require.NoError(t, err)
		defer store.Close()

		assert.IsType(t, &InMemoryIdempotencyStore{}, store)
		assert.Equal(t, 1, recorded.Len())
	})

	t.Run("fails without fallback", func(t *testing.T) {
		store, err := NewIdempotencyStoreFactory(unreachable, WithInMemoryFallback(false)).CreateStore(ctx)

		assert.Nil(t, store)
		assert.ErrorContains(t, err, "redis required for idempotency")
	})
}
