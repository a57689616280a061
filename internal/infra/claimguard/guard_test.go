//go:build unit

package claimguard_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodshare/internal/infra/claimguard"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGuard(t *testing.T) {
	ctx := context.Background()

	t.Run("marked listings are claimed", func(t *testing.T) {
		g, err := claimguard.NewMemoryGuard(8)
		require.NoError(t, err)
		id := uuid.New()

		assert.False(t, g.IsClaimed(ctx, id))
		require.NoError(t, g.MarkClaimed(ctx, id))
		assert.True(t, g.IsClaimed(ctx, id))
		assert.False(t, g.IsClaimed(ctx, uuid.New()))
	})

	t.Run("evicts the oldest tombstone when full", func(t *testing.T) {
		g, err := claimguard.NewMemoryGuard(2)
		require.NoError(t, err)
		a, b, c := uuid.New(), uuid.New(), uuid.New()

		require.NoError(t, g.MarkClaimed(ctx, a))
		require.NoError(t, g.MarkClaimed(ctx, b))
		require.NoError(t, g.MarkClaimed(ctx, c))

		assert.Equal(t, 2, g.Len())
		assert.False(t, g.IsClaimed(ctx, a))
		assert.True(t, g.IsClaimed(ctx, c))
	})

	t.Run("rejects a non-positive size", func(t *testing.T) {
		_, err := claimguard.NewMemoryGuard(0)
		require.Error(t, err)
	})
}

func TestNop(t *testing.T) {
	var g claimguard.Guard = claimguard.Nop{}
	id := uuid.New()

	require.NoError(t, g.MarkClaimed(context.Background(), id))
	assert.False(t, g.IsClaimed(context.Background(), id))
}

func TestRedisGuard_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	g := claimguard.NewRedisGuard(client, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	id := uuid.New()

	assert.False(t, g.IsClaimed(context.Background(), id), "lookup errors degrade to a miss")
	assert.Error(t, g.MarkClaimed(context.Background(), id))
}
