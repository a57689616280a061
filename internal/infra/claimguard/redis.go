package claimguard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "foodshare:claimed:"

// RedisGuard shares tombstones across instances. Redis errors degrade to a
// miss so the database stays the source of truth.
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisGuard(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisGuard {
	return &RedisGuard{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (g *RedisGuard) IsClaimed(ctx context.Context, listingID uuid.UUID) bool {
	n, err := g.client.Exists(ctx, key(listingID)).Result()
	if err != nil {
		g.logger.Warn("claim guard lookup failed",
			slog.String("listing_id", listingID.String()),
			slog.String("error", err.Error()))
		return false
	}
	return n == 1
}

func (g *RedisGuard) MarkClaimed(ctx context.Context, listingID uuid.UUID) error {
	if err := g.client.Set(ctx, key(listingID), 1, g.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write claim tombstone: %w", err)
	}
	return nil
}

func key(listingID uuid.UUID) string {
	return keyPrefix + listingID.String()
}
