package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"foodshare/internal/infra/claimguard"
	"foodshare/internal/pkg/config"
	"foodshare/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var ClaimGuardModule = fx.Module("claimguard",
	fx.Provide(
		NewClaimGuard,
	),
)

func NewClaimGuard(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.ClaimGuard, error) {
	switch cfg.Claim.GuardBackend {
	case "none":
		return claimguard.Nop{}, nil
	case "memory":
		return claimguard.NewMemoryGuard(cfg.Claim.GuardCacheSize)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					// the guard degrades to misses, so an unreachable redis is not fatal
					logger.Warn("redis unreachable, claim guard will miss", "addr", cfg.Redis.Addr, "error", err)
				}
				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return claimguard.NewRedisGuard(client, cfg.Claim.GuardTTL, logger), nil
	default:
		return nil, fmt.Errorf("unknown CLAIM_GUARD_BACKEND %q", cfg.Claim.GuardBackend)
	}
}
