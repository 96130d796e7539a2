package bootstrap

import (
	"context"
	"log/slog"

	"shop-api/internal/infra/cache"
	"shop-api/internal/pkg/config"
	"shop-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewCartCache,
	),
)

// NewCartCache wires the Redis-backed cart view cache, or a noop cache when
// no Redis address is configured.
func NewCartCache(lc fx.Lifecycle, cfg config.Config) queries.CartCache {
	if cfg.Redis.Addr == "" {
		slog.Info("cart cache disabled: no Redis address configured")
		return cache.NewNoopCartCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	slog.Info("cart cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
	return cache.NewRedisCartCache(client, cfg.Redis.CacheTTL)
}
