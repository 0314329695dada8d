package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"vinyl-record-house/internal/infra/cache"
	"vinyl-record-house/internal/pkg/config"
	"vinyl-record-house/internal/usecase/commands"
	"vinyl-record-house/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRecordCache,
		func(c RecordCache) queries.RecordCache { return c },
		func(c RecordCache) commands.RecordCacheInvalidator { return c },
	),
)

// RecordCache is the read-through side and the invalidation side of one store.
type RecordCache interface {
	queries.RecordCache
	commands.RecordCacheInvalidator
}

func NewRecordCache(lc fx.Lifecycle, cfg config.Config) RecordCache {
	if cfg.Redis.Address == "" {
		slog.Info("record cache disabled: REDIS_ADDRESS not set")
		return cache.NoopRecordCache{}
	}

	client := cache.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			// the cache is optional; an unreachable server only degrades reads
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("redis ping failed; record cache will miss", "address", cfg.Redis.Address, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return cache.NewRecordCache(client, cfg.Redis.RecordTTL)
}
