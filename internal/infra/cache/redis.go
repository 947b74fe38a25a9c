// Package cache provides Redis-backed read-through caching for catalog queries.
package cache

import (
	"context"
	"log/slog"

	"crm/config"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Module wires the Redis client and decorates the root-scope ProductRepository.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRedisClient),
	fx.Decorate(DecorateProductRepository),
)

// RedisParams holds dependencies for NewRedisClient, injected by Fx.
type RedisParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRedisClient returns nil when the catalog cache is disabled or Redis is not configured.
func NewRedisClient(params RedisParams) (redis.UniversalClient, error) {
	cfg := params.Config
	if cfg.CatalogCache == nil || !cfg.CatalogCache.Enabled {
		return nil, nil
	}
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return nil, errors.New("catalog cache is enabled but redis.addr is empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// An unreachable Redis only costs cache misses.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis is not reachable, catalog reads will bypass the cache",
					slog.String("addr", cfg.Redis.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.Wrap(client.Close(), "close redis client")
		},
	})

	return client, nil
}
