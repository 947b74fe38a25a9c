package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"crm/config"
	"crm/internal/domain/entity"
	"crm/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultKeyPrefix = "crm:catalog:"

	keyTopRatedAvailable    = "top-rated:available"
	keyTopRatedAll          = "top-rated:all"
	keyBestSellersAvailable = "best-sellers:available"
	keyBestSellersAll       = "best-sellers:all"
	keyAll                  = "all"
)

// catalogKeys lists every cached query, so a write can drop them all.
var catalogKeys = []string{
	keyTopRatedAvailable,
	keyTopRatedAll,
	keyBestSellersAvailable,
	keyBestSellersAll,
	keyAll,
}

// CatalogParams holds dependencies for DecorateProductRepository, injected by Fx.
type CatalogParams struct {
	fx.In

	Next   repository.ProductRepository
	Client redis.UniversalClient `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// DecorateProductRepository wraps the product repository with a read-through cache.
// Without a Redis client the repository is returned unchanged.
func DecorateProductRepository(params CatalogParams) repository.ProductRepository {
	if params.Client == nil || params.Config.CatalogCache == nil || !params.Config.CatalogCache.Enabled {
		return params.Next
	}

	return NewCatalogCache(params.Next, params.Client, params.Config.CatalogCache, params.Logger)
}

// catalogCache caches product queries as JSON documents.
type catalogCache struct {
	next   repository.ProductRepository
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

// NewCatalogCache builds the caching decorator around next.
func NewCatalogCache(
	next repository.ProductRepository,
	client redis.UniversalClient,
	cfg *config.CatalogCacheConfig,
	logger *slog.Logger,
) repository.ProductRepository {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &catalogCache{
		next:   next,
		client: client,
		ttl:    cfg.TTL,
		prefix: prefix,
		logger: logger.With(slog.String("component", "catalog-cache")),
	}
}

// Create writes through and invalidates every cached query.
func (c *catalogCache) Create(ctx context.Context, product *entity.Product) error {
	if err := c.next.Create(ctx, product); err != nil {
		return err
	}

	keys := make([]string, len(catalogKeys))
	for i, key := range catalogKeys {
		keys[i] = c.prefix + key
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Failed to invalidate catalog cache", slog.Any("error", err))
	}

	return nil
}

func (c *catalogCache) TopRated(ctx context.Context, availableOnly bool) ([]*entity.Product, error) {
	key := keyTopRatedAll
	if availableOnly {
		key = keyTopRatedAvailable
	}

	return c.load(ctx, key, func() ([]*entity.Product, error) {
		return c.next.TopRated(ctx, availableOnly)
	})
}

func (c *catalogCache) BestSellers(ctx context.Context, availableOnly bool) ([]*entity.Product, error) {
	key := keyBestSellersAll
	if availableOnly {
		key = keyBestSellersAvailable
	}

	return c.load(ctx, key, func() ([]*entity.Product, error) {
		return c.next.BestSellers(ctx, availableOnly)
	})
}

func (c *catalogCache) All(ctx context.Context) ([]*entity.Product, error) {
	return c.load(ctx, keyAll, func() ([]*entity.Product, error) {
		return c.next.All(ctx)
	})
}

// load serves key from Redis, falling back to fetch on a miss or any cache error.
func (c *catalogCache) load(ctx context.Context, key string, fetch func() ([]*entity.Product, error)) ([]*entity.Product, error) {
	fullKey := c.prefix + key

	raw, err := c.client.Get(ctx, fullKey).Bytes()
	switch {
	case err == nil:
		var products []*entity.Product
		if jsonErr := json.Unmarshal(raw, &products); jsonErr == nil {
			return products, nil
		}
		c.logger.Warn("Dropping unreadable cache entry", slog.String("key", fullKey))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("Catalog cache read failed", slog.String("key", fullKey), slog.Any("error", err))
	}

	products, err := fetch()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(products)
	if err != nil {
		return products, nil
	}
	if err := c.client.Set(ctx, fullKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("Catalog cache write failed", slog.String("key", fullKey), slog.Any("error", err))
	}

	return products, nil
}
