package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"crm/config"
	"crm/internal/domain/entity"
	mockRepo "crm/internal/mocks/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogFixtures struct {
	cache  *catalogCache
	next   *mockRepo.MockProductRepository
	server *miniredis.Miniredis
}

func createTestCatalogCache(t *testing.T) catalogFixtures {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	next := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := NewCatalogCache(next, client, &config.CatalogCacheConfig{Enabled: true, TTL: time.Minute, KeyPrefix: "test:"}, logger)

	return catalogFixtures{cache: repo.(*catalogCache), next: next, server: server}
}

func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{ID: 1, Title: "A", Rating: 5, Price: decimal.RequireFromString("10.50"), Available: true},
		{ID: 2, Title: "B", Rating: 4, Price: decimal.RequireFromString("3.00"), Available: true},
	}
}

func TestCatalogCache_ReadThrough(t *testing.T) {
	fx := createTestCatalogCache(t)
	ctx := context.Background()

	fx.next.EXPECT().TopRated(ctx, true).Return(sampleProducts(), nil).Once()

	first, err := fx.cache.TopRated(ctx, true)
	require.NoError(t, err)
	second, err := fx.cache.TopRated(ctx, true)
	require.NoError(t, err)

	require.Len(t, second, 2)
	assert.Equal(t, first[0].Title, second[0].Title)
	assert.True(t, second[0].Price.Equal(decimal.RequireFromString("10.50")))
	assert.True(t, fx.server.Exists("test:top-rated:available"))
}

func TestCatalogCache_KeysSeparateQueries(t *testing.T) {
	fx := createTestCatalogCache(t)
	ctx := context.Background()

	fx.next.EXPECT().BestSellers(ctx, true).Return(sampleProducts()[:1], nil).Once()
	fx.next.EXPECT().BestSellers(ctx, false).Return(sampleProducts(), nil).Once()

	available, err := fx.cache.BestSellers(ctx, true)
	require.NoError(t, err)
	all, err := fx.cache.BestSellers(ctx, false)
	require.NoError(t, err)

	assert.Len(t, available, 1)
	assert.Len(t, all, 2)
}

func TestCatalogCache_CreateInvalidates(t *testing.T) {
	fx := createTestCatalogCache(t)
	ctx := context.Background()

	fx.next.EXPECT().All(ctx).Return(sampleProducts(), nil).Twice()
	fx.next.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()

	_, err := fx.cache.All(ctx)
	require.NoError(t, err)
	require.True(t, fx.server.Exists("test:all"))

	require.NoError(t, fx.cache.Create(ctx, &entity.Product{Title: "C"}))
	assert.False(t, fx.server.Exists("test:all"))

	_, err = fx.cache.All(ctx)
	require.NoError(t, err)
}

func TestCatalogCache_EntriesExpire(t *testing.T) {
	fx := createTestCatalogCache(t)
	ctx := context.Background()

	fx.next.EXPECT().All(ctx).Return(sampleProducts(), nil).Twice()

	_, err := fx.cache.All(ctx)
	require.NoError(t, err)

	fx.server.FastForward(2 * time.Minute)

	_, err = fx.cache.All(ctx)
	require.NoError(t, err)
}

func TestCatalogCache_FallsBackWhenRedisIsDown(t *testing.T) {
	fx := createTestCatalogCache(t)
	ctx := context.Background()
	fx.server.Close()

	fx.next.EXPECT().TopRated(ctx, false).Return(sampleProducts(), nil).Once()

	got, err := fx.cache.TopRated(ctx, false)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDecorateProductRepository_DisabledReturnsNext(t *testing.T) {
	next := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	got := DecorateProductRepository(CatalogParams{Next: next, Config: &config.Config{}, Logger: logger})

	assert.Same(t, next, got)
}
