package repository

import (
	"context"

	"crm/internal/domain/entity"
)

// ProductRepository is the catalog collaborator.
type ProductRepository interface {
	// Create persists a new product and assigns its id.
	Create(ctx context.Context, product *entity.Product) error

	// TopRated returns products by rating, then purchase count, both descending.
	TopRated(ctx context.Context, availableOnly bool) ([]*entity.Product, error)

	// BestSellers returns products flagged as best sellers, by rating descending.
	BestSellers(ctx context.Context, availableOnly bool) ([]*entity.Product, error)

	// All returns the full catalog with no ordering guarantee.
	All(ctx context.Context) ([]*entity.Product, error)
}
