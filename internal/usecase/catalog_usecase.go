package usecase

import (
	"context"

	"crm/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateProductInput defines the data required to add a product to the catalog.
type CreateProductInput struct {
	Title         string
	Description   string
	Price         decimal.Decimal
	Available     bool
	BestSeller    bool
	Rating        int
	PurchaseCount int64
}

// CatalogUsecase manages the product catalog.
type CatalogUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
}
