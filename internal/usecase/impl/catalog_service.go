package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxProductRating = 5

type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct adds a product to the catalog. Titles are unique.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &entity.Product{
		Title:         strings.TrimSpace(input.Title),
		Description:   input.Description,
		Price:         input.Price,
		Available:     input.Available,
		BestSeller:    input.BestSeller,
		Rating:        input.Rating,
		PurchaseCount: input.PurchaseCount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.String("title", product.Title))

	return product, nil
}

// ListProducts returns the whole catalog.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func validateProductInput(input *usecase.CreateProductInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrValidationFailed.WrapMessage("product input is required")
	case strings.TrimSpace(input.Title) == "":
		return domainerrors.ErrValidationFailed.WrapMessage("title is required")
	case input.Price.IsNegative():
		return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	case input.Rating < 0 || input.Rating > maxProductRating:
		return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 0 and 5")
	case input.PurchaseCount < 0:
		return domainerrors.ErrValidationFailed.WrapMessage("purchase count must not be negative")
	}

	return nil
}
