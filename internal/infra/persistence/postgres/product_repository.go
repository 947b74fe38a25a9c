package postgres

import (
	"context"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product and writes the generated id back.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// TopRated returns products by rating, then purchase count, both descending.
func (repo *productRepository) TopRated(ctx context.Context, availableOnly bool) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx)
	if availableOnly {
		query = query.Where("available = ?", true)
	}

	return repo.find(query.
		Order("rating DESC").
		Order("purchase_count DESC").
		Order("id ASC"), "failed to list top rated products")
}

// BestSellers returns best-seller products by rating descending.
func (repo *productRepository) BestSellers(ctx context.Context, availableOnly bool) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Where("best_seller = ?", true)
	if availableOnly {
		query = query.Where("available = ?", true)
	}

	return repo.find(query.
		Order("rating DESC").
		Order("id ASC"), "failed to list best sellers")
}

// All returns the full catalog.
func (repo *productRepository) All(ctx context.Context) ([]*entity.Product, error) {
	return repo.find(repo.db.WithContext(ctx), "failed to list products")
}

func (repo *productRepository) find(query *gorm.DB, details string) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return toProductDomainList(productModels), nil
}
