package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// RecommendationUsecase returns products conditioned on a customer's stage.
type RecommendationUsecase interface {
	Recommend(ctx context.Context, customerID int64) ([]*entity.Product, error)
}
