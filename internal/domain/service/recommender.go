package service

import (
	"context"

	"crm/internal/domain/entity"
)

// ActiveStageRecommender produces recommendations for customers in the ACTIVE
// stage. It is the extension point for behavioural recommendation.
type ActiveStageRecommender interface {
	RecommendForActive(ctx context.Context, customer *entity.Customer) ([]*entity.Product, error)
}
