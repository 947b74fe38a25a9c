package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// ActivityUsecase accepts customer activities into the pending queue.
type ActivityUsecase interface {
	// CreateActivity records one unprocessed activity. Repeated calls record repeated activities.
	CreateActivity(ctx context.Context, customerID int64, activityType string) (*entity.Activity, error)
}
