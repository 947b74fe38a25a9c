// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// CustomerUsecase defines the customer record operations exposed to the delivery layer.
type CustomerUsecase interface {
	// RegisterCustomer creates a customer at NEW together with its implicit "created" activity.
	RegisterCustomer(ctx context.Context, details entity.CustomerDetails) (*entity.Customer, error)

	// GetCustomer returns a customer or ErrCustomerNotFound.
	GetCustomer(ctx context.Context, customerID int64) (*entity.Customer, error)

	// UpdateStage overrides the current stage directly, bypassing the reconciler.
	UpdateStage(ctx context.Context, customerID int64, stage string) error

	// ListStageHistory returns recorded stage transitions, oldest first.
	ListStageHistory(ctx context.Context, customerID int64) ([]*entity.StageTransition, error)
}
