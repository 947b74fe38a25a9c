package repository

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/errors"
)

// ErrDuplicateTransition is returned when a transition with the same event id
// has already been recorded.
var ErrDuplicateTransition = errors.New("stage transition already recorded")

// StageTransitionRepository stores customer stage history.
type StageTransitionRepository interface {
	Create(ctx context.Context, transition *entity.StageTransition) error

	// FindByCustomer returns history in the order it occurred.
	FindByCustomer(ctx context.Context, customerID int64) ([]*entity.StageTransition, error)
}
