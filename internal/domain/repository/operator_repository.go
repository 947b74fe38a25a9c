package repository

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/errors"
)

// ErrOperatorNotFound is returned when no operator matches the lookup.
var ErrOperatorNotFound = errors.New("operator not found")

// OperatorRepository persists staff accounts.
type OperatorRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Operator, error)
	Create(ctx context.Context, operator *entity.Operator) error
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}
