package repository

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/errors"
)

// ErrActivityAlreadyProcessed is returned by MarkProcessed when another writer
// flipped the flag first.
var ErrActivityAlreadyProcessed = errors.New("activity already processed")

// ActivityRepository is the persisted activity queue.
type ActivityRepository interface {
	// Create persists a new activity and assigns its id.
	Create(ctx context.Context, activity *entity.Activity) error

	// FindUnprocessed returns pending activities ordered by creation time, then id.
	// A limit of zero or less returns every pending activity.
	FindUnprocessed(ctx context.Context, limit int) ([]*entity.Activity, error)

	// MarkProcessed flips the processed flag. It only touches rows that are still
	// unprocessed and returns ErrActivityAlreadyProcessed otherwise.
	MarkProcessed(ctx context.Context, id int64) error

	// FindByCustomer returns a customer's activities, newest first.
	FindByCustomer(ctx context.Context, customerID int64) ([]*entity.Activity, error)
}
