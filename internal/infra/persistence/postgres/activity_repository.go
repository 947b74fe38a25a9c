package postgres

import (
	"context"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Create persists a new activity and writes the generated id back.
func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required activity information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt

	return nil
}

// FindUnprocessed returns pending activities in (created_at, id) order.
func (repo *activityRepository) FindUnprocessed(ctx context.Context, limit int) ([]*entity.Activity, error) {
	var activityModels []*model.ActivityModel

	query := repo.db.WithContext(ctx).
		Where("processed = ?", false).
		Order("created_at ASC").
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&activityModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find unprocessed activities")
	}

	return toActivityDomainList(activityModels), nil
}

// MarkProcessed flips the processed flag of a still-unprocessed activity.
func (repo *activityRepository) MarkProcessed(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("id = ? AND processed = ?", id, false).
		Updates(map[string]any{
			"processed":    true,
			"processed_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark activity processed")
	}

	if result.RowsAffected == 0 {
		return repository.ErrActivityAlreadyProcessed
	}

	return nil
}

// FindByCustomer returns a customer's activities, newest first.
func (repo *activityRepository) FindByCustomer(ctx context.Context, customerID int64) ([]*entity.Activity, error) {
	var activityModels []*model.ActivityModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&activityModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find customer activities")
	}

	return toActivityDomainList(activityModels), nil
}
