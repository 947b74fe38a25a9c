package postgres

import (
	"context"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// stageTransitionRepository implements the repository.StageTransitionRepository interface.
type stageTransitionRepository struct {
	db *gorm.DB
}

// NewStageTransitionRepository is the constructor for stageTransitionRepository.
func NewStageTransitionRepository(db *gorm.DB) repository.StageTransitionRepository {
	return &stageTransitionRepository{db: db}
}

// Create records a transition. A repeated event id yields ErrDuplicateTransition.
func (repo *stageTransitionRepository) Create(ctx context.Context, transition *entity.StageTransition) error {
	transitionM := fromStageTransitionDomain(transition)

	if err := repo.db.WithContext(ctx).Create(transitionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTransition
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record stage transition")
	}

	transition.ID = transitionM.ID

	return nil
}

// FindByCustomer returns a customer's stage history, oldest first.
func (repo *stageTransitionRepository) FindByCustomer(ctx context.Context, customerID int64) ([]*entity.StageTransition, error) {
	var transitionModels []*model.StageTransitionModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("occurred_at ASC").
		Order("id ASC").
		Find(&transitionModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find stage history")
	}

	transitions := make([]*entity.StageTransition, len(transitionModels))
	for i, m := range transitionModels {
		transitions[i] = toStageTransitionDomain(m)
	}

	return transitions, nil
}
