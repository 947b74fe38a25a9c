package postgres

import (
	"context"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/errors"
	"crm/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// operatorRepository implements the repository.OperatorRepository interface.
type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository is the constructor for operatorRepository.
func NewOperatorRepository(db *gorm.DB) repository.OperatorRepository {
	return &operatorRepository{db: db}
}

// FindByEmail retrieves a single operator by email address.
func (repo *operatorRepository) FindByEmail(ctx context.Context, email string) (*entity.Operator, error) {
	var operatorM model.OperatorModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&operatorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOperatorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find operator by email")
	}

	return toOperatorDomain(&operatorM), nil
}

// Create persists a new operator. An id is generated when none is set.
func (repo *operatorRepository) Create(ctx context.Context, operator *entity.Operator) error {
	if operator.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate operator id")
		}
		operator.ID = id
	}
	operatorM := fromOperatorDomain(operator)

	if err := repo.db.WithContext(ctx).Create(operatorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOperatorAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create operator")
	}

	operator.CreatedAt = operatorM.CreatedAt
	operator.UpdatedAt = operatorM.UpdatedAt

	return nil
}

// CountByRole counts operators holding a role.
func (repo *operatorRepository) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OperatorModel{}).
		Where("role = ?", role.String()).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count operators")
	}

	return count, nil
}
