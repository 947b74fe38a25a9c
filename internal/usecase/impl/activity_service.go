package impl

import (
	"context"
	"log/slog"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type activityService struct {
	customerRepo repository.CustomerRepository
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		customerRepo: params.CustomerRepo,
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateActivity appends an unprocessed activity after checking the customer and the type.
// Nothing is persisted when either check fails.
func (srv *activityService) CreateActivity(ctx context.Context, customerID int64, activityType string) (*entity.Activity, error) {
	if _, err := srv.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, mapCustomerLookupError(err, customerID)
	}

	activity, err := entity.NewActivity(customerID, activityType)
	if err != nil {
		srv.log(ctx).Warn("Rejected activity", slog.Int64("customerID", customerID), slog.String("type", activityType))

		return nil, err
	}

	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		// The customer may have been removed between the lookup and the insert.
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, mapCustomerLookupError(err, customerID)
		}

		return nil, errors.Wrap(err, "failed to create activity")
	}

	srv.log(ctx).Debug("Activity recorded",
		slog.Int64("activityID", activity.ID),
		slog.Int64("customerID", customerID),
		slog.String("type", activity.Type.String()),
	)

	return activity, nil
}
