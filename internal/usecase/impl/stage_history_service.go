package impl

import (
	"context"
	"log/slog"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type stageHistoryService struct {
	transitionRepo repository.StageTransitionRepository
	logger         *slog.Logger
}

// StageHistoryServiceParams holds dependencies for StageHistoryService, injected by Fx.
type StageHistoryServiceParams struct {
	fx.In

	TransitionRepo repository.StageTransitionRepository
	Logger         *slog.Logger
}

// NewStageHistoryService is the constructor for stageHistoryService.
func NewStageHistoryService(params StageHistoryServiceParams) usecase.StageHistoryUsecase {
	return &stageHistoryService{
		transitionRepo: params.TransitionRepo,
		logger:         params.Logger,
	}
}

func (srv *stageHistoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordStageTransition appends the event to the customer's history, keyed by event id.
func (srv *stageHistoryService) RecordStageTransition(ctx context.Context, event *service.StageChangedEvent) error {
	if err := validateStageChangedEvent(event); err != nil {
		return err
	}

	transition := &entity.StageTransition{
		EventID:    event.EventID,
		CustomerID: event.CustomerID,
		FromStage:  event.FromStage,
		ToStage:    event.ToStage,
		ActivityID: event.ActivityID,
		Source:     event.Source,
		OccurredAt: event.OccurredAt,
	}

	err := srv.transitionRepo.Create(ctx, transition)
	switch {
	case errors.Is(err, repository.ErrDuplicateTransition):
		srv.log(ctx).Debug("Stage change already recorded", slog.String("eventID", event.EventID))

		return nil
	case err != nil:
		return mapCustomerLookupError(err, event.CustomerID)
	}

	srv.log(ctx).Info("Stage change recorded",
		slog.String("eventID", event.EventID),
		slog.Int64("customerID", event.CustomerID),
		slog.String("from", event.FromStage.String()),
		slog.String("to", event.ToStage.String()),
	)

	return nil
}

func validateStageChangedEvent(event *service.StageChangedEvent) error {
	switch {
	case event == nil:
		return domainerrors.ErrValidationFailed.WrapMessage("event is required")
	case event.EventID == "":
		return domainerrors.ErrValidationFailed.WrapMessage("event id is required")
	case event.CustomerID <= 0:
		return domainerrors.ErrValidationFailed.WrapMessage("customer id is required")
	case !event.FromStage.IsValid() || !event.ToStage.IsValid():
		return errors.Wrapf(domainerrors.ErrInvalidStage, "transition %s -> %s", event.FromStage, event.ToStage)
	case event.Source != entity.TransitionSourceReconciler && event.Source != entity.TransitionSourceOverride:
		return domainerrors.ErrValidationFailed.WrapMessage("unknown transition source " + string(event.Source))
	}

	return nil
}
