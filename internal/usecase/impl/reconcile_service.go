package impl

import (
	"context"
	"log/slog"
	"time"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reconcileService implements the ReconcileUsecase interface.
type reconcileService struct {
	txManager    repository.TransactionManager
	activityRepo repository.ActivityRepository
	publisher    service.EventPublisher
	batchSize    int
	now          func() time.Time
	logger       *slog.Logger
}

// ReconcileServiceParams holds dependencies for ReconcileService, injected by Fx.
type ReconcileServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ActivityRepo repository.ActivityRepository
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReconcileService is the constructor for reconcileService.
func NewReconcileService(params ReconcileServiceParams) usecase.ReconcileUsecase {
	batchSize := 0
	if params.Config != nil && params.Config.Reconciler != nil {
		batchSize = params.Config.Reconciler.BatchSize
	}

	return &reconcileService{
		txManager:    params.TxManager,
		activityRepo: params.ActivityRepo,
		publisher:    params.Publisher,
		batchSize:    batchSize,
		now:          func() time.Time { return time.Now().UTC() },
		logger:       params.Logger,
	}
}

func (srv *reconcileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// activityOutcome is the result of applying one pending activity.
type activityOutcome int

const (
	outcomeProcessed activityOutcome = iota
	outcomeTransitioned
	outcomeSkipped
)

// RunCycle drains the activities that are pending when it starts, oldest first.
// Each activity is applied in its own transaction so one failure never blocks the rest.
func (srv *reconcileService) RunCycle(ctx context.Context) (*usecase.CycleReport, error) {
	report := &usecase.CycleReport{StartedAt: srv.now()}
	cycleID := uuid.NewString()
	ctx = deliverycontext.WithCycle(ctx, cycleID, srv.log(ctx))
	logger := srv.log(ctx)

	defer func() {
		report.Duration = srv.now().Sub(report.StartedAt)
	}()

	pending, err := srv.activityRepo.FindUnprocessed(ctx, srv.batchSize)
	if err != nil {
		logger.Error("Failed to read pending activities", slog.Any("error", err))

		return report, errors.Wrap(err, "failed to read pending activities")
	}
	report.Fetched = len(pending)

	for _, activity := range pending {
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Warn("Cycle interrupted", slog.Int("remaining", report.Fetched-report.Processed-report.Skipped-report.Failed()))

			return report, errors.Wrap(ctxErr, "reconcile cycle interrupted")
		}

		event, outcome, err := srv.applyActivity(ctx, activity)
		if err != nil {
			logger.Warn("Failed to apply activity",
				slog.Int64("activityID", activity.ID),
				slog.Int64("customerID", activity.CustomerID),
				slog.String("type", activity.Type.String()),
				slog.Any("error", err),
			)
			report.Failures = append(report.Failures, usecase.ActivityFailure{
				ActivityID: activity.ID,
				CustomerID: activity.CustomerID,
				Type:       activity.Type,
				Err:        err,
			})

			continue
		}

		switch outcome {
		case outcomeSkipped:
			report.Skipped++

			continue
		case outcomeTransitioned:
			report.Transitioned++
		case outcomeProcessed:
		}
		report.Processed++

		if event != nil {
			if err := srv.publisher.PublishStageChanged(ctx, event); err != nil {
				report.PublishFailures++
				logger.Warn("Failed to publish stage change", slog.String("eventID", event.EventID), slog.Any("error", err))
			}
		}
	}

	logger.Info("Reconcile cycle finished",
		slog.Int("fetched", report.Fetched),
		slog.Int("processed", report.Processed),
		slog.Int("transitioned", report.Transitioned),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed()),
	)

	return report, nil
}

// applyActivity marks the activity processed and moves the customer's stage in one
// transaction. It returns the event to publish once that transaction has committed.
func (srv *reconcileService) applyActivity(ctx context.Context, activity *entity.Activity) (*service.StageChangedEvent, activityOutcome, error) {
	activityType, err := entity.ParseActivityType(activity.Type.String())
	if err != nil {
		return nil, outcomeProcessed, err
	}

	var event *service.StageChangedEvent
	outcome := outcomeProcessed

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ActivityRepo().MarkProcessed(ctx, activity.ID); err != nil {
			return err
		}

		target, ok := entity.StageForActivity(activityType)
		if !ok {
			return nil
		}

		customerRepo := repoFactory.CustomerRepo()
		customer, err := customerRepo.FindByID(ctx, activity.CustomerID)
		if err != nil {
			return mapCustomerLookupError(err, activity.CustomerID)
		}

		previous := customer.MoveTo(target)
		if previous == target {
			return nil
		}

		if err := customerRepo.UpdateStage(ctx, customer.ID, target); err != nil {
			return mapCustomerLookupError(err, activity.CustomerID)
		}

		activityID := activity.ID
		event = &service.StageChangedEvent{
			EventID:    uuid.NewString(),
			RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
			CustomerID: customer.ID,
			FromStage:  previous,
			ToStage:    target,
			ActivityID: &activityID,
			Source:     entity.TransitionSourceReconciler,
			OccurredAt: srv.now(),
		}
		outcome = outcomeTransitioned

		return nil
	})
	if errors.Is(err, repository.ErrActivityAlreadyProcessed) {
		return nil, outcomeSkipped, nil
	}
	if err != nil {
		return nil, outcomeProcessed, errors.Wrap(err, "failed to apply activity")
	}

	return event, outcome, nil
}
