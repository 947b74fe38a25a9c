// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager      repository.TransactionManager
	customerRepo   repository.CustomerRepository
	transitionRepo repository.StageTransitionRepository
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CustomerRepo   repository.CustomerRepository
	TransitionRepo repository.StageTransitionRepository
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		txManager:      params.TxManager,
		customerRepo:   params.CustomerRepo,
		transitionRepo: params.TransitionRepo,
		publisher:      params.Publisher,
		logger:         params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterCustomer creates the customer and its "created" activity in one transaction.
func (srv *customerService) RegisterCustomer(ctx context.Context, details entity.CustomerDetails) (*entity.Customer, error) {
	customer := entity.NewCustomer(details)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CustomerRepo().Create(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to create customer")
		}

		activity, err := entity.NewActivity(customer.ID, entity.ActivityCreated.String())
		if err != nil {
			return err
		}

		return errors.Wrap(repoFactory.ActivityRepo().Create(ctx, activity), "failed to record created activity")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to register customer", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute customer registration transaction")
	}

	srv.log(ctx).Info("Customer registered", slog.Int64("customerID", customer.ID))

	return customer, nil
}

// GetCustomer returns a customer by id.
func (srv *customerService) GetCustomer(ctx context.Context, customerID int64) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, mapCustomerLookupError(err, customerID)
	}

	return customer, nil
}

// UpdateStage overrides a customer's stage. The stage name must match exactly.
func (srv *customerService) UpdateStage(ctx context.Context, customerID int64, rawStage string) error {
	stage, err := entity.ParseStage(rawStage)
	if err != nil {
		srv.log(ctx).Warn("Rejected stage override", slog.Int64("customerID", customerID), slog.String("stage", rawStage))

		return err
	}

	var previous entity.Stage
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		customer, err := customerRepo.FindByID(ctx, customerID)
		if err != nil {
			return mapCustomerLookupError(err, customerID)
		}
		previous = customer.CurrentStage

		if err := customerRepo.UpdateStage(ctx, customerID, stage); err != nil {
			return mapCustomerLookupError(err, customerID)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to override customer stage")
	}

	srv.log(ctx).Info("Customer stage overridden",
		slog.Int64("customerID", customerID),
		slog.String("from", previous.String()),
		slog.String("to", stage.String()),
	)

	if previous != stage {
		srv.publish(ctx, &service.StageChangedEvent{
			EventID:    uuid.NewString(),
			RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
			CustomerID: customerID,
			FromStage:  previous,
			ToStage:    stage,
			Source:     entity.TransitionSourceOverride,
			OccurredAt: time.Now().UTC(),
		})
	}

	return nil
}

// ListStageHistory returns the recorded transitions of an existing customer.
func (srv *customerService) ListStageHistory(ctx context.Context, customerID int64) ([]*entity.StageTransition, error) {
	if _, err := srv.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, mapCustomerLookupError(err, customerID)
	}

	transitions, err := srv.transitionRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stage history")
	}

	return transitions, nil
}

// publish is best effort; the stage change is already committed.
func (srv *customerService) publish(ctx context.Context, event *service.StageChangedEvent) {
	if err := srv.publisher.PublishStageChanged(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish stage change",
			slog.String("eventID", event.EventID),
			slog.Int64("customerID", event.CustomerID),
			slog.Any("error", err),
		)
	}
}

// mapCustomerLookupError turns the repository sentinel into the user-facing error.
func mapCustomerLookupError(err error, customerID int64) error {
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return errors.Wrapf(domainerrors.ErrCustomerNotFound, "customer %d", customerID)
	}

	return errors.Wrap(err, "failed to load customer")
}
