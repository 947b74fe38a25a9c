package impl

import (
	"context"
	"testing"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	mockRepo "crm/internal/mocks/repository"
	mockSvc "crm/internal/mocks/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reconcileServiceFixtures struct {
	service      usecase.ReconcileUsecase
	txManager    *mockRepo.MockTransactionManager
	activityRepo *mockRepo.MockActivityRepository
	publisher    *mockSvc.MockEventPublisher
	tx           txRepos
}

func createTestReconcileService(t *testing.T, batchSize int) reconcileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return reconcileServiceFixtures{
		service: NewReconcileService(ReconcileServiceParams{
			TxManager:    txManager,
			ActivityRepo: activityRepo,
			Publisher:    publisher,
			Config:       newTestConfig(batchSize),
			Logger:       newDiscardLogger(),
		}),
		txManager:    txManager,
		activityRepo: activityRepo,
		publisher:    publisher,
		tx:           newTxRepos(t),
	}
}

func TestReconcileService_RunCycle_AppliesTransition(t *testing.T) {
	fx := createTestReconcileService(t, 0)
	expectTx(fx.txManager, fx.tx)

	fx.activityRepo.EXPECT().FindUnprocessed(mock.Anything, 0).Return([]*entity.Activity{
		{ID: 1, CustomerID: 5, Type: entity.ActivityPurchase},
	}, nil)
	fx.tx.activityRepo.EXPECT().MarkProcessed(mock.Anything, int64(1)).Return(nil)
	fx.tx.customerRepo.EXPECT().FindByID(mock.Anything, int64(5)).Return(&entity.Customer{ID: 5, CurrentStage: entity.StageNew}, nil)
	fx.tx.customerRepo.EXPECT().UpdateStage(mock.Anything, int64(5), entity.StageActive).Return(nil)
	fx.publisher.EXPECT().
		PublishStageChanged(mock.Anything, mock.MatchedBy(func(event *service.StageChangedEvent) bool {
			return event.CustomerID == 5 &&
				event.FromStage == entity.StageNew &&
				event.ToStage == entity.StageActive &&
				event.Source == entity.TransitionSourceReconciler &&
				event.ActivityID != nil && *event.ActivityID == 1 &&
				event.RequestID != ""
		})).
		Return(nil)

	report, err := fx.service.RunCycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Fetched)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Transitioned)
	assert.Zero(t, report.Failed())
}

func TestReconcileService_RunCycle_CreatedActivityOnlyMarksProcessed(t *testing.T) {
	fx := createTestReconcileService(t, 0)
	expectTx(fx.txManager, fx.tx)

	fx.activityRepo.EXPECT().FindUnprocessed(mock.Anything, 0).Return([]*entity.Activity{
		{ID: 1, CustomerID: 5, Type: entity.ActivityCreated},
	}, nil)
	fx.tx.activityRepo.EXPECT().MarkProcessed(mock.Anything, int64(1)).Return(nil)

	report, err := fx.service.RunCycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
	assert.Zero(t, report.Transitioned)
}

func TestReconcileService_RunCycle_SameStageIsNotATransition(t *testing.T) {
	fx := createTestReconcileService(t, 0)
	expectTx(fx.txManager, fx.tx)

	fx.activityRepo.EXPECT().FindUnprocessed(mock.Anything, 0).Return([]*entity.Activity{
		{ID: 1, CustomerID: 5, Type: entity.ActivityPurchase},
	}, nil)
	fx.tx.activityRepo.EXPECT().MarkProcessed(mock.Anything, int64(1)).Return(nil)
	fx.tx.customerRepo.EXPECT().FindByID(mock.Anything, int64(5)).Return(&entity.Customer{ID: 5, CurrentStage: entity.StageActive}, nil)

	report, err := fx.service.RunCycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
	assert.Zero(t, report.Transitioned)
}

func TestReconcileService_RunCycle_SkipsAlreadyProcessed(t *testing.T) {
	fx := createTestReconcileService(t, 0)
	expectTx(fx.txManager, fx.tx)

	fx.activityRepo.EXPECT().FindUnprocessed(mock.Anything, 0).Return([]*entity.Activity{
		{ID: 1, CustomerID: 5, Type: entity.ActivitySettlement},
	}, nil)
	fx.tx.activityRepo.EXPECT().MarkProcessed(mock.Anything, int64(1)).Return(repository.ErrActivityAlreadyProcessed)

	report, err := fx.service.RunCycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Zero(t, report.Processed)
	fx.tx.customerRepo.AssertNotCalled(t, "UpdateStage", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcileService_RunCycle_FailureDoesNotBlockLaterActivities(t *testing.T) {
	fx := createTestReconcileService(t, 0)
	expectTx(fx.txManager, fx.tx)

	fx.activityRepo.EXPECT().FindUnprocessed(mock.Anything, 0).Return([]*entity.Activity{
		{ID: 1, CustomerID: 5, Type: "refund"},
		{ID: 2, CustomerID: 6, Type: entity.ActivityTicketRaise},
		{ID: 3, CustomerID: 7, Type: entity.ActivitySettlement},
	}, nil)
	fx.tx.activityRepo.EXPECT().MarkProcessed(mock.Anything, int64(2)).Return(nil)
	fx.tx.customerRepo.EXPECT().FindByID(mock.Anything, int64(6)).Return(nil, repository.ErrCustomerNotFound)
	fx.tx.activityRepo.EXPECT().MarkProcessed(mock.Anything, int64(3)).Return(nil)
	fx.tx.customerRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.Customer{ID: 7, CurrentStage: entity.StageAtRisk}, nil)
	fx.tx.customerRepo.EXPECT().UpdateStage(mock.Anything, int64(7), entity.StageChurned).Return(nil)
	fx.publisher.EXPECT().PublishStageChanged(mock.Anything, mock.Anything).Return(nil)

	report, err := fx.service.RunCycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, report.Fetched)
	assert.Equal(t, 1, report.Processed)
	require.Len(t, report.Failures, 2)
	assert.Equal(t, int64(1), report.Failures[0].ActivityID)
	assert.ErrorIs(t, report.Failures[0].Err, domainerrors.ErrInvalidActivityType)
	assert.Equal(t, int64(2), report.Failures[1].ActivityID)
	assert.ErrorIs(t, report.Failures[1].Err, domainerrors.ErrCustomerNotFound)
}

func TestReconcileService_RunCycle_MixedCaseTypeIsApplied(t *testing.T) {
	fx := createTestReconcileService(t, 0)
	expectTx(fx.txManager, fx.tx)

	fx.activityRepo.EXPECT().FindUnprocessed(mock.Anything, 0).Return([]*entity.Activity{
		{ID: 1, CustomerID: 5, Type: "TICKETRAISE"},
	}, nil)
	fx.tx.activityRepo.EXPECT().MarkProcessed(mock.Anything, int64(1)).Return(nil)
	fx.tx.customerRepo.EXPECT().FindByID(mock.Anything, int64(5)).Return(&entity.Customer{ID: 5, CurrentStage: entity.StageActive}, nil)
	fx.tx.customerRepo.EXPECT().UpdateStage(mock.Anything, int64(5), entity.StageAtRisk).Return(nil)
	fx.publisher.EXPECT().PublishStageChanged(mock.Anything, mock.Anything).Return(nil)

	report, err := fx.service.RunCycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Transitioned)
}

func TestReconcileService_RunCycle_PublishFailureKeepsCommit(t *testing.T) {
	fx := createTestReconcileService(t, 0)
	expectTx(fx.txManager, fx.tx)

	fx.activityRepo.EXPECT().FindUnprocessed(mock.Anything, 0).Return([]*entity.Activity{
		{ID: 1, CustomerID: 5, Type: entity.ActivityPurchase},
	}, nil)
	fx.tx.activityRepo.EXPECT().MarkProcessed(mock.Anything, int64(1)).Return(nil)
	fx.tx.customerRepo.EXPECT().FindByID(mock.Anything, int64(5)).Return(&entity.Customer{ID: 5, CurrentStage: entity.StageNew}, nil)
	fx.tx.customerRepo.EXPECT().UpdateStage(mock.Anything, int64(5), entity.StageActive).Return(nil)
	fx.publisher.EXPECT().PublishStageChanged(mock.Anything, mock.Anything).Return(errors.New("topic missing"))

	report, err := fx.service.RunCycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Transitioned)
	assert.Equal(t, 1, report.PublishFailures)
}

func TestReconcileService_RunCycle_UsesBatchSize(t *testing.T) {
	fx := createTestReconcileService(t, 50)

	fx.activityRepo.EXPECT().FindUnprocessed(mock.Anything, 50).Return(nil, nil)

	report, err := fx.service.RunCycle(context.Background())

	require.NoError(t, err)
	assert.Zero(t, report.Fetched)
}

func TestReconcileService_RunCycle_QueueReadFailure(t *testing.T) {
	fx := createTestReconcileService(t, 0)

	fx.activityRepo.EXPECT().FindUnprocessed(mock.Anything, 0).Return(nil, errors.New("db down"))

	report, err := fx.service.RunCycle(context.Background())

	require.Error(t, err)
	require.NotNil(t, report)
	assert.Zero(t, report.Processed)
}

func TestReconcileService_RunCycle_StopsWhenCancelled(t *testing.T) {
	fx := createTestReconcileService(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fx.activityRepo.EXPECT().FindUnprocessed(mock.Anything, 0).Return([]*entity.Activity{
		{ID: 1, CustomerID: 5, Type: entity.ActivityPurchase},
	}, nil)

	report, err := fx.service.RunCycle(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, report.Fetched)
	assert.Zero(t, report.Processed)
}
