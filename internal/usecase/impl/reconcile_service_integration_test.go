package impl

import (
	"context"
	"testing"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/model"
	"crm/internal/infra/persistence/postgres"
	mockSvc "crm/internal/mocks/service"
	"crm/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// lifecycleHarness wires the real services over an in-memory database.
type lifecycleHarness struct {
	customers  usecase.CustomerUsecase
	activities usecase.ActivityUsecase
	reconciler usecase.ReconcileUsecase
	recommend  usecase.RecommendationUsecase
	products   repository.ProductRepository
	activity   repository.ActivityRepository
}

func newLifecycleHarness(t *testing.T) lifecycleHarness {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(model.All()...))

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishStageChanged(mock.Anything, mock.Anything).Return(nil).Maybe()

	txManager := postgres.NewTransactionManager(db)
	customerRepo := postgres.NewCustomerRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	productRepo := postgres.NewProductRepository(db)
	discard := newDiscardLogger()

	return lifecycleHarness{
		customers: NewCustomerService(CustomerServiceParams{
			TxManager:      txManager,
			CustomerRepo:   customerRepo,
			TransitionRepo: postgres.NewStageTransitionRepository(db),
			Publisher:      publisher,
			Logger:         discard,
		}),
		activities: NewActivityService(ActivityServiceParams{
			CustomerRepo: customerRepo,
			ActivityRepo: activityRepo,
			Logger:       discard,
		}),
		reconciler: NewReconcileService(ReconcileServiceParams{
			TxManager:    txManager,
			ActivityRepo: activityRepo,
			Publisher:    publisher,
			Config:       newTestConfig(0),
			Logger:       discard,
		}),
		recommend: NewRecommendationService(RecommendationServiceParams{
			CustomerRepo: customerRepo,
			ProductRepo:  productRepo,
			Logger:       discard,
		}),
		products: productRepo,
		activity: activityRepo,
	}
}

func (h lifecycleHarness) register(t *testing.T) *entity.Customer {
	t.Helper()

	customer, err := h.customers.RegisterCustomer(context.Background(), entity.CustomerDetails{FirstName: "Lin"})
	require.NoError(t, err)

	return customer
}

func (h lifecycleHarness) record(t *testing.T, customerID int64, activityTypes ...string) {
	t.Helper()

	for _, activityType := range activityTypes {
		_, err := h.activities.CreateActivity(context.Background(), customerID, activityType)
		require.NoError(t, err)
	}
}

func (h lifecycleHarness) stageOf(t *testing.T, customerID int64) entity.Stage {
	t.Helper()

	customer, err := h.customers.GetCustomer(context.Background(), customerID)
	require.NoError(t, err)

	return customer.CurrentStage
}

func TestLifecycle_ActivitiesDriveStages(t *testing.T) {
	tests := []struct {
		name       string
		activities []string
		want       entity.Stage
	}{
		{name: "no activity stays new", want: entity.StageNew},
		{name: "purchase activates", activities: []string{"purchase"}, want: entity.StageActive},
		{name: "purchase then ticket is at risk", activities: []string{"purchase", "ticketRaise"}, want: entity.StageAtRisk},
		{name: "ticket then settlement churns", activities: []string{"ticketRaise", "settlement"}, want: entity.StageChurned},
		{name: "settlement then purchase reactivates", activities: []string{"settlement", "purchase"}, want: entity.StageActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newLifecycleHarness(t)
			customer := h.register(t)
			h.record(t, customer.ID, tt.activities...)

			report, err := h.reconciler.RunCycle(context.Background())

			require.NoError(t, err)
			assert.Zero(t, report.Failed())
			assert.Equal(t, len(tt.activities)+1, report.Processed)
			assert.Equal(t, tt.want, h.stageOf(t, customer.ID))
		})
	}
}

func TestLifecycle_SecondCycleChangesNothing(t *testing.T) {
	h := newLifecycleHarness(t)
	ctx := context.Background()
	customer := h.register(t)
	h.record(t, customer.ID, "purchase")

	_, err := h.reconciler.RunCycle(ctx)
	require.NoError(t, err)

	report, err := h.reconciler.RunCycle(ctx)

	require.NoError(t, err)
	assert.Zero(t, report.Fetched)
	assert.Equal(t, entity.StageActive, h.stageOf(t, customer.ID))

	activities, err := h.activity.FindByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	for _, activity := range activities {
		assert.True(t, activity.Processed)
		assert.NotNil(t, activity.ProcessedAt)
	}
}

func TestLifecycle_OverrideIsReplacedByLaterActivity(t *testing.T) {
	h := newLifecycleHarness(t)
	ctx := context.Background()
	customer := h.register(t)

	require.NoError(t, h.customers.UpdateStage(ctx, customer.ID, "CHURNED"))
	assert.Equal(t, entity.StageChurned, h.stageOf(t, customer.ID))

	h.record(t, customer.ID, "purchase")
	_, err := h.reconciler.RunCycle(ctx)
	require.NoError(t, err)

	assert.Equal(t, entity.StageActive, h.stageOf(t, customer.ID))
}

func TestLifecycle_NewCustomerRecommendations(t *testing.T) {
	h := newLifecycleHarness(t)
	ctx := context.Background()
	customer := h.register(t)

	for _, product := range []*entity.Product{
		{Title: "B", Rating: 4, Available: true, PurchaseCount: 10},
		{Title: "A", Rating: 5, Available: true, PurchaseCount: 1},
		{Title: "Hidden", Rating: 5, Available: false, PurchaseCount: 99},
	} {
		require.NoError(t, h.products.Create(ctx, product))
	}

	got, err := h.recommend.Recommend(ctx, customer.ID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Title)
	assert.Equal(t, "B", got[1].Title)
}

func TestLifecycle_ChurnedCustomerRecommendations(t *testing.T) {
	h := newLifecycleHarness(t)
	ctx := context.Background()
	customer := h.register(t)
	h.record(t, customer.ID, "settlement")
	_, err := h.reconciler.RunCycle(ctx)
	require.NoError(t, err)
	require.Equal(t, entity.StageChurned, h.stageOf(t, customer.ID))

	for _, product := range []*entity.Product{
		{Title: "Plain", Rating: 2, Available: true},
		{Title: "Seller", Rating: 4, Available: true, BestSeller: true},
		{Title: "Retired", Rating: 5, Available: false},
	} {
		require.NoError(t, h.products.Create(ctx, product))
	}

	got, err := h.recommend.Recommend(ctx, customer.ID)

	require.NoError(t, err)
	titles := make([]string, 0, len(got))
	for _, product := range got {
		titles = append(titles, product.Title)
	}
	assert.ElementsMatch(t, []string{"Plain", "Seller", "Retired"}, titles)
}
