package impl

import (
	"context"
	"log/slog"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type recommendationService struct {
	customerRepo      repository.CustomerRepository
	productRepo       repository.ProductRepository
	activeRecommender service.ActiveStageRecommender
	logger            *slog.Logger
}

// RecommendationServiceParams holds dependencies for RecommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger

	// ActiveRecommender backs the ACTIVE stage. Without one ACTIVE customers get no products.
	ActiveRecommender service.ActiveStageRecommender `optional:"true"`
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	active := params.ActiveRecommender
	if active == nil {
		active = emptyActiveRecommender{}
	}

	return &recommendationService{
		customerRepo:      params.CustomerRepo,
		productRepo:       params.ProductRepo,
		activeRecommender: active,
		logger:            params.Logger,
	}
}

func (srv *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Recommend picks products by the customer's current stage:
//
//	NEW     available products, best rated first
//	ATRISK  available best sellers
//	ACTIVE  whatever the ActiveStageRecommender returns
//	other   the full catalog, unordered (CHURNED lands here)
//
// Stage names are compared ignoring case.
func (srv *recommendationService) Recommend(ctx context.Context, customerID int64) ([]*entity.Product, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, mapCustomerLookupError(err, customerID)
	}

	var products []*entity.Product
	stage := customer.CurrentStage
	switch {
	case stage.Is(entity.StageNew):
		products, err = srv.productRepo.TopRated(ctx, true)
	case stage.Is(entity.StageAtRisk):
		products, err = srv.productRepo.BestSellers(ctx, true)
	case stage.Is(entity.StageActive):
		products, err = srv.activeRecommender.RecommendForActive(ctx, customer)
	default:
		if !stage.Is(entity.StageChurned) {
			srv.log(ctx).Warn("Customer has an unknown stage", slog.Int64("customerID", customerID), slog.String("stage", stage.String()))
		}
		products, err = srv.productRepo.All(ctx)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to recommend for stage %s", stage)
	}

	if products == nil {
		products = []*entity.Product{}
	}

	return products, nil
}

// emptyActiveRecommender is the default ACTIVE stage strategy.
type emptyActiveRecommender struct{}

func (emptyActiveRecommender) RecommendForActive(context.Context, *entity.Customer) ([]*entity.Product, error) {
	return []*entity.Product{}, nil
}
