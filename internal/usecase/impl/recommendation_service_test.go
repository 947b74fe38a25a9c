package impl

import (
	"context"
	"testing"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	mockRepo "crm/internal/mocks/repository"
	mockSvc "crm/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecommendationMocks(t *testing.T) (*mockRepo.MockCustomerRepository, *mockRepo.MockProductRepository) {
	return mockRepo.NewMockCustomerRepository(t), mockRepo.NewMockProductRepository(t)
}

func TestRecommendationService_Recommend_ByStage(t *testing.T) {
	productA := &entity.Product{ID: 1, Title: "A", Rating: 5, Available: true}
	productB := &entity.Product{ID: 2, Title: "B", Rating: 4, Available: true, BestSeller: true}
	productC := &entity.Product{ID: 3, Title: "C", Rating: 3, BestSeller: true}

	tests := []struct {
		name   string
		stage  entity.Stage
		expect func(repo *mockRepo.MockProductRepository)
		want   []*entity.Product
	}{
		{
			name:  "new customers get available products by rating",
			stage: entity.StageNew,
			expect: func(repo *mockRepo.MockProductRepository) {
				repo.EXPECT().TopRated(context.Background(), true).Return([]*entity.Product{productA, productB}, nil)
			},
			want: []*entity.Product{productA, productB},
		},
		{
			name:  "at risk customers get available best sellers",
			stage: entity.StageAtRisk,
			expect: func(repo *mockRepo.MockProductRepository) {
				repo.EXPECT().BestSellers(context.Background(), true).Return([]*entity.Product{productB}, nil)
			},
			want: []*entity.Product{productB},
		},
		{
			name:  "churned customers get the full catalog",
			stage: entity.StageChurned,
			expect: func(repo *mockRepo.MockProductRepository) {
				repo.EXPECT().All(context.Background()).Return([]*entity.Product{productA, productB, productC}, nil)
			},
			want: []*entity.Product{productA, productB, productC},
		},
		{
			name:  "unrecognised stages fall back to the full catalog",
			stage: entity.Stage("LEGACY"),
			expect: func(repo *mockRepo.MockProductRepository) {
				repo.EXPECT().All(context.Background()).Return([]*entity.Product{productA, productB, productC}, nil)
			},
			want: []*entity.Product{productA, productB, productC},
		},
		{
			name:  "stage names ignore case",
			stage: entity.Stage("atrisk"),
			expect: func(repo *mockRepo.MockProductRepository) {
				repo.EXPECT().BestSellers(context.Background(), true).Return([]*entity.Product{productB}, nil)
			},
			want: []*entity.Product{productB},
		},
		{
			name:   "active customers get nothing by default",
			stage:  entity.StageActive,
			expect: func(*mockRepo.MockProductRepository) {},
			want:   []*entity.Product{},
		},
		{
			name:  "empty catalog yields an empty list",
			stage: entity.StageNew,
			expect: func(repo *mockRepo.MockProductRepository) {
				repo.EXPECT().TopRated(context.Background(), true).Return(nil, nil)
			},
			want: []*entity.Product{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customerRepo, productRepo := newRecommendationMocks(t)
			ctx := context.Background()
			customerRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Customer{ID: 1, CurrentStage: tt.stage}, nil)
			tt.expect(productRepo)

			srv := NewRecommendationService(RecommendationServiceParams{
				CustomerRepo: customerRepo,
				ProductRepo:  productRepo,
				Logger:       newDiscardLogger(),
			})

			got, err := srv.Recommend(ctx, 1)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecommendationService_Recommend_ActiveUsesRecommender(t *testing.T) {
	customerRepo, productRepo := newRecommendationMocks(t)
	recommender := mockSvc.NewMockActiveStageRecommender(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: 2, CurrentStage: entity.StageActive}
	suggestions := []*entity.Product{{ID: 9, Title: "Upsell"}}
	customerRepo.EXPECT().FindByID(ctx, int64(2)).Return(customer, nil)
	recommender.EXPECT().RecommendForActive(ctx, customer).Return(suggestions, nil)

	srv := NewRecommendationService(RecommendationServiceParams{
		CustomerRepo:      customerRepo,
		ProductRepo:       productRepo,
		ActiveRecommender: recommender,
		Logger:            newDiscardLogger(),
	})

	got, err := srv.Recommend(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, suggestions, got)
}

func TestRecommendationService_Recommend_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown customer", func(t *testing.T) {
		customerRepo, productRepo := newRecommendationMocks(t)
		customerRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, repository.ErrCustomerNotFound)
		srv := NewRecommendationService(RecommendationServiceParams{CustomerRepo: customerRepo, ProductRepo: productRepo, Logger: newDiscardLogger()})

		got, err := srv.Recommend(ctx, 3)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	})

	t.Run("catalog failure", func(t *testing.T) {
		customerRepo, productRepo := newRecommendationMocks(t)
		customerRepo.EXPECT().FindByID(ctx, int64(4)).Return(&entity.Customer{ID: 4, CurrentStage: entity.StageNew}, nil)
		productRepo.EXPECT().TopRated(ctx, true).Return(nil, errors.New("catalog offline"))
		srv := NewRecommendationService(RecommendationServiceParams{CustomerRepo: customerRepo, ProductRepo: productRepo, Logger: newDiscardLogger()})

		_, err := srv.Recommend(ctx, 4)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog offline")
	})
}
