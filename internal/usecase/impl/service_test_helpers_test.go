package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"crm/config"
	"crm/internal/domain/repository"
	mockRepo "crm/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(batchSize int) *config.Config {
	return &config.Config{
		Reconciler: &config.ReconcilerConfig{
			Enabled:   true,
			BatchSize: batchSize,
		},
	}
}

// txRepos are the repositories handed out by the mocked transaction.
type txRepos struct {
	factory      *mockRepo.MockRepositoryFactory
	customerRepo *mockRepo.MockCustomerRepository
	activityRepo *mockRepo.MockActivityRepository
}

// newTxRepos builds a factory whose accessors may or may not be used by a test.
func newTxRepos(t *testing.T) txRepos {
	t.Helper()

	repos := txRepos{
		factory:      mockRepo.NewMockRepositoryFactory(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		activityRepo: mockRepo.NewMockActivityRepository(t),
	}
	repos.factory.EXPECT().CustomerRepo().Return(repos.customerRepo).Maybe()
	repos.factory.EXPECT().ActivityRepo().Return(repos.activityRepo).Maybe()

	return repos
}

// expectTx makes every Execute call run fn against repos and return its error.
func expectTx(txManager *mockRepo.MockTransactionManager, repos txRepos) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})
}
