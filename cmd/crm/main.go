package main

import (
	"context"
	"log/slog"
	"os"

	"crm/config"
	"crm/internal/delivery"
	"crm/internal/delivery/http"
	"crm/internal/delivery/http/middleware"
	"crm/internal/delivery/http/router/handler"
	"crm/internal/delivery/reconciler"
	"crm/internal/domain/lifecycle"
	"crm/internal/infra/auth"
	"crm/internal/infra/cache"
	logs "crm/internal/infra/log"
	"crm/internal/infra/persistence/postgres"
	"crm/internal/infra/pubsub"
	"crm/internal/usecase"
	"crm/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedBootstrapAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
		cache.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCustomerRepository,
			postgres.NewActivityRepository,
			postgres.NewProductRepository,
			postgres.NewOperatorRepository,
			postgres.NewStageTransitionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCustomerService,
			impl.NewActivityService,
			impl.NewCatalogService,
			impl.NewRecommendationService,
			impl.NewOperatorService,
			impl.NewReconcileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAdminHandler,
			handler.NewCatalogHandler,
			handler.NewCustomerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				reconciler.NewRunner,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedBootstrapAdmin creates the configured admin once the database is reachable.
func seedBootstrapAdmin(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger, operators usecase.OperatorUsecase) {
	if cfg.Auth == nil || cfg.Auth.BootstrapAdmin == nil || cfg.Auth.BootstrapAdmin.Email == "" {
		return
	}

	admin := cfg.Auth.BootstrapAdmin
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			created, err := operators.EnsureBootstrapAdmin(ctx, admin.Email, admin.Password)
			if err != nil {
				return errors.Wrap(err, "failed to seed bootstrap admin")
			}
			if created {
				logger.Info("Bootstrap admin created", slog.String("email", admin.Email))
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
