package components

import (
	"log/slog"

	infraperm "catalog-service/internal/infra/permission"
	"catalog-service/internal/pkg/clock"
	"catalog-service/internal/pkg/config"
	"catalog-service/internal/usecase"
	"catalog-service/internal/usecase/commands"
	"catalog-service/internal/usecase/queries"
	"catalog-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		infraperm.NewRoleChecker,
		fx.As(new(shared.PermissionChecker)),
	),
	NewSyncOptions,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOfferCommands,
		commands.NewProductSync,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOfferQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewSyncOptions(cfg config.Config, logger *slog.Logger) commands.SyncOptions {
	opts := commands.SyncOptions{
		Concurrency: cfg.Sync.Concurrency,
		Retry: shared.RetryPolicy{
			MaxAttempts: cfg.Sync.MaxAttempts,
			BaseDelay:   cfg.Sync.BaseBackoff,
			MaxDelay:    cfg.Sync.MaxBackoff,
		},
	}
	logger.Debug("Product sync configured",
		"concurrency", opts.Concurrency,
		"max_attempts", opts.Retry.MaxAttempts)
	return opts
}
