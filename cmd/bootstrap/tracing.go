package bootstrap

import (
	"context"
	"log/slog"

	"catalog-service/internal/pkg/config"
	"catalog-service/internal/pkg/tracing"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(SetupTracing),
)

func SetupTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := tracing.Setup(context.Background(), cfg.Tracing, logger)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}
