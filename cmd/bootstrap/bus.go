package bootstrap

import (
	"context"
	"log/slog"

	"catalog-service/internal/infra/bus"
	"catalog-service/internal/pkg/config"
	"catalog-service/internal/usecase/commands"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var BusModule = fx.Module("bus",
	fx.Invoke(StartProductSubscriber),
)

// StartProductSubscriber is a no-op unless REDIS_ADDR is set. Product changes can still
// arrive through the HTTP notification endpoint.
func StartProductSubscriber(lc fx.Lifecycle, cfg config.Config, syncer commands.ProductSync, logger *slog.Logger) {
	if cfg.Redis.Addr == "" {
		logger.Info("Redis address not configured, product subscriber disabled")
		return
	}

	var (
		rdb        *goredis.Client
		subscriber *bus.ProductSubscriber
	)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			rdb, err = bus.NewRedisClient(ctx, cfg.Redis)
			if err != nil {
				return err
			}
			subscriber = bus.NewProductSubscriber(rdb, cfg.Redis, syncer, cfg.Sync, logger)
			if err := subscriber.Start(ctx); err != nil {
				_ = rdb.Close()
				return err
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := subscriber.Stop(ctx); err != nil {
				logger.Warn("Product subscriber did not stop cleanly", "error", err.Error())
			}
			return rdb.Close()
		},
	})
}
