package components

import (
	"context"
	"log/slog"

	"catalog-service/internal/infra/db"
	"catalog-service/internal/infra/inmemory"
	"catalog-service/internal/infra/readstore"
	"catalog-service/internal/infra/uow"
	"catalog-service/internal/pkg/config"
	"catalog-service/internal/pkg/errs"
	"catalog-service/internal/usecase/queries"
	"catalog-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

// Persistence exposes the write side and the offer view store of one backend. Both always
// come from the same driver so reads observe the writes.
type Persistence struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	OfferReads queries.OfferReadStore
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Persistence, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		logger.Warn("Using in-memory store, data is lost on restart")
		store := inmemory.NewStore()
		if cfg.Store.SeedProducts == "" {
			logger.Warn("No STORE_SEED_PRODUCTS given, offers cannot be created until products are known")
			return Persistence{UnitOfWork: store, OfferReads: store}, nil
		}
		n, err := store.SeedProductsFile(cfg.Store.SeedProducts)
		if err != nil {
			return Persistence{}, err
		}
		logger.Info("Seeded in-memory product lookup", "file", cfg.Store.SeedProducts, "products", n)
		return Persistence{UnitOfWork: store, OfferReads: store}, nil

	case config.StoreDriverPostgres:
		pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
		if err != nil {
			return Persistence{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		return Persistence{
			UnitOfWork: uow.NewPostgresUoW(pool, logger),
			OfferReads: readstore.NewOfferReadStore(pool, logger),
		}, nil

	default:
		return Persistence{}, errs.Newf("unsupported STORE_DRIVER %q", cfg.Store.Driver)
	}
}
