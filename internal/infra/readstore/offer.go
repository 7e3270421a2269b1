package readstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/infra"
	"catalog-service/internal/infra/db"
	"catalog-service/internal/usecase/queries"
	"catalog-service/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const (
	findViewByIDSQL     = `SELECT view FROM offer_lookup WHERE id = $1`
	findViewByAliasSQL  = `SELECT view FROM offer_lookup WHERE alias = lower($1)`
	findIDsByProductSQL = `SELECT id FROM offer_lookup WHERE product_id = $1 ORDER BY id`
	offerVersionSQL     = `SELECT version FROM offers WHERE id = $1`
)

// OfferReadStore serves the offer_lookup view.
type OfferReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewOfferReadStore(dbtx db.DBTX, logger *slog.Logger) *OfferReadStore {
	return &OfferReadStore{db: dbtx, logger: logger}
}

func (r *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.OfferRM, error) {
	return r.findOne(ctx, findViewByIDSQL, id)
}

func (r *OfferReadStore) FindByAlias(ctx context.Context, alias string) (*readmodel.OfferRM, error) {
	return r.findOne(ctx, findViewByAliasSQL, alias)
}

func (r *OfferReadStore) FindIDsByProduct(ctx context.Context, productID string) ([]uuid.UUID, error) {
	return r.collectIDs(ctx, findIDsByProductSQL, productID)
}

func (r *OfferReadStore) CurrentVersion(ctx context.Context, id uuid.UUID) (aggregate.Version, error) {
	var v int64
	if err := r.db.QueryRow(ctx, offerVersionSQL, id).Scan(&v); err != nil {
		if infra.ClassifyPgError(err) == infra.KindNotFound {
			return 0, aggregate.NewNotFound(aggregate.TypeOffer, id.String())
		}
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read offer version", err)
	}
	return aggregate.Version(v), nil
}

func (r *OfferReadStore) findOne(ctx context.Context, sql string, arg any) (*readmodel.OfferRM, error) {
	var view []byte
	if err := r.db.QueryRow(ctx, sql, arg).Scan(&view); err != nil {
		if infra.ClassifyPgError(err) == infra.KindNotFound {
			return nil, queries.ErrOfferNotFound
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find offer view", err)
	}

	var rm readmodel.OfferRM
	if err := json.Unmarshal(view, &rm); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode offer view", err)
	}
	return &rm, nil
}

func (r *OfferReadStore) collectIDs(ctx context.Context, sql, productID string) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, sql, productID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list offers by product", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan offer id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate offer ids", err)
	}
	return ids, nil
}

var _ queries.OfferReadStore = (*OfferReadStore)(nil)
