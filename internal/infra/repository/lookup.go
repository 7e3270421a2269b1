package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"catalog-service/internal/infra"
	"catalog-service/internal/infra/db"
	"catalog-service/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const upsertLookupSQL = `INSERT INTO offer_lookup (id, product_id, alias, version, view, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
	product_id = EXCLUDED.product_id,
	alias = EXCLUDED.alias,
	version = EXCLUDED.version,
	view = EXCLUDED.view,
	updated_at = EXCLUDED.updated_at
WHERE offer_lookup.version <= EXCLUDED.version`

const removeLookupSQL = `DELETE FROM offer_lookup WHERE id = $1`

// LookupWriter maintains the offer_lookup view inside the command transaction.
type LookupWriter struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewLookupWriter(dbtx db.DBTX, logger *slog.Logger) *LookupWriter {
	return &LookupWriter{db: dbtx, logger: logger}
}

func (l *LookupWriter) Upsert(ctx context.Context, rm readmodel.OfferRM) error {
	view, err := json.Marshal(rm)
	if err != nil {
		return infra.WrapRepoErr(l.logger, infra.KindDBFailure, "failed to encode offer view", err)
	}
	_, err = l.db.Exec(ctx, upsertLookupSQL, rm.ID, rm.ProductID, rm.Alias, rm.Version, view, rm.UpdatedAt)
	if err != nil {
		return infra.WrapRepoErr(l.logger, infra.KindDBFailure, "failed to upsert offer view", err)
	}
	return nil
}

func (l *LookupWriter) Remove(ctx context.Context, id uuid.UUID) error {
	if _, err := l.db.Exec(ctx, removeLookupSQL, id); err != nil {
		return infra.WrapRepoErr(l.logger, infra.KindDBFailure, "failed to remove offer view", err)
	}
	return nil
}
