package repository

import (
	"context"
	"log/slog"

	"catalog-service/internal/domain/offer"
	"catalog-service/internal/infra"
	"catalog-service/internal/infra/db"

	"github.com/google/uuid"
)

const releaseStaleAliasSQL = `DELETE FROM offer_aliases WHERE offer_id = $1 AND alias <> $2`

// claimAliasSQL always returns the owner of the alias after the statement. A concurrent
// claimer blocks on the row lock and then sees the winner.
const claimAliasSQL = `INSERT INTO offer_aliases (alias, offer_id) VALUES ($1, $2)
ON CONFLICT (alias) DO UPDATE SET alias = offer_aliases.alias
RETURNING offer_id`

const releaseAliasSQL = `DELETE FROM offer_aliases WHERE offer_id = $1`

type AliasRegistry struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewAliasRegistry(dbtx db.DBTX, logger *slog.Logger) *AliasRegistry {
	return &AliasRegistry{db: dbtx, logger: logger}
}

func (a *AliasRegistry) Claim(ctx context.Context, alias offer.Alias, offerID uuid.UUID) error {
	if _, err := a.db.Exec(ctx, releaseStaleAliasSQL, offerID, alias.String()); err != nil {
		return infra.WrapRepoErr(a.logger, infra.KindDBFailure, "failed to release previous alias", err)
	}

	var owner uuid.UUID
	if err := a.db.QueryRow(ctx, claimAliasSQL, alias.String(), offerID).Scan(&owner); err != nil {
		return infra.WrapRepoErr(a.logger, infra.ClassifyPgError(err), "failed to claim alias", err)
	}
	if owner != offerID {
		return offer.NewAliasAlreadyInUse(owner, alias)
	}
	return nil
}

func (a *AliasRegistry) Release(ctx context.Context, offerID uuid.UUID) error {
	if _, err := a.db.Exec(ctx, releaseAliasSQL, offerID); err != nil {
		return infra.WrapRepoErr(a.logger, infra.KindDBFailure, "failed to release alias", err)
	}
	return nil
}
