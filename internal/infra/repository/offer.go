package repository

import (
	"context"
	"log/slog"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/domain/offer"
	"catalog-service/internal/infra"
	"catalog-service/internal/infra/db"
	"catalog-service/internal/infra/repository/converter"

	"github.com/google/uuid"
)

const offerColumns = `id, version, title, size, categories, product_id, product_number,
	product_links, fabric_composition, images, price_amount, price_currency,
	discounted_amount, discounted_currency, price_history,
	notes_description, notes_contains, notes_care, notes_safety,
	published, reserved, archived_at, created_at`

const selectOfferSQL = `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

const insertOfferSQL = `INSERT INTO offers (` + offerColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`

// updateOfferSQL is the compare-and-commit: it only matches the row that still carries the
// version the command was decided against.
const updateOfferSQL = `UPDATE offers SET
	version = $2, title = $3, size = $4, categories = $5, product_id = $6, product_number = $7,
	product_links = $8, fabric_composition = $9, images = $10, price_amount = $11,
	price_currency = $12, discounted_amount = $13, discounted_currency = $14, price_history = $15,
	notes_description = $16, notes_contains = $17, notes_care = $18, notes_safety = $19,
	published = $20, reserved = $21, archived_at = $22, updated_at = now()
WHERE id = $1 AND version = $23`

const deleteOfferSQL = `DELETE FROM offers WHERE id = $1 AND version = $2`

const selectVersionSQL = `SELECT version FROM offers WHERE id = $1`

const insertEventSQL = `INSERT INTO offer_events
	(event_id, offer_id, version, event_type, payload, agent_kind, agent_id, agent_role, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

type OfferRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewOfferRepository(dbtx db.DBTX, logger *slog.Logger) *OfferRepository {
	return &OfferRepository{db: dbtx, logger: logger}
}

func (r *OfferRepository) Load(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	var row converter.OfferRow
	err := r.db.QueryRow(ctx, selectOfferSQL, id).Scan(
		&row.ID, &row.Version, &row.Title, &row.Size, &row.Categories, &row.ProductID, &row.ProductNumber,
		&row.ProductLinks, &row.FabricComposition, &row.Images, &row.PriceAmount, &row.PriceCurrency,
		&row.DiscountedAmount, &row.DiscountedCurrency, &row.PriceHistory,
		&row.NotesDescription, &row.NotesContains, &row.NotesCare, &row.NotesSafety,
		&row.Published, &row.Reserved, &row.ArchivedAt, &row.CreatedAt,
	)
	if err != nil {
		if infra.ClassifyPgError(err) == infra.KindNotFound {
			return nil, aggregate.NewNotFound(aggregate.TypeOffer, id.String())
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load offer", err)
	}

	o, err := converter.RowToOffer(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to reconstruct offer", err)
	}
	return o, nil
}

func (r *OfferRepository) Insert(ctx context.Context, o *offer.Offer, ev offer.Event) error {
	row, err := converter.OfferToRow(o)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode offer", err)
	}

	_, err = r.db.Exec(ctx, insertOfferSQL,
		row.ID, row.Version, row.Title, row.Size, row.Categories, row.ProductID, row.ProductNumber,
		row.ProductLinks, row.FabricComposition, row.Images, row.PriceAmount, row.PriceCurrency,
		row.DiscountedAmount, row.DiscountedCurrency, row.PriceHistory,
		row.NotesDescription, row.NotesContains, row.NotesCare, row.NotesSafety,
		row.Published, row.Reserved, row.ArchivedAt, row.CreatedAt,
	)
	if err != nil {
		if infra.ClassifyPgError(err) == infra.KindDuplicateKey {
			return offer.ErrAlreadyExists
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert offer", err)
	}
	return r.appendEvent(ctx, ev)
}

func (r *OfferRepository) Commit(ctx context.Context, expected aggregate.Version, o *offer.Offer, ev offer.Event) error {
	row, err := converter.OfferToRow(o)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode offer", err)
	}

	tag, err := r.db.Exec(ctx, updateOfferSQL,
		row.ID, row.Version, row.Title, row.Size, row.Categories, row.ProductID, row.ProductNumber,
		row.ProductLinks, row.FabricComposition, row.Images, row.PriceAmount, row.PriceCurrency,
		row.DiscountedAmount, row.DiscountedCurrency, row.PriceHistory,
		row.NotesDescription, row.NotesContains, row.NotesCare, row.NotesSafety,
		row.Published, row.Reserved, row.ArchivedAt, expected.Int64(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update offer", err)
	}
	if tag.RowsAffected() == 0 {
		return r.explainMiss(ctx, o.ID(), expected)
	}
	return r.appendEvent(ctx, ev)
}

func (r *OfferRepository) Delete(ctx context.Context, id uuid.UUID, expected aggregate.Version, ev offer.Event) error {
	tag, err := r.db.Exec(ctx, deleteOfferSQL, id, expected.Int64())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete offer", err)
	}
	if tag.RowsAffected() == 0 {
		return r.explainMiss(ctx, id, expected)
	}
	return r.appendEvent(ctx, ev)
}

// explainMiss turns a conditional write that matched no row into the domain error.
func (r *OfferRepository) explainMiss(ctx context.Context, id uuid.UUID, expected aggregate.Version) error {
	var actual int64
	err := r.db.QueryRow(ctx, selectVersionSQL, id).Scan(&actual)
	if err != nil {
		if infra.ClassifyPgError(err) == infra.KindNotFound {
			return aggregate.NewNotFound(aggregate.TypeOffer, id.String())
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read offer version", err)
	}
	if err := aggregate.CheckVersion(aggregate.TypeOffer, id.String(), aggregate.Version(actual), expected); err != nil {
		return err
	}
	// The row moved and came back to the expected version between the two statements.
	return &aggregate.AggregateVersionOutdatedError{
		AggregateType: aggregate.TypeOffer,
		AggregateID:   id.String(),
		ActualVersion: aggregate.Version(actual),
	}
}

func (r *OfferRepository) appendEvent(ctx context.Context, ev offer.Event) error {
	row, err := converter.EventToRow(ev)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode event", err)
	}
	_, err = r.db.Exec(ctx, insertEventSQL,
		row.EventID, row.OfferID, row.Version, row.EventType, row.Payload,
		row.AgentKind, row.AgentID, row.AgentRole, row.OccurredAt,
	)
	if err != nil {
		if infra.ClassifyPgError(err) == infra.KindDuplicateKey {
			return infra.WrapRepoErr(r.logger, infra.KindVersionConflict, "event version already recorded", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to append event", err)
	}
	return nil
}
