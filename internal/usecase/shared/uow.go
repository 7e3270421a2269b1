package shared

import (
	"context"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/domain/offer"
	"catalog-service/internal/domain/permission"
	"catalog-service/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: one atomic write. The offer commit, alias claim, event append and lookup
	// upsert either all land or none do.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: lookups used by commands outside a transaction
	CommandReads() CommandReads
}

type Tx interface {
	Offers() OfferRepository
	Aliases() AliasRegistry
	Lookup() OfferLookupWriter
}

type CommandReads interface {
	// OfferIDsByProduct resolves dependent offers through the lookup, not the event log.
	OfferIDsByProduct(ctx context.Context, productID string) ([]uuid.UUID, error)
	// CurrentVersion returns AggregateNotFoundError when the offer does not exist.
	CurrentVersion(ctx context.Context, id uuid.UUID) (aggregate.Version, error)
	ProductByID(ctx context.Context, productID string) (*ProductSnapshot, error)
}

// OfferRepository is the version store. Commit and Delete are conditional on the expected
// version and fail with AggregateVersionOutdatedError when another write got there first.
type OfferRepository interface {
	Load(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	Insert(ctx context.Context, o *offer.Offer, ev offer.Event) error
	Commit(ctx context.Context, expected aggregate.Version, o *offer.Offer, ev offer.Event) error
	Delete(ctx context.Context, id uuid.UUID, expected aggregate.Version, ev offer.Event) error
}

// AliasRegistry arbitrates global alias uniqueness.
type AliasRegistry interface {
	// Claim binds alias to offerID, replacing any alias the offer held before. It fails with
	// AliasAlreadyInUseError when a different offer holds the alias.
	Claim(ctx context.Context, alias offer.Alias, offerID uuid.UUID) error
	Release(ctx context.Context, offerID uuid.UUID) error
}

type OfferLookupWriter interface {
	Upsert(ctx context.Context, rm readmodel.OfferRM) error
	Remove(ctx context.Context, id uuid.UUID) error
}

type PermissionChecker interface {
	Check(ctx context.Context, holder aggregate.Agent, action permission.Action, res permission.Resource) error
}
