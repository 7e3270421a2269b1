package queries

import (
	"context"
	"errors"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/domain/permission"
	"catalog-service/internal/infra"
	"catalog-service/internal/pkg/errs"
	"catalog-service/internal/usecase/readmodel"
	"catalog-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrOfferNotFound = errs.Mark(errors.New("offer not found"), errs.ErrNotFound)

type OfferReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.OfferRM, error)
	FindByAlias(ctx context.Context, alias string) (*readmodel.OfferRM, error)
	FindIDsByProduct(ctx context.Context, productID string) ([]uuid.UUID, error)
}

type OfferQueries interface {
	GetByID(ctx context.Context, agent aggregate.Agent, id uuid.UUID) (*readmodel.OfferRM, error)
	GetByAlias(ctx context.Context, agent aggregate.Agent, alias string) (*readmodel.OfferRM, error)
	ListIDsByProduct(ctx context.Context, agent aggregate.Agent, productID string) ([]uuid.UUID, error)
}

type offerQueriesImpl struct {
	store       OfferReadStore
	permissions shared.PermissionChecker
}

func NewOfferQueries(store OfferReadStore, permissions shared.PermissionChecker) OfferQueries {
	return &offerQueriesImpl{store: store, permissions: permissions}
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, agent aggregate.Agent, id uuid.UUID) (*readmodel.OfferRM, error) {
	if err := q.permissions.Check(ctx, agent, permission.ActionRead, permission.InstanceResource(aggregate.TypeOffer, id.String())); err != nil {
		return nil, err
	}
	rm, err := q.store.FindByID(ctx, id)
	return rm, mapNotFound(err)
}

func (q *offerQueriesImpl) GetByAlias(ctx context.Context, agent aggregate.Agent, alias string) (*readmodel.OfferRM, error) {
	if err := q.permissions.Check(ctx, agent, permission.ActionRead, permission.TypeResource(aggregate.TypeOffer)); err != nil {
		return nil, err
	}
	rm, err := q.store.FindByAlias(ctx, alias)
	return rm, mapNotFound(err)
}

func (q *offerQueriesImpl) ListIDsByProduct(ctx context.Context, agent aggregate.Agent, productID string) ([]uuid.UUID, error) {
	if err := q.permissions.Check(ctx, agent, permission.ActionRead, permission.TypeResource(aggregate.TypeOffer)); err != nil {
		return nil, err
	}
	return q.store.FindIDsByProduct(ctx, productID)
}

func mapNotFound(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) || errs.Is(err, errs.ErrNotFound) {
		return ErrOfferNotFound
	}
	return err
}
