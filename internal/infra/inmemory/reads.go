package inmemory

import (
	"context"
	"errors"
	"slices"
	"strings"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/pkg/errs"
	"catalog-service/internal/usecase/queries"
	"catalog-service/internal/usecase/readmodel"
	"catalog-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrProductNotFound = errs.Mark(errors.New("product not found"), errs.ErrNotFound)

type commandReads struct {
	store *Store
}

func (r *commandReads) OfferIDsByProduct(ctx context.Context, productID string) ([]uuid.UUID, error) {
	return r.store.FindIDsByProduct(ctx, productID)
}

func (r *commandReads) CurrentVersion(_ context.Context, id uuid.UUID) (aggregate.Version, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	o, ok := r.store.state.offers[id]
	if !ok {
		return 0, aggregate.NewNotFound(aggregate.TypeOffer, id.String())
	}
	return o.Version(), nil
}

func (r *commandReads) ProductByID(_ context.Context, productID string) (*shared.ProductSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.state.products[productID]
	if !ok {
		return nil, ErrProductNotFound
	}
	p.Links = slices.Clone(p.Links)
	p.FabricComposition = slices.Clone(p.FabricComposition)
	return &p, nil
}

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*readmodel.OfferRM, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rm, ok := s.state.lookup[id]
	if !ok {
		return nil, queries.ErrOfferNotFound
	}
	return &rm, nil
}

func (s *Store) FindByAlias(_ context.Context, alias string) (*readmodel.OfferRM, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rm := range s.state.lookup {
		if strings.EqualFold(rm.Alias, alias) {
			return &rm, nil
		}
	}
	return nil, queries.ErrOfferNotFound
}

// FindIDsByProduct returns ids sorted so fan-out order is stable in tests.
func (s *Store) FindIDsByProduct(_ context.Context, productID string) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []uuid.UUID
	for id, rm := range s.state.lookup {
		if rm.ProductID == productID {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return strings.Compare(a.String(), b.String()) })
	return ids, nil
}

var (
	_ shared.CommandReads    = (*commandReads)(nil)
	_ queries.OfferReadStore = (*Store)(nil)
)
