// Package inmemory implements the offer persistence ports on process memory. A write
// transaction works on a staged copy that replaces the committed state only when the
// callback succeeds.
package inmemory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/domain/offer"
	"catalog-service/internal/usecase/readmodel"
	"catalog-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	offers   map[uuid.UUID]*offer.Offer
	events   map[uuid.UUID][]offer.Event
	aliases  map[offer.Alias]uuid.UUID
	aliasOf  map[uuid.UUID]offer.Alias
	lookup   map[uuid.UUID]readmodel.OfferRM
	products map[string]shared.ProductSnapshot
}

func newState() *state {
	return &state{
		offers:   make(map[uuid.UUID]*offer.Offer),
		events:   make(map[uuid.UUID][]offer.Event),
		aliases:  make(map[offer.Alias]uuid.UUID),
		aliasOf:  make(map[uuid.UUID]offer.Alias),
		lookup:   make(map[uuid.UUID]readmodel.OfferRM),
		products: make(map[string]shared.ProductSnapshot),
	}
}

// clone is shallow: offers are immutable snapshots and event slices are only appended to
// through a fresh copy.
func (s *state) clone() *state {
	return &state{
		offers:   maps.Clone(s.offers),
		events:   maps.Clone(s.events),
		aliases:  maps.Clone(s.aliases),
		aliasOf:  maps.Clone(s.aliasOf),
		lookup:   maps.Clone(s.lookup),
		products: maps.Clone(s.products),
	}
}

type Store struct {
	mu    sync.RWMutex
	state *state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

// Within serializes writers. The version check inside Commit is still what rejects a
// stale command; the lock only makes compare-and-commit atomic.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	if err := fn(ctx, &memTx{st: staged}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = staged
	return nil
}

func (s *Store) CommandReads() shared.CommandReads { return &commandReads{store: s} }

// PutProduct seeds the product lookup.
func (s *Store) PutProduct(p shared.ProductSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.products[p.ProductID] = p
}

// Events returns the committed event log of one offer.
func (s *Store) Events(id uuid.UUID) []offer.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.events[id])
}

func (s *Store) Offer(id uuid.UUID) (*offer.Offer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.state.offers[id]
	return o, ok
}

type memTx struct {
	st *state
}

func (t *memTx) Offers() shared.OfferRepository   { return &offerRepo{st: t.st} }
func (t *memTx) Aliases() shared.AliasRegistry    { return &aliasRegistry{st: t.st} }
func (t *memTx) Lookup() shared.OfferLookupWriter { return &lookupWriter{st: t.st} }

type offerRepo struct {
	st *state
}

func (r *offerRepo) Load(_ context.Context, id uuid.UUID) (*offer.Offer, error) {
	o, ok := r.st.offers[id]
	if !ok {
		return nil, aggregate.NewNotFound(aggregate.TypeOffer, id.String())
	}
	return o, nil
}

func (r *offerRepo) Insert(_ context.Context, o *offer.Offer, ev offer.Event) error {
	if _, exists := r.st.offers[o.ID()]; exists {
		return offer.ErrAlreadyExists
	}
	r.st.offers[o.ID()] = o
	r.appendEvent(o.ID(), ev)
	return nil
}

func (r *offerRepo) Commit(_ context.Context, expected aggregate.Version, o *offer.Offer, ev offer.Event) error {
	if err := r.check(o.ID(), expected); err != nil {
		return err
	}
	r.st.offers[o.ID()] = o
	r.appendEvent(o.ID(), ev)
	return nil
}

func (r *offerRepo) Delete(_ context.Context, id uuid.UUID, expected aggregate.Version, ev offer.Event) error {
	if err := r.check(id, expected); err != nil {
		return err
	}
	delete(r.st.offers, id)
	r.appendEvent(id, ev)
	return nil
}

func (r *offerRepo) check(id uuid.UUID, expected aggregate.Version) error {
	current, ok := r.st.offers[id]
	if !ok {
		return aggregate.NewNotFound(aggregate.TypeOffer, id.String())
	}
	return aggregate.CheckVersion(aggregate.TypeOffer, id.String(), current.Version(), expected)
}

func (r *offerRepo) appendEvent(id uuid.UUID, ev offer.Event) {
	r.st.events[id] = append(slices.Clone(r.st.events[id]), ev)
}

type aliasRegistry struct {
	st *state
}

func (a *aliasRegistry) Claim(_ context.Context, alias offer.Alias, offerID uuid.UUID) error {
	if owner, taken := a.st.aliases[alias]; taken && owner != offerID {
		return offer.NewAliasAlreadyInUse(owner, alias)
	}
	if prev, ok := a.st.aliasOf[offerID]; ok && prev != alias {
		delete(a.st.aliases, prev)
	}
	a.st.aliases[alias] = offerID
	a.st.aliasOf[offerID] = alias
	return nil
}

func (a *aliasRegistry) Release(_ context.Context, offerID uuid.UUID) error {
	if prev, ok := a.st.aliasOf[offerID]; ok {
		delete(a.st.aliases, prev)
		delete(a.st.aliasOf, offerID)
	}
	return nil
}

type lookupWriter struct {
	st *state
}

func (l *lookupWriter) Upsert(_ context.Context, rm readmodel.OfferRM) error {
	l.st.lookup[rm.ID] = rm
	return nil
}

func (l *lookupWriter) Remove(_ context.Context, id uuid.UUID) error {
	delete(l.st.lookup, id)
	return nil
}

var _ shared.UnitOfWork = (*Store)(nil)
