//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/domain/offer"
	"catalog-service/internal/domain/product"
	"catalog-service/internal/infra/inmemory"
	"catalog-service/internal/infra/permission"
	"catalog-service/internal/pkg/clock"
	"catalog-service/internal/usecase/commands"
	"catalog-service/internal/usecase/shared"
	commandsmock "catalog-service/tests/mock/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var syncOpts = commands.SyncOptions{
	Concurrency: 4,
	Retry:       shared.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond},
}

type syncFixture struct {
	store  *inmemory.Store
	offers commands.OfferCommands
	sync   commands.ProductSync
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()
	store := inmemory.NewStore()
	seedProduct(store, "P")
	seedProduct(store, "other")
	offers := commands.NewOfferCommands(store, permission.NewRoleChecker(discardLogger()), clock.NewRealClock(), discardLogger())
	return &syncFixture{
		store:  store,
		offers: offers,
		sync:   commands.NewProductSync(store, offers, syncOpts, discardLogger()),
	}
}

func (f *syncFixture) create(t *testing.T, title, productID string) uuid.UUID {
	t.Helper()
	res, err := f.offers.Create(context.Background(), operator, createRequest(title, productID))
	require.NoError(t, err)
	return res.OfferID
}

func (f *syncFixture) linkName(t *testing.T, id uuid.UUID, key product.LinkKey) string {
	t.Helper()
	o, ok := f.store.Offer(id)
	require.True(t, ok)
	links := o.Product().Links()
	idx := links.IndexOf(key)
	require.GreaterOrEqual(t, idx, 0)
	return links[idx].Name
}

func TestProductSyncRename(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	key := product.LinkKey{Type: product.LinkTypePattern, ID: "X"}

	a := f.create(t, "Offer A", "P")
	b := f.create(t, "Offer B", "P")
	unrelated := f.create(t, "Offer C", "other")

	// b moves ahead independently; the sync must read its current version
	_, err := f.offers.Publish(ctx, operator, b, 0)
	require.NoError(t, err)

	n, err := product.NewLinkRenamed("P", key, "New")
	require.NoError(t, err)

	report, err := f.sync.Handle(ctx, n)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{a, b}, report.Updated)
	assert.Empty(t, report.Failed)
	assert.Equal(t, commands.SyncUpdated, report.Outcome(a))

	assert.Equal(t, "New", f.linkName(t, a, key))
	assert.Equal(t, "New", f.linkName(t, b, key))
	assert.Equal(t, "Old", f.linkName(t, unrelated, key))

	oa, _ := f.store.Offer(a)
	ob, _ := f.store.Offer(b)
	assert.Equal(t, aggregate.Version(1), oa.Version())
	assert.Equal(t, aggregate.Version(2), ob.Version())

	events := f.store.Events(a)
	last := events[len(events)-1]
	assert.Equal(t, offer.EventProductLinkRenamed, last.Type)
	assert.True(t, last.Agent.IsSystem())

	rm, err := f.store.FindByID(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "New", rm.Links[0].Name)

	t.Run("redelivery is skipped without version churn", func(t *testing.T) {
		report, err := f.sync.Handle(ctx, n)
		require.NoError(t, err)
		assert.Empty(t, report.Updated)
		assert.ElementsMatch(t, []uuid.UUID{a, b}, report.Skipped)

		again, _ := f.store.Offer(a)
		assert.Equal(t, aggregate.Version(1), again.Version())
	})
}

func TestProductSyncFieldsConverge(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	id := f.create(t, "Converging Offer", "P")

	composition, err := product.NewFabricComposition([]product.FabricCompositionItem{
		{FabricType: product.FabricLinen, Percentage: 5500},
		{FabricType: product.FabricCotton, Percentage: 4500},
	})
	require.NoError(t, err)
	fabric, err := product.NewFabricCompositionChanged("P", composition)
	require.NoError(t, err)
	number, err := product.NewProductNumberChanged("P", "P-0099")
	require.NoError(t, err)
	added, err := product.NewLinkAdded("P", product.Link{Type: product.LinkTypeFabric, ID: "F", Name: "Linen"})
	require.NoError(t, err)
	removed, err := product.NewLinkRemoved("P", product.LinkKey{Type: product.LinkTypePattern, ID: "X"})
	require.NoError(t, err)

	// independent fields in one order, then redelivered in reverse
	ordered := []product.Notification{fabric, number, added, removed}
	for _, n := range ordered {
		_, err := f.sync.Handle(ctx, n)
		require.NoError(t, err)
	}
	first, _ := f.store.Offer(id)
	for i := len(ordered) - 1; i >= 0; i-- {
		report, err := f.sync.Handle(ctx, ordered[i])
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{id}, report.Skipped)
	}
	second, _ := f.store.Offer(id)

	assert.Equal(t, aggregate.Version(4), second.Version())
	assert.Equal(t, product.ProductNumber("P-0099"), second.Product().ProductNumber())
	assert.True(t, second.Product().FabricComposition().Equal(composition))
	wantLinks := product.Links{{Type: product.LinkTypeFabric, ID: "F", Name: "Linen"}}
	if diff := cmp.Diff(wantLinks, second.Product().Links()); diff != "" {
		t.Errorf("links mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, first.Version(), second.Version())
}

func TestProductSyncSkipsArchived(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	live := f.create(t, "Live Offer", "P")
	frozen := f.create(t, "Frozen Offer", "P")
	for v, step := range []func(context.Context, aggregate.Agent, uuid.UUID, aggregate.Version) (*commands.CommandResult, error){
		f.offers.Publish, f.offers.Reserve, f.offers.Archive,
	} {
		_, err := step(ctx, operator, frozen, aggregate.Version(v))
		require.NoError(t, err)
	}

	n, err := product.NewProductNumberChanged("P", "P-7")
	require.NoError(t, err)
	report, err := f.sync.Handle(ctx, n)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{live}, report.Updated)
	assert.Equal(t, []uuid.UUID{frozen}, report.Skipped)
	o, _ := f.store.Offer(frozen)
	assert.Equal(t, product.ProductNumber("P-0001"), o.Product().ProductNumber())
}

func TestProductSyncIsolatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := inmemory.NewStore()
	seedProduct(store, "P")
	offers := commands.NewOfferCommands(store, permission.NewRoleChecker(discardLogger()), clock.NewRealClock(), discardLogger())

	var ids []uuid.UUID
	for _, title := range []string{"Flaky", "Broken", "Fine"} {
		res, err := offers.Create(context.Background(), operator, createRequest(title, "P"))
		require.NoError(t, err)
		ids = append(ids, res.OfferID)
	}
	flaky, broken, fine := ids[0], ids[1], ids[2]

	mockOffers := commandsmock.NewMockOfferCommands(ctrl)
	boom := errors.New("connection reset")
	flakyCalls := 0
	mockOffers.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, agent aggregate.Agent, cmd offer.Command) (*commands.CommandResult, error) {
			tg, _ := offer.TargetOf(cmd)
			switch tg.OfferID {
			case flaky:
				flakyCalls++
				if flakyCalls == 1 {
					return nil, aggregate.CheckVersion(aggregate.TypeOffer, flaky.String(), 1, tg.ExpectedVersion)
				}
			case broken:
				return nil, boom
			}
			return offers.Execute(ctx, agent, cmd)
		}).AnyTimes()

	// Concurrency 1 keeps the flaky counter free of races.
	syncer := commands.NewProductSync(store, mockOffers, commands.SyncOptions{Concurrency: 1, Retry: syncOpts.Retry}, discardLogger())
	n, err := product.NewProductNumberChanged("P", "P-2")
	require.NoError(t, err)

	report, err := syncer.Handle(context.Background(), n)
	require.NoError(t, err)

	assert.ElementsMatch(t, []uuid.UUID{flaky, fine}, report.Updated)
	assert.True(t, report.HasFailures())
	assert.ErrorIs(t, report.Failed[broken], boom)
	assert.Equal(t, commands.SyncFailed, report.Outcome(broken))
	assert.Equal(t, 2, flakyCalls)
}

func TestSyncCommand(t *testing.T) {
	target := offer.Target{OfferID: uuid.New(), ExpectedVersion: 3}
	n, err := product.NewLinkRenamed("P", product.LinkKey{Type: product.LinkTypePattern, ID: "X"}, "New")
	require.NoError(t, err)

	cmd, err := commands.SyncCommand(n, target)
	require.NoError(t, err)
	rename, ok := cmd.(offer.RenameProductLink)
	require.True(t, ok)
	assert.Equal(t, target, rename.Target)
	assert.Equal(t, "New", rename.Name)
}
