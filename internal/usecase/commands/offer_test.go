//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/domain/offer"
	dompermission "catalog-service/internal/domain/permission"
	"catalog-service/internal/domain/product"
	"catalog-service/internal/infra/inmemory"
	"catalog-service/internal/infra/permission"
	"catalog-service/internal/pkg/clock"
	"catalog-service/internal/pkg/errs"
	"catalog-service/internal/usecase/commands"
	"catalog-service/internal/usecase/shared"
	sharedmock "catalog-service/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	operator = aggregate.User(uuid.New(), string(dompermission.RoleOperator))
	admin    = aggregate.User(uuid.New(), string(dompermission.RoleAdmin))
	viewer   = aggregate.User(uuid.New(), string(dompermission.RoleViewer))
)

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func seedProduct(store *inmemory.Store, id string) {
	store.PutProduct(shared.ProductSnapshot{
		ProductID:     id,
		ProductNumber: "P-0001",
		Links: []product.Link{
			{Type: product.LinkTypePattern, ID: "X", Name: "Old"},
		},
		FabricComposition: []product.FabricCompositionItem{
			{FabricType: product.FabricCotton, Percentage: 10000},
		},
	})
}

func createRequest(title, productID string) commands.CreateOfferRequest {
	return commands.CreateOfferRequest{
		Title:      title,
		Size:       "L",
		Categories: []string{"dresses"},
		ProductID:  productID,
		Images:     []string{"img-1"},
		Price:      commands.MoneyInput{Amount: 2999, Currency: "EUR"},
		Notes:      commands.NotesInput{Description: "Linen dress"},
	}
}

type OfferCommandsTestSuite struct {
	suite.Suite
	store *inmemory.Store
	clock *clock.MockClock
	uc    commands.OfferCommands
	ctx   context.Context
}

func (s *OfferCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = inmemory.NewStore()
	s.clock = clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.uc = commands.NewOfferCommands(s.store, permission.NewRoleChecker(discardLogger()), s.clock, discardLogger())
	seedProduct(s.store, "product-1")
}

func TestOfferCommandsSuite(t *testing.T) {
	suite.Run(t, new(OfferCommandsTestSuite))
}

func (s *OfferCommandsTestSuite) create(title string) uuid.UUID {
	res, err := s.uc.Create(s.ctx, operator, createRequest(title, "product-1"))
	s.Require().NoError(err)
	return res.OfferID
}

func (s *OfferCommandsTestSuite) TestCreate() {
	s.Run("success: offer, lookup and event are written together", func() {
		res, err := s.uc.Create(s.ctx, operator, createRequest("Linen Dress", "product-1"))
		s.Require().NoError(err)
		s.Equal(aggregate.Version(0), res.Version)

		rm, err := s.store.FindByID(s.ctx, res.OfferID)
		s.Require().NoError(err)
		s.Equal("linen-dress", rm.Alias)
		s.Equal(string(offer.StateDraft), rm.State)
		s.Equal("P-0001", rm.ProductNumber)
		s.Require().Len(rm.Links, 1)
		s.Equal("Old", rm.Links[0].Name)

		events := s.store.Events(res.OfferID)
		s.Require().Len(events, 1)
		s.Equal(offer.EventCreated, events[0].Type)
		s.Equal(operator, events[0].Agent)
		s.NotEqual(uuid.Nil, events[0].ID)
	})

	s.Run("unknown product is a validation error", func() {
		_, err := s.uc.Create(s.ctx, operator, createRequest("Other", "missing"))
		s.ErrorIs(err, commands.ErrUnknownProduct)
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("alias collision names the conflicting offer", func() {
		first := s.create("Wool Coat")
		_, err := s.uc.Create(s.ctx, operator, createRequest("wool  coat!", "product-1"))

		var inUse *offer.AliasAlreadyInUseError
		s.Require().ErrorAs(err, &inUse)
		s.Equal(first, inUse.ConflictingOfferID)
		s.Equal(offer.Alias("wool-coat"), inUse.Alias)
		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("viewer may not create", func() {
		_, err := s.uc.Create(s.ctx, viewer, createRequest("Viewer Dress", "product-1"))
		s.True(errs.Is(err, errs.ErrUnauthorized))
	})
}

func (s *OfferCommandsTestSuite) TestLifecycle() {
	id := s.create("Lifecycle Dress")

	res, err := s.uc.Publish(s.ctx, operator, id, 0)
	s.Require().NoError(err)
	s.Equal(aggregate.Version(1), res.Version)

	res, err = s.uc.Reserve(s.ctx, operator, id, 1)
	s.Require().NoError(err)
	s.Equal(aggregate.Version(2), res.Version)

	res, err = s.uc.Archive(s.ctx, operator, id, 2)
	s.Require().NoError(err)
	s.Equal(aggregate.Version(3), res.Version)

	rm, err := s.store.FindByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(string(offer.StateArchived), rm.State)
	s.False(rm.Published)
	s.False(rm.Reserved)
	s.Require().NotNil(rm.ArchivedAt)

	for name, call := range map[string]func() (*commands.CommandResult, error){
		"publish":   func() (*commands.CommandResult, error) { return s.uc.Publish(s.ctx, operator, id, 3) },
		"reserve":   func() (*commands.CommandResult, error) { return s.uc.Reserve(s.ctx, operator, id, 3) },
		"unreserve": func() (*commands.CommandResult, error) { return s.uc.Unreserve(s.ctx, operator, id, 3) },
		"delete":    func() (*commands.CommandResult, error) { return s.uc.Delete(s.ctx, admin, id, 3) },
	} {
		_, err := call()
		var archived *offer.AlreadyArchivedError
		s.ErrorAs(err, &archived, name)
	}
	o, ok := s.store.Offer(id)
	s.Require().True(ok)
	s.Equal(aggregate.Version(3), o.Version())
	s.Len(s.store.Events(id), 4)
}

func (s *OfferCommandsTestSuite) TestVersionGuard() {
	id := s.create("Guarded Dress")
	_, err := s.uc.Publish(s.ctx, operator, id, 0)
	s.Require().NoError(err)

	s.Run("stale version", func() {
		_, err := s.uc.UpdateSize(s.ctx, operator, id, 0, "XL")
		s.True(aggregate.IsOutdated(err))
		rm, _ := s.store.FindByID(s.ctx, id)
		s.Equal("L", rm.Size)
	})

	s.Run("missing offer", func() {
		_, err := s.uc.Publish(s.ctx, operator, uuid.New(), 0)
		s.True(aggregate.IsNotFound(err))
	})

	s.Run("remove discount twice against the same version", func() {
		res, err := s.uc.RemoveDiscount(s.ctx, operator, id, 1)
		s.Require().NoError(err)
		s.Equal(aggregate.Version(2), res.Version)

		_, err = s.uc.RemoveDiscount(s.ctx, operator, id, 1)
		s.True(aggregate.IsOutdated(err))
	})
}

func (s *OfferCommandsTestSuite) TestUpdateTitle() {
	first := s.create("First Dress")
	second := s.create("Second Dress")

	s.Run("alias held by another offer", func() {
		_, err := s.uc.UpdateTitle(s.ctx, operator, second, 0, "First-Dress")
		var inUse *offer.AliasAlreadyInUseError
		s.Require().ErrorAs(err, &inUse)
		s.Equal(first, inUse.ConflictingOfferID)
		s.False(aggregate.IsOutdated(err))

		o, _ := s.store.Offer(second)
		s.Equal(aggregate.Version(0), o.Version())
	})

	s.Run("renaming releases the old alias", func() {
		_, err := s.uc.UpdateTitle(s.ctx, operator, first, 0, "Renamed Dress")
		s.Require().NoError(err)

		_, err = s.uc.UpdateTitle(s.ctx, operator, second, 0, "First Dress")
		s.Require().NoError(err)

		rm, err := s.store.FindByAlias(s.ctx, "first-dress")
		s.Require().NoError(err)
		s.Equal(second, rm.ID)
	})

	s.Run("invalid title", func() {
		_, err := s.uc.UpdateTitle(s.ctx, operator, first, 1, " ")
		s.ErrorIs(err, offer.ErrEmptyTitle)
	})
}

func (s *OfferCommandsTestSuite) TestPricing() {
	id := s.create("Priced Dress")

	_, err := s.uc.AddDiscount(s.ctx, operator, id, 0, commands.MoneyInput{Amount: 2999, Currency: "EUR"})
	s.ErrorIs(err, offer.ErrDiscountNotLower)

	_, err = s.uc.AddDiscount(s.ctx, operator, id, 0, commands.MoneyInput{Amount: 1499, Currency: "eur"})
	s.Require().NoError(err)

	_, err = s.uc.UpdatePrice(s.ctx, operator, id, 1, commands.MoneyInput{Amount: 3999, Currency: "EUR"})
	s.Require().NoError(err)

	rm, err := s.store.FindByID(s.ctx, id)
	s.Require().NoError(err)
	s.Nil(rm.DiscountedPrice)
	s.Equal(int64(3999), rm.Price.Amount)
	s.Equal(int64(3999), rm.EffectivePrice.Amount)
	s.Require().Len(rm.PriceHistory, 1)
	s.Equal(int64(2999), rm.PriceHistory[0].Price.Amount)
	s.Equal(s.clock.Now(), rm.PriceHistory[0].SupersededAt)
}

func (s *OfferCommandsTestSuite) TestDelete() {
	s.Run("draft is removed from store and lookup", func() {
		id := s.create("Doomed Dress")
		_, err := s.uc.Delete(s.ctx, admin, id, 0)
		s.Require().NoError(err)

		_, ok := s.store.Offer(id)
		s.False(ok)
		_, err = s.store.FindByID(s.ctx, id)
		s.True(errs.Is(err, errs.ErrNotFound))

		// the alias is free again
		s.create("Doomed Dress")
	})

	s.Run("published offer cannot be deleted", func() {
		id := s.create("Published Dress")
		_, err := s.uc.Publish(s.ctx, operator, id, 0)
		s.Require().NoError(err)

		_, err = s.uc.Delete(s.ctx, admin, id, 1)
		var nonDraft *offer.CannotDeleteNonDraftError
		s.ErrorAs(err, &nonDraft)
	})

	s.Run("operator lacks delete permission", func() {
		id := s.create("Kept Dress")
		_, err := s.uc.Delete(s.ctx, operator, id, 0)
		var missing *dompermission.MissingPermissionError
		s.ErrorAs(err, &missing)
	})
}

func TestConcurrentPublish(t *testing.T) {
	store := inmemory.NewStore()
	seedProduct(store, "product-1")
	uc := commands.NewOfferCommands(store, permission.NewRoleChecker(discardLogger()), clock.NewRealClock(), discardLogger())

	res, err := uc.Create(context.Background(), operator, createRequest("Raced Dress", "product-1"))
	require.NoError(t, err)

	const racers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes []*commands.CommandResult
		outdated  int
	)
	start := make(chan struct{})
	for range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			r, err := uc.Publish(context.Background(), operator, res.OfferID, 0)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes = append(successes, r)
			case aggregate.IsOutdated(err):
				outdated++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Len(t, successes, 1)
	assert.Equal(t, aggregate.Version(1), successes[0].Version)
	assert.Equal(t, racers-1, outdated)
	assert.Len(t, store.Events(res.OfferID), 2)
}

func TestPermissionIsCheckedFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := sharedmock.NewMockPermissionChecker(ctrl)
	store := inmemory.NewStore()
	uc := commands.NewOfferCommands(store, checker, clock.NewRealClock(), discardLogger())

	id := uuid.New()
	denied := dompermission.NewMissingPermission(viewer, dompermission.ActionUpdateTitle,
		dompermission.InstanceResource(aggregate.TypeOffer, id.String()))
	checker.EXPECT().
		Check(gomock.Any(), viewer, dompermission.ActionUpdateTitle, dompermission.InstanceResource(aggregate.TypeOffer, id.String())).
		Return(denied).Times(1)

	// Empty title and unknown offer would both fail later; permission wins.
	_, err := uc.UpdateTitle(context.Background(), viewer, id, 7, "")
	assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	assert.False(t, errs.Is(err, errs.ErrValidation))
	assert.False(t, aggregate.IsNotFound(err))
}
