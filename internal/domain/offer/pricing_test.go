//go:build unit

package offer_test

import (
	"testing"
	"time"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/domain/money"
	"catalog-service/internal/domain/offer"
	"catalog-service/internal/pkg/errs"
	"catalog-service/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eur(amount int64) money.Money { return money.MustNew(amount, "EUR") }

func TestDiscountScenario(t *testing.T) {
	o := newDraft(t)
	require.Equal(t, eur(2999), o.Pricing().Price())

	_, _, err := offer.Apply(o, offer.AddDiscount{Target: at(o), DiscountedPrice: eur(2999)}, now)
	assert.ErrorIs(t, err, offer.ErrDiscountNotLower)
	assert.True(t, errs.Is(err, errs.ErrValidation))
	assert.False(t, o.Pricing().HasDiscount())

	o = mustApply(t, o, offer.AddDiscount{Target: offer.Target{OfferID: o.ID(), ExpectedVersion: 0}, DiscountedPrice: eur(1499)})
	assert.Equal(t, aggregate.Version(1), o.Version())
	d, ok := o.Pricing().DiscountedPrice()
	require.True(t, ok)
	assert.Equal(t, eur(1499), d)
	assert.Equal(t, eur(1499), o.Pricing().Effective())
	assert.Empty(t, o.Pricing().History())

	o = mustApply(t, o, offer.UpdatePrice{Target: offer.Target{OfferID: o.ID(), ExpectedVersion: 1}, Price: eur(3999)})
	assert.Equal(t, eur(3999), o.Pricing().Price())
	assert.False(t, o.Pricing().HasDiscount())
	require.Len(t, o.Pricing().History(), 1)
	assert.Equal(t, eur(2999), o.Pricing().History()[0].Price)
	assert.Equal(t, now, o.Pricing().History()[0].SupersededAt)
}

func TestAddDiscount(t *testing.T) {
	cases := []struct {
		name       string
		discounted money.Money
		errIs      error
	}{
		{"one cent below", eur(2998), nil},
		{"free", eur(0), nil},
		{"equal", eur(2999), offer.ErrDiscountNotLower},
		{"above", eur(5000), offer.ErrDiscountNotLower},
		{"other currency", money.MustNew(1000, "USD"), offer.ErrDiscountCurrency},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := newDraft(t)
			next, ev, err := offer.Apply(o, offer.AddDiscount{Target: at(o), DiscountedPrice: tc.discounted}, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				assert.Nil(t, next)
				assert.False(t, o.Pricing().HasDiscount())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, offer.EventDiscountAdded, ev.Type)
			d, _ := next.Pricing().DiscountedPrice()
			assert.Equal(t, tc.discounted, d)
		})
	}
}

func TestUpdatePriceHistory(t *testing.T) {
	o := newDraft(t)
	prices := []int64{3100, 2800, 4500, 1999, 2000}
	expected := []money.Money{o.Pricing().Price()}

	for i, amount := range prices {
		if i%2 == 0 {
			o = mustApply(t, o, offer.AddDiscount{Target: at(o), DiscountedPrice: eur(o.Pricing().Price().Amount() - 1)})
		}
		o = mustApply(t, o, offer.UpdatePrice{Target: at(o), Price: eur(amount)})
		assert.False(t, o.Pricing().HasDiscount(), "update price must clear the discount")
		expected = append(expected, eur(amount))
	}

	history := o.Pricing().History()
	require.Len(t, history, len(prices))
	for i, entry := range history {
		assert.Equal(t, expected[i], entry.Price, "entry %d", i)
	}
	assert.Equal(t, eur(2000), o.Pricing().Price())
}

func TestUpdatePriceRejections(t *testing.T) {
	o := newDraft(t)

	_, _, err := offer.Apply(o, offer.UpdatePrice{Target: at(o), Price: eur(0)}, now)
	assert.ErrorIs(t, err, offer.ErrNonPositivePrice)
}

func TestUpdatePriceToSamePriceClearsDiscount(t *testing.T) {
	o := newDraft(t)
	o = mustApply(t, o, offer.AddDiscount{Target: at(o), DiscountedPrice: eur(1499)})
	require.True(t, o.Pricing().HasDiscount())

	o = mustApply(t, o, offer.UpdatePrice{Target: at(o), Price: eur(2999)})
	assert.Equal(t, aggregate.Version(2), o.Version())
	assert.Equal(t, eur(2999), o.Pricing().Price())
	assert.False(t, o.Pricing().HasDiscount())
	assert.Equal(t, eur(2999), o.Pricing().Effective())
	require.Len(t, o.Pricing().History(), 1)
	assert.Equal(t, eur(2999), o.Pricing().History()[0].Price)
}

func TestRemoveDiscount(t *testing.T) {
	t.Run("clears present discount", func(t *testing.T) {
		o := newDraft(t)
		o = mustApply(t, o, offer.AddDiscount{Target: at(o), DiscountedPrice: eur(1000)})
		o = mustApply(t, o, offer.RemoveDiscount{Target: at(o)})
		assert.False(t, o.Pricing().HasDiscount())
		assert.Empty(t, o.Pricing().History())
	})

	t.Run("absent discount succeeds once then conflicts on the same version", func(t *testing.T) {
		o := newDraft(t)
		stale := at(o)

		next, ev, err := offer.Apply(o, offer.RemoveDiscount{Target: stale}, now)
		require.NoError(t, err)
		assert.Equal(t, offer.EventDiscountRemoved, ev.Type)
		assert.Equal(t, aggregate.Version(1), next.Version())

		_, _, err = offer.Apply(next, offer.RemoveDiscount{Target: stale}, now)
		assert.True(t, aggregate.IsOutdated(err))
	})
}

func TestPricingIsImmutable(t *testing.T) {
	p, err := offer.NewPricing(eur(2000))
	require.NoError(t, err)

	updated, err := p.UpdatePrice(eur(2500), time.Now())
	require.NoError(t, err)
	assert.Empty(t, p.History())
	assert.Len(t, updated.History(), 1)

	_, err = offer.NewPricing(eur(0))
	assert.ErrorIs(t, err, offer.ErrNonPositivePrice)
}

func TestAliasDerivation(t *testing.T) {
	cases := map[string]offer.Alias{
		"Summer Dress":           "summer-dress",
		"  Café  Crème -- 2024 ": "cafe-creme-2024",
		"Straße & Söhne":         "strasse-soehne",
		"A/B_c":                  "a-b-c",
		"日本":                     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, offer.DeriveAlias(in), in)
	}

	_, err := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) { b.Title = "日本" }).BuildDomain()
	assert.ErrorIs(t, err, offer.ErrEmptyAlias)
}
