package offer

import (
	"errors"
	"slices"
	"time"

	"catalog-service/internal/domain/money"
	"catalog-service/internal/pkg/errs"
)

var (
	ErrNonPositivePrice = errs.Mark(errors.New("price must be greater than zero"), errs.ErrValidation)
	ErrDiscountNotLower = errs.Mark(errors.New("discounted price must be strictly less than price"), errs.ErrValidation)
	ErrDiscountCurrency = errs.Mark(errors.New("discounted price currency differs from price currency"), errs.ErrValidation)
)

// PriceHistoryEntry records a price that was replaced, and when.
type PriceHistoryEntry struct {
	Price        money.Money
	SupersededAt time.Time
}

// Pricing is immutable; every operation returns a new value.
type Pricing struct {
	price           money.Money
	discountedPrice *money.Money
	history         []PriceHistoryEntry
}

func NewPricing(price money.Money) (Pricing, error) {
	if price.Amount() <= 0 {
		return Pricing{}, ErrNonPositivePrice
	}
	return Pricing{price: price}, nil
}

func ReconstructPricing(price money.Money, discounted *money.Money, history []PriceHistoryEntry) Pricing {
	return Pricing{price: price, discountedPrice: discounted, history: slices.Clone(history)}
}

func (p Pricing) Price() money.Money { return p.price }

func (p Pricing) DiscountedPrice() (money.Money, bool) {
	if p.discountedPrice == nil {
		return money.Money{}, false
	}
	return *p.discountedPrice, true
}

func (p Pricing) HasDiscount() bool { return p.discountedPrice != nil }

// Effective is what a buyer pays: the discounted price when present.
func (p Pricing) Effective() money.Money {
	if p.discountedPrice != nil {
		return *p.discountedPrice
	}
	return p.price
}

func (p Pricing) History() []PriceHistoryEntry { return slices.Clone(p.history) }

// UpdatePrice pushes the current price onto the history and always drops the discount,
// since it was computed against the old price.
func (p Pricing) UpdatePrice(newPrice money.Money, now time.Time) (Pricing, error) {
	if newPrice.Amount() <= 0 {
		return p, ErrNonPositivePrice
	}
	history := make([]PriceHistoryEntry, 0, len(p.history)+1)
	history = append(history, p.history...)
	history = append(history, PriceHistoryEntry{Price: p.price, SupersededAt: now})
	return Pricing{price: newPrice, history: history}, nil
}

// AddDiscount sets the discounted price. It must be strictly lower than the price and in
// the same currency. The history is left alone.
func (p Pricing) AddDiscount(discounted money.Money) (Pricing, error) {
	lower, err := discounted.Less(p.price)
	if err != nil {
		return p, errs.Wrap(ErrDiscountCurrency, err.Error())
	}
	if !lower {
		return p, ErrDiscountNotLower
	}
	d := discounted
	p.discountedPrice = &d
	p.history = slices.Clone(p.history)
	return p, nil
}

func (p Pricing) RemoveDiscount() Pricing {
	p.discountedPrice = nil
	p.history = slices.Clone(p.history)
	return p
}
