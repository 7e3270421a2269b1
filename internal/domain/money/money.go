package money

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"catalog-service/internal/pkg/errs"
)

var (
	ErrInvalidCurrency  = errs.Mark(errors.New("currency must be a 3-letter ISO code"), errs.ErrValidation)
	ErrNegativeAmount   = errs.Mark(errors.New("amount cannot be negative"), errs.ErrValidation)
	ErrCurrencyMismatch = errs.Mark(errors.New("currencies do not match"), errs.ErrValidation)
)

var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
)

func NewCurrency(s string) (Currency, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !currencyRegex.MatchString(s) {
		return "", ErrInvalidCurrency
	}
	return Currency(s), nil
}

func (c Currency) String() string { return string(c) }

// Money is an amount in minor units (cents) of a currency. Equality and ordering are
// component-wise; amounts of different currencies are never ordered.
type Money struct {
	amount   int64
	currency Currency
}

func New(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	c, err := NewCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: amount, currency: c}, nil
}

// MustNew panics on invalid input; intended for constants and tests.
func MustNew(amount int64, currency string) Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Amount() int64      { return m.amount }
func (m Money) Currency() Currency { return m.currency }
func (m Money) IsZero() bool       { return m.amount == 0 }

func (m Money) Equal(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

func (m Money) Less(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, errs.Wrapf(ErrCurrencyMismatch, "%s vs %s", m.currency, other.currency)
	}
	return m.amount < other.amount, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.amount/100, m.amount%100, m.currency)
}
