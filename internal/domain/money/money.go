package money

import (
	"cashdrawer-api/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits every amount is stored with.
const Scale = 2

var (
	ErrNegativeAmount = errs.New("amount must not be negative")
	ErrTooPrecise     = errs.New("amount must have at most two decimal places")
)

// Money is a non-negative amount in the merchant's single currency.
type Money struct {
	amount decimal.Decimal
}

var Zero = Money{amount: decimal.Zero}

func New(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	if !d.Round(Scale).Equal(d) {
		return Money{}, ErrTooPrecise
	}
	return Money{amount: d}, nil
}

// Parse accepts the textual form used on the wire and in the database.
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.Wrap(err, "invalid amount")
	}
	return New(d)
}

// MustParse is for constants and tests.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal { return m.amount }
func (m Money) IsZero() bool             { return m.amount.IsZero() }
func (m Money) String() string           { return m.amount.StringFixed(Scale) }

func (m Money) Equal(other Money) bool       { return m.amount.Equal(other.amount) }
func (m Money) LessThan(other Money) bool    { return m.amount.LessThan(other.amount) }
func (m Money) GreaterThan(other Money) bool { return m.amount.GreaterThan(other.amount) }

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub fails instead of going below zero.
func (m Money) Sub(other Money) (Money, error) {
	res := m.amount.Sub(other.amount)
	if res.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: res}, nil
}
