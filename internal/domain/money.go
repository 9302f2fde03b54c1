package domain

import (
	"fmt"
	"math"
	"strings"
)

// DefaultCurrency is the currency used when none is specified.
const DefaultCurrency = "BRL"

// Money is an immutable, non-negative monetary value with two fractional
// digits, stored as an integer number of cents. Construction rounds the
// input half away from zero (math.Round) to the nearest cent. The input is
// a float64, so amounts without an exact binary representation round on
// their stored value: 100.005 arrives as 100.00499... and becomes 10000
// cents, not 10001.
type Money struct {
	cents    int64
	currency string
}

// NewMoney validates and rounds amount to a Money value.
func NewMoney(amount float64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	if strings.TrimSpace(currency) == "" {
		return Money{}, ErrInvalidCurrency
	}
	return Money{cents: int64(math.Round(amount * 100)), currency: currency}, nil
}

// ZeroMoney returns zero in the default currency.
func ZeroMoney() Money {
	return Money{cents: 0, currency: DefaultCurrency}
}

// MoneyFromCents rebuilds a Money value from its persisted representation.
// It performs no validation; callers pass values produced by NewMoney.
func MoneyFromCents(cents int64, currency string) Money {
	return Money{cents: cents, currency: currency}
}

// Add returns the sum of m and other. Currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if other.currency != m.currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return Money{cents: m.cents + other.cents, currency: m.currency}, nil
}

// Subtract returns m minus other. Currencies must match and the result
// cannot be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if other.currency != m.currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	result := m.cents - other.cents
	if result < 0 {
		return Money{}, ErrNegativeResult
	}
	return Money{cents: result, currency: m.currency}, nil
}

// Multiply scales m by factor, rounding the result to the nearest cent
// half away from zero.
func (m Money) Multiply(factor float64) (Money, error) {
	if factor < 0 {
		return Money{}, fmt.Errorf("%w: %v", ErrNegativeMultiplier, factor)
	}
	return Money{cents: int64(math.Round(float64(m.cents) * factor)), currency: m.currency}, nil
}

// Amount returns the value in currency units.
func (m Money) Amount() float64 {
	return float64(m.cents) / 100
}

// Cents returns the value as an integer number of cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// Equal reports value equality on (amount, currency).
func (m Money) Equal(other Money) bool {
	return m.cents == other.cents && m.currency == other.currency
}

func (m Money) String() string {
	return fmt.Sprintf("%s %.2f", m.currency, m.Amount())
}
