// Package money provides the monetary value object used across the teller.
//
// It is a value object representing an amount of Indian rupees.
// Invariants:
//   - Amount is always stored in paise (the smallest currency unit).
//   - Amount is never negative; balances and operation amounts share this type.
//   - Arithmetic that would produce a negative or overflowed amount fails.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidAmount is returned when an amount is NaN, infinite or negative.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAmountExceedsMaxSafeInt is returned when an amount does not fit in paise.
	ErrAmountExceedsMaxSafeInt = errors.New("amount exceeds maximum safe integer value")

	// ErrNegativeResult is returned when a subtraction would go below zero.
	ErrNegativeResult = errors.New("resulting amount would be negative")
)

// paisePerRupee is the number of smallest units in one rupee.
const paisePerRupee = 100

// Money represents a non-negative amount of rupees, stored in paise.
type Money struct {
	paise int64
}

// New creates a Money value from a rupee amount expressed as a float.
// Fractions beyond two decimal places are rejected rather than rounded.
func New(rupees float64) (Money, error) {
	if math.IsNaN(rupees) || math.IsInf(rupees, 0) || rupees < 0 {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidAmount, rupees)
	}
	scaled := rupees * paisePerRupee
	if scaled > math.MaxInt64 {
		return Money{}, fmt.Errorf("%w: %v", ErrAmountExceedsMaxSafeInt, rupees)
	}
	paise := math.Round(scaled)
	if math.Abs(scaled-paise) > 1e-6 {
		return Money{}, fmt.Errorf("%w: more than two decimal places: %v", ErrInvalidAmount, rupees)
	}
	return Money{paise: int64(paise)}, nil
}

// Must creates a Money value and panics on error. Intended for constants
// and test fixtures only.
func Must(rupees float64) Money {
	m, err := New(rupees)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%v): %v", rupees, err))
	}
	return m
}

// FromPaise creates a Money value directly from paise.
// Used for hydrating values from a data store.
func FromPaise(paise int64) (Money, error) {
	if paise < 0 {
		return Money{}, fmt.Errorf("%w: %d paise", ErrInvalidAmount, paise)
	}
	return Money{paise: paise}, nil
}

// Zero returns a zero rupee amount.
func Zero() Money { return Money{} }

// Parse reads a decimal rupee amount as written in the ledger file,
// e.g. "50000" or "50000.00". A leading rupee sign is tolerated.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "₹"))
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}
	rupees, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return New(rupees)
}

// Paise returns the amount in paise.
func (m Money) Paise() int64 { return m.paise }

// Float64 returns the amount in rupees. Lossy above 2^53 paise; use
// Paise for exact comparisons.
func (m Money) Float64() float64 { return float64(m.paise) / paisePerRupee }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.paise == 0 }

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool { return m.paise < other.paise }

// GreaterThan reports whether m is strictly larger than other.
func (m Money) GreaterThan(other Money) bool { return m.paise > other.paise }

// Equals reports whether both amounts are the same number of paise.
func (m Money) Equals(other Money) bool { return m.paise == other.paise }

// Add returns m + other, failing on int64 overflow.
func (m Money) Add(other Money) (Money, error) {
	if m.paise > math.MaxInt64-other.paise {
		return Money{}, ErrAmountExceedsMaxSafeInt
	}
	return Money{paise: m.paise + other.paise}, nil
}

// Sub returns m - other, failing when the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.paise > m.paise {
		return Money{}, ErrNegativeResult
	}
	return Money{paise: m.paise - other.paise}, nil
}

// DecimalString renders the amount the way the ledger file stores it:
// plain rupees with two decimal places and no currency sign.
func (m Money) DecimalString() string {
	return fmt.Sprintf("%d.%02d", m.paise/paisePerRupee, m.paise%paisePerRupee)
}

// String renders the amount for dialogs, e.g. "₹50000.00".
func (m Money) String() string {
	return "₹" + m.DecimalString()
}
