// Package money represents exact monetary amounts as an integer count
// of minor units (cents), so repeated arithmetic never drifts the way
// float64 rounding does. Parsing and formatting go through
// shopspring/decimal and reject anything that will not fit in two
// fraction digits.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const CentsPerUnit = 100

type Money int64

func FromMinor(cents int64) Money {
	return Money(cents)
}

// Parse converts a decimal string such as "150", "150.5" or "150.50"
// into minor units. More than two fraction digits is an error, not a
// silent truncation.
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	scaled := d.Shift(2)
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("invalid amount %q: more than two decimal places", s)
	}
	if !scaled.BigInt().IsInt64() {
		return 0, fmt.Errorf("invalid amount %q: out of range", s)
	}

	return Money(scaled.IntPart()), nil
}

// MustParse is Parse for literals known to be valid (defaults, tests).
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Minor() int64 {
	return int64(m)
}

func (m Money) Add(o Money) Money {
	return m + o
}

func (m Money) Sub(o Money) Money {
	return m - o
}

func (m Money) Neg() Money {
	return -m
}

// Cmp returns -1, 0 or 1 as m is less than, equal to or greater than o.
func (m Money) Cmp(o Money) int {
	switch {
	case m < o:
		return -1
	case m > o:
		return 1
	default:
		return 0
	}
}

func (m Money) IsZero() bool {
	return m == 0
}

func (m Money) IsNegative() bool {
	return m < 0
}

func (m Money) IsPositive() bool {
	return m > 0
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}
