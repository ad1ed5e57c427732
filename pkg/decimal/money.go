package decimal

import (
	"github.com/shopspring/decimal"
)

// Money is a rupee amount. The engine keeps full precision until the final
// rounding to the nearest unit.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal wraps d
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Zero returns a zero amount
func Zero() Money {
	return Money{decimal.Zero}
}

// RoundToNearest rounds to the nearest multiple of unit, half away from zero.
// A non-positive unit leaves the amount unchanged.
func (m Money) RoundToNearest(unit decimal.Decimal) Money {
	if !unit.IsPositive() {
		return m
	}
	return Money{m.Decimal.Div(unit).Round(0).Mul(unit)}
}

// ClampNonNegative floors the amount at zero
func (m Money) ClampNonNegative() Money {
	return Max(m, Zero())
}

// Cap limits the amount to ceiling
func (m Money) Cap(ceiling Money) Money {
	return Min(m, ceiling)
}

func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul scales the amount by a rate or fraction
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides without intermediate rounding beyond decimal.DivisionPrecision
func (m Money) Div(divisor decimal.Decimal) Money {
	return Money{m.Decimal.Div(divisor)}
}

func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// LessThanOrEqual is used for inclusive thresholds such as the rebate limit
func (m Money) LessThanOrEqual(other Money) bool {
	return m.Decimal.LessThanOrEqual(other.Decimal)
}

// Min returns the smaller amount
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger amount
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
