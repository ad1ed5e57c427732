package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) Money {
	t.Helper()
	d, err := stddec.NewFromString(s)
	require.NoError(t, err)
	return NewMoneyFromDecimal(d)
}

func TestRoundToNearest(t *testing.T) {
	ten := stddec.NewFromInt(10)
	cases := []struct {
		in   string
		unit stddec.Decimal
		out  string
	}{
		{"32804", ten, "32800"},
		{"32805", ten, "32810"},
		{"32804.99", ten, "32800"},
		{"32805.01", ten, "32810"},
		{"0", ten, "0"},
		{"4.99", ten, "0"},
		{"5", ten, "10"},
		{"-15", ten, "-20"},
		{"1234.5", stddec.NewFromInt(1), "1235"},
		{"1234.5", stddec.Zero, "1234.5"},
	}
	for _, c := range cases {
		got := money(t, c.in).RoundToNearest(c.unit)
		want := money(t, c.out)
		assert.True(t, got.Decimal.Equal(want.Decimal), "RoundToNearest(%s, %s) = %s, want %s", c.in, c.unit, got.Decimal, c.out)
	}
}

func TestClampAndCap(t *testing.T) {
	assert.True(t, money(t, "-500").ClampNonNegative().IsZero())
	assert.True(t, money(t, "500").ClampNonNegative().Decimal.Equal(stddec.NewFromInt(500)))

	limit := money(t, "150000")
	assert.True(t, money(t, "200000").Cap(limit).Decimal.Equal(limit.Decimal))
	assert.True(t, money(t, "90000").Cap(limit).Decimal.Equal(stddec.NewFromInt(90000)))
}

func TestArithmeticAndComparisons(t *testing.T) {
	a := money(t, "100")
	b := money(t, "40")

	assert.Equal(t, "140", a.Add(b).Decimal.String())
	assert.Equal(t, "60", a.Sub(b).Decimal.String())
	assert.Equal(t, "4", a.Mul(stddec.NewFromFloat(0.04)).Decimal.String())
	assert.Equal(t, "25", a.Div(stddec.NewFromInt(4)).Decimal.String())
	assert.Equal(t, "1560.375", money(t, "41610").Div(stddec.NewFromInt(4)).Mul(stddec.NewFromFloat(0.15)).Decimal.String())

	assert.True(t, a.GreaterThan(b))
	assert.True(t, b.LessThan(a))
	assert.True(t, b.LessThanOrEqual(money(t, "40")))
	assert.False(t, a.LessThanOrEqual(b))
	assert.True(t, Min(a, b).Decimal.Equal(b.Decimal))
	assert.True(t, Max(a, b).Decimal.Equal(a.Decimal))
	assert.True(t, Zero().IsZero())
}
