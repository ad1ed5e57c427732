package calculation

import (
	"testing"
	"time"

	"github.com/rpgo/incometax/internal/domain"
	"github.com/rpgo/incometax/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeductionNormalizer covers capping, salaried standard deduction and regime isolation
func TestDeductionNormalizer(t *testing.T) {
	normalizer := NewDeductionNormalizer(domain.DefaultTaxRules())

	itemized := func(c80, d80, g80, other int64) domain.DeductionInput {
		return domain.NewItemizedDeduction(domain.DeductionCategories{
			Section80C: decimal.NewFromInt(c80),
			Section80D: decimal.NewFromInt(d80),
			Section80G: decimal.NewFromInt(g80),
			Other:      decimal.NewFromInt(other),
		})
	}

	tests := []struct {
		name       string
		input      domain.DeductionInput
		regime     domain.Regime
		isSalaried bool
		expected   string
	}{
		{
			name:     "Old regime caps 80C at 150000",
			input:    itemized(200000, 0, 0, 0),
			regime:   domain.RegimeOld,
			expected: "150000",
		},
		{
			name:     "Old regime keeps 80C below cap",
			input:    itemized(90000, 0, 0, 0),
			regime:   domain.RegimeOld,
			expected: "90000",
		},
		{
			name:       "Old regime caps every category independently",
			input:      itemized(200000, 30000, 60000, 10000),
			regime:     domain.RegimeOld,
			isSalaried: true,
			expected:   "285000", // 150000 + 25000 + 50000 + 10000 + 50000
		},
		{
			name:     "Old regime numeric input counts as other, uncapped",
			input:    domain.NewAmountDeduction(decimal.NewFromInt(400000)),
			regime:   domain.RegimeOld,
			expected: "400000",
		},
		{
			name:     "Old regime clamps negatives",
			input:    itemized(-5000, -1, 0, -100),
			regime:   domain.RegimeOld,
			expected: "0",
		},
		{
			name:       "Old regime empty input salaried",
			input:      domain.DeductionInput{},
			regime:     domain.RegimeOld,
			isSalaried: true,
			expected:   "50000",
		},
		{
			name:       "New regime ignores itemized deductions when salaried",
			input:      itemized(500000, 100000, 100000, 100000),
			regime:     domain.RegimeNew,
			isSalaried: true,
			expected:   "50000",
		},
		{
			name:     "New regime ignores itemized deductions when not salaried",
			input:    itemized(500000, 0, 0, 0),
			regime:   domain.RegimeNew,
			expected: "0",
		},
		{
			name:     "New regime ignores numeric deduction",
			input:    domain.NewAmountDeduction(decimal.NewFromInt(75000)),
			regime:   domain.RegimeNew,
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizer.Normalize(tt.input, tt.regime, tt.isSalaried)
			assertDecimalEqual(t, tt.expected, got, tt.name)
			assert.False(t, got.IsNegative())
		})
	}
}

// TestNewRegimeIsolation checks that itemized input never changes the new-regime figure
func TestNewRegimeIsolation(t *testing.T) {
	normalizer := NewDeductionNormalizer(domain.DefaultTaxRules())
	large := domain.NewItemizedDeduction(domain.DeductionCategories{Section80C: decimal.NewFromInt(10000000)})

	for _, salaried := range []bool{true, false} {
		withLarge := normalizer.Normalize(large, domain.RegimeNew, salaried)
		withNone := normalizer.Normalize(domain.DeductionInput{}, domain.RegimeNew, salaried)
		assert.True(t, withLarge.Equal(withNone), "salaried=%v: %s vs %s", salaried, withLarge, withNone)
	}
}

func TestTaxableIncomeFloorsAtZero(t *testing.T) {
	assert.True(t, TaxableIncome(decimal.NewFromInt(100000), decimal.NewFromInt(250000)).IsZero())
	assertDecimalEqual(t, "850000", TaxableIncome(decimal.NewFromInt(900000), decimal.NewFromInt(50000)), "taxable")
}

// TestRebateEvaluator checks the threshold boundaries of both regimes
func TestRebateEvaluator(t *testing.T) {
	evaluator := NewRebateEvaluator(domain.DefaultTaxRules())

	tests := []struct {
		regime   domain.Regime
		taxable  string
		expected bool
	}{
		{domain.RegimeOld, "0", true},
		{domain.RegimeOld, "500000", true},
		{domain.RegimeOld, "500000.01", false},
		{domain.RegimeOld, "500001", false},
		{domain.RegimeNew, "500001", true},
		{domain.RegimeNew, "700000", true},
		{domain.RegimeNew, "700001", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.regime)+"_"+tt.taxable, func(t *testing.T) {
			assert.Equal(t, tt.expected, evaluator.FullyRebated(d(t, tt.taxable), tt.regime))
		})
	}

	assert.False(t, evaluator.FullyRebated(decimal.Zero, domain.Regime("flat")))
}

// TestSlabIntegrator checks band-by-band integration over both default tables
func TestSlabIntegrator(t *testing.T) {
	rules := domain.DefaultTaxRules()
	oldSlabs := rules.Regimes[domain.RegimeOld].Slabs
	newSlabs := rules.Regimes[domain.RegimeNew].Slabs

	tests := []struct {
		name        string
		taxable     string
		slabs       domain.SlabTable
		expectedTax string
		entries     int
	}{
		{name: "Zero income", taxable: "0", slabs: oldSlabs, expectedTax: "0", entries: 0},
		{name: "Within first band", taxable: "200000", slabs: oldSlabs, expectedTax: "0", entries: 1},
		{name: "Exactly first boundary", taxable: "250000", slabs: oldSlabs, expectedTax: "0", entries: 1},
		{name: "Old 10 lakh", taxable: "1000000", slabs: oldSlabs, expectedTax: "112500", entries: 3},
		{name: "Old 15 lakh", taxable: "1500000", slabs: oldSlabs, expectedTax: "262500", entries: 4},
		{name: "New 8.5 lakh", taxable: "850000", slabs: newSlabs, expectedTax: "40000", entries: 3},
		{name: "New 16 lakh", taxable: "1600000", slabs: newSlabs, expectedTax: "180000", entries: 6},
		{name: "Fractional income", taxable: "500000.50", slabs: oldSlabs, expectedTax: "12500.1", entries: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, breakdown := SlabIntegrator{}.Integrate(d(t, tt.taxable), tt.slabs)
			assertDecimalEqual(t, tt.expectedTax, tax, "base tax")
			require.Len(t, breakdown, tt.entries)

			sum := decimal.Zero
			taxSum := decimal.Zero
			for _, entry := range breakdown {
				assert.True(t, entry.IncomeInBand.IsPositive())
				sum = sum.Add(entry.IncomeInBand)
				taxSum = taxSum.Add(entry.TaxForBand)
			}
			assertDecimalEqual(t, tt.taxable, sum, "breakdown income sum")
			assert.True(t, taxSum.Equal(tax))
		})
	}
}

func TestSlabIntegratorBreakdownShape(t *testing.T) {
	slabs := domain.DefaultTaxRules().Regimes[domain.RegimeNew].Slabs
	_, breakdown := SlabIntegrator{}.Integrate(decimal.NewFromInt(1600000), slabs)
	require.Len(t, breakdown, 6)

	assertDecimalEqual(t, "300000", *breakdown[0].SlabUpTo, "first bound")
	assertDecimalEqual(t, "0", breakdown[0].Rate, "first rate")
	assertDecimalEqual(t, "300000", breakdown[0].IncomeInBand, "first income")

	last := breakdown[5]
	assert.Nil(t, last.SlabUpTo)
	assertDecimalEqual(t, "0.30", last.Rate, "top rate")
	assertDecimalEqual(t, "100000", last.IncomeInBand, "top income")
	assertDecimalEqual(t, "30000", last.TaxForBand, "top tax")

	// entries must not alias the rules table
	*breakdown[0].SlabUpTo = decimal.NewFromInt(1)
	assertDecimalEqual(t, "300000", *slabs[0].UpTo, "table untouched")
}

// TestCessFinalizer checks cess and rounding half away from zero to the nearest 10
func TestCessFinalizer(t *testing.T) {
	finalizer := NewCessFinalizer(domain.DefaultTaxRules())

	t.Run("Rounding exactness", func(t *testing.T) {
		assertDecimalEqual(t, "32800", finalizer.Round(decimal.NewFromInt(32804)), "32804")
		assertDecimalEqual(t, "32810", finalizer.Round(decimal.NewFromInt(32805)), "32805")
		assertDecimalEqual(t, "32800", finalizer.Round(d(t, "32804.999")), "32804.999")
	})

	tests := []struct {
		base, cess, total string
	}{
		{"40000", "1600", "41600"},
		{"12500.2", "500.008", "13000"},
		{"25000.1", "1000.004", "26000"},
		{"31542.5", "1261.7", "32800"}, // 32804.2
		{"0", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			cess, total := finalizer.Finalize(d(t, tt.base))
			assertDecimalEqual(t, tt.cess, cess, "cess")
			assertDecimalEqual(t, tt.total, total, "total")
		})
	}

	zeroCess := &CessFinalizer{Rate: decimal.Zero, RoundingUnit: decimal.NewFromInt(10)}
	_, total := zeroCess.Finalize(decimal.NewFromInt(32805))
	assertDecimalEqual(t, "32810", total, "zero cess total")
	_, total = zeroCess.Finalize(decimal.NewFromInt(32804))
	assertDecimalEqual(t, "32800", total, "zero cess total")
}

// TestAdvanceTaxScheduler checks cumulative installment amounts and labels
func TestAdvanceTaxScheduler(t *testing.T) {
	scheduler := NewAdvanceTaxScheduler(domain.DefaultTaxRules())

	schedule := scheduler.Schedule(decimal.NewFromInt(40000), nil)
	require.Len(t, schedule, 4)

	expected := []struct {
		quarter, due, amount string
	}{
		{"Q1", "15 Jun", "1500"},
		{"Q2", "15 Sep", "4500"},
		{"Q3", "15 Dec", "7500"},
		{"Q4", "15 Mar", "10000"},
	}
	for i, want := range expected {
		assert.Equal(t, want.quarter, schedule[i].Quarter)
		assert.Equal(t, want.due, schedule[i].DueDate)
		assertDecimalEqual(t, want.amount, schedule[i].CumulativeAmount, want.quarter)
		assert.Nil(t, schedule[i].DueOn)
	}

	t.Run("Amounts stay unrounded", func(t *testing.T) {
		s := scheduler.Schedule(decimal.NewFromInt(41610), nil)
		assertDecimalEqual(t, "1560.375", s[0].CumulativeAmount, "Q1")
	})

	t.Run("Fiscal year dates", func(t *testing.T) {
		fy := dateutil.FiscalYear{StartYear: 2023}
		s := scheduler.Schedule(decimal.NewFromInt(40000), &fy)
		require.NotNil(t, s[0].DueOn)
		assert.Equal(t, time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC), *s[0].DueOn)
		assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), *s[3].DueOn)
	})

	t.Run("Zero tax", func(t *testing.T) {
		for _, inst := range scheduler.Schedule(decimal.Zero, nil) {
			assert.True(t, inst.CumulativeAmount.IsZero())
		}
	})
}
