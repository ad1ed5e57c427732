package calculation

import (
	"github.com/rpgo/incometax/internal/domain"
	money "github.com/rpgo/incometax/pkg/decimal"
	"github.com/shopspring/decimal"
)

// DeductionNormalizer collapses raw deduction input into one capped figure
type DeductionNormalizer struct {
	StandardDeduction decimal.Decimal
	Regimes           map[domain.Regime]domain.RegimeRules
}

// NewDeductionNormalizer binds the normalizer to a rules table
func NewDeductionNormalizer(rules *domain.TaxRules) *DeductionNormalizer {
	return &DeductionNormalizer{
		StandardDeduction: rules.StandardDeduction,
		Regimes:           rules.Regimes,
	}
}

// Normalize returns the total deduction allowed for the regime.
// Itemized categories only count where the regime allows them; the standard
// deduction applies to salaried taxpayers in both regimes.
func (dn *DeductionNormalizer) Normalize(input domain.DeductionInput, regime domain.Regime, isSalaried bool) decimal.Decimal {
	total := money.Zero()
	if isSalaried {
		total = total.Add(money.NewMoneyFromDecimal(dn.StandardDeduction))
	}

	rules, ok := dn.Regimes[regime]
	if !ok || !rules.AllowItemized {
		return total.Decimal
	}

	c := input.Canonical()
	total = total.
		Add(money.NewMoneyFromDecimal(c.Section80C).Cap(money.NewMoneyFromDecimal(rules.Caps.Section80C))).
		Add(money.NewMoneyFromDecimal(c.Section80D).Cap(money.NewMoneyFromDecimal(rules.Caps.Section80D))).
		Add(money.NewMoneyFromDecimal(c.Section80G).Cap(money.NewMoneyFromDecimal(rules.Caps.Section80G))).
		Add(money.NewMoneyFromDecimal(c.Other))
	return total.Decimal
}

// TaxableIncome subtracts the deduction and floors the result at zero
func TaxableIncome(annualIncome, deduction decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(annualIncome).Sub(money.NewMoneyFromDecimal(deduction)).ClampNonNegative().Decimal
}
