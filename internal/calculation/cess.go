package calculation

import (
	"github.com/rpgo/incometax/internal/domain"
	money "github.com/rpgo/incometax/pkg/decimal"
	"github.com/shopspring/decimal"
)

// CessFinalizer adds the flat cess and rounds the total
type CessFinalizer struct {
	Rate         decimal.Decimal
	RoundingUnit decimal.Decimal
}

// NewCessFinalizer reads the cess rate and rounding unit from a rules table
func NewCessFinalizer(rules *domain.TaxRules) *CessFinalizer {
	return &CessFinalizer{Rate: rules.CessRate, RoundingUnit: rules.RoundingUnit}
}

// Finalize returns the unrounded cess and the total rounded half away from
// zero to the nearest rounding unit.
func (cf *CessFinalizer) Finalize(baseTax decimal.Decimal) (cess, totalTax decimal.Decimal) {
	cess = money.NewMoneyFromDecimal(baseTax).Mul(cf.Rate).Decimal
	totalTax = cf.Round(baseTax.Add(cess))
	return cess, totalTax
}

// Round applies the currency rounding rule on its own
func (cf *CessFinalizer) Round(amount decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(amount).RoundToNearest(cf.RoundingUnit).Decimal
}
