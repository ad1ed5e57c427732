package calculation

import (
	"github.com/rpgo/incometax/internal/domain"
	money "github.com/rpgo/incometax/pkg/decimal"
	"github.com/shopspring/decimal"
)

// RebateEvaluator zeroes the liability at or below a regime-specific threshold
type RebateEvaluator struct {
	Thresholds map[domain.Regime]decimal.Decimal
}

// NewRebateEvaluator reads the thresholds from a rules table
func NewRebateEvaluator(rules *domain.TaxRules) *RebateEvaluator {
	thresholds := make(map[domain.Regime]decimal.Decimal, len(rules.Regimes))
	for r, rr := range rules.Regimes {
		thresholds[r] = rr.RebateThreshold
	}
	return &RebateEvaluator{Thresholds: thresholds}
}

// FullyRebated reports whether taxable income is at or below the threshold.
// A regime without a threshold is never rebated.
func (re *RebateEvaluator) FullyRebated(taxableIncome decimal.Decimal, regime domain.Regime) bool {
	threshold, ok := re.Thresholds[regime]
	if !ok {
		return false
	}
	return money.NewMoneyFromDecimal(taxableIncome).LessThanOrEqual(money.NewMoneyFromDecimal(threshold))
}
