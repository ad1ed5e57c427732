package calculation

import (
	"fmt"

	"github.com/rpgo/incometax/internal/domain"
	"github.com/shopspring/decimal"
)

// BreakEvenResult describes the smallest old-regime deduction that makes the
// old regime no more expensive than the new one for a given income.
type BreakEvenResult struct {
	AnnualIncome       decimal.Decimal `json:"annualIncome" yaml:"annualIncome"`
	IsSalaried         bool            `json:"isSalaried" yaml:"isSalaried"`
	NewRegimeTax       decimal.Decimal `json:"newRegimeTax" yaml:"newRegimeTax"`
	BreakEvenDeduction decimal.Decimal `json:"breakEvenDeduction" yaml:"breakEvenDeduction"`
	OldRegimeTax       decimal.Decimal `json:"oldRegimeTax" yaml:"oldRegimeTax"`
	Iterations         int             `json:"iterations" yaml:"iterations"`
}

// CalculateBreakEvenDeduction binary-searches the uncapped old-regime deduction
// (excluding the standard deduction) at which the old regime's total tax first
// drops to or below the new regime's total. The answer is a whole currency unit.
func (ce *CalculationEngine) CalculateBreakEvenDeduction(annualIncome decimal.Decimal, isSalaried bool) (*BreakEvenResult, error) {
	newReq := domain.TaxRequest{AnnualIncome: annualIncome, Regime: domain.RegimeNew, IsSalaried: isSalaried}
	newResult, err := ce.Calculate(newReq)
	if err != nil {
		return nil, err
	}
	target := newResult.TotalTax

	oldTax := func(deduction decimal.Decimal) (decimal.Decimal, error) {
		res, err := ce.Calculate(domain.TaxRequest{
			AnnualIncome: annualIncome,
			Regime:       domain.RegimeOld,
			IsSalaried:   isSalaried,
			Deductions:   domain.NewAmountDeduction(deduction),
		})
		if err != nil {
			return decimal.Zero, err
		}
		return res.TotalTax, nil
	}

	result := &BreakEvenResult{
		AnnualIncome: annualIncome,
		IsSalaried:   isSalaried,
		NewRegimeTax: target,
	}

	atZero, err := oldTax(decimal.Zero)
	if err != nil {
		return nil, err
	}
	if atZero.LessThanOrEqual(target) {
		result.BreakEvenDeduction = decimal.Zero
		result.OldRegimeTax = atZero
		return result, nil
	}

	// Old tax is non-increasing in the deduction and reaches zero once the
	// deduction covers the whole income, so hi always satisfies the target.
	lo := decimal.Zero
	hi := annualIncome
	one := decimal.NewFromInt(1)
	two := decimal.NewFromInt(2)
	maxIterations := 64

	for result.Iterations < maxIterations && hi.Sub(lo).GreaterThan(one) {
		result.Iterations++
		mid := lo.Add(hi).Div(two).Floor()
		tax, err := oldTax(mid)
		if err != nil {
			return nil, fmt.Errorf("break-even search failed at deduction %s: %w", mid, err)
		}
		if tax.LessThanOrEqual(target) {
			hi = mid
		} else {
			lo = mid
		}
	}

	result.BreakEvenDeduction = hi.Ceil()
	result.OldRegimeTax, err = oldTax(result.BreakEvenDeduction)
	if err != nil {
		return nil, err
	}
	ce.Logger.Debugf("break-even deduction for income %s: %s after %d iterations", annualIncome, result.BreakEvenDeduction, result.Iterations)
	return result, nil
}
