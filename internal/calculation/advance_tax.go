package calculation

import (
	"github.com/rpgo/incometax/internal/domain"
	"github.com/rpgo/incometax/pkg/dateutil"
	money "github.com/rpgo/incometax/pkg/decimal"
	"github.com/shopspring/decimal"
)

// AdvanceTaxScheduler derives cumulative installment amounts from the final tax
type AdvanceTaxScheduler struct {
	Divisor      decimal.Decimal
	Installments []domain.InstallmentRule
}

// NewAdvanceTaxScheduler reads the installment plan from a rules table
func NewAdvanceTaxScheduler(rules *domain.TaxRules) *AdvanceTaxScheduler {
	return &AdvanceTaxScheduler{Divisor: rules.ScheduleDivisor, Installments: rules.Schedule}
}

// Schedule returns one entry per installment. Amounts are left unrounded.
// When fy is non-nil each entry also carries its calendar due date.
func (s *AdvanceTaxScheduler) Schedule(totalTax decimal.Decimal, fy *dateutil.FiscalYear) []domain.AdvanceTaxInstallment {
	base := money.NewMoneyFromDecimal(totalTax).Div(s.Divisor)
	out := make([]domain.AdvanceTaxInstallment, 0, len(s.Installments))
	for _, inst := range s.Installments {
		entry := domain.AdvanceTaxInstallment{
			Quarter:          inst.Quarter,
			DueDate:          dateutil.FormatDueDate(inst.Month, inst.Day),
			CumulativeAmount: base.Mul(inst.Fraction).Decimal,
		}
		if fy != nil {
			due := fy.DateIn(inst.Month, inst.Day)
			entry.DueOn = &due
		}
		out = append(out, entry)
	}
	return out
}
