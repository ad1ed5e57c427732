package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxBreakdownEntry is the tax charged within one slab
type TaxBreakdownEntry struct {
	SlabUpTo     *decimal.Decimal `yaml:"slab_upto" json:"slabUpto"`
	Rate         decimal.Decimal  `yaml:"slab_rate" json:"slabRate"`
	IncomeInBand decimal.Decimal  `yaml:"slab_income" json:"slabIncome"`
	TaxForBand   decimal.Decimal  `yaml:"tax" json:"tax"`
}

// TaxResult is built fresh for every request
type TaxResult struct {
	TaxableIncome decimal.Decimal     `yaml:"taxable_income" json:"taxableIncome"`
	BaseTax       decimal.Decimal     `yaml:"base_tax" json:"baseTax"`
	Cess          decimal.Decimal     `yaml:"cess" json:"cess"`
	TotalTax      decimal.Decimal     `yaml:"total_tax" json:"totalTax"`
	Breakdown     []TaxBreakdownEntry `yaml:"breakup" json:"breakup"`
}

// AdvanceTaxInstallment is one cumulative advance-tax milestone
type AdvanceTaxInstallment struct {
	Quarter          string          `yaml:"quarter" json:"quarter"`
	DueDate          string          `yaml:"due_date" json:"dueDate"`
	CumulativeAmount decimal.Decimal `yaml:"amount" json:"amount"`
	DueOn            *time.Time      `yaml:"due_on,omitempty" json:"dueOn,omitempty"`
}

// TaxAssessment bundles the engine output for a single request
type TaxAssessment struct {
	RulesYear           string                  `yaml:"rules_year" json:"rulesYear"`
	FiscalYear          string                  `yaml:"fiscal_year,omitempty" json:"fiscalYear,omitempty"`
	Regime              Regime                  `yaml:"regime" json:"regime"`
	AnnualIncome        decimal.Decimal         `yaml:"annual_income" json:"annualIncome"`
	IsSalaried          bool                    `yaml:"is_salaried" json:"isSalaried"`
	NormalizedDeduction decimal.Decimal         `yaml:"normalized_deduction" json:"normalizedDeduction"`
	FullyRebated        bool                    `yaml:"fully_rebated" json:"fullyRebated"`
	Result              TaxResult               `yaml:"result" json:"result"`
	Schedule            []AdvanceTaxInstallment `yaml:"quarterly_schedule" json:"quarterlySchedule"`
}

// RegimeComparison evaluates the same request under both regimes
type RegimeComparison struct {
	Old         *TaxAssessment  `yaml:"old" json:"old"`
	New         *TaxAssessment  `yaml:"new" json:"new"`
	Recommended Regime          `yaml:"recommended" json:"recommended"`
	Savings     decimal.Decimal `yaml:"savings" json:"savings"`
}
