package domain

import "github.com/shopspring/decimal"

// TaxRequest is the caller-facing input to the engine
type TaxRequest struct {
	AnnualIncome decimal.Decimal `yaml:"annualIncome" json:"annualIncome"`
	Regime       Regime          `yaml:"regime" json:"regime"`
	IsSalaried   bool            `yaml:"isSalaried" json:"isSalaried"`
	Deductions   DeductionInput  `yaml:"deductions" json:"deductions"`
	// FiscalYear is optional ("2023-24"); when set, installments carry concrete dates.
	FiscalYear string `yaml:"fiscalYear,omitempty" json:"fiscalYear,omitempty"`
}
