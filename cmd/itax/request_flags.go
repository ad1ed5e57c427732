package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/incometax/internal/config"
	"github.com/rpgo/incometax/internal/domain"
)

// requestFlags collects a tax request from the command line or from --input
type requestFlags struct {
	input      string
	income     string
	regime     string
	salaried   bool
	fiscalYear string

	deduction  string
	section80C string
	section80D string
	section80G string
	other      string

	rulesFile string
	format    string
	save      string
}

func (f *requestFlags) register(cmd *cobra.Command, withRegime bool) {
	flags := cmd.Flags()
	flags.StringVarP(&f.input, "input", "i", "", "request file (YAML or JSON); flags given alongside it override its fields")
	flags.StringVar(&f.income, "income", "", "gross annual income")
	if withRegime {
		flags.StringVarP(&f.regime, "regime", "r", "", "tax regime: old or new")
	}
	flags.BoolVar(&f.salaried, "salaried", false, "apply the standard deduction for salaried taxpayers")
	flags.StringVar(&f.fiscalYear, "fiscal-year", "", "fiscal year label (e.g. 2024-25) to date the installments")

	flags.StringVar(&f.deduction, "deduction", "", "total claimed deduction, treated as uncategorized")
	flags.StringVar(&f.section80C, "80c", "", "section 80C claim")
	flags.StringVar(&f.section80D, "80d", "", "section 80D claim")
	flags.StringVar(&f.section80G, "80g", "", "section 80G claim")
	flags.StringVar(&f.other, "other", "", "other deductions")

	flags.StringVar(&f.rulesFile, "rules", "", "tax rules file (defaults to the built-in FY 2023-24 table)")
	flags.StringVarP(&f.format, "format", "f", "console", "output format (console, json, yaml, csv)")
	flags.StringVar(&f.save, "save", "", "also write the report to this file")
}

// build assembles and validates the request
func (f *requestFlags) build(cmd *cobra.Command, requireRegime bool) (domain.TaxRequest, error) {
	var req domain.TaxRequest
	if f.input != "" {
		loaded, err := config.NewInputParser().LoadRequestFromFile(f.input)
		if err != nil {
			return req, err
		}
		req = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("income") {
		v, err := parseAmount("income", f.income)
		if err != nil {
			return req, err
		}
		req.AnnualIncome = v
	}
	if flags.Changed("regime") {
		r, err := domain.ParseRegime(f.regime)
		if err != nil {
			return req, err
		}
		req.Regime = r
	}
	if flags.Changed("salaried") {
		req.IsSalaried = f.salaried
	}
	if flags.Changed("fiscal-year") {
		req.FiscalYear = f.fiscalYear
	}

	deductions, set, err := f.deductions(cmd)
	if err != nil {
		return req, err
	}
	if set {
		req.Deductions = deductions
	}

	if err := config.ValidateRequest(&req, requireRegime); err != nil {
		return req, err
	}
	if req.Regime != "" {
		r, _ := domain.ParseRegime(string(req.Regime))
		req.Regime = r
	}
	return req, nil
}

// deductions reads the deduction flags. Any category flag selects the
// itemized form; --deduction alone selects the single-figure form.
func (f *requestFlags) deductions(cmd *cobra.Command) (domain.DeductionInput, bool, error) {
	flags := cmd.Flags()
	categories := []struct {
		flag  string
		value string
		dst   func(*domain.DeductionCategories, decimal.Decimal)
	}{
		{"80c", f.section80C, func(c *domain.DeductionCategories, v decimal.Decimal) { c.Section80C = v }},
		{"80d", f.section80D, func(c *domain.DeductionCategories, v decimal.Decimal) { c.Section80D = v }},
		{"80g", f.section80G, func(c *domain.DeductionCategories, v decimal.Decimal) { c.Section80G = v }},
		{"other", f.other, func(c *domain.DeductionCategories, v decimal.Decimal) { c.Other = v }},
	}

	var itemized domain.DeductionCategories
	anyItemized := false
	for _, cat := range categories {
		if !flags.Changed(cat.flag) {
			continue
		}
		v, err := parseAmount(cat.flag, cat.value)
		if err != nil {
			return domain.DeductionInput{}, false, err
		}
		cat.dst(&itemized, v)
		anyItemized = true
	}

	if anyItemized && flags.Changed("deduction") {
		return domain.DeductionInput{}, false, fmt.Errorf("%w: --deduction cannot be combined with per-section flags", domain.ErrInvalidInput)
	}
	if anyItemized {
		return domain.NewItemizedDeduction(itemized), true, nil
	}
	if flags.Changed("deduction") {
		v, err := parseAmount("deduction", f.deduction)
		if err != nil {
			return domain.DeductionInput{}, false, err
		}
		return domain.NewAmountDeduction(v), true, nil
	}
	return domain.DeductionInput{}, false, nil
}

func parseAmount(name, value string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: --%s must be a number, got %q", domain.ErrInvalidInput, name, value)
	}
	return v, nil
}
