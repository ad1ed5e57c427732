package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rpgo/incometax/internal/calculation"
	"github.com/rpgo/incometax/internal/domain"
)

// ConsoleFormatter renders a human-readable report with Indian digit grouping.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	if _, err := report.view(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	switch {
	case report.Assessment != nil:
		writeAssessment(&buf, report.Assessment)
	case report.Comparison != nil:
		writeComparison(&buf, report.Comparison)
	case report.Slabs != nil:
		writeSlabTable(&buf, report.Slabs)
	case report.BreakEven != nil:
		writeBreakEven(&buf, report.BreakEven)
	}
	return buf.Bytes(), nil
}

func writeAssessment(buf *bytes.Buffer, a *domain.TaxAssessment) {
	title := fmt.Sprintf("INCOME TAX COMPUTATION (%s REGIME, RULES %s)", strings.ToUpper(a.Regime.String()), a.RulesYear)
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", len(title)))
	row := func(label string, v decimal.Decimal) {
		fmt.Fprintf(buf, "%s %s\n", padRight(label+":", 24), FormatCurrency(v))
	}
	row("Annual income", a.AnnualIncome)
	row("Deductions allowed", a.NormalizedDeduction)
	row("Taxable income", a.Result.TaxableIncome)
	if a.FullyRebated {
		fmt.Fprintln(buf, "Rebate:                  full (taxable income within rebate threshold)")
	}
	row("Base tax", a.Result.BaseTax)
	row("Cess", a.Result.Cess)
	row("Total tax", a.Result.TotalTax)

	if len(a.Result.Breakdown) > 0 {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "Slab breakup")
		for _, e := range a.Result.Breakdown {
			fmt.Fprintf(buf, "  %s %s on %s = %s\n",
				padRight(FormatBound(e.SlabUpTo), 22), padRight(FormatRate(e.Rate), 4),
				FormatCurrency(e.IncomeInBand), FormatCurrency(e.TaxForBand))
		}
	}

	fmt.Fprintln(buf)
	heading := "Advance tax (cumulative)"
	if a.FiscalYear != "" {
		heading += " FY " + a.FiscalYear
	}
	fmt.Fprintln(buf, heading)
	for _, inst := range a.Schedule {
		due := inst.DueDate
		if inst.DueOn != nil {
			due = inst.DueOn.Format("02 Jan 2006")
		}
		fmt.Fprintf(buf, "  %s %s %s\n", inst.Quarter, padRight("by "+due, 15), FormatCurrency(inst.CumulativeAmount))
	}
}

func writeComparison(buf *bytes.Buffer, c *domain.RegimeComparison) {
	fmt.Fprintln(buf, "REGIME COMPARISON")
	fmt.Fprintln(buf, "=================")
	fmt.Fprintf(buf, "%s %s %s\n", padRight("", 20), padRight("OLD", 16), "NEW")
	line := func(label string, o, n decimal.Decimal) {
		fmt.Fprintf(buf, "%s %s %s\n", padRight(label, 20), padRight(FormatCurrency(o), 16), FormatCurrency(n))
	}
	line("Deductions allowed", c.Old.NormalizedDeduction, c.New.NormalizedDeduction)
	line("Taxable income", c.Old.Result.TaxableIncome, c.New.Result.TaxableIncome)
	line("Base tax", c.Old.Result.BaseTax, c.New.Result.BaseTax)
	line("Cess", c.Old.Result.Cess, c.New.Result.Cess)
	line("Total tax", c.Old.Result.TotalTax, c.New.Result.TotalTax)
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "Recommended: %s regime (saves %s)\n", c.Recommended, FormatCurrency(c.Savings))
}

func writeSlabTable(buf *bytes.Buffer, s *SlabTableView) {
	title := fmt.Sprintf("%s REGIME SLABS (RULES %s)", strings.ToUpper(s.Regime), s.RulesYear)
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", len(title)))
	for _, band := range s.Slabs {
		upper := "and above"
		if band.UpTo != nil {
			upper = FormatCurrency(decimal.NewFromFloat(*band.UpTo))
		}
		fmt.Fprintf(buf, "  %s - %s %s\n",
			padRight(FormatCurrency(decimal.NewFromFloat(band.From)), 12), padRight(upper, 12),
			FormatRate(decimal.NewFromFloat(band.Rate)))
	}
	fmt.Fprintf(buf, "Rebate threshold: %s\n", FormatCurrency(decimal.NewFromFloat(s.RebateThreshold)))
	fmt.Fprintf(buf, "Itemized deductions: %s\n", map[bool]string{true: "allowed", false: "not allowed"}[s.AllowItemized])
}

func writeBreakEven(buf *bytes.Buffer, b *calculation.BreakEvenResult) {
	fmt.Fprintln(buf, "BREAK-EVEN DEDUCTION")
	fmt.Fprintln(buf, "====================")
	row := func(label string, v decimal.Decimal) {
		fmt.Fprintf(buf, "%s %s\n", padRight(label+":", 24), FormatCurrency(v))
	}
	row("Annual income", b.AnnualIncome)
	row("New regime tax", b.NewRegimeTax)
	row("Break-even deduction", b.BreakEvenDeduction)
	row("Old regime tax at that", b.OldRegimeTax)
	fmt.Fprintf(buf, "%s %s\n", padRight("Salaried:", 24), boolToString(b.IsSalaried))
}
