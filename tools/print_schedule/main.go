package main

import (
	"fmt"
	"os"

	"github.com/rpgo/incometax/internal/calculation"
	"github.com/rpgo/incometax/internal/domain"
	"github.com/shopspring/decimal"
)

// Prints both regimes' advance-tax schedules for the incomes given on the
// command line, next to the rounded total they are derived from.
// usage: print_schedule <income>...
func main() {
	incomes := os.Args[1:]
	if len(incomes) == 0 {
		incomes = []string{"900000", "1250000", "2000000"}
	}

	ce := calculation.NewCalculationEngine()
	for _, raw := range incomes {
		income, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Printf("skipping %q: %v\n", raw, err)
			continue
		}
		for _, regime := range domain.Regimes {
			a, err := ce.Assess(domain.TaxRequest{AnnualIncome: income, Regime: regime, IsSalaried: true, FiscalYear: "2023-24"})
			if err != nil {
				fmt.Printf("%s/%s: %v\n", raw, regime, err)
				continue
			}
			fmt.Printf("%s %s total=%s rebated=%t\n", income.StringFixed(0), regime, a.Result.TotalTax.StringFixed(0), a.FullyRebated)
			for _, inst := range a.Schedule {
				fmt.Printf("  %s %s %s\n", inst.Quarter, inst.DueOn.Format("2006-01-02"), inst.CumulativeAmount.String())
			}
		}
	}
}
