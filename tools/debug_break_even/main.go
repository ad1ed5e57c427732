package main

import (
	"fmt"
	"os"

	calc "github.com/rpgo/incometax/internal/calculation"
	"github.com/rpgo/incometax/internal/config"
	"github.com/shopspring/decimal"
)

// Sweeps incomes and prints the old-regime break-even deduction for each as CSV.
// usage: debug_break_even [rules-file]
func main() {
	rulesFile := ""
	if len(os.Args) > 1 {
		rulesFile = os.Args[1]
	}
	rules, err := config.NewInputParser().LoadRulesOrDefault(rulesFile)
	if err != nil {
		panic(err)
	}
	engine, err := calc.NewCalculationEngineWithRules(rules)
	if err != nil {
		panic(err)
	}

	fmt.Printf("# rules %s\n", rules.Year)
	fmt.Println("Income,Salaried,NewTax,BreakEvenDeduction,OldTaxAtBreakEven,Iterations")

	step := decimal.NewFromInt(100000)
	for _, salaried := range []bool{false, true} {
		for income := decimal.NewFromInt(500000); income.LessThanOrEqual(decimal.NewFromInt(3000000)); income = income.Add(step) {
			res, err := engine.CalculateBreakEvenDeduction(income, salaried)
			if err != nil {
				fmt.Printf("%s,%t,error: %v\n", income.StringFixed(0), salaried, err)
				continue
			}
			fmt.Printf("%s,%t,%s,%s,%s,%d\n",
				income.StringFixed(0), salaried,
				res.NewRegimeTax.StringFixed(0),
				res.BreakEvenDeduction.StringFixed(0),
				res.OldRegimeTax.StringFixed(0),
				res.Iterations)
		}
	}
}
