package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTaxRules returns the FY 2023-24 rules. Each call builds a fresh value.
func DefaultTaxRules() *TaxRules {
	return &TaxRules{
		Year:              "2023-24",
		CessRate:          mustDecimal("0.04"),
		StandardDeduction: decimal.NewFromInt(50000),
		RoundingUnit:      decimal.NewFromInt(10),
		Regimes: map[Regime]RegimeRules{
			RegimeOld: {
				RebateThreshold: decimal.NewFromInt(500000),
				AllowItemized:   true,
				Caps: DeductionCaps{
					Section80C: decimal.NewFromInt(150000),
					Section80D: decimal.NewFromInt(25000),
					Section80G: decimal.NewFromInt(50000),
				},
				Slabs: SlabTable{
					Bounded(250000, "0"),
					Bounded(500000, "0.05"),
					Bounded(1000000, "0.20"),
					Unbounded("0.30"),
				},
			},
			RegimeNew: {
				RebateThreshold: decimal.NewFromInt(700000),
				AllowItemized:   false,
				Slabs: SlabTable{
					Bounded(300000, "0"),
					Bounded(600000, "0.05"),
					Bounded(900000, "0.10"),
					Bounded(1200000, "0.15"),
					Bounded(1500000, "0.20"),
					Unbounded("0.30"),
				},
			},
		},
		ScheduleDivisor: decimal.NewFromInt(4),
		Schedule: []InstallmentRule{
			{Quarter: "Q1", Month: time.June, Day: 15, Fraction: mustDecimal("0.15")},
			{Quarter: "Q2", Month: time.September, Day: 15, Fraction: mustDecimal("0.45")},
			{Quarter: "Q3", Month: time.December, Day: 15, Fraction: mustDecimal("0.75")},
			{Quarter: "Q4", Month: time.March, Day: 15, Fraction: mustDecimal("1.00")},
		},
	}
}
