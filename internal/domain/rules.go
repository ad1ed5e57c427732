package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DeductionCaps limits each itemized category under the old regime
type DeductionCaps struct {
	Section80C decimal.Decimal `yaml:"section80C" json:"section80C"`
	Section80D decimal.Decimal `yaml:"section80D" json:"section80D"`
	Section80G decimal.Decimal `yaml:"section80G" json:"section80G"`
}

// RegimeRules holds everything that differs between regimes
type RegimeRules struct {
	RebateThreshold decimal.Decimal `yaml:"rebate_threshold" json:"rebateThreshold"`
	AllowItemized   bool            `yaml:"allow_itemized" json:"allowItemized"`
	Caps            DeductionCaps   `yaml:"caps,omitempty" json:"caps"`
	Slabs           SlabTable       `yaml:"slabs" json:"slabs"`
}

// InstallmentRule describes one advance-tax due date
type InstallmentRule struct {
	Quarter  string          `yaml:"quarter" json:"quarter"`
	Month    time.Month      `yaml:"month" json:"month"`
	Day      int             `yaml:"day" json:"day"`
	Fraction decimal.Decimal `yaml:"fraction" json:"fraction"`
}

// TaxRules is the immutable configuration for one tax year. An engine binds
// one TaxRules value at construction.
type TaxRules struct {
	Year              string                 `yaml:"year" json:"year"`
	CessRate          decimal.Decimal        `yaml:"cess_rate" json:"cessRate"`
	StandardDeduction decimal.Decimal        `yaml:"standard_deduction" json:"standardDeduction"`
	RoundingUnit      decimal.Decimal        `yaml:"rounding_unit" json:"roundingUnit"`
	Regimes           map[Regime]RegimeRules `yaml:"regimes" json:"regimes"`
	// Installment amounts are (total tax / ScheduleDivisor) × Fraction.
	ScheduleDivisor decimal.Decimal   `yaml:"schedule_divisor" json:"scheduleDivisor"`
	Schedule        []InstallmentRule `yaml:"schedule" json:"schedule"`
}

// Regime returns the rules for r
func (tr *TaxRules) Regime(r Regime) (RegimeRules, error) {
	rr, ok := tr.Regimes[r]
	if !ok {
		return RegimeRules{}, fmt.Errorf("%w: no rules for regime %q", ErrInvalidRules, r)
	}
	return rr, nil
}

// Validate checks the whole table. Every returned error wraps ErrInvalidRules.
func (tr *TaxRules) Validate() error {
	one := decimal.NewFromInt(1)
	if tr.Year == "" {
		return fmt.Errorf("%w: year is required", ErrInvalidRules)
	}
	if tr.CessRate.IsNegative() || tr.CessRate.GreaterThanOrEqual(one) {
		return fmt.Errorf("%w: cess rate %s outside [0,1)", ErrInvalidRules, tr.CessRate)
	}
	if tr.StandardDeduction.IsNegative() {
		return fmt.Errorf("%w: standard deduction cannot be negative", ErrInvalidRules)
	}
	if !tr.RoundingUnit.IsPositive() {
		return fmt.Errorf("%w: rounding unit must be positive", ErrInvalidRules)
	}
	for _, r := range Regimes {
		rr, err := tr.Regime(r)
		if err != nil {
			return err
		}
		if rr.RebateThreshold.IsNegative() {
			return fmt.Errorf("%w: %s regime rebate threshold cannot be negative", ErrInvalidRules, r)
		}
		if rr.Caps.Section80C.IsNegative() || rr.Caps.Section80D.IsNegative() || rr.Caps.Section80G.IsNegative() {
			return fmt.Errorf("%w: %s regime deduction caps cannot be negative", ErrInvalidRules, r)
		}
		if err := rr.Slabs.Validate(); err != nil {
			return fmt.Errorf("%s regime: %w", r, err)
		}
	}
	for r := range tr.Regimes {
		if !r.Valid() {
			return fmt.Errorf("%w: unknown regime %q", ErrInvalidRules, r)
		}
	}
	return tr.validateSchedule()
}

func (tr *TaxRules) validateSchedule() error {
	if !tr.ScheduleDivisor.IsPositive() {
		return fmt.Errorf("%w: schedule divisor must be positive", ErrInvalidRules)
	}
	if len(tr.Schedule) == 0 {
		return fmt.Errorf("%w: schedule is empty", ErrInvalidRules)
	}
	one := decimal.NewFromInt(1)
	prev := decimal.Zero
	for i, inst := range tr.Schedule {
		if inst.Quarter == "" {
			return fmt.Errorf("%w: installment %d has no quarter label", ErrInvalidRules, i)
		}
		if inst.Month < time.January || inst.Month > time.December || inst.Day < 1 || inst.Day > 31 {
			return fmt.Errorf("%w: installment %s has an invalid due date", ErrInvalidRules, inst.Quarter)
		}
		if !inst.Fraction.IsPositive() || inst.Fraction.GreaterThan(one) || inst.Fraction.LessThan(prev) {
			return fmt.Errorf("%w: installment %s fraction %s must be cumulative within (0,1]", ErrInvalidRules, inst.Quarter, inst.Fraction)
		}
		prev = inst.Fraction
	}
	if !prev.Equal(one) {
		return fmt.Errorf("%w: final installment fraction must be 1", ErrInvalidRules)
	}
	return nil
}

// Clone returns a deep copy so the caller's value can change without
// affecting an engine that holds the copy.
func (tr *TaxRules) Clone() *TaxRules {
	out := *tr
	out.Regimes = make(map[Regime]RegimeRules, len(tr.Regimes))
	for r, rr := range tr.Regimes {
		slabs := make(SlabTable, len(rr.Slabs))
		for i, band := range rr.Slabs {
			slabs[i] = SlabBand{Rate: band.Rate}
			if band.UpTo != nil {
				upTo := *band.UpTo
				slabs[i].UpTo = &upTo
			}
		}
		rr.Slabs = slabs
		out.Regimes[r] = rr
	}
	out.Schedule = append([]InstallmentRule(nil), tr.Schedule...)
	return &out
}
