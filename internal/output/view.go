package output

import (
	"github.com/shopspring/decimal"

	"github.com/rpgo/incometax/internal/calculation"
	"github.com/rpgo/incometax/internal/domain"
)

// Views flatten engine results into plain numbers for JSON/YAML consumers.
// Decimal figures are converted only here, after every computation is done.

// BreakupView is one row of the slab breakup
type BreakupView struct {
	SlabUpto   *float64 `json:"slabUpto" yaml:"slabUpto"`
	SlabRate   float64  `json:"slabRate" yaml:"slabRate"`
	SlabIncome float64  `json:"slabIncome" yaml:"slabIncome"`
	Tax        float64  `json:"tax" yaml:"tax"`
}

// InstallmentView is one advance-tax installment
type InstallmentView struct {
	Quarter string  `json:"quarter" yaml:"quarter"`
	DueDate string  `json:"dueDate" yaml:"dueDate"`
	Amount  float64 `json:"amount" yaml:"amount"`
	DueOn   string  `json:"dueOn,omitempty" yaml:"dueOn,omitempty"`
}

// AssessmentView is the caller-facing shape of a single-regime computation
type AssessmentView struct {
	Regime              string            `json:"regime" yaml:"regime"`
	RulesYear           string            `json:"rulesYear" yaml:"rulesYear"`
	FiscalYear          string            `json:"fiscalYear,omitempty" yaml:"fiscalYear,omitempty"`
	AnnualIncome        float64           `json:"annualIncome" yaml:"annualIncome"`
	IsSalaried          bool              `json:"isSalaried" yaml:"isSalaried"`
	NormalizedDeduction float64           `json:"normalizedDeduction" yaml:"normalizedDeduction"`
	TaxableIncome       float64           `json:"taxableIncome" yaml:"taxableIncome"`
	FullyRebated        bool              `json:"fullyRebated" yaml:"fullyRebated"`
	BaseTax             float64           `json:"baseTax" yaml:"baseTax"`
	Cess                float64           `json:"cess" yaml:"cess"`
	TotalTax            float64           `json:"totalTax" yaml:"totalTax"`
	Breakup             []BreakupView     `json:"breakup" yaml:"breakup"`
	QuarterlySchedule   []InstallmentView `json:"quarterlySchedule" yaml:"quarterlySchedule"`
}

// ComparisonView places both regimes side by side
type ComparisonView struct {
	Old         AssessmentView `json:"old" yaml:"old"`
	New         AssessmentView `json:"new" yaml:"new"`
	Recommended string         `json:"recommended" yaml:"recommended"`
	Savings     float64        `json:"savings" yaml:"savings"`
}

// SlabView is one band of a published slab table
type SlabView struct {
	From float64  `json:"from" yaml:"from"`
	UpTo *float64 `json:"upTo" yaml:"upTo"`
	Rate float64  `json:"rate" yaml:"rate"`
}

// SlabTableView describes one regime's rules
type SlabTableView struct {
	Regime            string     `json:"regime" yaml:"regime"`
	RulesYear         string     `json:"rulesYear" yaml:"rulesYear"`
	RebateThreshold   float64    `json:"rebateThreshold" yaml:"rebateThreshold"`
	StandardDeduction float64    `json:"standardDeduction" yaml:"standardDeduction"`
	AllowItemized     bool       `json:"allowItemized" yaml:"allowItemized"`
	CessRate          float64    `json:"cessRate" yaml:"cessRate"`
	Slabs             []SlabView `json:"slabs" yaml:"slabs"`
}

// BreakEvenView is the result of a break-even deduction search
type BreakEvenView struct {
	AnnualIncome       float64 `json:"annualIncome" yaml:"annualIncome"`
	IsSalaried         bool    `json:"isSalaried" yaml:"isSalaried"`
	NewRegimeTax       float64 `json:"newRegimeTax" yaml:"newRegimeTax"`
	BreakEvenDeduction float64 `json:"breakEvenDeduction" yaml:"breakEvenDeduction"`
	OldRegimeTax       float64 `json:"oldRegimeTax" yaml:"oldRegimeTax"`
	Iterations         int     `json:"iterations" yaml:"iterations"`
}

func num(d decimal.Decimal) float64 { return d.InexactFloat64() }

func optionalNum(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := d.InexactFloat64()
	return &v
}

// NewAssessmentView converts an engine assessment
func NewAssessmentView(a *domain.TaxAssessment) AssessmentView {
	v := AssessmentView{
		Regime:              a.Regime.String(),
		RulesYear:           a.RulesYear,
		FiscalYear:          a.FiscalYear,
		AnnualIncome:        num(a.AnnualIncome),
		IsSalaried:          a.IsSalaried,
		NormalizedDeduction: num(a.NormalizedDeduction),
		TaxableIncome:       num(a.Result.TaxableIncome),
		FullyRebated:        a.FullyRebated,
		BaseTax:             num(a.Result.BaseTax),
		Cess:                num(a.Result.Cess),
		TotalTax:            num(a.Result.TotalTax),
		Breakup:             make([]BreakupView, 0, len(a.Result.Breakdown)),
		QuarterlySchedule:   make([]InstallmentView, 0, len(a.Schedule)),
	}
	for _, e := range a.Result.Breakdown {
		v.Breakup = append(v.Breakup, BreakupView{
			SlabUpto:   optionalNum(e.SlabUpTo),
			SlabRate:   num(e.Rate),
			SlabIncome: num(e.IncomeInBand),
			Tax:        num(e.TaxForBand),
		})
	}
	for _, inst := range a.Schedule {
		iv := InstallmentView{Quarter: inst.Quarter, DueDate: inst.DueDate, Amount: num(inst.CumulativeAmount)}
		if inst.DueOn != nil {
			iv.DueOn = inst.DueOn.Format("2006-01-02")
		}
		v.QuarterlySchedule = append(v.QuarterlySchedule, iv)
	}
	return v
}

// NewComparisonView converts a regime comparison
func NewComparisonView(c *domain.RegimeComparison) ComparisonView {
	return ComparisonView{
		Old:         NewAssessmentView(c.Old),
		New:         NewAssessmentView(c.New),
		Recommended: c.Recommended.String(),
		Savings:     num(c.Savings),
	}
}

// NewSlabTableView describes regime r of rules
func NewSlabTableView(rules *domain.TaxRules, r domain.Regime) (SlabTableView, error) {
	rr, err := rules.Regime(r)
	if err != nil {
		return SlabTableView{}, err
	}
	v := SlabTableView{
		Regime:            r.String(),
		RulesYear:         rules.Year,
		RebateThreshold:   num(rr.RebateThreshold),
		StandardDeduction: num(rules.StandardDeduction),
		AllowItemized:     rr.AllowItemized,
		CessRate:          num(rules.CessRate),
		Slabs:             make([]SlabView, 0, len(rr.Slabs)),
	}
	lower := decimal.Zero
	for _, band := range rr.Slabs {
		v.Slabs = append(v.Slabs, SlabView{From: num(lower), UpTo: optionalNum(band.UpTo), Rate: num(band.Rate)})
		if band.UpTo != nil {
			lower = *band.UpTo
		}
	}
	return v, nil
}

// NewBreakEvenView converts a break-even search result
func NewBreakEvenView(b *calculation.BreakEvenResult) BreakEvenView {
	return BreakEvenView{
		AnnualIncome:       num(b.AnnualIncome),
		IsSalaried:         b.IsSalaried,
		NewRegimeTax:       num(b.NewRegimeTax),
		BreakEvenDeduction: num(b.BreakEvenDeduction),
		OldRegimeTax:       num(b.OldRegimeTax),
		Iterations:         b.Iterations,
	}
}
