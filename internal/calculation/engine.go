package calculation

import (
	"fmt"

	"github.com/rpgo/incometax/internal/domain"
	"github.com/rpgo/incometax/pkg/dateutil"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=../mocks/mock_calculator.go -package=mocks github.com/rpgo/incometax/internal/calculation TaxCalculator

// TaxCalculator is the engine surface the HTTP and CLI hosts depend on
type TaxCalculator interface {
	Calculate(req domain.TaxRequest) (*domain.TaxResult, error)
	Assess(req domain.TaxRequest) (*domain.TaxAssessment, error)
	CompareRegimes(req domain.TaxRequest) (*domain.RegimeComparison, error)
	Rules() *domain.TaxRules
}

// CalculationEngine orchestrates the slab-based income tax computation.
// It holds no mutable state after construction and is safe for concurrent use.
type CalculationEngine struct {
	rules      *domain.TaxRules
	Normalizer *DeductionNormalizer
	Rebate     *RebateEvaluator
	Integrator SlabIntegrator
	Finalizer  *CessFinalizer
	Scheduler  *AdvanceTaxScheduler
	Logger     Logger
}

var _ TaxCalculator = (*CalculationEngine)(nil)

// NewCalculationEngine creates an engine bound to the FY 2023-24 rules
func NewCalculationEngine() *CalculationEngine {
	engine, err := NewCalculationEngineWithRules(domain.DefaultTaxRules())
	if err != nil {
		panic(fmt.Sprintf("default tax rules are invalid: %v", err))
	}
	return engine
}

// NewCalculationEngineWithRules creates an engine bound to a copy of rules.
// Rules that fail validation return an error wrapping domain.ErrInvalidRules.
func NewCalculationEngineWithRules(rules *domain.TaxRules) (*CalculationEngine, error) {
	if rules == nil {
		return nil, fmt.Errorf("%w: rules are nil", domain.ErrInvalidRules)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	bound := rules.Clone()
	return &CalculationEngine{
		rules:      bound,
		Normalizer: NewDeductionNormalizer(bound),
		Rebate:     NewRebateEvaluator(bound),
		Finalizer:  NewCessFinalizer(bound),
		Scheduler:  NewAdvanceTaxScheduler(bound),
		Logger:     NopLogger{},
	}, nil
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Rules returns a copy of the bound rules table
func (ce *CalculationEngine) Rules() *domain.TaxRules {
	return ce.rules.Clone()
}

// Calculate runs the pipeline and returns only the tax figures
func (ce *CalculationEngine) Calculate(req domain.TaxRequest) (*domain.TaxResult, error) {
	assessment, err := ce.Assess(req)
	if err != nil {
		return nil, err
	}
	return &assessment.Result, nil
}

// Assess runs the full pipeline: deductions, rebate, slabs, cess and rounding,
// then the advance-tax schedule.
func (ce *CalculationEngine) Assess(req domain.TaxRequest) (*domain.TaxAssessment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var fy *dateutil.FiscalYear
	if req.FiscalYear != "" {
		parsed, err := dateutil.ParseFiscalYear(req.FiscalYear)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		fy = &parsed
	}

	regimeRules, err := ce.rules.Regime(req.Regime)
	if err != nil {
		return nil, err
	}

	deduction := ce.Normalizer.Normalize(req.Deductions, req.Regime, req.IsSalaried)
	taxable := TaxableIncome(req.AnnualIncome, deduction)

	assessment := &domain.TaxAssessment{
		RulesYear:           ce.rules.Year,
		Regime:              req.Regime,
		AnnualIncome:        req.AnnualIncome,
		IsSalaried:          req.IsSalaried,
		NormalizedDeduction: deduction,
		Result: domain.TaxResult{
			TaxableIncome: taxable,
			BaseTax:       decimal.Zero,
			Cess:          decimal.Zero,
			TotalTax:      decimal.Zero,
			Breakdown:     []domain.TaxBreakdownEntry{},
		},
	}
	if fy != nil {
		assessment.FiscalYear = fy.String()
	}

	if ce.Rebate.FullyRebated(taxable, req.Regime) {
		ce.Logger.Debugf("taxable income %s within %s regime rebate threshold; tax is zero", taxable, req.Regime)
		assessment.FullyRebated = true
	} else {
		baseTax, breakdown := ce.Integrator.Integrate(taxable, regimeRules.Slabs)
		cess, total := ce.Finalizer.Finalize(baseTax)
		assessment.Result.BaseTax = baseTax
		assessment.Result.Cess = cess
		assessment.Result.TotalTax = total
		assessment.Result.Breakdown = breakdown
	}

	assessment.Schedule = ce.Scheduler.Schedule(assessment.Result.TotalTax, fy)

	ce.Logger.Debugf("regime=%s income=%s deduction=%s taxable=%s base=%s cess=%s total=%s",
		req.Regime, req.AnnualIncome, deduction, taxable,
		assessment.Result.BaseTax, assessment.Result.Cess, assessment.Result.TotalTax)
	return assessment, nil
}

// CompareRegimes assesses the request under both regimes. The regime with the
// lower total wins; ties go to the new regime. The request's own regime is
// ignored but must be valid when present.
func (ce *CalculationEngine) CompareRegimes(req domain.TaxRequest) (*domain.RegimeComparison, error) {
	if req.Regime != "" && !req.Regime.Valid() {
		return nil, fmt.Errorf("%w: unsupported regime %q", domain.ErrInvalidInput, req.Regime)
	}

	oldReq, newReq := req, req
	oldReq.Regime = domain.RegimeOld
	newReq.Regime = domain.RegimeNew

	oldAssessment, err := ce.Assess(oldReq)
	if err != nil {
		return nil, err
	}
	newAssessment, err := ce.Assess(newReq)
	if err != nil {
		return nil, err
	}

	cmp := &domain.RegimeComparison{
		Old:         oldAssessment,
		New:         newAssessment,
		Recommended: domain.RegimeNew,
		Savings:     oldAssessment.Result.TotalTax.Sub(newAssessment.Result.TotalTax).Abs(),
	}
	if oldAssessment.Result.TotalTax.LessThan(newAssessment.Result.TotalTax) {
		cmp.Recommended = domain.RegimeOld
	}
	ce.Logger.Infof("regime comparison: recommended=%s savings=%s", cmp.Recommended, cmp.Savings)
	return cmp, nil
}

func validateRequest(req domain.TaxRequest) error {
	if !req.AnnualIncome.IsPositive() {
		return fmt.Errorf("%w: annual income must be positive, got %s", domain.ErrInvalidInput, req.AnnualIncome)
	}
	if !req.Regime.Valid() {
		return fmt.Errorf("%w: unsupported regime %q", domain.ErrInvalidInput, req.Regime)
	}
	return nil
}
