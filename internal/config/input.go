package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/incometax/internal/domain"
	"github.com/rpgo/incometax/pkg/dateutil"
)

// InputParser handles parsing of tax rules files and request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadRulesFromFile loads a tax rules table from a YAML or JSON file and validates it
func (ip *InputParser) LoadRulesFromFile(filename string) (*domain.TaxRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rules file %s", filename)
	}

	rules, err := ip.ParseRules(data)
	if err != nil {
		return nil, errors.Wrapf(err, "rules file %s", filename)
	}
	return rules, nil
}

// ParseRules decodes and validates a rules document
func (ip *InputParser) ParseRules(data []byte) (*domain.TaxRules, error) {
	var rules domain.TaxRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, errors.Wrap(err, "failed to parse YAML")
	}

	if err := ip.ValidateRules(&rules); err != nil {
		return nil, errors.Wrap(err, "rules validation failed")
	}
	return &rules, nil
}

// ValidateRules validates a loaded rules table. Errors wrap domain.ErrInvalidRules.
func (ip *InputParser) ValidateRules(rules *domain.TaxRules) error {
	if rules == nil {
		return fmt.Errorf("%w: no rules provided", domain.ErrInvalidRules)
	}
	if len(rules.Regimes) == 0 {
		return fmt.Errorf("%w: no regimes provided", domain.ErrInvalidRules)
	}
	if rules.Year != "" {
		if _, err := dateutil.ParseFiscalYear(rules.Year); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidRules, err)
		}
	}
	return rules.Validate()
}

// LoadRulesOrDefault loads rules from filename, or returns the built-in
// FY 2023-24 table when filename is empty
func (ip *InputParser) LoadRulesOrDefault(filename string) (*domain.TaxRules, error) {
	if strings.TrimSpace(filename) == "" {
		return domain.DefaultTaxRules(), nil
	}
	return ip.LoadRulesFromFile(filename)
}

// LoadRequestFromFile loads a single tax request from a YAML or JSON file
func (ip *InputParser) LoadRequestFromFile(filename string) (*domain.TaxRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read request file %s", filename)
	}

	var req domain.TaxRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, errors.Wrapf(err, "failed to parse request file %s", filename)
	}
	req.Regime = domain.Regime(strings.ToLower(strings.TrimSpace(string(req.Regime))))
	return &req, nil
}

// ValidateRequest checks a request before it reaches the engine. A regime is
// only required when requireRegime is set; comparisons run both regimes.
// Errors wrap domain.ErrInvalidInput.
func ValidateRequest(req *domain.TaxRequest, requireRegime bool) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", domain.ErrInvalidInput)
	}
	if !req.AnnualIncome.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: annual income must be greater than zero", domain.ErrInvalidInput)
	}
	if requireRegime || req.Regime != "" {
		if _, err := domain.ParseRegime(string(req.Regime)); err != nil {
			return err
		}
	}
	if req.FiscalYear != "" {
		if _, err := dateutil.ParseFiscalYear(req.FiscalYear); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	return nil
}

// CreateExampleRules returns the built-in rules table for use as a template
func (ip *InputParser) CreateExampleRules() *domain.TaxRules {
	return domain.DefaultTaxRules()
}

// MarshalRules renders a rules table as YAML
func MarshalRules(rules *domain.TaxRules) ([]byte, error) {
	out, err := yaml.Marshal(rules)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode rules")
	}
	return out, nil
}
