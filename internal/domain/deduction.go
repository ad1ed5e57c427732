package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DeductionKind tags which shape a DeductionInput arrived in
type DeductionKind int

const (
	DeductionNone DeductionKind = iota
	DeductionAmount
	DeductionItemized
)

// Category keys accepted in structured deduction input
const (
	KeySection80C = "section80C"
	KeySection80D = "section80D"
	KeySection80G = "section80G"
	KeyOther      = "other"
)

// DeductionCategories is the canonical per-category deduction form
type DeductionCategories struct {
	Section80C decimal.Decimal `yaml:"section80C" json:"section80C"`
	Section80D decimal.Decimal `yaml:"section80D" json:"section80D"`
	Section80G decimal.Decimal `yaml:"section80G" json:"section80G"`
	Other      decimal.Decimal `yaml:"other" json:"other"`
}

// DeductionInput accepts either a single figure (treated as "other") or an
// itemized set of categories. The zero value means no deductions.
type DeductionInput struct {
	Kind     DeductionKind
	Amount   decimal.Decimal
	Itemized DeductionCategories
}

// NewAmountDeduction wraps a single deduction figure
func NewAmountDeduction(amount decimal.Decimal) DeductionInput {
	return DeductionInput{Kind: DeductionAmount, Amount: amount}
}

// NewItemizedDeduction wraps per-category figures
func NewItemizedDeduction(c DeductionCategories) DeductionInput {
	return DeductionInput{Kind: DeductionItemized, Itemized: c}
}

// Canonical returns the categories with negative figures clamped to zero
func (d DeductionInput) Canonical() DeductionCategories {
	var c DeductionCategories
	switch d.Kind {
	case DeductionAmount:
		c.Other = d.Amount
	case DeductionItemized:
		c = d.Itemized
	}
	return DeductionCategories{
		Section80C: clampZero(c.Section80C),
		Section80D: clampZero(c.Section80D),
		Section80G: clampZero(c.Section80G),
		Other:      clampZero(c.Other),
	}
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// set assigns a value to a known category. Keys match exactly, so case
// variants such as "SECTION80C" are unknown and dropped.
func (c *DeductionCategories) set(key string, v decimal.Decimal) {
	switch key {
	case KeySection80C:
		c.Section80C = v
	case KeySection80D:
		c.Section80D = v
	case KeySection80G:
		c.Section80G = v
	case KeyOther:
		c.Other = v
	}
}

func (c DeductionCategories) asMap() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		KeySection80C: c.Section80C,
		KeySection80D: c.Section80D,
		KeySection80G: c.Section80G,
		KeyOther:      c.Other,
	}
}

// UnmarshalJSON accepts a number, a numeric string, an object or null
func (d *DeductionInput) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*d = DeductionInput{}
		return nil
	}
	if trimmed[0] == '{' {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return fmt.Errorf("deductions: %w", err)
		}
		var c DeductionCategories
		for key, value := range raw {
			var v decimal.Decimal
			if !bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
				if err := v.UnmarshalJSON(value); err != nil {
					// unknown keys may carry anything; only known keys must parse
					if isKnownCategory(key) {
						return fmt.Errorf("deductions.%s: %w", key, err)
					}
					continue
				}
			}
			c.set(key, v)
		}
		*d = NewItemizedDeduction(c)
		return nil
	}
	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(trimmed); err != nil {
		return fmt.Errorf("deductions: expected a number or an object: %w", err)
	}
	*d = NewAmountDeduction(amount)
	return nil
}

// MarshalJSON writes the input back in the shape it arrived in
func (d DeductionInput) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case DeductionAmount:
		return d.Amount.MarshalJSON()
	case DeductionItemized:
		return json.Marshal(d.Itemized.asMap())
	default:
		return []byte("null"), nil
	}
}

// UnmarshalYAML accepts a scalar figure or a mapping of categories
func (d *DeductionInput) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || value.Value == "" {
			*d = DeductionInput{}
			return nil
		}
		amount, err := decimal.NewFromString(value.Value)
		if err != nil {
			return fmt.Errorf("deductions: line %d: %w", value.Line, err)
		}
		*d = NewAmountDeduction(amount)
		return nil
	case yaml.MappingNode:
		var c DeductionCategories
		for i := 0; i+1 < len(value.Content); i += 2 {
			key, val := value.Content[i].Value, value.Content[i+1]
			if !isKnownCategory(key) {
				continue
			}
			if val.Kind != yaml.ScalarNode {
				return fmt.Errorf("deductions.%s: line %d: expected a number", key, val.Line)
			}
			v := decimal.Zero
			if val.Tag != "!!null" && val.Value != "" {
				parsed, err := decimal.NewFromString(val.Value)
				if err != nil {
					return fmt.Errorf("deductions.%s: line %d: %w", key, val.Line, err)
				}
				v = parsed
			}
			c.set(key, v)
		}
		*d = NewItemizedDeduction(c)
		return nil
	default:
		return fmt.Errorf("deductions: line %d: expected a number or a mapping", value.Line)
	}
}

// MarshalYAML mirrors MarshalJSON
func (d DeductionInput) MarshalYAML() (interface{}, error) {
	switch d.Kind {
	case DeductionAmount:
		return d.Amount.String(), nil
	case DeductionItemized:
		out := make(map[string]string, 4)
		for k, v := range d.Itemized.asMap() {
			out[k] = v.String()
		}
		return out, nil
	default:
		return nil, nil
	}
}

func isKnownCategory(key string) bool {
	switch key {
	case KeySection80C, KeySection80D, KeySection80G, KeyOther:
		return true
	}
	return false
}
