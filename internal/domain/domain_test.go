package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(t, want).Equal(got), append([]interface{}{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func TestParseRegime(t *testing.T) {
	tests := []struct {
		in      string
		want    Regime
		wantErr bool
	}{
		{in: "old", want: RegimeOld},
		{in: "new", want: RegimeNew},
		{in: " NEW ", want: RegimeNew},
		{in: "Old", want: RegimeOld},
		{in: "", wantErr: true},
		{in: "flat", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRegime(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlabTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   SlabTable
		wantErr bool
	}{
		{
			name:  "valid table",
			table: SlabTable{Bounded(250000, "0"), Bounded(500000, "0.05"), Unbounded("0.3")},
		},
		{
			name:  "single unbounded band",
			table: SlabTable{Unbounded("0.1")},
		},
		{name: "empty", table: SlabTable{}, wantErr: true},
		{
			name:    "missing unbounded band",
			table:   SlabTable{Bounded(250000, "0"), Bounded(500000, "0.05")},
			wantErr: true,
		},
		{
			name:    "unbounded band not last",
			table:   SlabTable{Unbounded("0"), Bounded(500000, "0.05")},
			wantErr: true,
		},
		{
			name:    "bounds not ascending",
			table:   SlabTable{Bounded(500000, "0"), Bounded(250000, "0.05"), Unbounded("0.3")},
			wantErr: true,
		},
		{
			name:    "duplicate bound",
			table:   SlabTable{Bounded(250000, "0"), Bounded(250000, "0.05"), Unbounded("0.3")},
			wantErr: true,
		},
		{
			name:    "decreasing rate",
			table:   SlabTable{Bounded(250000, "0.1"), Unbounded("0.05")},
			wantErr: true,
		},
		{
			name:    "rate of one",
			table:   SlabTable{Bounded(250000, "0"), Unbounded("1")},
			wantErr: true,
		},
		{
			name:    "negative rate",
			table:   SlabTable{Unbounded("-0.1")},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRules))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDeductionInputJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		kind     DeductionKind
		expected DeductionCategories
	}{
		{
			name:     "bare number is other",
			payload:  `120000`,
			kind:     DeductionAmount,
			expected: DeductionCategories{Other: decimal.NewFromInt(120000)},
		},
		{
			name:     "numeric string",
			payload:  `"5000.50"`,
			kind:     DeductionAmount,
			expected: DeductionCategories{Other: decimal.NewFromFloat(5000.50)},
		},
		{
			name:    "object with missing keys",
			payload: `{"section80C": 200000, "section80D": 30000}`,
			kind:    DeductionItemized,
			expected: DeductionCategories{
				Section80C: decimal.NewFromInt(200000),
				Section80D: decimal.NewFromInt(30000),
			},
		},
		{
			name:     "unknown keys ignored",
			payload:  `{"section80G": 1000, "hra": {"city": "metro"}, "section24": 200000}`,
			kind:     DeductionItemized,
			expected: DeductionCategories{Section80G: decimal.NewFromInt(1000)},
		},
		{
			name:     "negative values clamp",
			payload:  `{"section80C": -5000, "other": 700}`,
			kind:     DeductionItemized,
			expected: DeductionCategories{Other: decimal.NewFromInt(700)},
		},
		{
			name:     "negative number clamps",
			payload:  `-100`,
			kind:     DeductionAmount,
			expected: DeductionCategories{},
		},
		{
			name:     "null",
			payload:  `null`,
			kind:     DeductionNone,
			expected: DeductionCategories{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DeductionInput
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &d))
			assert.Equal(t, tt.kind, d.Kind)
			got := d.Canonical()
			assert.True(t, tt.expected.Section80C.Equal(got.Section80C), "80C")
			assert.True(t, tt.expected.Section80D.Equal(got.Section80D), "80D")
			assert.True(t, tt.expected.Section80G.Equal(got.Section80G), "80G")
			assert.True(t, tt.expected.Other.Equal(got.Other), "other")
		})
	}
}

func TestDeductionInputJSONErrors(t *testing.T) {
	for _, payload := range []string{`true`, `"abc"`, `{"section80C": "lots"}`, `[1,2]`} {
		var d DeductionInput
		assert.Error(t, json.Unmarshal([]byte(payload), &d), payload)
	}
}

// Keys match exactly; a case variant is an unknown key and never overrides the real one
func TestDeductionInputKeysAreCaseSensitive(t *testing.T) {
	payload := `{"section80C": 150000, "SECTION80C": 0, "Section80d": 25000, "OTHER": "junk"}`
	for i := 0; i < 50; i++ {
		var d DeductionInput
		require.NoError(t, json.Unmarshal([]byte(payload), &d))
		c := d.Canonical()
		assertDecimal(t, "150000", c.Section80C)
		assert.True(t, c.Section80D.IsZero(), "80D")
		assert.True(t, c.Other.IsZero(), "other")
	}

	var y struct {
		Deductions DeductionInput `yaml:"deductions"`
	}
	doc := "deductions:\n  section80C: 150000\n  SECTION80C: 0\n  Other: 900\n"
	require.NoError(t, yaml.Unmarshal([]byte(doc), &y))
	c := y.Deductions.Canonical()
	assertDecimal(t, "150000", c.Section80C)
	assert.True(t, c.Other.IsZero())
}

func TestDeductionInputMissingFromRequest(t *testing.T) {
	var req TaxRequest
	require.NoError(t, json.Unmarshal([]byte(`{"annualIncome": 900000, "regime": "new"}`), &req))
	assert.Equal(t, DeductionNone, req.Deductions.Kind)
	assert.Equal(t, RegimeNew, req.Regime)
	assertDecimal(t, "900000", req.AnnualIncome)
}

func TestDeductionInputJSONRoundTrip(t *testing.T) {
	in := NewItemizedDeduction(DeductionCategories{Section80C: decimal.NewFromInt(150000), Other: decimal.NewFromInt(10)})
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out DeductionInput
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, DeductionItemized, out.Kind)
	assertDecimal(t, "150000", out.Itemized.Section80C)
	assertDecimal(t, "10", out.Itemized.Other)

	data, err = json.Marshal(DeductionInput{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDeductionInputYAML(t *testing.T) {
	var scalar struct {
		Deductions DeductionInput `yaml:"deductions"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("deductions: 45000\n"), &scalar))
	assert.Equal(t, DeductionAmount, scalar.Deductions.Kind)
	assertDecimal(t, "45000", scalar.Deductions.Canonical().Other)

	var mapping struct {
		Deductions DeductionInput `yaml:"deductions"`
	}
	doc := "deductions:\n  section80C: 160000\n  section80D:\n  rent: 99999\n  nested:\n    a: 1\n"
	require.NoError(t, yaml.Unmarshal([]byte(doc), &mapping))
	assert.Equal(t, DeductionItemized, mapping.Deductions.Kind)
	c := mapping.Deductions.Canonical()
	assertDecimal(t, "160000", c.Section80C)
	assert.True(t, c.Section80D.IsZero())
	assert.True(t, c.Other.IsZero())

	var bad struct {
		Deductions DeductionInput `yaml:"deductions"`
	}
	assert.Error(t, yaml.Unmarshal([]byte("deductions: plenty\n"), &bad))
	assert.Error(t, yaml.Unmarshal([]byte("deductions: [1, 2]\n"), &bad))
}

func TestDeductionInputYAMLRoundTrip(t *testing.T) {
	in := TaxRequest{
		AnnualIncome: decimal.NewFromInt(1200000),
		Regime:       RegimeOld,
		Deductions:   NewItemizedDeduction(DeductionCategories{Section80D: decimal.NewFromInt(25000)}),
	}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	var out TaxRequest
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, RegimeOld, out.Regime)
	assertDecimal(t, "1200000", out.AnnualIncome)
	assertDecimal(t, "25000", out.Deductions.Canonical().Section80D)
}
