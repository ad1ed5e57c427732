package integration

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rpgo/incometax/internal/calculation"
	"github.com/rpgo/incometax/internal/domain"
	"github.com/rpgo/incometax/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	engine := calculation.NewCalculationEngine()
	comparison, err := engine.CompareRegimes(domain.TaxRequest{
		AnnualIncome: decimal.NewFromInt(1500000),
		IsSalaried:   true,
		Deductions: domain.NewItemizedDeduction(domain.DeductionCategories{
			Section80C: decimal.NewFromInt(150000),
			Section80D: decimal.NewFromInt(25000),
		}),
	})
	require.NoError(t, err)

	report := output.ComparisonReport(comparison)
	for _, format := range []string{"console", "json", "yaml", "csv"} {
		var buf bytes.Buffer
		assert.NoError(t, output.GenerateReport(&buf, report, format), format)
		assert.NotEmpty(t, buf.String(), format)
	}

	var buf bytes.Buffer
	require.NoError(t, output.GenerateReport(&buf, report, "json"))
	var view output.ComparisonView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	assert.Equal(t, comparison.Recommended.String(), view.Recommended)
	assert.Equal(t, comparison.Savings.InexactFloat64(), view.Savings)

	// Unsupported formats fail without writing anything
	buf.Reset()
	err = output.GenerateReport(&buf, report, "invalid")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
	assert.Zero(t, buf.Len())
}

func TestConsoleReportMentionsBothRegimes(t *testing.T) {
	comparison, err := calculation.NewCalculationEngine().CompareRegimes(domain.TaxRequest{AnnualIncome: decimal.NewFromInt(900000)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, output.GenerateReport(&buf, output.ComparisonReport(comparison), "text"))
	text := strings.ToLower(buf.String())
	assert.Contains(t, text, "old")
	assert.Contains(t, text, "new")
}
