package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}

func assertDecimalEqual(t *testing.T, want string, got decimal.Decimal, label string) {
	t.Helper()
	assert.True(t, d(t, want).Equal(got), "%s: expected %s, got %s", label, want, got.String())
}
