package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockTaxCalculatorForTest creates a new mock TaxCalculator for testing
func NewMockTaxCalculatorForTest(t *testing.T) *MockTaxCalculator {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTaxCalculator(ctrl)
}
