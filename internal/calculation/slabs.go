package calculation

import (
	"github.com/rpgo/incometax/internal/domain"
	"github.com/shopspring/decimal"
)

// SlabIntegrator applies marginal rates band by band
type SlabIntegrator struct{}

// Integrate walks the bands in ascending order and returns the unrounded base
// tax with one breakdown entry per band that received income. The lower bound
// advances past every band, including empty ones, and the walk stops as soon
// as the remaining income is exhausted.
func (SlabIntegrator) Integrate(taxableIncome decimal.Decimal, table domain.SlabTable) (decimal.Decimal, []domain.TaxBreakdownEntry) {
	baseTax := decimal.Zero
	breakdown := []domain.TaxBreakdownEntry{}

	lowerBound := decimal.Zero
	remaining := taxableIncome
	for _, band := range table {
		if !remaining.IsPositive() {
			break
		}

		width := remaining
		if !band.IsUnbounded() {
			width = decimal.Min(remaining, band.UpTo.Sub(lowerBound))
		}
		width = decimal.Max(decimal.Zero, width)

		if width.IsPositive() {
			tax := width.Mul(band.Rate)
			breakdown = append(breakdown, domain.TaxBreakdownEntry{
				SlabUpTo:     copyBound(band.UpTo),
				Rate:         band.Rate,
				IncomeInBand: width,
				TaxForBand:   tax,
			})
			baseTax = baseTax.Add(tax)
			remaining = remaining.Sub(width)
		}

		if !band.IsUnbounded() {
			lowerBound = *band.UpTo
		}
	}
	return baseTax, breakdown
}

func copyBound(b *decimal.Decimal) *decimal.Decimal {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
