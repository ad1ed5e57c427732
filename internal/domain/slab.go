package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SlabBand is one contiguous income range taxed at a single marginal rate.
// A nil UpTo marks the unbounded top band.
type SlabBand struct {
	UpTo *decimal.Decimal `yaml:"up_to,omitempty" json:"upTo"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
}

// Bounded creates a band ending at upTo (inclusive)
func Bounded(upTo int64, rate string) SlabBand {
	limit := decimal.NewFromInt(upTo)
	return SlabBand{UpTo: &limit, Rate: mustDecimal(rate)}
}

// Unbounded creates the open-ended top band
func Unbounded(rate string) SlabBand {
	return SlabBand{Rate: mustDecimal(rate)}
}

// IsUnbounded reports whether the band has no upper limit
func (b SlabBand) IsUnbounded() bool { return b.UpTo == nil }

// SlabTable is the ordered band list for one regime
type SlabTable []SlabBand

// Validate checks ascending bounds, a single trailing unbounded band and
// non-decreasing rates in [0,1).
func (t SlabTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: slab table is empty", ErrInvalidRules)
	}
	one := decimal.NewFromInt(1)
	lower := decimal.Zero
	prevRate := decimal.Zero
	for i, band := range t {
		if band.Rate.IsNegative() || band.Rate.GreaterThanOrEqual(one) {
			return fmt.Errorf("%w: band %d rate %s outside [0,1)", ErrInvalidRules, i, band.Rate)
		}
		if band.Rate.LessThan(prevRate) {
			return fmt.Errorf("%w: band %d rate %s lower than previous rate %s", ErrInvalidRules, i, band.Rate, prevRate)
		}
		prevRate = band.Rate

		last := i == len(t)-1
		if band.IsUnbounded() {
			if !last {
				return fmt.Errorf("%w: band %d is unbounded but not last", ErrInvalidRules, i)
			}
			continue
		}
		if last {
			return fmt.Errorf("%w: last band must be unbounded", ErrInvalidRules)
		}
		if band.UpTo.LessThanOrEqual(lower) {
			return fmt.Errorf("%w: band %d upper bound %s not above %s", ErrInvalidRules, i, band.UpTo, lower)
		}
		lower = *band.UpTo
	}
	return nil
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("invalid decimal literal %q: %v", s, err))
	}
	return d
}
