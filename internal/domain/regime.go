package domain

import (
	"fmt"
	"strings"
)

// Regime selects which slab table and deduction/rebate rules apply
type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// Regimes lists the supported regimes in display order
var Regimes = []Regime{RegimeOld, RegimeNew}

// ParseRegime normalizes a caller-supplied regime identifier
func ParseRegime(s string) (Regime, error) {
	r := Regime(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: unsupported regime %q (expected old or new)", ErrInvalidInput, s)
	}
	return r, nil
}

// Valid reports whether r is one of the supported regimes
func (r Regime) Valid() bool {
	return r == RegimeOld || r == RegimeNew
}

func (r Regime) String() string { return string(r) }
