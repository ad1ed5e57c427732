package domain

import "errors"

// ErrInvalidInput marks requests the engine refuses to compute: missing or
// non-positive income, or an unsupported regime.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidRules marks a tax rules table that breaks the slab or schedule invariants.
var ErrInvalidRules = errors.New("invalid tax rules")
