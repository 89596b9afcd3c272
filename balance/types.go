// Package balance: row model, options, tolerances and sentinel errors.
package balance

import "errors"

// Sentinel errors for balancing operations.
var (
	// ErrAllLocked indicates every row (or no row at all) is locked, so
	// there is nothing to redistribute.
	ErrAllLocked = errors.New("balance: all rows are locked")

	// ErrLockedOverflow indicates the locked rows already sum above
	// 100%, leaving no valid remainder for the unlocked ones.
	ErrLockedOverflow = errors.New("balance: locked rows exceed 100%")

	// ErrValueCount indicates a committed value list whose length does
	// not match the sibling edge count.
	ErrValueCount = errors.New("balance: value count does not match row count")
)

// Total is the percentage mass a sibling group must account for.
const Total = 100.0

// Tolerance is the fixed ±1 band around Total accepted by Validate.
// It absorbs step-rounding artifacts and independent per-row numeric
// edits; it is deliberately not configurable per call.
const Tolerance = 1.0

// DefaultStep is the rounding granularity used when Options.Step is
// unset or non-positive.
const DefaultStep = 1.0

// epsilon guards float comparisons against accumulated dust.
const epsilon = 1e-9

// Row is one ephemeral editing row: a percentage value in [0,100] and
// whether the user pinned it. Rows are UI-session state constructed
// from edge data and discarded on commit or cancel — never persisted.
type Row struct {
	Value  float64
	Locked bool
}

// Options tunes the balancing policies.
type Options struct {
	// Step is the rounding granularity in percent (e.g. 5 rounds every
	// output to a multiple of five). Non-positive values fall back to
	// DefaultStep.
	Step float64
}

// DefaultOptions returns the standard balancing configuration:
// Step = 1.
func DefaultOptions() Options {
	return Options{Step: DefaultStep}
}

// step resolves the effective rounding granularity.
func (o Options) step() float64 {
	if o.Step <= 0 {
		return DefaultStep
	}

	return o.Step
}

// Result is the Validate gate verdict consumed by the inspector UI to
// enable/disable a commit action and render the literal deficit or
// excess.
type Result struct {
	// Valid reports whether Sum lies within Tolerance of Total.
	Valid bool
	// Sum is the actual percentage total of all rows.
	Sum float64
}
