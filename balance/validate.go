package balance

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Validate is the commit gate: it sums every row (locked or not) and
// accepts the set when the total lies within Tolerance of Total.
// The verdict carries the literal sum so callers can render the exact
// deficit or excess.
//
// Complexity: O(n).
func Validate(rows []Row) Result {
	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = r.Value
	}

	return ValidateValues(values)
}

// ValidateValues applies the same gate to a bare value list, e.g. the
// output of AutoBalance or EqualSplit before it is written back.
func ValidateValues(values []float64) Result {
	sum := floats.Sum(values)

	return Result{
		Valid: math.Abs(sum-Total) <= Tolerance+epsilon,
		Sum:   sum,
	}
}
