package balance

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// AutoBalance redistributes the unlocked remainder (100 − locked sum)
// across the unlocked rows in proportion to their current values.
//
// Algorithm:
//  1. Each unlocked row's share of the unlocked total is computed
//     (equal shares when the unlocked total is zero, since ratios are
//     then undefined).
//  2. Each share of the remainder is rounded to the nearest multiple
//     of opts.Step.
//  3. The rounding remainder — positive or negative — is assigned
//     whole to the unlocked row with the largest original value (ties
//     go to the first in list order), so the output total is exact.
//  4. A step coarser than the remainder can round every share up and
//     push the absorber below zero; the shortfall is then pulled back
//     from the other unlocked rows, largest original value first, so
//     every output row stays at or above zero (rows touched by this
//     pull-back may land off the step grid, as with any remainder
//     absorption).
//
// Locked rows are echoed back unchanged and excluded from both the
// denominator and the remainder assignment. The input is never
// mutated.
//
// Errors (all-or-nothing, no values change):
//   - ErrAllLocked       when no row is unlocked;
//   - ErrLockedOverflow  when the locked sum already exceeds 100.
//
// Complexity: O(n) time, O(n) space.
func AutoBalance(rows []Row, opts Options) ([]float64, error) {
	unlocked, lockedSum, err := split(rows)
	if err != nil {
		return nil, err
	}
	step := opts.step()
	target := Total - lockedSum

	// Unlocked total decides the share model.
	var unlockedSum float64
	for _, i := range unlocked {
		unlockedSum += rows[i].Value
	}

	out := echo(rows)
	rounded := make([]float64, len(unlocked))
	for j, i := range unlocked {
		share := 1 / float64(len(unlocked))
		if unlockedSum > epsilon {
			share = rows[i].Value / unlockedSum
		}
		rounded[j] = roundTo(share*target, step)
	}

	// Largest original unlocked value absorbs the remainder.
	largest := 0
	for j, i := range unlocked {
		if rows[i].Value > rows[unlocked[largest]].Value {
			largest = j
		}
	}
	remainder := target - floats.Sum(rounded)
	if math.Abs(remainder) > epsilon {
		rounded[largest] += remainder
	}
	if rounded[largest] < -epsilon {
		reclaim(rounded, largest, unlocked, rows)
	}

	for j, i := range unlocked {
		out[i] = snap(rounded[j])
	}

	return out, nil
}

// EqualSplit divides the unlocked remainder (100 − locked sum) evenly
// across the unlocked rows, flooring each share to a multiple of
// opts.Step; the leftover after flooring is added entirely to the last
// unlocked row in list order (which may leave that single row off the
// step grid when the remainder itself is not a step multiple).
//
// Same purity and failure contract as AutoBalance.
//
// Complexity: O(n) time, O(n) space.
func EqualSplit(rows []Row, opts Options) ([]float64, error) {
	unlocked, lockedSum, err := split(rows)
	if err != nil {
		return nil, err
	}
	step := opts.step()
	target := Total - lockedSum

	base := math.Floor(target/float64(len(unlocked))/step) * step
	leftover := target - base*float64(len(unlocked))

	out := echo(rows)
	for _, i := range unlocked {
		out[i] = base
	}
	last := unlocked[len(unlocked)-1]
	out[last] = snap(base + leftover)

	return out, nil
}

// reclaim zeroes a negative absorber and subtracts the shortfall from
// the other unlocked rows, visiting them by descending original value
// (stable, so ties keep list order). The shortfall always fits: the
// rounded rows collectively hold at least the unlocked target, which
// is non-negative once split has passed.
func reclaim(rounded []float64, absorber int, unlocked []int, rows []Row) {
	deficit := -rounded[absorber]
	rounded[absorber] = 0

	order := make([]int, len(unlocked))
	for j := range order {
		order[j] = j
	}
	sort.SliceStable(order, func(a, b int) bool {
		return rows[unlocked[order[a]]].Value > rows[unlocked[order[b]]].Value
	})
	for _, j := range order {
		if deficit <= epsilon {
			return
		}
		take := math.Min(rounded[j], deficit)
		rounded[j] -= take
		deficit -= take
	}
}

// split collects unlocked row indices and the locked sum, enforcing
// the shared failure conditions.
func split(rows []Row) (unlocked []int, lockedSum float64, err error) {
	for i, r := range rows {
		if r.Locked {
			lockedSum += r.Value
		} else {
			unlocked = append(unlocked, i)
		}
	}
	if len(unlocked) == 0 {
		return nil, 0, ErrAllLocked
	}
	if lockedSum > Total+epsilon {
		return nil, 0, ErrLockedOverflow
	}

	return unlocked, lockedSum, nil
}

// echo copies every row value into a fresh output slice.
func echo(rows []Row) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.Value
	}

	return out
}

// roundTo rounds v to the nearest multiple of step.
func roundTo(v, step float64) float64 {
	return math.Round(v/step) * step
}

// snap strips float dust (to a micro-percent grid) so exact-total
// guarantees survive equality checks in callers and tests.
func snap(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
