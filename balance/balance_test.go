package balance_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/decigraph/balance"
)

// rowsOf builds unlocked rows from bare values.
func rowsOf(values ...float64) []balance.Row {
	rows := make([]balance.Row, len(values))
	for i, v := range values {
		rows[i] = balance.Row{Value: v}
	}

	return rows
}

//----------------------------------------------------------------------------//
// AutoBalance
//----------------------------------------------------------------------------//

// TestAutoBalance_LockedRowEchoed: locking 40 leaves 60 for the two
// remaining rows, already ratio- and step-aligned.
func TestAutoBalance_LockedRowEchoed(t *testing.T) {
	rows := []balance.Row{
		{Value: 40, Locked: true},
		{Value: 30},
		{Value: 30},
	}
	out, err := balance.AutoBalance(rows, balance.Options{Step: 5})
	require.NoError(t, err)
	require.Equal(t, []float64{40, 30, 30}, out)
}

// TestAutoBalance_PreservesRatios: 60/20 unlocked keeps its 3:1 ratio
// over the remainder.
func TestAutoBalance_PreservesRatios(t *testing.T) {
	rows := []balance.Row{
		{Value: 20, Locked: true},
		{Value: 60},
		{Value: 20},
	}
	out, err := balance.AutoBalance(rows, balance.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []float64{20, 60, 20}, out)
	require.InDelta(t, 100, floats.Sum(out), 1e-9)
}

// TestAutoBalance_RemainderToLargest: three equal rows rounded to a
// coarse step overshoot; the first (largest by tie order) absorbs the
// negative remainder so the total is exact.
func TestAutoBalance_RemainderToLargest(t *testing.T) {
	out, err := balance.AutoBalance(rowsOf(1, 1, 1), balance.Options{Step: 5})
	require.NoError(t, err)
	require.Equal(t, []float64{30, 35, 35}, out)
	require.InDelta(t, 100, floats.Sum(out), 1e-9)
}

// TestAutoBalance_CoarseStepStaysNonNegative: a step wider than the
// unlocked remainder rounds every share up, so the absorber would owe
// more than it holds; it is pulled to zero and the shortfall reclaimed
// from the other unlocked rows instead of going negative.
func TestAutoBalance_CoarseStepStaysNonNegative(t *testing.T) {
	rows := []balance.Row{
		{Value: 92, Locked: true},
		{Value: 1},
		{Value: 1},
		{Value: 1},
	}
	out, err := balance.AutoBalance(rows, balance.Options{Step: 5})
	require.NoError(t, err)
	require.Equal(t, []float64{92, 0, 3, 5}, out)
	for i, v := range out {
		require.GreaterOrEqual(t, v, 0.0, "row %d", i)
	}
	require.InDelta(t, 100, floats.Sum(out), 1e-9)
}

// TestAutoBalance_ZeroRowsSplitEqually: with an all-zero unlocked set
// the ratios are undefined, so shares fall back to equal.
func TestAutoBalance_ZeroRowsSplitEqually(t *testing.T) {
	out, err := balance.AutoBalance(rowsOf(0, 0), balance.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []float64{50, 50}, out)
}

// TestAutoBalance_SingleUnlocked: one unlocked row takes the whole
// remainder.
func TestAutoBalance_SingleUnlocked(t *testing.T) {
	rows := []balance.Row{
		{Value: 70, Locked: true},
		{Value: 10},
	}
	out, err := balance.AutoBalance(rows, balance.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []float64{70, 30}, out)
}

// TestAutoBalance_Errors: all-locked and locked-overflow fail without
// touching any value.
func TestAutoBalance_Errors(t *testing.T) {
	allLocked := []balance.Row{{Value: 50, Locked: true}, {Value: 50, Locked: true}}
	_, err := balance.AutoBalance(allLocked, balance.DefaultOptions())
	require.True(t, errors.Is(err, balance.ErrAllLocked))

	overflow := []balance.Row{{Value: 120, Locked: true}, {Value: 10}}
	_, err = balance.AutoBalance(overflow, balance.DefaultOptions())
	require.True(t, errors.Is(err, balance.ErrLockedOverflow))

	_, err = balance.AutoBalance(nil, balance.DefaultOptions())
	require.True(t, errors.Is(err, balance.ErrAllLocked))
}

// TestAutoBalance_InputNotMutated: purity contract.
func TestAutoBalance_InputNotMutated(t *testing.T) {
	rows := []balance.Row{{Value: 10, Locked: true}, {Value: 33}, {Value: 11}}
	_, err := balance.AutoBalance(rows, balance.Options{Step: 5})
	require.NoError(t, err)
	require.Equal(t, []balance.Row{{Value: 10, Locked: true}, {Value: 33}, {Value: 11}}, rows)
}

// TestAutoBalance_AlwaysExactTotal sweeps assorted shapes and checks
// the exact-100 guarantee.
func TestAutoBalance_AlwaysExactTotal(t *testing.T) {
	cases := [][]balance.Row{
		rowsOf(13, 29, 58),
		rowsOf(1, 2, 3, 4, 5),
		{{Value: 33, Locked: true}, {Value: 7}, {Value: 21}},
		{{Value: 99, Locked: true}, {Value: 50}},
		{{Value: 92, Locked: true}, {Value: 1}, {Value: 1}, {Value: 1}},
	}
	for _, rows := range cases {
		for _, step := range []float64{1, 5, 10} {
			out, err := balance.AutoBalance(rows, balance.Options{Step: step})
			require.NoError(t, err)
			require.InDelta(t, 100, floats.Sum(out), 1e-6, "rows=%v step=%v", rows, step)
			for i, v := range out {
				require.GreaterOrEqual(t, v, 0.0, "rows=%v step=%v row=%d", rows, step, i)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// EqualSplit
//----------------------------------------------------------------------------//

// TestEqualSplit_ThreeWays: 100% over three rows at step 5 floors to
// 30 each, leftover 10 to the last row.
func TestEqualSplit_ThreeWays(t *testing.T) {
	out, err := balance.EqualSplit(rowsOf(0, 0, 0), balance.Options{Step: 5})
	require.NoError(t, err)
	require.Equal(t, []float64{30, 30, 40}, out)
	require.InDelta(t, 100, floats.Sum(out), 1e-9)
}

// TestEqualSplit_EvenDivision: no leftover when the remainder divides
// cleanly.
func TestEqualSplit_EvenDivision(t *testing.T) {
	rows := []balance.Row{
		{Value: 50, Locked: true},
		{Value: 1},
		{Value: 2},
	}
	out, err := balance.EqualSplit(rows, balance.Options{Step: 5})
	require.NoError(t, err)
	require.Equal(t, []float64{50, 25, 25}, out)
}

// TestEqualSplit_LeftoverToLastUnlocked: the last *unlocked* row takes
// the leftover even when a locked row sits after it.
func TestEqualSplit_LeftoverToLastUnlocked(t *testing.T) {
	rows := []balance.Row{
		{Value: 0},
		{Value: 0},
		{Value: 10, Locked: true},
	}
	out, err := balance.EqualSplit(rows, balance.Options{Step: 20})
	require.NoError(t, err)
	// 90 over two rows at step 20: floor(45/20)*20 = 40 each, leftover
	// 10 to row 1.
	require.Equal(t, []float64{40, 50, 10}, out)
}

// TestEqualSplit_Errors mirrors AutoBalance's failure conditions.
func TestEqualSplit_Errors(t *testing.T) {
	_, err := balance.EqualSplit([]balance.Row{{Value: 100, Locked: true}}, balance.DefaultOptions())
	require.True(t, errors.Is(err, balance.ErrAllLocked))

	overflow := []balance.Row{{Value: 101, Locked: true}, {Value: 0}}
	_, err = balance.EqualSplit(overflow, balance.DefaultOptions())
	require.True(t, errors.Is(err, balance.ErrLockedOverflow))
}

//----------------------------------------------------------------------------//
// Validate gate
//----------------------------------------------------------------------------//

// TestValidate_Tolerance: ±1 around 100, with the literal sum reported.
func TestValidate_Tolerance(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
		valid  bool
		sum    float64
	}{
		{"Exact", []float64{60, 40}, true, 100},
		{"LowEdge", []float64{50, 49}, true, 99},
		{"HighEdge", []float64{50, 51}, true, 101},
		{"TooHigh", []float64{60, 48}, false, 108},
		{"TooLow", []float64{50, 48}, false, 98},
		{"Empty", nil, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := balance.Validate(rowsOf(tc.values...))
			require.Equal(t, tc.valid, res.Valid)
			require.InDelta(t, tc.sum, res.Sum, 1e-9)
		})
	}
}

// TestValidate_LockStateIrrelevant: the gate sums every row, locked or
// not.
func TestValidate_LockStateIrrelevant(t *testing.T) {
	rows := []balance.Row{{Value: 60, Locked: true}, {Value: 40}}
	res := balance.Validate(rows)
	require.True(t, res.Valid)
	require.Equal(t, 100.0, res.Sum)
}
