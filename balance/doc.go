// Package balance redistributes percentage mass across the sibling
// outgoing edges of a decision node while the user edits and locks
// individual rows, and gates whether the resulting set may be
// committed.
//
// 🚀 The two policies
//
//	AutoBalance — preserves the relative ratios of the unlocked rows
//	              while forcing their sum onto the remaining percentage
//	              (100 − locked), rounding to a step and assigning the
//	              rounding remainder to the largest unlocked row.
//	EqualSplit  — divides the remaining percentage evenly, flooring to
//	              step multiples, leftover to the last unlocked row.
//
// Both are pure: the input rows are never mutated, locked rows are
// echoed back unchanged, and on any error no values change at all.
// When they succeed, the full output (locked + unlocked) always sums
// to exactly 100.
//
// The Validate gate accepts a set whose sum is within ±1 of 100 — a
// fixed tolerance absorbing rounding artifacts from the balancers and
// from independent per-row numeric edits; it is not configurable.
//
// Row is an ephemeral view-model: it exists only during an editing
// session and is never persisted (the schema has no locked field).
package balance
