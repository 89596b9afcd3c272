// Package forms evaluates the functional form attached to an influence
// edge: a pure, total mapping from a normalized source activation
// x ∈ [0,1] to a normalized output effect y ∈ [0,1].
//
// 🚀 Supported forms
//
//	linear                y = x
//	diminishing_returns   y = x^c                      c ∈ [0.1,2]
//	threshold             y = 0 if x < t, else 1       t ∈ [0,1]
//	s_curve               y = σ(k·(x − m))             m ∈ [0,1], k ∈ [1,20]
//	logistic              y = σ(s·(x + b/10 − ½))      b ∈ [-5,5], s ∈ [1,10]
//	noisy_or              y = 1 − (1−leak)·(1 − strength·x)
//	noisy_and_not         y = baseRate·(1 − strength·x)
//
// where σ(z) = 1/(1+e^(−z)). At x=0.5 with zero bias both sigmoids
// yield 0.5; noisy-OR yields exactly the leak at x=0; noisy-AND-NOT
// yields the base rate at x=0 and fully suppresses it at x=1 with
// strength 1.
//
// Contracts:
//
//   - Evaluate is total: out-of-range x is clamped first, an unknown
//     form degrades to linear, a missing parameter takes its documented
//     default. Evaluation never returns an error.
//   - ValidateParams reports range violations as field-level issues —
//     values, not errors — so the caller decides whether to block a
//     commit.
//   - CheckNoisyUsage is advisory only: noisy forms between non-binary
//     node kinds warn but never block.
//
// Complexity: every kernel is O(1).
package forms
