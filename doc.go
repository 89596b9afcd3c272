// Package decigraph is the influence engine behind a directed decision
// graph: goals, decisions, options, factors, risks, outcomes, actions
// and constraints, connected by edges that encode how one node's
// activation shapes another's.
//
// 🚀 What is decigraph?
//
//	A deterministic, side-effect-free engine that brings together:
//		• Edge data model: versioned schema with dual belief values and
//		  a functional-form selector (edge)
//		• Functional forms: linear, diminishing returns, threshold,
//		  s-curve/logistic, noisy-OR, noisy-AND-NOT (forms)
//		• Dual-belief composition: existence × strength, with
//		  reproducible stochastic sampling (belief)
//		• Schema migration: linear v1→v2→v3→v4 upgrade chain with
//		  heuristic version detection (migrate)
//		• Probability balancing: auto-balance and equal-split across
//		  sibling edges with partial locking, always landing on 100%
//		  (balance)
//		• Decision graph container: thread-safe node/edge store with
//		  atomic balancing commits (decision)
//
// ✨ Why choose decigraph?
//
//   - Pure functions – every numeric kernel is synchronous and
//     deterministic; randomness is always an explicit argument
//   - Rock-solid contracts – sentinel errors, clamped unit intervals,
//     all-or-nothing mutation
//   - Pure Go – no cgo, small dependency surface
//   - Worker-safe – safe to call from parallel simulation workers
//     without shared RNG state
//
// Under the hood, everything is organized per concern:
//
//	balance/  — sibling-probability redistribution + the ±1% commit gate
//	belief/   — dual-belief composer and sampler
//	decision/ — decision graph container, node kinds, batch commits
//	edge/     — versioned EdgeData model, kinds, defaults, clamping
//	forms/    — functional form evaluator and parameter validation
//	migrate/  — snapshot version detection, migration, guarded import
//	snapshot/ — persisted JSON wire format
//
// Quick ASCII example:
//
//	    Decision ──p=0.6──▶ Option A ───▶ Outcome
//	        └─────p=0.4──▶ Option B ───▶ Risk
//
//	two decision-probability siblings whose shares must sum to 100%.
//
// Dive into each package's doc.go for formulas, contracts and examples.
//
//	go get github.com/katalvlaran/decigraph
package decigraph
