// Package belief composes the two independent belief dimensions of an
// influence edge — existence (is the causal link real) and strength
// (how strong once real) — into one effective multiplier, and exposes
// the deterministic sampling contract used by stochastic simulation.
//
// Rationale: epistemic uncertainty (existence) and aleatory uncertainty
// (strength) are independent, so they multiply; clamping each factor
// and the product to [0,1] keeps the result from ever canceling into
// negative or >1 territory.
//
// Randomness is always an explicit argument. Sample never draws its own
// random numbers, so results are reproducible under test seeding and
// the package is safe to call from parallel simulation workers without
// shared RNG state (same policy as seeded heuristics elsewhere in the
// module).
package belief
