package belief

import "github.com/katalvlaran/decigraph/edge"

// Outcome is one stochastic realization of an edge's dual belief.
type Outcome struct {
	// Active reports whether the relationship exists in this draw.
	Active bool
	// Strength is the edge's strength belief when active, 0 otherwise.
	Strength float64
}

// EffectiveWeight combines a base weight with the dual belief values
// into one effective multiplier: each input is clamped to [0,1]
// independently, the three are multiplied, and the product is clamped
// again.
//
// Properties: zero belief in existence zeroes the result regardless of
// the other inputs; the result never leaves [0,1].
//
// Complexity: O(1).
func EffectiveWeight(base, exists, strength float64) float64 {
	w := edge.Clamp01(base) * edge.Clamp01(exists) * edge.Clamp01(strength)

	return edge.Clamp01(w)
}

// Sample realizes the dual belief against an externally supplied
// uniform draw in [0,1): the relationship is active when
// draw < exists, and carries the strength belief only while active.
//
// Deterministic given its inputs — the caller owns the RNG.
//
// Complexity: O(1).
func Sample(exists, strength, draw float64) Outcome {
	if draw < edge.Clamp01(exists) {
		return Outcome{Active: true, Strength: edge.Clamp01(strength)}
	}

	return Outcome{Active: false, Strength: 0}
}
