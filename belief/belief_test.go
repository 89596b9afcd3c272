package belief_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decigraph/belief"
)

// TestEffectiveWeight_Product: clamped triple product.
func TestEffectiveWeight_Product(t *testing.T) {
	cases := []struct {
		name                   string
		base, exists, strength float64
		want                   float64
	}{
		{"AllOnes", 1, 1, 1, 1},
		{"Typical", 0.5, 0.7, 0.5, 0.175},
		{"ZeroBase", 0, 1, 1, 0},
		{"BaseClampedHigh", 2, 0.5, 0.5, 0.25},
		{"NegativeClamped", 0.5, -1, 0.5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, belief.EffectiveWeight(tc.base, tc.exists, tc.strength), 1e-12)
		})
	}
}

// TestEffectiveWeight_NoExistenceZeroesEverything: with zero belief in
// existence the effect is zero for any weight and strength.
func TestEffectiveWeight_NoExistenceZeroesEverything(t *testing.T) {
	for _, w := range []float64{0, 0.3, 1, 42} {
		for _, s := range []float64{0, 0.5, 1} {
			require.Equal(t, 0.0, belief.EffectiveWeight(w, 0, s), "w=%v s=%v", w, s)
		}
	}
}

// TestSample_Threshold: active exactly when draw < exists.
func TestSample_Threshold(t *testing.T) {
	out := belief.Sample(0.7, 0.5, 0.69)
	require.True(t, out.Active)
	require.Equal(t, 0.5, out.Strength)

	out = belief.Sample(0.7, 0.5, 0.7)
	require.False(t, out.Active)
	require.Equal(t, 0.0, out.Strength)

	// Zero existence never activates, even at draw 0.
	out = belief.Sample(0, 1, 0)
	require.False(t, out.Active)

	// Certain existence always activates for draws in [0,1).
	out = belief.Sample(1, 0.4, 0.999999)
	require.True(t, out.Active)
	require.Equal(t, 0.4, out.Strength)
}

// TestSample_Deterministic: same seed, same realizations — the
// reproducibility contract for parallel simulation workers.
func TestSample_Deterministic(t *testing.T) {
	run := func(seed int64) []belief.Outcome {
		rng := rand.New(rand.NewSource(seed))
		out := make([]belief.Outcome, 100)
		for i := range out {
			out[i] = belief.Sample(0.6, 0.8, rng.Float64())
		}

		return out
	}
	require.Equal(t, run(42), run(42))
}

// TestSample_Frequency: over many draws the activation rate tracks the
// existence belief. Statistical, but the seed is fixed.
func TestSample_Frequency(t *testing.T) {
	const n = 10000
	rng := rand.New(rand.NewSource(1))
	active := 0
	for i := 0; i < n; i++ {
		if belief.Sample(0.7, 1, rng.Float64()).Active {
			active++
		}
	}
	rate := float64(active) / n
	require.InDelta(t, 0.7, rate, 0.02)
}
