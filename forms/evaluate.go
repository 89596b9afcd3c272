package forms

import (
	"math"

	"github.com/katalvlaran/decigraph/edge"
)

// Evaluate maps a source activation x through the functional form
// selected by form, returning the output effect in [0,1].
//
// Totality guarantees:
//   - x outside [0,1] is clamped before evaluation;
//   - an absent parameter takes its documented default;
//   - an unrecognized form degrades to linear.
//
// Evaluate therefore never fails at simulation time; range enforcement
// belongs to ValidateParams at edit time.
//
// Complexity: O(1).
func Evaluate(x float64, form edge.FuncType, params edge.FuncParams) float64 {
	x = edge.Clamp01(x)

	switch form {
	case edge.DiminishingReturns:
		c := param(params, ParamExponent, DefaultExponent)

		return edge.Clamp01(math.Pow(x, c))

	case edge.Threshold:
		t := param(params, ParamThreshold, DefaultThreshold)
		if x < t {
			return 0
		}

		return 1

	case edge.SCurve:
		m := param(params, ParamMidpoint, DefaultMidpoint)
		k := param(params, ParamSteepness, DefaultSteepness)

		return edge.Clamp01(sigmoid(k * (x - m)))

	case edge.Logistic:
		b := param(params, ParamBias, DefaultBias)
		s := param(params, ParamScale, DefaultScale)
		// bias shifts the midpoint: b=0 keeps σ(0)=0.5 at x=0.5.
		return edge.Clamp01(sigmoid(s * (x + b*biasStep - 0.5)))

	case edge.NoisyOR:
		strength := param(params, ParamStrength, DefaultStrength)
		leak := param(params, ParamLeak, DefaultLeak)
		// 1 − (1−leak)(1−strength·x): exactly leak at x=0.
		return edge.Clamp01(1 - (1-leak)*(1-strength*x))

	case edge.NoisyANDNot:
		base := param(params, ParamBaseRate, DefaultBaseRate)
		strength := param(params, ParamStrength, DefaultStrength)
		// preventative cause: base rate at x=0, fully blocked at
		// x=1 with strength 1.
		return edge.Clamp01(base * (1 - strength*x))

	case edge.Linear:
		return x

	default:
		// Unknown selector from a foreign snapshot: pass through.
		return x
	}
}

// sigmoid is the standard logistic function σ(z) = 1/(1+e^(−z)).
func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// param reads key from p, falling back to def when p is nil or the key
// is absent.
func param(p edge.FuncParams, key string, def float64) float64 {
	if p == nil {
		return def
	}
	v, ok := p[key]
	if !ok {
		return def
	}

	return v
}
