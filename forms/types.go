// Package forms: parameter names, defaults, ranges, and result types.
package forms

//-----------------------------------------------------------------------------
// Parameter Field Names
//   keys of edge.FuncParams as persisted in functionParams objects.
//-----------------------------------------------------------------------------

const (
	// ParamExponent is the curvature exponent of diminishing_returns.
	ParamExponent = "exponent"
	// ParamThreshold is the step position of threshold.
	ParamThreshold = "threshold"
	// ParamMidpoint is the sigmoid midpoint of s_curve.
	ParamMidpoint = "midpoint"
	// ParamSteepness is the sigmoid slope of s_curve.
	ParamSteepness = "steepness"
	// ParamBias shifts the logistic midpoint across the domain.
	ParamBias = "bias"
	// ParamScale is the logistic slope.
	ParamScale = "scale"
	// ParamStrength scales the causal contribution of x in the noisy
	// forms.
	ParamStrength = "strength"
	// ParamLeak is the baseline "something else causes Y" probability
	// of noisy_or.
	ParamLeak = "leak"
	// ParamBaseRate is the unprevented probability of noisy_and_not.
	ParamBaseRate = "baseRate"
)

//-----------------------------------------------------------------------------
// Parameter Defaults
//   applied whenever a key is absent from FuncParams.
//-----------------------------------------------------------------------------

const (
	// DefaultExponent gives early-heavy gains (c < 1).
	DefaultExponent = 0.5
	// DefaultThreshold steps at mid-activation.
	DefaultThreshold = 0.5
	// DefaultMidpoint centers the s-curve.
	DefaultMidpoint = 0.5
	// DefaultSteepness is a visibly sigmoid but not step-like slope.
	DefaultSteepness = 10.0
	// DefaultBias leaves the logistic midpoint at x = 0.5.
	DefaultBias = 0.0
	// DefaultScale is the typical logistic slope.
	DefaultScale = 4.0
	// DefaultStrength transmits the full causal contribution.
	DefaultStrength = 1.0
	// DefaultLeak assumes no alternative cause.
	DefaultLeak = 0.0
	// DefaultBaseRate is the unprevented probability when unspecified.
	DefaultBaseRate = 0.5
)

//-----------------------------------------------------------------------------
// Parameter Ranges
//   closed intervals enforced by ValidateParams.
//-----------------------------------------------------------------------------

const (
	MinExponent, MaxExponent   = 0.1, 2.0
	MinThreshold, MaxThreshold = 0.0, 1.0
	MinMidpoint, MaxMidpoint   = 0.0, 1.0
	MinSteepness, MaxSteepness = 1.0, 20.0
	MinBias, MaxBias           = -5.0, 5.0
	MinScale, MaxScale         = 1.0, 10.0
	MinStrength, MaxStrength   = 0.0, 1.0
	MinLeak, MaxLeak           = 0.0, 1.0
	MinBaseRate, MaxBaseRate   = 0.0, 1.0
)

// biasStep converts the logistic bias range [-5,5] into a midpoint
// shift spanning the whole [0,1] domain.
const biasStep = 0.1

// ParamIssue describes one out-of-range parameter field.
type ParamIssue struct {
	// Field is the offending FuncParams key.
	Field string
	// Message is a human-readable range violation, e.g.
	// "exponent must be in [0.1,2.0], got 3".
	Message string
}

// UsageCheck is the advisory result of CheckNoisyUsage. Valid=false
// never blocks evaluation; Warning and Suggestion are surfaced to the
// user as-is.
type UsageCheck struct {
	Valid      bool
	Warning    string
	Suggestion string
}
