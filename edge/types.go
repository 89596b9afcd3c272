// Package edge: type declarations for the v4 edge data model.
package edge

// Kind identifies the semantic role of an influence edge. The role
// decides which invariants apply: decision-probability siblings must
// keep their Confidence shares summing to 100%, the other kinds carry
// no sibling rule.
type Kind string

const (
	// KindDecisionProbability marks an edge whose Confidence is this
	// edge's share of a 100%-sum sibling group under the same source.
	KindDecisionProbability Kind = "decision-probability"

	// KindRiskLikelihood marks an edge expressing how likely a risk is
	// to fire given its source activation.
	KindRiskLikelihood Kind = "risk-likelihood"

	// KindInfluenceWeight marks a generic weighted influence.
	KindInfluenceWeight Kind = "influence-weight"

	// KindDeterministic marks an edge that always transmits fully.
	KindDeterministic Kind = "deterministic"
)

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindDecisionProbability, KindRiskLikelihood, KindInfluenceWeight, KindDeterministic:
		return true
	default:
		return false
	}
}

// FuncType selects the functional form mapping a source activation in
// [0,1] to an output effect in [0,1]. Formulas live in the forms
// package; this package only names the selector values as persisted.
type FuncType string

const (
	// Linear passes activation through unchanged: y = x.
	Linear FuncType = "linear"
	// DiminishingReturns is y = x^c with early-heavy gains for c < 1.
	DiminishingReturns FuncType = "diminishing_returns"
	// Threshold is a hard step: 0 below t, 1 at or above t.
	Threshold FuncType = "threshold"
	// SCurve is a sigmoid parameterized by midpoint and steepness.
	SCurve FuncType = "s_curve"
	// Logistic is a sigmoid parameterized by bias and scale.
	Logistic FuncType = "logistic"
	// NoisyOR is the Bayesian-network additive-cause combination rule.
	NoisyOR FuncType = "noisy_or"
	// NoisyANDNot is the preventative-cause rule: activation suppresses
	// a base rate.
	NoisyANDNot FuncType = "noisy_and_not"
)

// Valid reports whether f is one of the recognized functional forms.
func (f FuncType) Valid() bool {
	switch f {
	case Linear, DiminishingReturns, Threshold, SCurve, Logistic, NoisyOR, NoisyANDNot:
		return true
	default:
		return false
	}
}

// FuncParams holds form-specific parameters keyed by field name, as
// persisted in the snapshot's functionParams object. An absent key
// selects that parameter's documented default.
type FuncParams map[string]float64

// Clone returns an independent copy of p (nil stays nil).
func (p FuncParams) Clone() FuncParams {
	if p == nil {
		return nil
	}
	out := make(FuncParams, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}

// Data is the v4 edge payload: everything the engine knows about one
// influence edge beyond its endpoints.
type Data struct {
	// Weight is the base influence strength in [0,1].
	Weight float64 `json:"weight"`

	// BeliefExists is the probability the causal relationship is real.
	BeliefExists float64 `json:"beliefExists"`

	// BeliefStrength is the probability the relationship is strong
	// given that it exists.
	BeliefStrength float64 `json:"beliefStrength"`

	// FunctionType selects the activation→effect transformation.
	FunctionType FuncType `json:"functionType"`

	// FunctionParams carries form-specific parameters; required only
	// for non-default forms.
	FunctionParams FuncParams `json:"functionParams,omitempty"`

	// Confidence, when set, is this edge's share of a 100%-sum sibling
	// group (stored as a fraction in [0,1]); meaningful only for
	// KindDecisionProbability.
	Confidence *float64 `json:"confidence,omitempty"`

	// Kind is the semantic role of the edge.
	Kind Kind `json:"kind"`

	// Label is the rendered edge caption, if any.
	Label string `json:"label,omitempty"`

	// Style and Curvature are rendered visuals carried through from the
	// v1→v2 migration; the engine never interprets them.
	Style     string  `json:"style,omitempty"`
	Curvature float64 `json:"curvature,omitempty"`

	// SchemaVersion tags the persisted layout; always
	// CurrentSchemaVersion for records produced by this package.
	SchemaVersion int `json:"schemaVersion"`
}
