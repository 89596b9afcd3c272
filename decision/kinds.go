// Package decision: node kind taxonomy and label-based inference.
package decision

import "strings"

// NodeKind is the semantic role of a decision-graph node.
type NodeKind string

const (
	// KindGoal is a desired end state.
	KindGoal NodeKind = "goal"
	// KindDecision is a choice point with outgoing options.
	KindDecision NodeKind = "decision"
	// KindOption is one selectable branch of a decision.
	KindOption NodeKind = "option"
	// KindFactor is a graded external influence.
	KindFactor NodeKind = "factor"
	// KindRisk is an adverse event that may or may not occur.
	KindRisk NodeKind = "risk"
	// KindOutcome is a terminal result that occurs or does not.
	KindOutcome NodeKind = "outcome"
	// KindAction is a concrete step that is taken or not.
	KindAction NodeKind = "action"
	// KindConstraint is a hard limit on the surrounding structure.
	KindConstraint NodeKind = "constraint"
)

// Valid reports whether k is one of the recognized node kinds.
func (k NodeKind) Valid() bool {
	switch k {
	case KindGoal, KindDecision, KindOption, KindFactor, KindRisk, KindOutcome, KindAction, KindConstraint:
		return true
	default:
		return false
	}
}

// Binary reports whether k models an event that either happens or does
// not. The noisy-OR / noisy-AND-NOT forms are only semantically sound
// between binary kinds; graded kinds (factor, goal, …) draw a soft
// warning from forms.CheckNoisyUsage.
func (k NodeKind) Binary() bool {
	switch k {
	case KindRisk, KindOutcome, KindAction:
		return true
	default:
		return false
	}
}

// kindKeywords maps label substrings to inferred kinds, checked in
// declaration order. Inference is best-effort: a label matching none of
// the keywords deliberately falls back to KindDecision.
var kindKeywords = []struct {
	words []string
	kind  NodeKind
}{
	{[]string{"goal", "target"}, KindGoal},
	{[]string{"option", "choice"}, KindOption},
	{[]string{"risk", "threat"}, KindRisk},
	{[]string{"outcome", "result"}, KindOutcome},
}

// KindFromLabel infers a node kind from its label, case-insensitively.
// Used by the v1→v2 migration for nodes persisted before kinds existed.
// Unrecognized labels default to KindDecision.
//
// Complexity: O(len(label)) per keyword.
func KindFromLabel(label string) NodeKind {
	lower := strings.ToLower(label)
	for _, kw := range kindKeywords {
		for _, w := range kw.words {
			if strings.Contains(lower, w) {
				return kw.kind
			}
		}
	}

	return KindDecision
}
