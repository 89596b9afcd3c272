package decision_test

import (
	"testing"

	"github.com/katalvlaran/decigraph/decision"
)

// TestKindFromLabel exercises the keyword heuristics. Inference is
// best-effort: the final two cases document the intended
// decision fallback for unmatched labels.
func TestKindFromLabel(t *testing.T) {
	cases := []struct {
		label string
		want  decision.NodeKind
	}{
		{"Main Goal", decision.KindGoal},
		{"revenue TARGET 2027", decision.KindGoal},
		{"Option A", decision.KindOption},
		{"first choice", decision.KindOption},
		{"Supply risk", decision.KindRisk},
		{"insider threat", decision.KindRisk},
		{"Quarterly Result", decision.KindOutcome},
		{"best outcome", decision.KindOutcome},
		{"Pick a vendor", decision.KindDecision},
		{"", decision.KindDecision},
	}
	for _, tc := range cases {
		if got := decision.KindFromLabel(tc.label); got != tc.want {
			t.Errorf("KindFromLabel(%q) = %q; want %q", tc.label, got, tc.want)
		}
	}
}

// TestNodeKind_Binary pins which kinds count as event-like.
func TestNodeKind_Binary(t *testing.T) {
	binary := []decision.NodeKind{decision.KindRisk, decision.KindOutcome, decision.KindAction}
	graded := []decision.NodeKind{
		decision.KindGoal, decision.KindDecision, decision.KindOption,
		decision.KindFactor, decision.KindConstraint,
	}
	for _, k := range binary {
		if !k.Binary() {
			t.Errorf("%q should be binary", k)
		}
	}
	for _, k := range graded {
		if k.Binary() {
			t.Errorf("%q should be graded", k)
		}
	}
}
