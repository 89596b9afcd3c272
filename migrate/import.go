package migrate

import (
	"fmt"

	"github.com/katalvlaran/decigraph/balance"
	"github.com/katalvlaran/decigraph/edge"
	"github.com/katalvlaran/decigraph/snapshot"
)

// Import loads a persisted snapshot end to end: decode → detect →
// migrate (when older than Current) → clamp → validate.
//
// All-or-nothing: on any failure the whole import is abandoned, the
// error is captured through rep with component and step tags, and the
// caller receives nil — so a broken file renders as a recoverable
// "couldn't load" state instead of a crash. An already-current
// snapshot round-trips with its logical content unchanged (apart from
// unit-interval clamping, which is an invariant, not a transform).
//
// Complexity: O(nodes + edges).
func Import(raw []byte, rep Reporter) *snapshot.Snapshot {
	if rep == nil {
		rep = NopReporter{}
	}

	s, err := snapshot.Decode(raw)
	if err != nil {
		rep.Capture(err, tags(StepDecode))

		return nil
	}

	version, ok := DetectVersion(s)
	if !ok {
		rep.Capture(ErrUnknownVersion, tags(StepDetect))

		return nil
	}

	if version < Current {
		if s, err = Migrate(s, version); err != nil {
			rep.Capture(err, tags(StepChain))

			return nil
		}
	} else {
		s = s.Clone()
		s.Version = Current
	}

	clampUnits(s)
	if err = validateSnapshot(s); err != nil {
		rep.Capture(err, tags(StepValidate))

		return nil
	}

	return s
}

// clampUnits enforces the storage invariant: every unit-interval field
// lands in [0,1] before the snapshot is handed to anyone.
func clampUnits(s *snapshot.Snapshot) {
	for i := range s.Edges {
		d := &s.Edges[i].Data
		clampPtr(d.Weight)
		clampPtr(d.BeliefExists)
		clampPtr(d.BeliefStrength)
		clampPtr(d.Confidence)
	}
}

func clampPtr(p *float64) {
	if p != nil {
		*p = edge.Clamp01(*p)
	}
}

// validateSnapshot is the final import gate: structural references,
// version currency, and the decision-probability sibling-sum
// invariant.
func validateSnapshot(s *snapshot.Snapshot) error {
	if s.Version != Current {
		return fmt.Errorf("%w: snapshot at v%d", ErrNotCurrent, s.Version)
	}

	ids := make(map[string]struct{}, len(s.Nodes))
	for _, n := range s.Nodes {
		if _, dup := ids[n.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
		}
		ids[n.ID] = struct{}{}
	}

	// sums[source] accumulates explicit confidence shares (×100);
	// seen marks groups with at least one explicit share, since only
	// those are bound by the 100% invariant.
	sums := make(map[string]float64)
	seen := make(map[string]bool)
	for _, e := range s.Edges {
		if _, found := ids[e.Source]; !found {
			return fmt.Errorf("%w: edge %q source %q", ErrDanglingEdge, e.ID, e.Source)
		}
		if _, found := ids[e.Target]; !found {
			return fmt.Errorf("%w: edge %q target %q", ErrDanglingEdge, e.ID, e.Target)
		}
		if e.Data.SchemaVersion != Current {
			return fmt.Errorf("%w: edge %q at v%d", ErrNotCurrent, e.ID, e.Data.SchemaVersion)
		}
		if edge.Kind(e.Data.Kind) == edge.KindDecisionProbability && e.Data.Confidence != nil {
			sums[e.Source] += *e.Data.Confidence * balance.Total
			seen[e.Source] = true
		}
	}
	for source := range seen {
		if res := balance.ValidateValues([]float64{sums[source]}); !res.Valid {
			return fmt.Errorf("%w: source %q sums to %.1f", ErrUnbalancedGroup, source, res.Sum)
		}
	}

	return nil
}
