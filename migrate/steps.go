package migrate

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/katalvlaran/decigraph/decision"
	"github.com/katalvlaran/decigraph/edge"
	"github.com/katalvlaran/decigraph/snapshot"
)

// step is one pure version-upgrade transform. Steps mutate the clone
// they are given and stamp both the snapshot and its edges with the
// target version.
type step struct {
	from, to int
	apply    func(*snapshot.Snapshot)
}

// chain is the complete ordered upgrade path. Upgrades always compose
// consecutive steps; there is no skip path and no downgrade path.
var chain = []step{
	{from: 1, to: 2, apply: stepV1V2},
	{from: 2, to: 3, apply: stepV2V3},
	{from: 3, to: 4, apply: stepV3V4},
}

// Migrate upgrades s from the given version to Current by composing
// every intermediate chain step. The input snapshot is never mutated;
// the returned snapshot is a fully upgraded deep copy. A from version
// outside 1..Current yields ErrUnknownVersion.
//
// Migrating a snapshot already at Current returns an identical copy,
// so re-migration is idempotent.
//
// Complexity: O(steps × (nodes + edges)).
func Migrate(s *snapshot.Snapshot, from int) (*snapshot.Snapshot, error) {
	if from < 1 || from > Current {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, from)
	}
	out := s.Clone()
	for _, st := range chain {
		if st.from < from {
			continue
		}
		st.apply(out)
	}
	out.Version = Current

	return out, nil
}

// stepV1V2 attaches the first structured layer: inferred semantic node
// types, defaulted edge visuals, and label precedence. Records missing
// IDs (possible in hand-edited v1 files) get synthesized ones.
func stepV1V2(s *snapshot.Snapshot) {
	for i := range s.Nodes {
		n := &s.Nodes[i]
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		if n.Data.Type == "" {
			n.Data.Type = string(decision.KindFromLabel(n.Data.Label))
		}
	}
	for i := range s.Edges {
		e := &s.Edges[i]
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if e.Data.Weight == nil {
			e.Data.Weight = ptr(edge.DefaultVisualWeight)
		}
		if e.Data.Style == "" {
			e.Data.Style = edge.StyleSolid
		}
		if e.Data.Curvature == nil {
			e.Data.Curvature = ptr(edge.DefaultCurvature)
		}
		// Structural precedence: a top-level label always wins over one
		// nested in edge data, regardless of which was written last.
		if e.Label != "" {
			e.Data.Label = e.Label
			e.Label = ""
		}
		e.Data.SchemaVersion = 2
	}
	s.Version = 2
}

// stepV2V3 attaches edge semantics: the single legacy belief scalar,
// the functional-form selector, and the edge kind.
func stepV2V3(s *snapshot.Snapshot) {
	for i := range s.Edges {
		e := &s.Edges[i]
		if e.Data.Belief == nil {
			e.Data.Belief = ptr(DefaultLegacyBelief)
		}
		if e.Data.FunctionType == "" {
			e.Data.FunctionType = string(edge.Linear)
		}
		if e.Data.Kind == "" {
			e.Data.Kind = string(edge.KindInfluenceWeight)
		}
		e.Data.SchemaVersion = 3
	}
	s.Version = 3
}

// stepV3V4 splits the single belief scalar into the dual fields:
// beliefExists = √belief, beliefStrength = belief. The square-root
// split is a documented approximation (the product recovers the scalar
// exactly when strength equals existence); it is preserved verbatim
// for snapshot compatibility.
func stepV3V4(s *snapshot.Snapshot) {
	for i := range s.Edges {
		e := &s.Edges[i]
		if e.Data.BeliefExists == nil && e.Data.BeliefStrength == nil {
			if e.Data.Belief != nil {
				b := edge.Clamp01(*e.Data.Belief)
				e.Data.BeliefExists = ptr(math.Sqrt(b))
				e.Data.BeliefStrength = ptr(b)
			} else {
				e.Data.BeliefExists = ptr(edge.DefaultBeliefExists)
				e.Data.BeliefStrength = ptr(edge.DefaultBeliefStrength)
			}
		}
		e.Data.Belief = nil
		if e.Data.Weight == nil {
			e.Data.Weight = ptr(edge.DefaultWeight)
		}
		e.Data.SchemaVersion = 4
	}
	s.Version = 4
}

func ptr(v float64) *float64 { return &v }
