package decision

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/decigraph/edge"
	"github.com/katalvlaran/decigraph/snapshot"
)

// ErrSnapshotVersion indicates a snapshot that is not at the current
// schema version; run it through migrate.Import first.
var ErrSnapshotVersion = errors.New("decision: snapshot not at current schema version")

// FromSnapshot builds a Graph from a current-version snapshot (as
// produced by migrate.Import). Older snapshots are rejected — the
// migrate package is the only sanctioned writer of version upgrades.
//
// Complexity: O(nodes + edges).
func FromSnapshot(s *snapshot.Snapshot) (*Graph, error) {
	if s == nil || s.Version != edge.CurrentSchemaVersion {
		return nil, ErrSnapshotVersion
	}

	g := NewGraph()
	for _, n := range s.Nodes {
		kind := NodeKind(n.Data.Type)
		if !kind.Valid() {
			kind = KindFromLabel(n.Data.Label)
		}
		node := Node{ID: n.ID, Kind: kind, Label: n.Data.Label, X: n.Position.X, Y: n.Position.Y}
		if err := g.AddNode(node); err != nil {
			return nil, fmt.Errorf("decision: node %q: %w", n.ID, err)
		}
	}
	for _, e := range s.Edges {
		if err := g.addWireEdge(e); err != nil {
			return nil, fmt.Errorf("decision: edge %q: %w", e.ID, err)
		}
	}

	return g, nil
}

// addWireEdge inserts one persisted edge verbatim (keeping its ID).
func (g *Graph) addWireEdge(w snapshot.Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, found := g.nodes[w.Source]; !found {
		return ErrNodeNotFound
	}
	if _, found := g.nodes[w.Target]; !found {
		return ErrNodeNotFound
	}
	e := Edge{ID: w.ID, From: w.Source, To: w.Target, Data: wireToModel(w.Data)}
	g.edges[e.ID] = e
	g.out[w.Source][e.ID] = struct{}{}

	return nil
}

// ToSnapshot serializes the graph back to the wire format with the
// given save timestamp (epoch millis). Output order is deterministic
// (sorted by ID).
//
// Complexity: O(V log V + E log E).
func (g *Graph) ToSnapshot(timestamp int64) *snapshot.Snapshot {
	s := &snapshot.Snapshot{
		Version:   edge.CurrentSchemaVersion,
		Timestamp: timestamp,
	}
	for _, n := range g.Nodes() {
		s.Nodes = append(s.Nodes, snapshot.Node{
			ID:       n.ID,
			Position: snapshot.Position{X: n.X, Y: n.Y},
			Data:     snapshot.NodeData{Label: n.Label, Type: string(n.Kind)},
		})
	}
	for _, e := range g.Edges() {
		s.Edges = append(s.Edges, snapshot.Edge{
			ID:     e.ID,
			Source: e.From,
			Target: e.To,
			Data:   modelToWire(e.Data),
		})
	}

	return s
}

// wireToModel converts a current-version persisted payload into the
// in-memory model, clamping on the way in. Absent optional fields take
// the v4 defaults.
func wireToModel(w snapshot.EdgeData) edge.Data {
	d := edge.New()
	if w.Weight != nil {
		d.Weight = *w.Weight
	}
	if w.BeliefExists != nil {
		d.BeliefExists = *w.BeliefExists
	}
	if w.BeliefStrength != nil {
		d.BeliefStrength = *w.BeliefStrength
	}
	if w.FunctionType != "" {
		d.FunctionType = edge.FuncType(w.FunctionType)
	}
	if len(w.FunctionParams) > 0 {
		d.FunctionParams = edge.FuncParams(w.FunctionParams).Clone()
	}
	if w.Kind != "" {
		d.Kind = edge.Kind(w.Kind)
	}
	if w.Style != "" {
		d.Style = w.Style
	}
	if w.Curvature != nil {
		d.Curvature = *w.Curvature
	}
	d.Label = w.Label
	d.Confidence = w.Confidence

	return d.Normalize()
}

// modelToWire is the inverse of wireToModel.
func modelToWire(d edge.Data) snapshot.EdgeData {
	d = d.Normalize()
	w := snapshot.EdgeData{
		Label:          d.Label,
		Style:          d.Style,
		FunctionType:   string(d.FunctionType),
		FunctionParams: map[string]float64(d.FunctionParams),
		Kind:           string(d.Kind),
		Confidence:     d.Confidence,
		SchemaVersion:  d.SchemaVersion,
	}
	weight, curvature := d.Weight, d.Curvature
	exists, strength := d.BeliefExists, d.BeliefStrength
	w.Weight = &weight
	w.Curvature = &curvature
	w.BeliefExists = &exists
	w.BeliefStrength = &strength

	return w
}
