package decision_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decigraph/decision"
	"github.com/katalvlaran/decigraph/edge"
	"github.com/katalvlaran/decigraph/snapshot"
)

// TestSnapshotRoundTrip: graph → wire → graph preserves nodes, edges
// and payloads.
func TestSnapshotRoundTrip(t *testing.T) {
	g := decision.NewGraph()
	require.NoError(t, g.AddNode(decision.Node{ID: "d", Kind: decision.KindDecision, Label: "Pick", X: 10, Y: 20}))
	require.NoError(t, g.AddNode(decision.Node{ID: "o", Kind: decision.KindOption, Label: "Plan B", X: 30, Y: 40}))
	e, err := g.Connect("d", "o")
	require.NoError(t, err)

	d := e.Data
	d.Kind = edge.KindDecisionProbability
	d.FunctionType = edge.NoisyOR
	d.FunctionParams = edge.FuncParams{"strength": 0.9, "leak": 0.1}
	require.NoError(t, g.SetEdgeData(e.ID, d))
	_, err = g.ApplyBalance("d", []float64{100})
	require.NoError(t, err)

	s := g.ToSnapshot(1700000000000)
	require.Equal(t, edge.CurrentSchemaVersion, s.Version)
	require.Len(t, s.Nodes, 2)
	require.Len(t, s.Edges, 1)

	back, err := decision.FromSnapshot(s)
	require.NoError(t, err)
	require.Equal(t, g.Nodes(), back.Nodes())
	require.Equal(t, g.Edges(), back.Edges())
}

// TestFromSnapshot_RejectsStaleVersions: older files must pass through
// the migrator first.
func TestFromSnapshot_RejectsStaleVersions(t *testing.T) {
	_, err := decision.FromSnapshot(&snapshot.Snapshot{Version: 3})
	require.ErrorIs(t, err, decision.ErrSnapshotVersion)
	_, err = decision.FromSnapshot(nil)
	require.ErrorIs(t, err, decision.ErrSnapshotVersion)
}

// TestFromSnapshot_InvalidKindInferredFromLabel: foreign node types
// fall back to label inference.
func TestFromSnapshot_InvalidKindInferredFromLabel(t *testing.T) {
	s := &snapshot.Snapshot{
		Version: edge.CurrentSchemaVersion,
		Nodes: []snapshot.Node{
			{ID: "n", Data: snapshot.NodeData{Label: "Launch risk", Type: "widget"}},
		},
	}
	g, err := decision.FromSnapshot(s)
	require.NoError(t, err)
	n, found := g.Node("n")
	require.True(t, found)
	require.Equal(t, decision.KindRisk, n.Kind)
}
