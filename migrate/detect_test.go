package migrate_test

import (
	"testing"

	"github.com/katalvlaran/decigraph/migrate"
	"github.com/katalvlaran/decigraph/snapshot"
)

// TestDetectVersion covers explicit tags, heuristics, and the
// unrecognized cases. The heuristic branch is best-effort by design —
// these are the documented inferences, not guarantees.
func TestDetectVersion(t *testing.T) {
	cases := []struct {
		name string
		snap *snapshot.Snapshot
		want int
		ok   bool
	}{
		{"Nil", nil, 0, false},
		{"Empty", &snapshot.Snapshot{}, 0, false},
		{"ExplicitV1", &snapshot.Snapshot{Version: 1}, 1, true},
		{"ExplicitV4", &snapshot.Snapshot{Version: 4}, 4, true},
		{"FutureVersion", &snapshot.Snapshot{Version: 5}, 0, false},
		{
			"EdgeTagImpliesV3",
			&snapshot.Snapshot{Edges: []snapshot.Edge{
				{ID: "e1", Data: snapshot.EdgeData{SchemaVersion: 3}},
			}},
			3, true,
		},
		{
			// Mixed vintages re-enter the chain at the oldest edge so the
			// stragglers get upgraded; newer edges pass through unharmed.
			"LowestEdgeTagWins",
			&snapshot.Snapshot{Edges: []snapshot.Edge{
				{ID: "e1", Data: snapshot.EdgeData{SchemaVersion: 4}},
				{ID: "e2", Data: snapshot.EdgeData{SchemaVersion: 2}},
			}},
			2, true,
		},
		{
			"TypedNodeImpliesV2",
			&snapshot.Snapshot{Nodes: []snapshot.Node{
				{ID: "n1", Data: snapshot.NodeData{Label: "x", Type: "goal"}},
			}},
			2, true,
		},
		{
			"BareNodesImplyV1",
			&snapshot.Snapshot{Nodes: []snapshot.Node{
				{ID: "n1", Data: snapshot.NodeData{Label: "x"}},
			}},
			1, true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := migrate.DetectVersion(tc.snap)
			if got != tc.want || ok != tc.ok {
				t.Errorf("DetectVersion() = (%d,%v); want (%d,%v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}
