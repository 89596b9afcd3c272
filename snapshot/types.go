// Package snapshot: wire struct declarations.
package snapshot

// Snapshot is the persisted top-level object.
type Snapshot struct {
	// Version is the schema version of the contained records; 0 when
	// the file predates explicit version tags (heuristic detection
	// territory, see migrate.DetectVersion).
	Version int `json:"version,omitempty"`

	// Timestamp is epoch milliseconds at save time.
	Timestamp int64 `json:"timestamp"`

	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Position is a node's canvas placement.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is one persisted decision-graph node.
type Node struct {
	ID string `json:"id"`

	// Type is the renderer node type; the semantic kind lives in
	// Data.Type (v2+).
	Type string `json:"type,omitempty"`

	Position Position `json:"position"`
	Data     NodeData `json:"data"`
}

// NodeData is the versioned node payload.
type NodeData struct {
	Label string `json:"label,omitempty"`

	// Type is the semantic node kind, present from v2 on.
	Type string `json:"type,omitempty"`

	Description string `json:"description,omitempty"`
}

// Edge is one persisted influence edge.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`

	// Label at the top level predates v2; when both it and Data.Label
	// are present, the top-level value wins during migration.
	Label string `json:"label,omitempty"`

	Data EdgeData `json:"data"`
}

// EdgeData is the versioned edge payload as stored on disk — a
// superset of v1..v4 fields. Pointer fields distinguish "absent" from
// a legitimate zero.
type EdgeData struct {
	Label string `json:"label,omitempty"`

	// Visuals, attached from v2 on.
	Weight    *float64 `json:"weight,omitempty"`
	Style     string   `json:"style,omitempty"`
	Curvature *float64 `json:"curvature,omitempty"`

	// Belief is the single v3 scalar, split into the dual fields by the
	// v3→v4 migration and cleared afterwards.
	Belief *float64 `json:"belief,omitempty"`

	// Dual belief, v4.
	BeliefExists   *float64 `json:"beliefExists,omitempty"`
	BeliefStrength *float64 `json:"beliefStrength,omitempty"`

	FunctionType   string             `json:"functionType,omitempty"`
	FunctionParams map[string]float64 `json:"functionParams,omitempty"`

	Confidence *float64 `json:"confidence,omitempty"`
	Kind       string   `json:"kind,omitempty"`

	SchemaVersion int `json:"schemaVersion,omitempty"`
}
