// Package decision: the thread-safe graph container.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrDuplicateNode  - node ID already present.
//	ErrNodeNotFound   - referenced node does not exist.
//	ErrEdgeNotFound   - referenced edge does not exist.
//	ErrSelfLoop       - influence edges may not point at their source.
package decision

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/decigraph/edge"
)

// Sentinel errors for container operations.
var (
	// ErrEmptyNodeID indicates a node with an empty ID.
	ErrEmptyNodeID = errors.New("decision: node ID is empty")

	// ErrDuplicateNode indicates an AddNode for an ID already present.
	ErrDuplicateNode = errors.New("decision: node already exists")

	// ErrNodeNotFound indicates an operation referenced a missing node.
	ErrNodeNotFound = errors.New("decision: node not found")

	// ErrEdgeNotFound indicates an operation referenced a missing edge.
	ErrEdgeNotFound = errors.New("decision: edge not found")

	// ErrSelfLoop indicates a connection from a node to itself.
	ErrSelfLoop = errors.New("decision: self-loop not allowed")
)

// Node is one decision-graph node.
type Node struct {
	// ID uniquely identifies the node within its Graph.
	ID string

	// Kind is the semantic role; empty kinds are inferred from Label
	// on insertion.
	Kind NodeKind

	// Label is the rendered caption.
	Label string

	// X, Y is the canvas placement.
	X, Y float64
}

// Edge is one influence edge: endpoints plus the versioned payload.
type Edge struct {
	ID   string
	From string
	To   string
	Data edge.Data
}

// Graph is a mutable decision graph guarded by a single RWMutex.
// All read methods return copies; internal state never escapes.
type Graph struct {
	mu    sync.RWMutex
	nodes map[string]Node
	edges map[string]Edge
	// out[source] is the set of outgoing edge IDs.
	out map[string]map[string]struct{}
}

// NewGraph returns an empty decision graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]Node),
		edges: make(map[string]Edge),
		out:   make(map[string]map[string]struct{}),
	}
}

// AddNode inserts n. An empty Kind is inferred from the label
// (KindFromLabel); duplicate IDs are rejected.
//
// Complexity: O(1).
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if n.Kind == "" {
		n.Kind = KindFromLabel(n.Label)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, dup := g.nodes[n.ID]; dup {
		return ErrDuplicateNode
	}
	g.nodes[n.ID] = n
	g.out[n.ID] = make(map[string]struct{})

	return nil
}

// Connect draws an influence edge from→to with the defaulted v4
// payload (edge.New) and a generated ID, mirroring what the canvas
// does when a user draws a connection.
//
// Complexity: O(1).
func (g *Graph) Connect(from, to string) (Edge, error) {
	if from == to {
		return Edge{}, ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, found := g.nodes[from]; !found {
		return Edge{}, ErrNodeNotFound
	}
	if _, found := g.nodes[to]; !found {
		return Edge{}, ErrNodeNotFound
	}

	e := Edge{ID: uuid.NewString(), From: from, To: to, Data: edge.New()}
	g.edges[e.ID] = e
	g.out[from][e.ID] = struct{}{}

	return e, nil
}

// SetEdgeData replaces the payload of edge id, normalizing (clamping)
// it first. This is the single-field-edit path used by the inspector.
//
// Complexity: O(len params).
func (g *Graph) SetEdgeData(id string, d edge.Data) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, found := g.edges[id]
	if !found {
		return ErrEdgeNotFound
	}
	e.Data = d.Normalize()
	g.edges[id] = e

	return nil
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, found := g.nodes[id]

	return n, found
}

// Edge returns the edge with the given ID (payload copied).
func (g *Graph) Edge(id string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, found := g.edges[id]
	if found {
		e.Data = e.Data.Normalize()
	}

	return e, found
}

// Nodes returns every node sorted by ID.
//
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Edges returns every edge sorted by ID.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Outgoing returns the edges leaving source, sorted by edge ID.
//
// Complexity: O(d log d).
func (g *Graph) Outgoing(source string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.outgoingLocked(source)
}

// outgoingLocked is Outgoing without locking; callers hold g.mu.
func (g *Graph) outgoingLocked(source string) ([]Edge, error) {
	ids, found := g.out[source]
	if !found {
		return nil, ErrNodeNotFound
	}
	out := make([]Edge, 0, len(ids))
	for id := range ids {
		out = append(out, g.edges[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// RemoveEdge deletes the edge with the given ID.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, found := g.edges[id]
	if !found {
		return ErrEdgeNotFound
	}
	delete(g.edges, id)
	delete(g.out[e.From], id)

	return nil
}

// RemoveNode deletes a node and every edge touching it.
//
// Complexity: O(E) worst case (incoming edges require a scan).
func (g *Graph) RemoveNode(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, found := g.nodes[id]; !found {
		return ErrNodeNotFound
	}
	delete(g.nodes, id)
	for eid := range g.out[id] {
		delete(g.edges, eid)
	}
	delete(g.out, id)
	for eid, e := range g.edges {
		if e.To == id {
			delete(g.edges, eid)
			delete(g.out[e.From], eid)
		}
	}

	return nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
