package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyInput indicates Decode received no bytes.
var ErrEmptyInput = errors.New("snapshot: empty input")

// Decode parses raw JSON into a Snapshot. Structural problems are
// wrapped with a package prefix; no defaulting or version logic happens
// here.
func Decode(raw []byte) (*Snapshot, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyInput
	}
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}

	return &s, nil
}

// Encode serializes s, optionally indented for humans.
func (s *Snapshot) Encode(indent bool) ([]byte, error) {
	var (
		raw []byte
		err error
	)
	if indent {
		raw, err = json.MarshalIndent(s, "", "  ")
	} else {
		raw, err = json.Marshal(s)
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}

	return raw, nil
}

// Clone deep-copies s so migrations can transform freely without
// touching the caller's snapshot.
//
// Complexity: O(nodes + edges + params).
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Version:   s.Version,
		Timestamp: s.Timestamp,
		Nodes:     make([]Node, len(s.Nodes)),
		Edges:     make([]Edge, len(s.Edges)),
	}
	copy(out.Nodes, s.Nodes)
	for i, e := range s.Edges {
		d := e.Data
		d.Weight = clonePtr(e.Data.Weight)
		d.Curvature = clonePtr(e.Data.Curvature)
		d.Belief = clonePtr(e.Data.Belief)
		d.BeliefExists = clonePtr(e.Data.BeliefExists)
		d.BeliefStrength = clonePtr(e.Data.BeliefStrength)
		d.Confidence = clonePtr(e.Data.Confidence)
		if e.Data.FunctionParams != nil {
			d.FunctionParams = make(map[string]float64, len(e.Data.FunctionParams))
			for k, v := range e.Data.FunctionParams {
				d.FunctionParams[k] = v
			}
		}
		out.Edges[i] = Edge{ID: e.ID, Source: e.Source, Target: e.Target, Label: e.Label, Data: d}
	}

	return out
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
