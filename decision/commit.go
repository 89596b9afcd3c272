package decision

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/decigraph/balance"
	"github.com/katalvlaran/decigraph/edge"
)

// ErrGateRejected indicates a balancing commit whose values fail the
// ±1% validation gate; nothing is written.
var ErrGateRejected = errors.New("decision: probability sum outside tolerance")

// Change records one edge's confidence before and after a balancing
// commit. Nil means "no confidence set".
type Change struct {
	EdgeID string
	Before *float64
	After  *float64
}

// Batch is the undo record of one balancing session: everything the
// commit touched, in sibling order. The host's history log stores one
// Batch per session — a single entry, never per-edge entries.
type Batch struct {
	Source  string
	Changes []Change
}

// siblingsLocked returns the decision-probability edges out of source,
// sorted by edge ID. This ordering is the row order contract shared by
// BalanceRows and ApplyBalance.
func (g *Graph) siblingsLocked(source string) ([]Edge, error) {
	all, err := g.outgoingLocked(source)
	if err != nil {
		return nil, err
	}
	sibs := all[:0:0]
	for _, e := range all {
		if e.Data.Kind == edge.KindDecisionProbability {
			sibs = append(sibs, e)
		}
	}

	return sibs, nil
}

// BalanceRows builds the ephemeral editing rows for source's
// decision-probability siblings: current confidence as a percentage,
// all rows unlocked (locking is UI-session state layered on top).
// Row order matches ApplyBalance.
//
// Complexity: O(d log d).
func (g *Graph) BalanceRows(source string) ([]balance.Row, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	sibs, err := g.siblingsLocked(source)
	if err != nil {
		return nil, err
	}
	rows := make([]balance.Row, len(sibs))
	for i, e := range sibs {
		rows[i] = balance.Row{Value: e.Data.ConfidenceOrZero() * balance.Total}
	}

	return rows, nil
}

// ApplyBalance commits a balancing session: values (percentages, in
// sibling order) are written back as confidence fractions on every
// decision-probability edge out of source, atomically under one lock.
//
// The commit is gated: a value count mismatching the sibling count
// fails with balance.ErrValueCount, and a sum outside the ±1 tolerance
// fails with ErrGateRejected. On any failure no edge is touched.
//
// The returned Batch carries the previous confidences for a single
// undo-history entry; feed it to Revert to roll the session back.
//
// Complexity: O(d log d).
func (g *Graph) ApplyBalance(source string, values []float64) (Batch, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	sibs, err := g.siblingsLocked(source)
	if err != nil {
		return Batch{}, err
	}
	if len(values) != len(sibs) {
		return Batch{}, fmt.Errorf("%w: %d values for %d siblings",
			balance.ErrValueCount, len(values), len(sibs))
	}
	if res := balance.ValidateValues(values); !res.Valid {
		return Batch{}, fmt.Errorf("%w: sum %.1f", ErrGateRejected, res.Sum)
	}

	batch := Batch{Source: source, Changes: make([]Change, len(sibs))}
	for i, sib := range sibs {
		conf := edge.Clamp01(values[i] / balance.Total)
		e := g.edges[sib.ID]
		batch.Changes[i] = Change{EdgeID: sib.ID, Before: e.Data.Confidence, After: &conf}
		e.Data.Confidence = &conf
		g.edges[sib.ID] = e
	}

	return batch, nil
}

// Revert rolls back one balancing session, restoring every touched
// edge's previous confidence under one lock. Missing edges (removed
// since the commit) fail the whole revert before anything changes.
//
// Complexity: O(len(batch.Changes)).
func (g *Graph) Revert(batch Batch) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, c := range batch.Changes {
		if _, found := g.edges[c.EdgeID]; !found {
			return fmt.Errorf("%w: %q", ErrEdgeNotFound, c.EdgeID)
		}
	}
	for _, c := range batch.Changes {
		e := g.edges[c.EdgeID]
		e.Data.Confidence = c.Before
		g.edges[c.EdgeID] = e
	}

	return nil
}
