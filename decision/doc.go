// Package decision holds the decision graph itself: a thread-safe
// container of typed nodes (goal, decision, option, factor, risk,
// outcome, action, constraint) and influence edges carrying the
// versioned edge.Data payload.
//
// The container is the single mutation boundary of the engine. All
// numeric packages (forms, belief, balance) are pure; decision is where
// their results are written back, and the write path honors the
// engine's atomicity contract:
//
//   - ApplyBalance commits a whole balancing session under one lock and
//     returns the previous values as a single Batch — either every
//     sibling edge updates in one history entry, or none do.
//   - Every edge payload is routed through edge.Data.Normalize before
//     storage, so unit-interval fields can never land out of range.
//
// Iteration is deterministic: Nodes, Edges and Outgoing return results
// sorted by ID, so callers (and tests) see a stable order.
//
// FromSnapshot / ToSnapshot bridge the container to the persisted wire
// format; only current-version snapshots are accepted — older files go
// through the migrate package first.
package decision
