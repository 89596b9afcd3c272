// Package migrate upgrades persisted decision-graph snapshots from any
// older schema version to the current one (v4), and guards the import
// path so a broken file degrades to a recoverable "couldn't load"
// state instead of crashing rendering.
//
// 🚀 The upgrade chain
//
//	v1 → v2   nodes gain an inferred semantic type (label keywords:
//	          goal|target, option|choice, risk|threat, outcome|result,
//	          else decision); edges gain defaulted visuals (weight 1,
//	          solid, curvature 0.15) and a top-level label always wins
//	          over one nested in edge data.
//	v2 → v3   edges gain semantics: a single belief scalar (0.7),
//	          functionType linear, kind influence-weight.
//	v3 → v4   the single belief splits into the dual fields:
//	          beliefExists = √belief, beliefStrength = belief — a
//	          documented approximation kept verbatim for snapshot
//	          compatibility (the product recovers the scalar when
//	          strength equals existence).
//
// The chain is an explicit ordered list of pure transform steps keyed
// by version; upgrades always compose every intermediate step — there
// is no skip path and no downgrade path, so each step's defaulting
// stays independently testable.
//
// Version detection is heuristic when no explicit tag exists: a
// recognized edge schemaVersion or a typed node implies v2+, the bare
// presence of nodes implies v1, anything else is unrecognized. This is
// best-effort by design; an unmatched label silently becoming a
// decision node is the intended fallback, not a defect.
//
// Import is all-or-nothing: detect → migrate → validate, and any
// failure is captured through the Reporter collaborator (with
// component and step tags) while the caller receives nil — never a
// partially migrated graph.
package migrate
