// Package edge defines the versioned data model for decision-graph
// influence edges: base weight, dual belief values, functional-form
// selector with per-form parameters, sibling-probability share, and
// the semantic kind that governs which invariants apply.
//
// The model is schema version 4. Older persisted shapes are upgraded by
// the migrate package; edge itself only knows the current layout.
//
// Contracts:
//
//   - Every unit-interval field (Weight, BeliefExists, BeliefStrength,
//     Confidence) is clamped to [0,1] before storage or use — never
//     negative, never above one. Use Clamp01 / Data.Normalize.
//   - FunctionParams is a plain key→value map because the persisted
//     JSON carries form-specific keys whose absence (as opposed to a
//     zero value) selects a documented default.
//   - A Data value is a record, not a handle: copy freely, mutate your
//     copy, write back whole.
//
// See the forms package for what each FuncType computes and the
// balance package for the sibling-sum rules attached to
// KindDecisionProbability.
package edge
