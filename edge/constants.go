package edge

// CurrentSchemaVersion is the schema version this package models.
// Persisted records at lower versions must pass through migrate before
// they reach any engine code.
const CurrentSchemaVersion = 4

//-----------------------------------------------------------------------------
// Field Defaults (schema v4)
//   a freshly drawn connection receives exactly these values.
//-----------------------------------------------------------------------------

// DefaultWeight is the base influence strength of a new edge.
const DefaultWeight = 0.5

// DefaultBeliefExists is the prior probability that the causal
// relationship is real at all.
const DefaultBeliefExists = 0.7

// DefaultBeliefStrength is the prior probability that the relationship
// is strong given that it exists.
const DefaultBeliefStrength = 0.5

// DefaultCurvature is the rendered curvature of a new edge.
const DefaultCurvature = 0.15

// DefaultVisualWeight is the rendered stroke weight attached by the
// v1→v2 migration; unrelated to the semantic DefaultWeight.
const DefaultVisualWeight = 1.0

// StyleSolid is the default rendered line style.
const StyleSolid = "solid"

//-----------------------------------------------------------------------------
// Unit interval bounds
//-----------------------------------------------------------------------------

// UnitMin and UnitMax bound every probability-like field.
const (
	UnitMin = 0.0
	UnitMax = 1.0
)
