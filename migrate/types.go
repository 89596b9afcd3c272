// Package migrate: sentinel errors, step names, and the Reporter
// collaborator.
package migrate

import (
	"errors"

	"github.com/katalvlaran/decigraph/edge"
)

// Current is the schema version the chain migrates to.
const Current = edge.CurrentSchemaVersion

// DefaultLegacyBelief is the single belief scalar attached by the
// v2→v3 step to edges that predate belief tracking.
const DefaultLegacyBelief = 0.7

// Sentinel errors for migration and import validation.
var (
	// ErrUnknownVersion indicates the snapshot's version could not be
	// detected or lies outside the supported 1..Current range.
	ErrUnknownVersion = errors.New("migrate: unrecognized snapshot version")

	// ErrDanglingEdge indicates an edge referencing a missing node.
	ErrDanglingEdge = errors.New("migrate: edge references missing node")

	// ErrDuplicateNode indicates two nodes sharing one ID.
	ErrDuplicateNode = errors.New("migrate: duplicate node id")

	// ErrNotCurrent indicates a record that failed to reach the current
	// schema version (an internal invariant breach, not a user error).
	ErrNotCurrent = errors.New("migrate: record not at current schema version")

	// ErrUnbalancedGroup indicates a decision-probability sibling group
	// whose confidence shares do not sum to 100% within tolerance.
	ErrUnbalancedGroup = errors.New("migrate: sibling probabilities do not sum to 100%")
)

//-----------------------------------------------------------------------------
// Reporter collaborator
//-----------------------------------------------------------------------------

// Tag keys attached to every captured failure.
const (
	// TagComponent identifies the reporting component ("migrate").
	TagComponent = "component"
	// TagStep identifies the import stage that failed.
	TagStep = "step"
)

// Import stage names used as TagStep values.
const (
	StepDecode   = "decode"
	StepDetect   = "detect"
	StepChain    = "migrate"
	StepValidate = "validate"
)

// componentName is the TagComponent value for this package.
const componentName = "migrate"

// Reporter receives import failures instead of the caller: Import
// returns nil on failure rather than propagating an error up into
// rendering code. Implementations forward to whatever error-capture
// service the host application uses.
type Reporter interface {
	Capture(err error, tags map[string]string)
}

// NopReporter swallows every capture; the default when none is given.
type NopReporter struct{}

// Capture implements Reporter by doing nothing.
func (NopReporter) Capture(error, map[string]string) {}

// tags builds the standard tag set for one import stage.
func tags(step string) map[string]string {
	return map[string]string{TagComponent: componentName, TagStep: step}
}
