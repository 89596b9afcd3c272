// Package snapshot declares the persisted JSON wire format for decision
// graphs: a versioned object carrying nodes, edges, and an epoch-millis
// timestamp.
//
// The wire structs are deliberately a superset of every schema version
// (1 through 4): optional scalars are pointers and legacy fields such
// as the single v3 belief value keep their slots, so one decode pass
// can ingest any vintage and the migrate package can walk it forward.
// The migrate package is the only sanctioned writer of version-upgrade
// transformations; snapshot itself performs no defaulting or inference.
package snapshot
