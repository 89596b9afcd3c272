package migrate

import "github.com/katalvlaran/decigraph/snapshot"

// DetectVersion determines the schema version of s.
//
// Precedence:
//  1. An explicit top-level version in 1..Current wins outright.
//  2. Otherwise, heuristics on structural shape: any edge carrying a
//     recognized schemaVersion tag implies that version (the lowest
//     tag wins, so a mixed-vintage file re-enters the chain early
//     enough to upgrade its oldest edges; newer edges pass through
//     the extra steps unharmed because every step only fills absent
//     fields); any node with a typed data.type implies at least v2.
//  3. Otherwise, the bare presence of nodes or edges implies v1.
//  4. Anything else — including versions above Current — is
//     unrecognized and reported as ok=false.
//
// The heuristic branch is best-effort by design: it exists for files
// saved before version tags did.
//
// Complexity: O(nodes + edges).
func DetectVersion(s *snapshot.Snapshot) (version int, ok bool) {
	if s == nil {
		return 0, false
	}
	if s.Version >= 1 && s.Version <= Current {
		return s.Version, true
	}
	if s.Version > Current {
		return 0, false
	}

	tagged := 0
	for _, e := range s.Edges {
		if v := e.Data.SchemaVersion; v >= 2 && v <= Current && (tagged == 0 || v < tagged) {
			tagged = v
		}
	}
	if tagged >= 2 {
		return tagged, true
	}

	for _, n := range s.Nodes {
		if n.Data.Type != "" {
			return 2, true
		}
	}

	if len(s.Nodes) > 0 || len(s.Edges) > 0 {
		return 1, true
	}

	return 0, false
}
