// Package libdiff provides diff computation and patch application for
// section text.
//
// # Usage
//
//	// Compute patches between two snapshots
//	ps := libdiff.Default.Make(oldText, newText)
//	wire := ps.Text()
//
//	// Decode and apply
//	ps, err := libdiff.Default.FromText(wire)
//	res, applied := libdiff.Default.Apply(baseText, ps)
//
// Patches are encoded in the diff-match-patch text format: each hunk
// carries surrounding context so it can be located approximately in a
// base text that has drifted since the patch was made. Apply reports a
// per-hunk applied flag and never fails on a hunk that cannot be
// located; only malformed patch text is an error.
//
// Tolerance parameters default to those of diff-match-patch and can be
// tuned per [Engine] with options such as [MatchDistance] and
// [MatchThreshold].
package libdiff
