// Package secdiff captures the delta between two versions of a document
// section as a portable, serializable patch, and replays such patches
// against a (possibly drifted) base text.
//
// # Usage
//
//	// Compute a patch between two snapshots
//	patches := secdiff.CreatePatches(oldText, newText)
//
//	// Replay it against a section
//	txn := secdiff.NewTransaction(patches)
//	sec := secdiff.NewSection("Body", oldText)
//	updated, err := secdiff.ApplyTransaction(sec, txn)
//
// Patches carry surrounding context so they can be located approximately
// when the base text has drifted since the patch was made. Application is
// best effort: hunks that match are applied, hunks that cannot be located
// are skipped without error. Callers that want all-or-nothing semantics
// pass [ApplyStrict].
//
// # Related Packages
//
//   - github.com/signadot/secdiff/libdiff - diff engine wrapper
//   - github.com/signadot/secdiff/match - section selection expressions
//   - github.com/signadot/secdiff/secfile - sections document i/o
package secdiff
