package secdiff

import (
	"github.com/signadot/secdiff/debug"
	"github.com/signadot/secdiff/libdiff"
)

// CreatePatches computes the patch text transforming oldText into
// newText. The result is a complete, self-describing encoding of the
// edits, suitable for storage or transport, and is decoded again by
// [ApplyPatches]. Identical inputs yield an empty patch text.
//
// CreatePatches uses [libdiff.Default]; callers that need to tune
// diff tolerances build a [libdiff.Engine] and use it directly.
func CreatePatches(oldText, newText string) string {
	ps := libdiff.Default.Make(oldText, newText)
	if debug.Diff() {
		debug.Logf("create patches: %d hunk(s) for %d -> %d bytes\n",
			ps.Len(), len(oldText), len(newText))
	}
	return ps.Text()
}
