package libdiff

import (
	"errors"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// ErrBadPatch reports patch text that cannot be decoded.
var ErrBadPatch = errors.New("malformed patch text")

// PatchSet is an ordered set of context-carrying hunks. It is produced
// by [Engine.Make] or [Engine.FromText] and is immutable.
type PatchSet struct {
	e       *Engine
	patches []diffpatch.Patch
}

// Text encodes the patch set in the diff-match-patch text format. The
// encoding is deterministic and round-trips through
// [Engine.FromText].
func (ps PatchSet) Text() string {
	e := ps.e
	if e == nil {
		e = Default
	}
	return e.dmp.PatchToText(ps.patches)
}

// Len reports the number of hunks.
func (ps PatchSet) Len() int {
	return len(ps.patches)
}
