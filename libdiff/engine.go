package libdiff

import (
	"fmt"
	"time"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Engine wraps a configured diff-match-patch instance. Engines are
// cheap to construct and safe for concurrent use once built: Make,
// FromText and Apply only read the configuration.
type Engine struct {
	dmp *diffpatch.DiffMatchPatch
}

type Option func(*Engine)

// MatchDistance sets how far from the expected location a hunk's
// context may be found, in characters.
func MatchDistance(n int) Option {
	return func(e *Engine) { e.dmp.MatchDistance = n }
}

// MatchThreshold sets the match tolerance in [0,1]; 0 requires exact
// context matches, 1 accepts nearly anything.
func MatchThreshold(v float64) Option {
	return func(e *Engine) { e.dmp.MatchThreshold = v }
}

// PatchMargin sets the number of context characters recorded around
// each hunk when making patches.
func PatchMargin(n int) Option {
	return func(e *Engine) { e.dmp.PatchMargin = n }
}

// DeleteThreshold sets how closely the content of a major delete needs
// to match the text being deleted, in [0,1].
func DeleteThreshold(v float64) Option {
	return func(e *Engine) { e.dmp.PatchDeleteThreshold = v }
}

// DiffTimeout bounds diff computation; past the timeout the diff may
// be non-minimal but is still correct.
func DiffTimeout(d time.Duration) Option {
	return func(e *Engine) { e.dmp.DiffTimeout = d }
}

func New(opts ...Option) *Engine {
	e := &Engine{dmp: diffpatch.New()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Default is the engine used by callers that do not tune tolerances.
var Default = New()

// Make computes the patch set transforming old into new.
// Identical inputs yield an empty patch set.
func (e *Engine) Make(old, new string) PatchSet {
	return PatchSet{e: e, patches: e.dmp.PatchMake(old, new)}
}

// FromText decodes a patch set from its textual encoding. It returns
// an error wrapping [ErrBadPatch] if the text is not well formed.
func (e *Engine) FromText(text string) (PatchSet, error) {
	patches, err := e.dmp.PatchFromText(text)
	if err != nil {
		return PatchSet{}, fmt.Errorf("%w: %w", ErrBadPatch, err)
	}
	return PatchSet{e: e, patches: patches}, nil
}

// Apply replays ps against base, locating each hunk by its context.
// The returned flags report, per hunk, whether it could be located and
// applied; unlocatable hunks are skipped and leave base untouched.
func (e *Engine) Apply(base string, ps PatchSet) (string, []bool) {
	return e.dmp.PatchApply(ps.patches, base)
}
