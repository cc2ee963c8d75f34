package secdiff

import (
	"fmt"

	"github.com/signadot/secdiff/debug"
	"github.com/signadot/secdiff/libdiff"
)

type ApplyConfig struct {
	Strict bool
	Engine *libdiff.Engine
}
type ApplyOpt func(*ApplyConfig)

// ApplyStrict makes application all-or-nothing: if any hunk cannot be
// located in the base text, [ErrPartialApply] is returned instead of a
// partial result.
func ApplyStrict(v bool) ApplyOpt {
	return func(c *ApplyConfig) { c.Strict = v }
}

// ApplyEngine selects the diff engine, overriding [libdiff.Default].
func ApplyEngine(e *libdiff.Engine) ApplyOpt {
	return func(c *ApplyConfig) { c.Engine = e }
}

// ApplyPatches decodes patches and replays them against baseText.
//
// Application is best effort: each hunk is located in baseText by its
// surrounding context, tolerating drift between baseText and the text
// the patches were made from. Hunks that match are applied, hunks that
// cannot be located are skipped silently; a partial application is a
// successful outcome, not an error. ApplyPatches errors only on
// malformed patch text, or on a skipped hunk under [ApplyStrict].
func ApplyPatches(baseText, patches string, opts ...ApplyOpt) (string, error) {
	cfg := &ApplyConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	e := cfg.Engine
	if e == nil {
		e = libdiff.Default
	}
	ps, err := e.FromText(patches)
	if err != nil {
		return "", err
	}
	res, applied := e.Apply(baseText, ps)
	if debug.Patch() {
		debug.Logf("apply patches: %d hunk(s), applied %s\n", ps.Len(), debug.JSON(applied))
	}
	if cfg.Strict {
		for i, ok := range applied {
			if !ok {
				return "", fmt.Errorf("%w: hunk %d of %d did not locate", ErrPartialApply, i+1, len(applied))
			}
		}
	}
	return res, nil
}
