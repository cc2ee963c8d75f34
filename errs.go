package secdiff

import (
	"errors"

	"github.com/signadot/secdiff/libdiff"
)

var (
	// ErrBadPatch reports transaction or patch text that cannot be
	// decoded.
	ErrBadPatch = libdiff.ErrBadPatch

	// ErrPartialApply is returned under [ApplyStrict] when at least
	// one hunk could not be located in the base text.
	ErrPartialApply = errors.New("patch applied partially")
)
