package secdiff

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// Kind selects how a Transaction's Patches blob is interpreted.
type Kind int

const (
	// TextPatches is the default: Patches holds diff-match-patch
	// text produced by [CreatePatches].
	TextPatches Kind = iota
	// MergePatch: Patches holds an RFC 7386 JSON merge patch, for
	// sections whose text is a JSON document.
	MergePatch
)

func (k Kind) String() string {
	switch k {
	case TextPatches:
		return "text"
	case MergePatch:
		return "merge"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Transaction is a pending change, decoupled from any section's live
// state. The same Transaction may be replayed against drifted base
// text (see [ApplyPatches] for the matching policy).
type Transaction struct {
	Patches string `json:"patches" yaml:"patches"`
	Kind    Kind   `json:"kind,omitempty" yaml:"kind,omitempty"`
}

func NewTransaction(patches string) Transaction {
	return Transaction{Patches: patches}
}

func NewMergeTransaction(patch string) Transaction {
	return Transaction{Patches: patch, Kind: MergePatch}
}

// ApplyTransaction replays txn against section's text and returns a
// new Section with the same SectionType. The input section is not
// modified.
//
// For [TextPatches] transactions the apply policy and options are
// those of [ApplyPatches]. For [MergePatch] transactions the section
// text and patch must both be valid JSON.
func ApplyTransaction(section Section, txn Transaction, opts ...ApplyOpt) (Section, error) {
	switch txn.Kind {
	case MergePatch:
		res, err := jsonpatch.MergePatch([]byte(section.Text), []byte(txn.Patches))
		if err != nil {
			return Section{}, fmt.Errorf("merge patch on section %q: %w", section.SectionType, err)
		}
		return Section{SectionType: section.SectionType, Text: string(res)}, nil
	case TextPatches:
		text, err := ApplyPatches(section.Text, txn.Patches, opts...)
		if err != nil {
			return Section{}, fmt.Errorf("patching section %q: %w", section.SectionType, err)
		}
		return Section{SectionType: section.SectionType, Text: text}, nil
	}
	return Section{}, fmt.Errorf("unknown transaction kind %s", txn.Kind)
}
