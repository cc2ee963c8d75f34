package libdiff

import diffpatch "github.com/sergi/go-diff/diffmatchpatch"

type SpanOp int

const (
	Equal SpanOp = iota
	Insert
	Delete
)

// Span is one run of text in an inline diff between two snapshots.
type Span struct {
	Op   SpanOp
	Text string
}

// Spans computes a semantically cleaned inline diff of old and new,
// for rendering. It does not produce patches; use [Engine.Make] for
// that.
func (e *Engine) Spans(old, new string) []Span {
	diffs := e.dmp.DiffMain(old, new, false)
	diffs = e.dmp.DiffCleanupSemantic(diffs)
	res := make([]Span, 0, len(diffs))
	for _, d := range diffs {
		s := Span{Text: d.Text}
		switch d.Type {
		case diffpatch.DiffInsert:
			s.Op = Insert
		case diffpatch.DiffDelete:
			s.Op = Delete
		case diffpatch.DiffEqual:
			s.Op = Equal
		}
		res = append(res, s)
	}
	return res
}
