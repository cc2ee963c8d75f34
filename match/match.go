// Package match compiles boolean expressions that select sections,
// e.g. for batch transaction application:
//
//	m, err := match.Compile(`section_type startsWith "ch" && text contains "TODO"`)
//	ok, err := m.Match(sec)
package match

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/secdiff"
)

// Env is the expression environment: one section under consideration.
type Env struct {
	SectionType string `expr:"section_type"`
	Text        string `expr:"text"`
}

type Matcher struct {
	src string
	prg *vm.Program
}

// Compile compiles src into a Matcher. src must evaluate to a bool
// over [Env].
func Compile(src string) (*Matcher, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("bad match expression %q: %w", src, err)
	}
	return &Matcher{src: src, prg: prg}, nil
}

func (m *Matcher) String() string {
	return m.src
}

// Match reports whether sec satisfies the expression.
func (m *Matcher) Match(sec secdiff.Section) (bool, error) {
	res, err := expr.Run(m.prg, Env{SectionType: sec.SectionType, Text: sec.Text})
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", m.src, err)
	}
	return res.(bool), nil
}
