package match

import (
	"testing"

	"github.com/signadot/secdiff"
)

func TestCompileBad(t *testing.T) {
	for _, src := range []string{"section_type +", "nosuchvar", "text"} {
		if _, err := Compile(src); err == nil {
			t.Errorf("Compile(%q): expected error", src)
		}
	}
}

type matchTest struct {
	src string
	sec secdiff.Section
	res bool
}

var matchTests = []matchTest{
	{
		src: `section_type == "Body"`,
		sec: secdiff.NewSection("Body", "text"),
		res: true,
	},
	{
		src: `section_type == "Body"`,
		sec: secdiff.NewSection("Conclusion", "text"),
		res: false,
	},
	{
		src: `section_type startsWith "ch"`,
		sec: secdiff.NewSection("ch01", "text"),
		res: true,
	},
	{
		src: `text contains "original"`,
		sec: secdiff.NewSection("Intro", "This is the original introduction."),
		res: true,
	},
	{
		src: `text contains "original" && section_type != "Intro"`,
		sec: secdiff.NewSection("Intro", "This is the original introduction."),
		res: false,
	},
	{
		src: `len(text) == 0`,
		sec: secdiff.NewSection("Empty", ""),
		res: true,
	},
}

func TestMatch(t *testing.T) {
	for _, tt := range matchTests {
		m, err := Compile(tt.src)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.src, err)
		}
		got, err := m.Match(tt.sec)
		if err != nil {
			t.Fatalf("Match(%q, %q): %v", tt.src, tt.sec.SectionType, err)
		}
		if got != tt.res {
			t.Errorf("Match(%q, %q): got %v, want %v", tt.src, tt.sec.SectionType, got, tt.res)
		}
	}
}
