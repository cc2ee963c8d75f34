package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/signadot/secdiff/libdiff"
)

var (
	insColor = color.New(color.FgGreen).SprintFunc()
	delColor = color.New(color.FgRed, color.CrossedOut).SprintFunc()
)

// renderSpans writes an inline word-level diff. Without color,
// insertions and deletions are bracketed wdiff-style.
func renderSpans(w io.Writer, spans []libdiff.Span, colorize bool) error {
	if colorize {
		color.NoColor = false
	}
	for _, s := range spans {
		var out string
		switch s.Op {
		case libdiff.Insert:
			if colorize {
				out = insColor(s.Text)
			} else {
				out = "{+" + s.Text + "+}"
			}
		case libdiff.Delete:
			if colorize {
				out = delColor(s.Text)
			} else {
				out = "[-" + s.Text + "-]"
			}
		default:
			out = s.Text
		}
		if _, err := io.WriteString(w, out); err != nil {
			return fmt.Errorf("error writing diff: %w", err)
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("error writing diff: %w", err)
	}
	return nil
}
