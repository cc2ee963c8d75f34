// Package secfile reads and writes sections documents: YAML mappings
// from section type to section text, in document order.
//
//	Introduction: This is the original introduction.
//	Body: |
//	  ...
//	Conclusion: This is the conclusion.
//
// The core never touches storage itself; secfile is the caller-side
// collaborator that keeps current section text between runs.
package secfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/signadot/secdiff"
)

// ErrBadSections reports a sections document that is not a mapping
// from string section types to string texts.
var ErrBadSections = errors.New("invalid sections document")

func Decode(data []byte) ([]secdiff.Section, error) {
	doc := yaml.MapSlice{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSections, err)
	}
	secs := make([]secdiff.Section, 0, len(doc))
	for _, item := range doc {
		key, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: section type %v is not a string", ErrBadSections, item.Key)
		}
		switch v := item.Value.(type) {
		case string:
			secs = append(secs, secdiff.NewSection(key, v))
		case nil:
			secs = append(secs, secdiff.NewSection(key, ""))
		default:
			return nil, fmt.Errorf("%w: section %q text is %T, not a string", ErrBadSections, key, item.Value)
		}
	}
	return secs, nil
}

// Encode writes secs as a sections document, preserving order.
func Encode(secs []secdiff.Section) ([]byte, error) {
	doc := make(yaml.MapSlice, 0, len(secs))
	for _, s := range secs {
		doc = append(doc, yaml.MapItem{Key: s.SectionType, Value: s.Text})
	}
	d, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding sections: %w", err)
	}
	return d, nil
}

func Load(path string) ([]secdiff.Section, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	secs, err := Decode(d)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return secs, nil
}

func Save(path string, secs []secdiff.Section) error {
	d, err := Encode(secs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, d, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}

// Replace returns a copy of secs with the section whose type matches
// updated replaced by it. Sections not present are appended.
func Replace(secs []secdiff.Section, updated secdiff.Section) []secdiff.Section {
	res := make([]secdiff.Section, len(secs))
	copy(res, secs)
	for i := range res {
		if res[i].SectionType == updated.SectionType {
			res[i] = updated
			return res
		}
	}
	return append(res, updated)
}
