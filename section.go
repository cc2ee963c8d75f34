package secdiff

// Section is one named unit of document content. SectionType is stable
// across versions of the same logical section; Text is the full content
// of the current version.
//
// Sections are values. Applying a transaction never modifies a Section
// in place, it produces a new one.
type Section struct {
	SectionType string `json:"section_type" yaml:"section_type"`
	Text        string `json:"text" yaml:"text"`
}

func NewSection(sectionType, text string) Section {
	return Section{SectionType: sectionType, Text: text}
}
