package model

import "fmt"

// HeadingLevel represents the hierarchical level of a heading (H1-H4).
// Levels are relative structural ranks inferred from font size or
// numbering depth, not absolute style tags.
type HeadingLevel int

const (
	HeadingLevelUnknown HeadingLevel = iota
	HeadingLevel1                    // H1 - largest qualifying font size
	HeadingLevel2                    // H2 - second largest
	HeadingLevel3                    // H3 - third largest
	HeadingLevel4                    // H4 - fourth largest (maximum depth)
)

// String returns a string representation of the heading level
func (l HeadingLevel) String() string {
	switch l {
	case HeadingLevel1:
		return "H1"
	case HeadingLevel2:
		return "H2"
	case HeadingLevel3:
		return "H3"
	case HeadingLevel4:
		return "H4"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the level as its string form ("H1".."H4").
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	if l < HeadingLevel1 || l > HeadingLevel4 {
		return nil, fmt.Errorf("cannot marshal unknown heading level %d", l)
	}
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON decodes a level from its string form.
func (l *HeadingLevel) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"H1"`:
		*l = HeadingLevel1
	case `"H2"`:
		*l = HeadingLevel2
	case `"H3"`:
		*l = HeadingLevel3
	case `"H4"`:
		*l = HeadingLevel4
	default:
		return fmt.Errorf("unknown heading level %s", data)
	}
	return nil
}

// HeadingCandidate is a line classified as a possible heading. Candidates
// may be merged with an adjacent candidate of the same level before being
// finalized into an OutlineEntry.
type HeadingCandidate struct {
	// Level is the assigned heading level
	Level HeadingLevel

	// Text is the candidate's text, possibly merged from several lines
	Text string

	// PageIndex is the zero-based page the candidate appears on
	PageIndex int

	// Y is the vertical position of the candidate's first line
	Y float64
}

// OutlineEntry is the finalized, deduplicated, filtered form of a
// heading candidate. Entries are immutable and appear in the outline in
// document order.
type OutlineEntry struct {
	// Level is the heading level (H1-H4)
	Level HeadingLevel `json:"level"`

	// Text is the heading text
	Text string `json:"text"`

	// Page is the zero-based page index, adjusted by any page offset
	Page int `json:"page"`
}

// Outline is a document's title and ordered heading entries.
type Outline struct {
	// Title is the document title derived from page one; empty when no
	// qualifying title was found
	Title string `json:"title"`

	// Entries are the outline entries in document order
	Entries []OutlineEntry `json:"outline"`
}
