package skim

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue encountered during extraction,
// such as a page that yielded no text runs. Warnings never abort an
// operation; callers decide whether they matter.
type Warning struct {
	// Document is the source document name
	Document string

	// Page is the zero-based page the warning refers to, or -1 when it
	// applies to the whole document
	Page int

	// Message describes the issue
	Message string
}

// String returns a human-readable form of the warning.
func (w Warning) String() string {
	if w.Page >= 0 {
		return fmt.Sprintf("%s: page %d: %s", w.Document, w.Page, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Document, w.Message)
}

// FormatWarnings joins warnings into a single string, one per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
