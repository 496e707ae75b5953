package source

import "github.com/tsawler/skim/model"

// Source supplies page-level text layout data for a single document.
// Implementations must be safe to read from one goroutine at a time;
// they are not required to be safe for concurrent use.
type Source interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Page returns the text runs on the given zero-based page, in
	// content order. An empty slice means the page has no extractable
	// text (for example, a scanned image page).
	Page(index int) ([]model.TextRun, error)

	// Blocks returns paragraph-level text blocks for the whole document,
	// without font metadata, in document order.
	Blocks() ([]model.Block, error)

	// Close releases underlying resources. It is safe to call Close
	// multiple times.
	Close() error
}
