package model

// TextRun represents a span of text extracted from a page, carrying the
// font size and vertical position needed for heading classification.
// Runs are produced by a layout source and are not retained past
// classification.
type TextRun struct {
	// Text is the text content of the run
	Text string

	// FontSize is the font size in points, rounded to one decimal place
	FontSize float64

	// Y is the vertical position of the run's baseline in layout units
	Y float64

	// PageIndex is the zero-based page the run appears on
	PageIndex int
}

// Line represents text runs grouped onto a single visual baseline.
type Line struct {
	// Text is the assembled text of the line (runs joined with spaces)
	Text string

	// FontSize is the maximum font size among the line's runs
	FontSize float64

	// Y is the vertical position of the line's baseline
	Y float64

	// PageIndex is the zero-based page the line appears on
	PageIndex int
}

// Block represents a paragraph-level span of text. Blocks are the input
// to section segmentation. Font metadata is optional: the default
// layout-only segmentation strategy ignores it entirely.
type Block struct {
	// Text is the block's text content with whitespace normalized
	Text string

	// PageNumber is the one-based page the block starts on
	PageNumber int

	// FontSize is the maximum font size among the block's runs, or 0
	// when the producing source carries no font metadata
	FontSize float64
}

// Page holds the text runs of a single page.
type Page struct {
	// Index is the zero-based page index
	Index int

	// Runs are the page's text runs in content order
	Runs []TextRun
}
