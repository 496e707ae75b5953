package skim

import (
	"fmt"
	"path/filepath"

	"github.com/tsawler/skim/model"
	"github.com/tsawler/skim/outline"
	"github.com/tsawler/skim/segment"
	"github.com/tsawler/skim/source"
)

// Extractor provides a fluent interface for extracting structure from a
// document. Each configuration method returns a new Extractor instance,
// making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	src      source.Source

	// Lifecycle
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool // true if the source has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		src:          e.src,
		ownsSource:   e.ownsSource,
		sourceOpened: e.sourceOpened,
		options:      e.options.clone(),
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
}

// ensureSource opens the layout source if not already open.
func (e *Extractor) ensureSource() error {
	if e.sourceOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	src, err := source.OpenPDF(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.src = src
	e.ownsSource = true
	e.sourceOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsSource && e.src != nil {
		err := e.src.Close()
		e.src = nil
		e.ownsSource = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// PageOffset adds an offset to each outline entry's zero-based page
// index, for documents that are part of a larger pagination.
//
// Example:
//
//	outline, _, err := skim.Open("chapter2.pdf").PageOffset(24).Outline()
func (e *Extractor) PageOffset(offset int) *Extractor {
	newExt := e.clone()
	newExt.options.pageOffset = offset
	return newExt
}

// SegmentStrategy selects the heading heuristic used by Sections().
// The default is the layout-only strategy.
//
// Example:
//
//	sections, _, err := skim.Open("report.pdf").
//	    SegmentStrategy(segment.NewFontSizeStrategy()).
//	    Sections()
func (e *Extractor) SegmentStrategy(strategy segment.Strategy) *Extractor {
	newExt := e.clone()
	newExt.options.strategy = strategy
	return newExt
}

// ============================================================================
// Terminal Operations (close the underlying source)
// ============================================================================

// PageCount returns the number of pages in the document.
// This is a terminal operation that closes the underlying source.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureSource(); err != nil {
		return 0, err
	}
	defer e.Close()

	return e.src.PageCount(), nil
}

// Title extracts the document title from the first page.
// This is a terminal operation that closes the underlying source.
func (e *Extractor) Title() (string, []Warning, error) {
	o, warnings, err := e.Outline()
	if err != nil {
		return "", warnings, err
	}
	return o.Title, warnings, nil
}

// Outline infers the document's title and heading outline. Pages that
// cannot be read or contain no extractable text produce warnings, not
// errors, and contribute nothing to the outline.
// This is a terminal operation that closes the underlying source.
//
// Example:
//
//	outline, warnings, err := skim.Open("document.pdf").Outline()
func (e *Extractor) Outline() (model.Outline, []Warning, error) {
	if e.err != nil {
		return model.Outline{}, nil, e.err
	}
	if err := e.ensureSource(); err != nil {
		return model.Outline{}, nil, err
	}
	defer e.Close()

	warnings := append([]Warning(nil), e.warnings...)
	doc := e.documentName()

	var pages []model.Page
	for i := 0; i < e.src.PageCount(); i++ {
		runs, err := e.src.Page(i)
		if err != nil {
			warnings = append(warnings, Warning{Document: doc, Page: i, Message: err.Error()})
			runs = nil
		}
		if len(runs) == 0 {
			warnings = append(warnings, Warning{
				Document: doc,
				Page:     i,
				Message:  "no extractable text; page may be a scanned image",
			})
		}
		pages = append(pages, model.Page{Index: i, Runs: runs})
	}

	builder := outline.NewBuilderWithConfig(outline.BuilderConfig{
		PageOffset: e.options.pageOffset,
	})
	return builder.Build(pages), warnings, nil
}

// Sections partitions the document into (heading, content) sections
// using the configured segmentation strategy.
// This is a terminal operation that closes the underlying source.
//
// Example:
//
//	sections, warnings, err := skim.Open("guide.pdf").Sections()
func (e *Extractor) Sections() ([]model.Section, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureSource(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	warnings := append([]Warning(nil), e.warnings...)

	blocks, err := e.src.Blocks()
	if err != nil {
		return nil, warnings, fmt.Errorf("failed to read blocks: %w", err)
	}

	segmenter := segment.NewSegmenterWithStrategy(e.options.strategy)
	return segmenter.Segment(blocks, e.documentName()), warnings, nil
}

// documentName returns the short name used in warnings and sections.
func (e *Extractor) documentName() string {
	if e.filename == "" {
		return "document"
	}
	return filepath.Base(e.filename)
}
