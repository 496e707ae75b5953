// Package skim provides a fluent API for inferring structure from PDF
// documents: a title/outline of hierarchical headings with page numbers,
// and (heading, content) sections suitable for relevance ranking.
//
// Basic usage:
//
//	outline, warnings, err := skim.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", skim.FormatWarnings(warnings))
//	}
//
// With options:
//
//	outline, _, err := skim.Open("report.pdf").
//	    PageOffset(1).
//	    Outline()
//
// For the persona-driven ranking pipeline over document sets, see the
// persona package.
package skim

import (
	"github.com/tsawler/skim/source"
)

// Open opens a PDF file and returns an Extractor for fluent
// configuration. The returned Extractor must be closed when done, either
// explicitly via Close() or implicitly when calling a terminal operation
// like Outline().
//
// Example:
//
//	outline, warnings, err := skim.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor from an already-constructed layout
// source. This is useful for other document formats or for tests.
// The caller is responsible for closing the source.
func FromSource(src source.Source, name string) *Extractor {
	return &Extractor{
		filename:     name,
		src:          src,
		ownsSource:   false,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := skim.Must(skim.Open("document.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustOutline is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value.
//
// Example:
//
//	outline := skim.MustOutline(skim.Open("document.pdf").Outline())
func MustOutline[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
