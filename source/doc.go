// Package source supplies page-level text layout data for documents.
//
// The [Source] interface exposes two views of a document:
//
//   - Span mode: per-page [model.TextRun] values carrying text, font size,
//     and vertical position, used for title extraction and font-size
//     driven heading classification.
//   - Raw-block mode: paragraph-level [model.Block] values without font
//     metadata, used for layout-only section segmentation.
//
// The [PDF] implementation reads PDF files with pdfcpu and derives runs
// from page content streams. Callers that already have structured text
// (tests, other formats) can implement Source directly.
package source
