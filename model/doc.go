// Package model defines the shared data types used throughout skim.
//
// The types form a small hierarchy that mirrors the stages of the
// pipeline:
//
//   - [TextRun] - a span of text with font size and position, as supplied
//     by the layout source
//   - [Line] - text runs grouped onto a single visual baseline
//   - [Block] - a paragraph-level span of text without font metadata
//   - [HeadingCandidate] - a line classified as a possible heading
//   - [OutlineEntry] and [Outline] - the finalized document outline
//   - [Section] and [ScoredSection] - heading/content pairs used for
//     relevance ranking
//
// All types are plain data with no behavior beyond formatting helpers,
// so they can be constructed freely in tests.
package model
