// Package outline infers a document's title and hierarchical heading
// outline from page-level text layout data.
//
// The inference pipeline has three stages:
//
//   - [TitleExtractor] picks the document title from the largest-font
//     lines on the first page.
//   - [Classifier] maps observed font sizes to heading levels (H1-H4),
//     applies an ordered rule list to each line, and merges adjacent
//     same-level lines into single heading candidates.
//   - [Builder] walks all pages, filters invalid, duplicate, and
//     date-like candidates, and emits the ordered outline.
//
// Classification is rule-driven: each [Rule] is a pure function over a
// line that returns a verdict or no opinion, evaluated in a fixed
// priority order with early exit. This keeps individual heuristics
// testable in isolation.
package outline
