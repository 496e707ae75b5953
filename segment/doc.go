// Package segment partitions a document's block stream into
// (heading, content) sections for relevance ranking.
//
// Two heading heuristics are available behind the [Strategy] interface:
//
//   - [LayoutStrategy] (the default) classifies a block as a heading
//     boundary from its shape alone: short, no terminal sentence
//     punctuation, Title Case or ALL CAPS. It needs no font metadata,
//     which makes it robust on documents where font-size clustering is
//     unreliable.
//   - [FontSizeStrategy] classifies relative to the document's body
//     font size, for sources that attach size metadata to blocks.
//
// Content that precedes the first detected heading accumulates under the
// default "Introduction" heading.
package segment
