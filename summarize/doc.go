// Package summarize produces extractive summaries of section content.
//
// Sentences are scored by the summed frequency of their stopword-filtered
// terms and the top N are selected verbatim; no text is generated. The
// [Tokenizer] handles Unicode-aware sentence and word segmentation and
// carries the English stopword set, loaded once at construction from a
// local data directory and shared with the [Summarizer].
package summarize
