package model

// Section is a (heading, content) pair delimited by layout heuristics,
// the unit of relevance ranking. A section is owned by the document it
// was extracted from.
type Section struct {
	// Title is the section heading
	Title string

	// Content is the concatenation, in document order, of all content
	// blocks between this section's heading and the next heading
	Content string

	// Source identifies the document the section came from (filename)
	Source string

	// Page is the one-based page the section's heading appears on
	Page int
}

// ScoredSection is a Section with its relevance score and, after
// summarization, its refined text attached.
type ScoredSection struct {
	Section

	// RelevanceScore is the cosine similarity between the query embedding
	// and the section embedding, rounded to four decimal places
	RelevanceScore float64

	// RefinedText is the extractive summary of the section's content.
	// Empty until summarization runs.
	RefinedText string
}
