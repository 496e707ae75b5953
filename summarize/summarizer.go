package summarize

import (
	"sort"
	"strings"

	"github.com/tsawler/skim/segment"
)

// Fallback is returned when content cannot be summarized at all
// (empty input after cleaning). The pipeline treats this as a degraded
// result, never as a failure.
const Fallback = "Content could not be summarized."

// Config holds configuration for extractive summarization.
type Config struct {
	// MaxSentences is the target sentence count N. Default: 3.
	MaxSentences int

	// PreserveDocumentOrder controls how selected sentences are joined.
	// When false (the default) sentences appear in descending score
	// order; when true they are restored to their original document
	// order before concatenation.
	PreserveDocumentOrder bool
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxSentences:          3,
		PreserveDocumentOrder: false,
	}
}

// Summarizer selects the most important sentences from a text block by
// stopword-filtered term frequency.
type Summarizer struct {
	tokenizer *Tokenizer
	config    Config
}

// NewSummarizer creates a summarizer using the given tokenizer.
func NewSummarizer(tokenizer *Tokenizer) *Summarizer {
	return NewSummarizerWithConfig(tokenizer, DefaultConfig())
}

// NewSummarizerWithConfig creates a summarizer with custom configuration.
func NewSummarizerWithConfig(tokenizer *Tokenizer, config Config) *Summarizer {
	if config.MaxSentences <= 0 {
		config.MaxSentences = 3
	}
	return &Summarizer{tokenizer: tokenizer, config: config}
}

// Summarize reduces text to at most MaxSentences sentences. Text at or
// under the target is returned unchanged (after cleaning). Unusable
// input yields the Fallback string rather than an error so a single bad
// section never fails the batch.
func (s *Summarizer) Summarize(text string) string {
	cleaned := segment.Clean(text)
	if cleaned == "" || s.tokenizer == nil {
		return Fallback
	}

	sents := s.tokenizer.Sentences(cleaned)
	if len(sents) <= s.config.MaxSentences {
		return cleaned
	}

	// Term frequency over lowercased, stopword-filtered, alphanumeric
	// tokens.
	freq := make(map[string]int)
	for _, word := range s.tokenizer.Words(strings.ToLower(cleaned)) {
		if isAlnum(word) && !s.tokenizer.IsStopword(word) {
			freq[word]++
		}
	}
	if len(freq) == 0 {
		return strings.Join(sents[:s.config.MaxSentences], " ")
	}

	type scored struct {
		index int
		score int
	}
	ranked := make([]scored, len(sents))
	for i, sent := range sents {
		sum := 0
		for _, word := range s.tokenizer.Words(strings.ToLower(sent)) {
			sum += freq[word]
		}
		ranked[i] = scored{index: i, score: sum}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	top := ranked[:s.config.MaxSentences]

	if s.config.PreserveDocumentOrder {
		sort.Slice(top, func(i, j int) bool {
			return top[i].index < top[j].index
		})
	}

	selected := make([]string, len(top))
	for i, sc := range top {
		selected[i] = sents[sc.index]
	}
	return strings.Join(selected, " ")
}
