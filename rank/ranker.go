package rank

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/tsawler/skim/model"
)

// ErrNotInitialized is returned when ranking is attempted before an
// embedding provider has been configured.
var ErrNotInitialized = errors.New("embedding provider not initialized")

// RankerConfig holds configuration for relevance ranking.
type RankerConfig struct {
	// TopK is the number of sections to return. Default: 5.
	TopK int

	// IncludeTitle controls whether the section title is prepended to
	// the content when building the embedding input. Default: true.
	IncludeTitle bool
}

// DefaultRankerConfig returns sensible default configuration.
func DefaultRankerConfig() RankerConfig {
	return RankerConfig{
		TopK:         5,
		IncludeTitle: true,
	}
}

// Ranker scores sections against a query by embedding similarity.
type Ranker struct {
	embedder Embedder
	config   RankerConfig
}

// NewRanker creates a ranker backed by the given embedding provider.
func NewRanker(embedder Embedder) *Ranker {
	return NewRankerWithConfig(embedder, DefaultRankerConfig())
}

// NewRankerWithConfig creates a ranker with custom configuration.
func NewRankerWithConfig(embedder Embedder, config RankerConfig) *Ranker {
	if config.TopK <= 0 {
		config.TopK = 5
	}
	return &Ranker{embedder: embedder, config: config}
}

// Rank embeds every section and the query, scores each section by
// cosine similarity (rounded to four decimals), and returns the top-K
// sections in descending score order. The sort is stable: sections with
// equal scores keep their original relative order. An empty section
// list returns nil without invoking the provider.
func (r *Ranker) Rank(ctx context.Context, sections []model.Section, query string) ([]model.ScoredSection, error) {
	if r.embedder == nil {
		return nil, ErrNotInitialized
	}
	if len(sections) == 0 {
		return nil, nil
	}

	inputs := make([]string, len(sections))
	for i, sec := range sections {
		inputs[i] = r.embedInput(sec)
	}

	sectionVecs, err := r.embedder.EmbedBatch(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to embed sections: %w", err)
	}

	queryVec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	scored := make([]model.ScoredSection, len(sections))
	for i, sec := range sections {
		scored[i] = model.ScoredSection{
			Section:        sec,
			RelevanceScore: roundScore(CosineSimilarity(queryVec, sectionVecs[i])),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})

	if len(scored) > r.config.TopK {
		scored = scored[:r.config.TopK]
	}
	return scored, nil
}

// embedInput builds the text embedded for a section: title and content
// joined, or content alone when IncludeTitle is off.
func (r *Ranker) embedInput(sec model.Section) string {
	if r.config.IncludeTitle {
		return sec.Title + ". " + sec.Content
	}
	return sec.Content
}
