package persona

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/tsawler/skim/model"
	"github.com/tsawler/skim/rank"
	"github.com/tsawler/skim/segment"
	"github.com/tsawler/skim/source"
	"github.com/tsawler/skim/summarize"
)

// maxWorkers caps the extraction worker pool.
const maxWorkers = 4

// Pipeline wires section extraction, relevance ranking, and
// summarization into one run.
type Pipeline struct {
	segmenter  *segment.Segmenter
	ranker     *rank.Ranker
	summarizer *summarize.Summarizer
	logger     *slog.Logger
	workers    int

	// extract loads one document's sections. Swapped in tests.
	extract func(path string) ([]model.Section, error)
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithSegmenter sets a custom section segmenter.
func WithSegmenter(s *segment.Segmenter) PipelineOption {
	return func(p *Pipeline) {
		if s != nil {
			p.segmenter = s
		}
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithWorkers overrides the extraction worker count.
func WithWorkers(n int) PipelineOption {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// NewPipeline creates a pipeline. The ranker and summarizer must be
// constructed by the caller so that their collaborators (embedding
// provider, stopword set) are explicit configuration, not ambient state.
func NewPipeline(ranker *rank.Ranker, summarizer *summarize.Summarizer, opts ...PipelineOption) *Pipeline {
	workers := runtime.GOMAXPROCS(0)
	if workers > maxWorkers {
		workers = maxWorkers
	}

	p := &Pipeline{
		segmenter:  segment.NewSegmenter(),
		ranker:     ranker,
		summarizer: summarizer,
		logger:     slog.Default(),
		workers:    workers,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.extract == nil {
		p.extract = p.extractFromPDF
	}
	return p
}

// Run executes the full pipeline for the given configuration, reading
// documents from inputDir. Extraction failures on individual documents
// are logged and yield zero sections; ranking failures are fatal.
func (p *Pipeline) Run(ctx context.Context, cfg *Config, inputDir string) (*Report, error) {
	sections := p.extractAll(cfg, inputDir)
	if len(sections) == 0 {
		return nil, fmt.Errorf("no sections could be extracted from %d documents", len(cfg.Documents))
	}
	p.logger.Info("extraction complete", "sections", len(sections), "documents", len(cfg.Documents))

	query := cfg.Query()
	top, err := p.ranker.Rank(ctx, sections, query)
	if err != nil {
		return nil, fmt.Errorf("relevance ranking failed: %w", err)
	}
	p.logger.Info("ranking complete", "top", len(top))

	// Summarization is bounded by the top-K result size, not the corpus,
	// so a sequential pass is enough.
	for i := range top {
		top[i].RefinedText = p.summarizer.Summarize(top[i].Content)
	}

	return buildReport(cfg, top), nil
}

// extractAll runs per-document extraction on a bounded worker pool with
// a single join barrier. Each worker owns one document end-to-end;
// results are concatenated in submission order after all workers finish
// so the output is deterministic.
func (p *Pipeline) extractAll(cfg *Config, inputDir string) []model.Section {
	results := make([][]model.Section, len(cfg.Documents))

	var wg sync.WaitGroup
	sem := make(chan struct{}, p.workers)

	for i, doc := range cfg.Documents {
		wg.Add(1)
		go func(i int, filename string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			path := filepath.Join(inputDir, filename)
			sections, err := p.extract(path)
			if err != nil {
				p.logger.Warn("document extraction failed", "document", filename, "error", err)
				return
			}
			results[i] = sections
		}(i, doc.Filename)
	}
	wg.Wait()

	var all []model.Section
	for _, sections := range results {
		all = append(all, sections...)
	}
	return all
}

// extractFromPDF is the default per-document extractor: raw blocks from
// the PDF layout source, segmented into sections.
func (p *Pipeline) extractFromPDF(path string) ([]model.Section, error) {
	src, err := source.OpenPDF(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	blocks, err := src.Blocks()
	if err != nil {
		return nil, err
	}
	return p.segmenter.Segment(blocks, filepath.Base(path)), nil
}
