package skim

import "github.com/tsawler/skim/segment"

// ExtractOptions holds configuration for structure extraction.
type ExtractOptions struct {
	// pageOffset is added to each outline entry's zero-based page index
	pageOffset int

	// strategy selects the section segmentation heuristic (nil = layout)
	strategy segment.Strategy
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pageOffset: 0,
		strategy:   nil, // nil means the default layout strategy
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		pageOffset: o.pageOffset,
		strategy:   o.strategy,
	}
}
