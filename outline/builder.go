package outline

import (
	"regexp"
	"strings"

	"github.com/tsawler/skim/model"
)

var (
	// urlRe matches URL-ish content that disqualifies a heading
	urlRe = regexp.MustCompile(`(?i)(http|www\.|\.com)`)

	// addressRe matches street-address-like text ("123 Main")
	addressRe = regexp.MustCompile(`^\d{1,5}\s+\w+`)

	// bareDateRe matches a full-line date in uppercase month form
	bareDateRe = regexp.MustCompile(`^\d{1,2} [A-Z]{3,10} \d{4}$`)
)

// nonHeadingPrefixes are lowercase prefixes of boilerplate lines that
// never make valid headings on single-page documents (flyers, forms).
var nonHeadingPrefixes = []string{
	"mission", "address", "rsvp", "page", "date", "time", "parents", "guardian",
}

// BuilderConfig holds configuration for outline assembly.
type BuilderConfig struct {
	// PageOffset is added to each entry's zero-based page index.
	// Default: 0.
	PageOffset int

	// MaxHeadingWords is the maximum word count for a valid heading on
	// single-page documents. Default: 8.
	MaxHeadingWords int

	// NonHeadingPrefixes disqualify single-page headings that start
	// with boilerplate words. Defaults cover common flyer/form labels.
	NonHeadingPrefixes []string
}

// DefaultBuilderConfig returns sensible default configuration.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		PageOffset:         0,
		MaxHeadingWords:    8,
		NonHeadingPrefixes: nonHeadingPrefixes,
	}
}

// Builder assembles a document outline from classified heading
// candidates.
type Builder struct {
	config     BuilderConfig
	classifier *Classifier
	titles     *TitleExtractor
}

// NewBuilder creates a builder with default configuration.
func NewBuilder() *Builder {
	return NewBuilderWithConfig(DefaultBuilderConfig())
}

// NewBuilderWithConfig creates a builder with custom configuration.
func NewBuilderWithConfig(config BuilderConfig) *Builder {
	if config.MaxHeadingWords <= 0 {
		config.MaxHeadingWords = 8
	}
	if config.NonHeadingPrefixes == nil {
		config.NonHeadingPrefixes = nonHeadingPrefixes
	}
	return &Builder{
		config:     config,
		classifier: NewClassifier(),
		titles:     NewTitleExtractor(),
	}
}

// SetClassifier replaces the default classifier.
func (b *Builder) SetClassifier(c *Classifier) {
	if c != nil {
		b.classifier = c
	}
}

// SetTitleExtractor replaces the default title extractor.
func (b *Builder) SetTitleExtractor(t *TitleExtractor) {
	if t != nil {
		b.titles = t
	}
}

// Build assembles the outline for a document's pages.
//
// Single-page documents emit at most one entry: the first candidate that
// survives the validity filters, forced to level H1 on page 0.
// Multi-page documents emit every surviving candidate with its assigned
// level, then drop any entry whose resolved page is zero or negative, so
// title-page headings never appear in the outline.
func (b *Builder) Build(pages []model.Page) model.Outline {
	if len(pages) == 0 {
		return model.Outline{Entries: []model.OutlineEntry{}}
	}

	title := b.titles.Extract(pages[0].Runs)
	seen := make(map[string]bool)
	entries := []model.OutlineEntry{}

	if len(pages) == 1 {
		for _, cand := range b.classifier.ClassifyPage(pages[0].Runs) {
			if b.sameAsTitle(cand.Text, title) || seen[cand.Text] {
				continue
			}
			if !b.isValidHeading(cand.Text) {
				continue
			}
			if bareDateRe.MatchString(cand.Text) || isPageMarker(cand.Text) {
				continue
			}
			seen[cand.Text] = true
			entries = append(entries, model.OutlineEntry{
				Level: model.HeadingLevel1,
				Text:  cand.Text,
				Page:  0,
			})
			break
		}
		return model.Outline{Title: title, Entries: entries}
	}

	for _, page := range pages {
		for _, cand := range b.classifier.ClassifyPage(page.Runs) {
			if b.sameAsTitle(cand.Text, title) || seen[cand.Text] {
				continue
			}
			if bareDateRe.MatchString(cand.Text) || isPageMarker(cand.Text) {
				continue
			}
			seen[cand.Text] = true
			entries = append(entries, model.OutlineEntry{
				Level: cand.Level,
				Text:  cand.Text,
				Page:  page.Index + b.config.PageOffset,
			})
		}
	}

	// Page-one headings, including anything on the title page, are
	// excluded from multi-page outlines.
	kept := entries[:0]
	for _, entry := range entries {
		if entry.Page > 0 {
			kept = append(kept, entry)
		}
	}

	return model.Outline{Title: title, Entries: kept}
}

// sameAsTitle reports whether the heading text collides with the title:
// equal to it, prefixed by it, or containing it, case-insensitively.
// An empty title collides with nothing.
func (b *Builder) sameAsTitle(text, title string) bool {
	titleClean := strings.ToLower(strings.TrimSpace(title))
	if titleClean == "" {
		return false
	}
	textClean := strings.ToLower(strings.TrimSpace(text))
	return textClean == titleClean ||
		strings.HasPrefix(textClean, titleClean) ||
		strings.Contains(textClean, titleClean)
}

// isValidHeading applies the single-page validity filter: short, no
// URLs, no boilerplate prefix, not address-like.
func (b *Builder) isValidHeading(text string) bool {
	if len(strings.Fields(text)) > b.config.MaxHeadingWords {
		return false
	}
	if urlRe.MatchString(text) {
		return false
	}
	lower := strings.ToLower(text)
	for _, prefix := range b.config.NonHeadingPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	return !addressRe.MatchString(text)
}
