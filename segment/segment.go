package segment

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tsawler/skim/model"
)

// DefaultHeading is the heading assigned to content that precedes the
// first detected heading in a document.
const DefaultHeading = "Introduction"

// Strategy decides which blocks begin a new section.
type Strategy interface {
	// Prepare is called once with the document's cleaned blocks before
	// segmentation starts, letting the strategy derive document-wide
	// statistics.
	Prepare(blocks []model.Block)

	// IsHeading reports whether the block begins a new section.
	IsHeading(block model.Block) bool
}

// LayoutStrategy classifies heading boundaries from block shape alone:
// short, no terminal sentence punctuation, Title Case or ALL CAPS, and
// longer than two characters. Single-word blocks are exempt from the
// case rule.
type LayoutStrategy struct {
	// MaxWords is the maximum word count for a heading. Default: 12.
	MaxWords int

	titleCaser cases.Caser
}

// NewLayoutStrategy creates the default layout-only strategy.
func NewLayoutStrategy() *LayoutStrategy {
	return &LayoutStrategy{
		MaxWords:   12,
		titleCaser: cases.Title(language.English),
	}
}

// Prepare is a no-op; the layout strategy needs no document statistics.
func (s *LayoutStrategy) Prepare(_ []model.Block) {}

// IsHeading reports whether the block begins a new section.
func (s *LayoutStrategy) IsHeading(block model.Block) bool {
	text := strings.TrimSpace(block.Text)
	if text == "" {
		return false
	}

	words := strings.Fields(text)
	if len(words) > s.MaxWords {
		return false
	}

	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?") {
		return false
	}

	// Multi-word headings must be Title Case or ALL CAPS; a single
	// capitalized word passes on its own.
	if !s.isTitleCase(text) && !isUpperCase(text) && len(words) > 1 {
		return false
	}

	return len(text) > 2
}

// isTitleCase reports whether the text already matches its title-cased
// form.
func (s *LayoutStrategy) isTitleCase(text string) bool {
	return s.titleCaser.String(strings.ToLower(text)) == text
}

// FontSizeStrategy classifies heading boundaries relative to the
// document's body font size. It only fires on blocks carrying font
// metadata; blocks without it are never headings under this strategy.
type FontSizeStrategy struct {
	// SizeRatio is the minimum block-to-body font size ratio for a
	// heading. Default: 1.15.
	SizeRatio float64

	// MaxWords is the maximum word count for a heading. Default: 12.
	MaxWords int

	bodySize float64
}

// NewFontSizeStrategy creates the font-size-relative strategy.
func NewFontSizeStrategy() *FontSizeStrategy {
	return &FontSizeStrategy{
		SizeRatio: 1.15,
		MaxWords:  12,
	}
}

// Prepare detects the body font size: the most common block font size
// weighted by word count, with half-point bucketing.
func (s *FontSizeStrategy) Prepare(blocks []model.Block) {
	const tolerance = 0.5

	counts := make(map[int]int)
	for _, block := range blocks {
		if block.FontSize <= 0 {
			continue
		}
		bucket := int(block.FontSize / tolerance)
		counts[bucket] += len(strings.Fields(block.Text))
	}

	maxCount := 0
	mostCommon := 0
	for bucket, count := range counts {
		if count > maxCount {
			maxCount = count
			mostCommon = bucket
		}
	}

	s.bodySize = float64(mostCommon) * tolerance
}

// IsHeading reports whether the block begins a new section.
func (s *FontSizeStrategy) IsHeading(block model.Block) bool {
	if block.FontSize <= 0 || s.bodySize <= 0 {
		return false
	}
	if len(strings.Fields(block.Text)) > s.MaxWords {
		return false
	}
	return block.FontSize >= s.bodySize*s.SizeRatio
}

// isUpperCase reports whether the text has at least one letter and no
// lowercase letters.
func isUpperCase(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// Segmenter partitions a document's blocks into sections.
type Segmenter struct {
	strategy Strategy
}

// NewSegmenter creates a segmenter using the default layout strategy.
func NewSegmenter() *Segmenter {
	return &Segmenter{strategy: NewLayoutStrategy()}
}

// NewSegmenterWithStrategy creates a segmenter using a custom strategy.
func NewSegmenterWithStrategy(strategy Strategy) *Segmenter {
	if strategy == nil {
		strategy = NewLayoutStrategy()
	}
	return &Segmenter{strategy: strategy}
}

// Segment partitions blocks into (heading, content) sections. Content
// between two heading boundaries accumulates, in document order, under
// the earlier heading. Sections titled with the default heading that
// have no content are discarded.
func (s *Segmenter) Segment(blocks []model.Block, sourceName string) []model.Section {
	cleaned := make([]model.Block, 0, len(blocks))
	for _, block := range blocks {
		text := Clean(block.Text)
		if text == "" {
			continue
		}
		block.Text = text
		cleaned = append(cleaned, block)
	}

	s.strategy.Prepare(cleaned)

	var sections []model.Section
	heading := DefaultHeading
	headingPage := 1
	var content []string

	flush := func() {
		if len(content) == 0 {
			return
		}
		sections = append(sections, model.Section{
			Title:   heading,
			Content: strings.Join(content, " "),
			Source:  sourceName,
			Page:    headingPage,
		})
		content = nil
	}

	for _, block := range cleaned {
		if s.strategy.IsHeading(block) {
			flush()
			heading = block.Text
			headingPage = block.PageNumber
		} else {
			content = append(content, block.Text)
		}
	}
	flush()

	// Drop a default-heading section that gathered no real content.
	kept := sections[:0]
	for _, sec := range sections {
		if sec.Title == DefaultHeading && strings.TrimSpace(sec.Content) == "" {
			continue
		}
		kept = append(kept, sec)
	}

	return kept
}
