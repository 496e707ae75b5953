package segment

import (
	"testing"

	"github.com/tsawler/skim/model"
)

func block(text string, page int) model.Block {
	return model.Block{Text: text, PageNumber: page}
}

func TestLayoutStrategy_IsHeading(t *testing.T) {
	s := NewLayoutStrategy()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"title case", "Planning Your Trip", true},
		{"all caps", "PACKING CHECKLIST", true},
		{"single capitalized word", "Introduction", true},
		{"single lowercase word", "introduction", true},
		{"sentence with period", "Pack light and travel far.", false},
		{"question", "What Should You Bring?", false},
		{"exclamation", "Do Not Miss This!", false},
		{"lowercase multi-word", "a quiet afternoon walk", false},
		{"too many words", "A Very Long Heading That Goes On And On And On Forever More", false},
		{"too short", "Hi", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.IsHeading(block(tt.text, 1)); got != tt.want {
				t.Errorf("IsHeading(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFontSizeStrategy(t *testing.T) {
	s := NewFontSizeStrategy()

	blocks := []model.Block{
		{Text: "Big Heading Here", PageNumber: 1, FontSize: 16.0},
		{Text: "Body text runs at ten points and makes up most of the document words", PageNumber: 1, FontSize: 10.0},
		{Text: "More body text at the same size filling out the page with words", PageNumber: 1, FontSize: 10.0},
	}
	s.Prepare(blocks)

	if !s.IsHeading(blocks[0]) {
		t.Errorf("16pt block should be a heading against a 10pt body")
	}
	if s.IsHeading(blocks[1]) {
		t.Errorf("body-size block should not be a heading")
	}
	if s.IsHeading(model.Block{Text: "No Metadata", PageNumber: 1}) {
		t.Errorf("block without font metadata should never be a heading")
	}
}

func TestSegmenter_Segment(t *testing.T) {
	seg := NewSegmenter()

	blocks := []model.Block{
		block("Planning Your Trip", 1),
		block("Start with a rough itinerary.", 1),
		block("Leave room for detours.", 1),
		block("Packing Checklist", 2),
		block("Bring layers and spare socks.", 2),
	}

	sections := seg.Segment(blocks, "guide.pdf")
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}

	first := sections[0]
	if first.Title != "Planning Your Trip" || first.Page != 1 || first.Source != "guide.pdf" {
		t.Errorf("section 0 = %+v", first)
	}
	wantContent := "Start with a rough itinerary. Leave room for detours."
	if first.Content != wantContent {
		t.Errorf("section 0 content = %q, want %q", first.Content, wantContent)
	}

	second := sections[1]
	if second.Title != "Packing Checklist" || second.Page != 2 {
		t.Errorf("section 1 = %+v", second)
	}
}

func TestSegmenter_Segment_DefaultHeading(t *testing.T) {
	seg := NewSegmenter()

	// Content before the first heading lands under the default heading.
	blocks := []model.Block{
		block("This document opens with prose before any heading appears.", 1),
		block("First Real Heading", 2),
		block("Then the real content begins.", 2),
	}

	sections := seg.Segment(blocks, "doc.pdf")
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].Title != DefaultHeading || sections[0].Page != 1 {
		t.Errorf("section 0 = %+v, want %q on page 1", sections[0], DefaultHeading)
	}
}

func TestSegmenter_Segment_SkipsEmptyBlocks(t *testing.T) {
	seg := NewSegmenter()

	blocks := []model.Block{
		block("Planning Your Trip", 1),
		block("   ", 1),
		block("•", 1),
		block("Real content survives cleaning.", 1),
	}

	sections := seg.Segment(blocks, "doc.pdf")
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Content != "Real content survives cleaning." {
		t.Errorf("content = %q", sections[0].Content)
	}
}

func TestSegmenter_Segment_HeadingWithoutContent(t *testing.T) {
	seg := NewSegmenter()

	// A trailing heading with no content after it produces no section.
	blocks := []model.Block{
		block("Planning Your Trip", 1),
		block("Some content here.", 1),
		block("Dangling Heading", 2),
	}

	sections := seg.Segment(blocks, "doc.pdf")
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1: %+v", len(sections), sections)
	}
}

func TestSegmenter_Segment_Empty(t *testing.T) {
	seg := NewSegmenter()
	if sections := seg.Segment(nil, "doc.pdf"); len(sections) != 0 {
		t.Errorf("Segment(nil) = %+v, want none", sections)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapse whitespace", "a  b\t\nc", "a b c"},
		{"strip bullets", "• item one ◦ item two", "item one item two"},
		{"strip ligatures", "eﬀective oﬃce", "eective oce"},
		{"trim", "  padded  ", "padded"},
		{"empty", "", ""},
		{"only decorative", "• ● ◦", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
