package skim

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tsawler/skim/model"
)

// stubSource is an in-memory layout source for tests.
type stubSource struct {
	pages  [][]model.TextRun
	blocks []model.Block
	closed bool

	pageErr map[int]error
}

func (s *stubSource) PageCount() int { return len(s.pages) }

func (s *stubSource) Page(index int) ([]model.TextRun, error) {
	if err, ok := s.pageErr[index]; ok {
		return nil, err
	}
	if index < 0 || index >= len(s.pages) {
		return nil, fmt.Errorf("page %d out of range", index)
	}
	return s.pages[index], nil
}

func (s *stubSource) Blocks() ([]model.Block, error) { return s.blocks, nil }

func (s *stubSource) Close() error {
	s.closed = true
	return nil
}

func reportSource() *stubSource {
	return &stubSource{
		pages: [][]model.TextRun{
			{
				{Text: "Network Topology Field Guide", FontSize: 22, Y: 720, PageIndex: 0},
			},
			{
				{Text: "Introduction", FontSize: 16, Y: 720, PageIndex: 1},
				{Text: "This guide covers switching fabrics.", FontSize: 10, Y: 680, PageIndex: 1},
			},
		},
		blocks: []model.Block{
			{Text: "Planning Your Trip", PageNumber: 1},
			{Text: "Start with a rough itinerary.", PageNumber: 1},
		},
	}
}

func TestExtractor_Outline(t *testing.T) {
	src := reportSource()

	outline, warnings, err := FromSource(src, "guide.pdf").Outline()
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	if outline.Title != "Network Topology Field Guide" {
		t.Errorf("title = %q", outline.Title)
	}
	if len(outline.Entries) != 1 {
		t.Fatalf("got %d entries, want 1: %+v", len(outline.Entries), outline.Entries)
	}
	entry := outline.Entries[0]
	if entry.Text != "Introduction" || entry.Level != model.HeadingLevel1 || entry.Page != 1 {
		t.Errorf("entry = %+v", entry)
	}
}

func TestExtractor_Outline_PageOffset(t *testing.T) {
	outline, _, err := FromSource(reportSource(), "guide.pdf").PageOffset(10).Outline()
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}
	if len(outline.Entries) != 1 || outline.Entries[0].Page != 11 {
		t.Errorf("entries = %+v, want page 11", outline.Entries)
	}
}

func TestExtractor_Outline_WarnsOnEmptyAndFailingPages(t *testing.T) {
	src := reportSource()
	src.pages = append(src.pages, nil) // page 2 has no text
	src.pageErr = map[int]error{1: fmt.Errorf("damaged stream")}

	_, warnings, err := FromSource(src, "guide.pdf").Outline()
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}
	if len(warnings) != 3 {
		t.Fatalf("got %d warnings, want 3 (error, empty from error, empty page): %v",
			len(warnings), warnings)
	}
	for _, w := range warnings {
		if w.Document != "guide.pdf" {
			t.Errorf("warning document = %q", w.Document)
		}
	}
}

func TestExtractor_Title(t *testing.T) {
	title, _, err := FromSource(reportSource(), "guide.pdf").Title()
	if err != nil {
		t.Fatalf("Title: %v", err)
	}
	if title != "Network Topology Field Guide" {
		t.Errorf("title = %q", title)
	}
}

func TestExtractor_PageCount(t *testing.T) {
	count, err := FromSource(reportSource(), "guide.pdf").PageCount()
	if err != nil {
		t.Fatalf("PageCount: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestExtractor_Sections(t *testing.T) {
	sections, _, err := FromSource(reportSource(), "guide.pdf").Sections()
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1: %+v", len(sections), sections)
	}
	sec := sections[0]
	if sec.Title != "Planning Your Trip" || sec.Source != "guide.pdf" {
		t.Errorf("section = %+v", sec)
	}
}

func TestExtractor_Immutability(t *testing.T) {
	base := FromSource(reportSource(), "guide.pdf")
	derived := base.PageOffset(5)

	if base == derived {
		t.Fatal("PageOffset must return a new instance")
	}
	if base.options.pageOffset != 0 {
		t.Errorf("base offset mutated to %d", base.options.pageOffset)
	}
	if derived.options.pageOffset != 5 {
		t.Errorf("derived offset = %d, want 5", derived.options.pageOffset)
	}
}

func TestExtractor_DoesNotCloseBorrowedSource(t *testing.T) {
	src := reportSource()
	if _, _, err := FromSource(src, "guide.pdf").Outline(); err != nil {
		t.Fatalf("Outline: %v", err)
	}
	if src.closed {
		t.Error("terminal operation closed a source it does not own")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, _, err := Open("/nonexistent/file.pdf").Outline()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to open PDF") {
		t.Errorf("error = %v", err)
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must = %d, want 42", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(0, fmt.Errorf("boom"))
}

func TestMustOutline(t *testing.T) {
	o := MustOutline(FromSource(reportSource(), "guide.pdf").Outline())
	if o.Title != "Network Topology Field Guide" {
		t.Errorf("title = %q", o.Title)
	}
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Document: "a.pdf", Page: 2, Message: "no extractable text"},
		{Document: "a.pdf", Page: -1, Message: "encrypted"},
	}

	got := FormatWarnings(warnings)
	want := "a.pdf: page 2: no extractable text\na.pdf: encrypted"
	if got != want {
		t.Errorf("FormatWarnings = %q, want %q", got, want)
	}

	if FormatWarnings(nil) != "" {
		t.Error("FormatWarnings(nil) should be empty")
	}
}
