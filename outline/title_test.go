package outline

import (
	"testing"

	"github.com/tsawler/skim/model"
)

func TestTitleExtractor_Extract(t *testing.T) {
	te := NewTitleExtractor()

	tests := []struct {
		name string
		runs []model.TextRun
		want string
	}{
		{
			name: "single large line",
			runs: []model.TextRun{
				run("Network Topology Field Guide", 24.0, 720),
				run("Body text at normal size", 10.0, 680),
			},
			want: "Network Topology Field Guide",
		},
		{
			name: "two lines at top size joined with double space",
			runs: []model.TextRun{
				run("Overview and Foundation", 30.0, 720),
				run("Level Extensions", 30.0, 690),
				run("Subtitle in smaller type", 14.0, 660),
			},
			want: "Overview and Foundation  Level Extensions",
		},
		{
			name: "third line at top size is dropped",
			runs: []model.TextRun{
				run("Line One", 30.0, 720),
				run("Line Two", 30.0, 690),
				run("Line Three", 30.0, 660),
			},
			want: "Line One  Line Two",
		},
		{
			name: "no run above threshold",
			runs: []model.TextRun{
				run("Everything is body text", 10.0, 720),
				run("More body text", 11.5, 700),
			},
			want: "",
		},
		{
			name: "filename metadata is not a title",
			runs: []model.TextRun{
				run("annual_report.cdr", 24.0, 720),
			},
			want: "",
		},
		{
			name: "small runs on a title line do not contribute",
			runs: []model.TextRun{
				run("Field Guide", 24.0, 720),
				run("draft", 8.0, 720.2),
			},
			want: "Field Guide",
		},
		{
			name: "empty page",
			runs: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := te.Extract(tt.runs); got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsInvalidTitle(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"flyer.cdr", true},
		{"Report.PDF", true},
		{"notes.docx", true},
		{"notes.doc", true},
		{"artwork.ai", true},
		{"layout.indd", true},
		{"A Guide to PDF Internals", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isInvalidTitle(tt.title); got != tt.want {
			t.Errorf("isInvalidTitle(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}
