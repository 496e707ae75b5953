package outline

import (
	"testing"

	"github.com/tsawler/skim/model"
)

func TestNumberedPrefixLevel(t *testing.T) {
	tests := []struct {
		text      string
		wantLevel model.HeadingLevel
		wantOK    bool
	}{
		{"1 Introduction", model.HeadingLevel1, true},
		{"2.1 Methods", model.HeadingLevel2, true},
		{"2.1.3 Sampling", model.HeadingLevel3, true},
		{"2.1.3.4 Detail", model.HeadingLevel4, true},
		{"2.1.3.4.5 Too Deep", model.HeadingLevel4, true},
		{"3: Results", model.HeadingLevel1, true},
		{"Introduction", model.HeadingLevelUnknown, false},
		{"1.Introduction", model.HeadingLevelUnknown, false},
		{"v2.1 release notes", model.HeadingLevelUnknown, false},
	}

	for _, tt := range tests {
		line := model.Line{Text: tt.text}
		level, verdict := NumberedPrefixLevel(line, RuleContext{})
		gotOK := verdict == VerdictLevel
		if gotOK != tt.wantOK || level != tt.wantLevel {
			t.Errorf("NumberedPrefixLevel(%q) = (%v, %v), want (%v, ok=%v)",
				tt.text, level, verdict, tt.wantLevel, tt.wantOK)
		}
	}
}

func TestFontSizeLevel(t *testing.T) {
	ctx := RuleContext{
		SizeToLevel: map[float64]model.HeadingLevel{
			18.0: model.HeadingLevel1,
			14.0: model.HeadingLevel2,
		},
		TopSize: 18.0,
	}

	tests := []struct {
		size      float64
		wantLevel model.HeadingLevel
		wantOK    bool
	}{
		{18.0, model.HeadingLevel1, true},
		{14.0, model.HeadingLevel2, true},
		{12.0, model.HeadingLevelUnknown, false},
		{10.0, model.HeadingLevelUnknown, false},
	}

	for _, tt := range tests {
		line := model.Line{Text: "Heading", FontSize: tt.size}
		level, verdict := FontSizeLevel(line, ctx)
		gotOK := verdict == VerdictLevel
		if gotOK != tt.wantOK || level != tt.wantLevel {
			t.Errorf("FontSizeLevel(size=%.1f) = (%v, %v), want (%v, ok=%v)",
				tt.size, level, verdict, tt.wantLevel, tt.wantOK)
		}
	}
}

func TestUppercaseFallback(t *testing.T) {
	ctx := RuleContext{TopSize: 20.0}

	tests := []struct {
		name   string
		text   string
		size   float64
		wantOK bool
	}{
		{"short caps near top size", "EXECUTIVE SUMMARY", 19.0, true},
		{"caps at exactly 90 percent", "OVERVIEW", 18.0, true},
		{"caps too small", "OVERVIEW", 15.0, false},
		{"mixed case", "Executive Summary", 19.0, false},
		{"too many words", "ONE TWO THREE FOUR FIVE SIX SEVEN", 19.0, false},
		{"digits only", "2024", 19.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := model.Line{Text: tt.text, FontSize: tt.size}
			level, verdict := UppercaseFallback(line, ctx)
			gotOK := verdict == VerdictLevel
			if gotOK != tt.wantOK {
				t.Errorf("UppercaseFallback(%q, size=%.1f) verdict = %v, want ok=%v",
					tt.text, tt.size, verdict, tt.wantOK)
			}
			if gotOK && level != model.HeadingLevel1 {
				t.Errorf("UppercaseFallback(%q) level = %v, want H1", tt.text, level)
			}
		})
	}

	// Without any qualifying size on the page the fallback never fires.
	line := model.Line{Text: "OVERVIEW", FontSize: 19.0}
	if _, verdict := UppercaseFallback(line, RuleContext{}); verdict != VerdictNone {
		t.Errorf("UppercaseFallback with zero TopSize = %v, want VerdictNone", verdict)
	}
}

func TestRejectDateLine(t *testing.T) {
	line := model.Line{Text: "12 March 2024"}
	if _, verdict := RejectDateLine(line, RuleContext{}); verdict != VerdictReject {
		t.Errorf("RejectDateLine on bare date = %v, want VerdictReject", verdict)
	}

	line = model.Line{Text: "Quarterly Results"}
	if _, verdict := RejectDateLine(line, RuleContext{}); verdict != VerdictNone {
		t.Errorf("RejectDateLine on heading = %v, want VerdictNone", verdict)
	}
}
