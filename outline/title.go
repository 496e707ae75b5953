package outline

import (
	"regexp"
	"strings"

	"github.com/tsawler/skim/model"
)

// fileSuffixRe matches document-file-extension suffixes that signal the
// candidate title is stray filename metadata rather than a real title.
var fileSuffixRe = regexp.MustCompile(`\.(cdr|docx?|pdf|ai|indd)$`)

// TitleConfig holds configuration for title extraction.
type TitleConfig struct {
	// SizeThreshold is the minimum font size for a line to be
	// considered part of the title. Default: 11.5 points.
	SizeThreshold float64

	// MaxLines is the maximum number of lines joined into the title.
	// Default: 2.
	MaxLines int

	// LineTolerance is the Y-distance within which runs share a visual
	// baseline. Default: 0.5.
	LineTolerance float64
}

// DefaultTitleConfig returns sensible default configuration.
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		SizeThreshold: 11.5,
		MaxLines:      2,
		LineTolerance: 0.5,
	}
}

// TitleExtractor derives a document title from the first page's runs.
type TitleExtractor struct {
	config TitleConfig
}

// NewTitleExtractor creates a title extractor with default configuration.
func NewTitleExtractor() *TitleExtractor {
	return NewTitleExtractorWithConfig(DefaultTitleConfig())
}

// NewTitleExtractorWithConfig creates a title extractor with custom
// configuration.
func NewTitleExtractorWithConfig(config TitleConfig) *TitleExtractor {
	if config.MaxLines <= 0 {
		config.MaxLines = 2
	}
	return &TitleExtractor{config: config}
}

// Extract returns the document title from the first page's text runs.
// Lines whose maximum run font size exceeds the threshold are grouped by
// exact font size; the first lines of the single largest size, joined
// with a double space, form the title. Returns the empty string when no
// run qualifies or the result looks like filename metadata.
func (t *TitleExtractor) Extract(runs []model.TextRun) string {
	linesBySize := make(map[float64][]string)
	var topSize float64

	var lineText strings.Builder
	var lineSize float64
	var lineY float64
	haveLine := false

	flush := func() {
		if !haveLine {
			return
		}
		text := strings.TrimSpace(lineText.String())
		if text != "" && lineSize > 0 {
			linesBySize[lineSize] = append(linesBySize[lineSize], text)
			if lineSize > topSize {
				topSize = lineSize
			}
		}
		lineText.Reset()
		lineSize = 0
	}

	for _, run := range runs {
		text := strings.TrimSpace(run.Text)
		if text == "" {
			continue
		}
		if haveLine && absDiff(run.Y, lineY) > t.config.LineTolerance {
			flush()
		}

		// Only runs above the threshold contribute to the title line.
		if run.FontSize > t.config.SizeThreshold {
			if lineText.Len() > 0 {
				lineText.WriteByte(' ')
			}
			lineText.WriteString(text)
			if run.FontSize > lineSize {
				lineSize = run.FontSize
			}
		}
		lineY = run.Y
		haveLine = true
	}
	flush()

	if topSize == 0 {
		return ""
	}

	top := linesBySize[topSize]
	if len(top) > t.config.MaxLines {
		top = top[:t.config.MaxLines]
	}

	title := strings.TrimSpace(strings.Join(top, "  "))
	if isInvalidTitle(title) {
		return ""
	}
	return title
}

// isInvalidTitle reports whether the candidate title ends in a known
// document-file extension.
func isInvalidTitle(title string) bool {
	return fileSuffixRe.MatchString(strings.ToLower(strings.TrimSpace(title)))
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
