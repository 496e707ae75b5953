package outline

import (
	"regexp"
	"strings"
)

var (
	// dateLineRe matches a bare date line like "12 March 2024"
	dateLineRe = regexp.MustCompile(`^\d{1,2}\s+\w+\s+\d{4}$`)

	// datePhraseRe matches date phrases inside normalized uppercase text
	datePhraseRe = regexp.MustCompile(`\d{1,2} [A-Z]{3,10} \d{4}`)

	// pageNofMRe matches running-header text like "Page 3 of 12"
	pageNofMRe = regexp.MustCompile(`^Page \d+ of \d+`)
)

// isDateLine reports whether the text is a single bare date.
func isDateLine(text string) bool {
	return dateLineRe.MatchString(strings.ToUpper(strings.TrimSpace(text)))
}

// isDateLike reports whether the text is composed almost entirely of
// dates: at least two date phrases whose words cover 90% or more of the
// text's word count. Such lines are calendar rows, not headings.
func isDateLike(text string) bool {
	if text == "" {
		return false
	}

	normalized := strings.ToUpper(strings.TrimSpace(text))
	matches := datePhraseRe.FindAllString(normalized, -1)
	if len(matches) < 2 {
		return false
	}

	totalWords := len(strings.Fields(normalized))
	if totalWords == 0 {
		return false
	}

	// Each date phrase is three words.
	dateWords := len(matches) * 3
	return float64(dateWords)/float64(totalWords) >= 0.9
}

// isPageMarker reports whether the text is a "Page N of M" running header.
func isPageMarker(text string) bool {
	return pageNofMRe.MatchString(text)
}
