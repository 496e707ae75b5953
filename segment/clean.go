package segment

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Clean normalizes a block of extracted text: NFC normalization,
// decorative bullet and ligature characters stripped, whitespace
// collapsed to single spaces.
func Clean(text string) string {
	text = norm.NFC.String(text)

	var sb strings.Builder
	prevSpace := true
	for _, r := range text {
		switch {
		case isDecorative(r):
			// dropped
		case unicode.IsSpace(r):
			if !prevSpace {
				sb.WriteByte(' ')
				prevSpace = true
			}
		default:
			sb.WriteRune(r)
			prevSpace = false
		}
	}

	return strings.TrimSpace(sb.String())
}

// isDecorative reports whether the rune is a bullet or typographic
// ligature left over from PDF extraction.
func isDecorative(r rune) bool {
	switch r {
	case '•', '◦', '●': // bullets
		return true
	}
	// Latin ligatures ff, fi, fl, ffi, ffl
	return r >= 'ﬀ' && r <= 'ﬄ'
}
