package outline

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tsawler/skim/model"
)

// Verdict is the outcome of applying a single classification rule to a
// line.
type Verdict int

const (
	// VerdictNone means the rule has no opinion about the line
	VerdictNone Verdict = iota

	// VerdictLevel means the rule assigned a heading level
	VerdictLevel

	// VerdictReject means the line is definitely not a heading
	VerdictReject
)

// RuleContext carries the per-page state rules may consult.
type RuleContext struct {
	// SizeToLevel maps observed font sizes to heading levels. Only the
	// top distinct sizes above the threshold are present.
	SizeToLevel map[float64]model.HeadingLevel

	// TopSize is the largest qualifying font size on the page, or 0 if
	// no size qualifies.
	TopSize float64
}

// Rule is a pure classification function over a line. It returns the
// assigned level (meaningful only for VerdictLevel) and a verdict.
// Rules are evaluated in a fixed priority order with early exit on
// VerdictLevel or VerdictReject.
type Rule func(line model.Line, ctx RuleContext) (model.HeadingLevel, Verdict)

// numberedPrefixRe matches a dotted numeric outline prefix followed by
// whitespace or a colon, e.g. "2.1 " or "2.1.3:".
var numberedPrefixRe = regexp.MustCompile(`^(\d+(?:\.\d+)*)[\s:]`)

// freshNumberedRe matches a numbered sub-item with at least one dot,
// used by the merge pass to avoid absorbing a new numbered heading into
// the previous one.
var freshNumberedRe = regexp.MustCompile(`^\d+(\.\d+)+\s`)

// DefaultRules returns the classification rules in priority order:
//
//  1. Reject bare date lines.
//  2. Assign by dotted numeric prefix depth (numbered outline structure
//     takes precedence over font size).
//  3. Assign by the page's font-size-to-level mapping.
//  4. Fallback: short all-uppercase lines near the top font size are H1.
func DefaultRules() []Rule {
	return []Rule{
		RejectDateLine,
		NumberedPrefixLevel,
		FontSizeLevel,
		UppercaseFallback,
	}
}

// RejectDateLine rejects lines that are a single bare date.
func RejectDateLine(line model.Line, _ RuleContext) (model.HeadingLevel, Verdict) {
	if isDateLine(line.Text) {
		return model.HeadingLevelUnknown, VerdictReject
	}
	return model.HeadingLevelUnknown, VerdictNone
}

// NumberedPrefixLevel assigns a level from a dotted numeric prefix:
// "2" is H1, "2.1" is H2, "2.1.3" is H3, capped at H4.
func NumberedPrefixLevel(line model.Line, _ RuleContext) (model.HeadingLevel, Verdict) {
	m := numberedPrefixRe.FindStringSubmatch(line.Text)
	if m == nil {
		return model.HeadingLevelUnknown, VerdictNone
	}
	depth := strings.Count(m[1], ".") + 1
	if depth > int(model.HeadingLevel4) {
		depth = int(model.HeadingLevel4)
	}
	return model.HeadingLevel(depth), VerdictLevel
}

// FontSizeLevel assigns the level mapped to the line's font size, if any.
func FontSizeLevel(line model.Line, ctx RuleContext) (model.HeadingLevel, Verdict) {
	if level, ok := ctx.SizeToLevel[line.FontSize]; ok {
		return level, VerdictLevel
	}
	return model.HeadingLevelUnknown, VerdictNone
}

// uppercaseMaxWords is the maximum word count for the uppercase fallback.
const uppercaseMaxWords = 6

// uppercaseSizeRatio is the minimum fraction of the top font size for
// the uppercase fallback.
const uppercaseSizeRatio = 0.9

// UppercaseFallback assigns H1 to short, fully uppercase lines whose
// font size is close to the largest observed size. This catches banner
// headings set in caps at near-title size.
func UppercaseFallback(line model.Line, ctx RuleContext) (model.HeadingLevel, Verdict) {
	if ctx.TopSize <= 0 || line.FontSize < ctx.TopSize*uppercaseSizeRatio {
		return model.HeadingLevelUnknown, VerdictNone
	}
	if len(strings.Fields(line.Text)) > uppercaseMaxWords {
		return model.HeadingLevelUnknown, VerdictNone
	}
	if !isAllUpper(line.Text) {
		return model.HeadingLevelUnknown, VerdictNone
	}
	return model.HeadingLevel1, VerdictLevel
}

// isAllUpper reports whether the text contains at least one letter and
// no lowercase letters.
func isAllUpper(text string) bool {
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
