package source

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/tsawler/skim/model"
)

// parseContentStream walks a PDF page content stream and produces text
// runs. It tracks the subset of text-state operators needed for layout
// classification: Tf (font size), Td/TD/Tm/T* (vertical position), and
// TL (leading). Text shown at the same vertical position accumulates
// into a single run.
func parseContentStream(data []byte, pageIndex int) []model.TextRun {
	var runs []model.TextRun

	var (
		fontSize float64
		y        float64
		leading  float64
		pending  strings.Builder
		pendingY float64
	)

	flush := func() {
		text := cleanRunText(pending.String())
		if text != "" {
			runs = append(runs, model.TextRun{
				Text:      text,
				FontSize:  roundSize(fontSize),
				Y:         pendingY,
				PageIndex: pageIndex,
			})
		}
		pending.Reset()
	}

	show := func(text string) {
		if text == "" {
			return
		}
		if pending.Len() == 0 {
			pendingY = y
		}
		pending.WriteString(text)
	}

	tokens := tokenizeContent(data)
	var operands []token

	for _, tok := range tokens {
		if tok.kind != tokOperator {
			operands = append(operands, tok)
			continue
		}

		switch tok.text {
		case "BT":
			flush()
			y = 0
			leading = 0
		case "ET":
			flush()
		case "Tf":
			if len(operands) >= 1 {
				flush()
				fontSize = number(operands[len(operands)-1])
			}
		case "Td":
			if len(operands) >= 2 {
				flush()
				y += number(operands[len(operands)-1])
			}
		case "TD":
			if len(operands) >= 2 {
				flush()
				ty := number(operands[len(operands)-1])
				leading = -ty
				y += ty
			}
		case "Tm":
			if len(operands) >= 6 {
				flush()
				y = number(operands[len(operands)-1])
			}
		case "T*":
			flush()
			y -= leading
		case "TL":
			if len(operands) >= 1 {
				leading = number(operands[len(operands)-1])
			}
		case "Tj", "'", "\"":
			for _, op := range operands {
				if op.kind == tokString {
					if tok.text != "Tj" {
						flush()
						y -= leading
					}
					show(op.text)
				}
			}
		case "TJ":
			for _, op := range operands {
				if op.kind == tokString {
					show(op.text)
				}
			}
		}
		operands = operands[:0]
	}
	flush()

	return runs
}

type tokenKind int

const (
	tokOperator tokenKind = iota
	tokNumber
	tokString
	tokOther
)

type token struct {
	kind tokenKind
	text string
}

// tokenizeContent splits a content stream into operands and operators.
// Parenthesized strings (with escape handling) become single string
// tokens; array delimiters are dropped so TJ elements appear inline.
func tokenizeContent(data []byte) []token {
	var tokens []token
	i := 0
	n := len(data)

	for i < n {
		c := data[i]
		switch {
		case c == '(':
			text, next := readString(data, i)
			tokens = append(tokens, token{kind: tokString, text: text})
			i = next
		case c == '<':
			// Hex strings and dictionaries carry no layout text we use.
			i = skipAngle(data, i)
		case c == '[' || c == ']':
			i++
		case c == '%':
			for i < n && data[i] != '\n' {
				i++
			}
		case c == '/':
			i++
			start := i
			for i < n && !isDelimiter(data[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokOther, text: "/" + string(data[start:i])})
		case c == '{' || c == '}':
			i++
		case isWhitespace(c):
			i++
		default:
			start := i
			for i < n && !isDelimiter(data[i]) {
				i++
			}
			if i == start {
				i++
				continue
			}
			word := string(data[start:i])
			if isNumeric(word) {
				tokens = append(tokens, token{kind: tokNumber, text: word})
			} else {
				tokens = append(tokens, token{kind: tokOperator, text: word})
			}
		}
	}

	return tokens
}

// readString consumes a parenthesized PDF string starting at the opening
// paren, decoding escapes and balancing nested parens. It returns the
// decoded text and the index after the closing paren.
func readString(data []byte, start int) (string, int) {
	var sb strings.Builder
	depth := 0
	i := start

	for i < len(data) {
		c := data[i]
		switch {
		case c == '\\' && i+1 < len(data):
			i++
			switch data[i] {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '\\', '(', ')':
				sb.WriteByte(data[i])
			default:
				if data[i] >= '0' && data[i] <= '7' {
					val := int(data[i] - '0')
					for j := 0; j < 2 && i+1 < len(data) && data[i+1] >= '0' && data[i+1] <= '7'; j++ {
						i++
						val = val*8 + int(data[i]-'0')
					}
					sb.WriteByte(byte(val))
				} else {
					sb.WriteByte(data[i])
				}
			}
			i++
		case c == '(':
			if depth > 0 {
				sb.WriteByte(c)
			}
			depth++
			i++
		case c == ')':
			depth--
			i++
			if depth == 0 {
				return sb.String(), i
			}
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
			i++
		}
	}

	return sb.String(), i
}

// skipAngle skips a hex string or dictionary starting at '<'.
func skipAngle(data []byte, start int) int {
	i := start + 1
	if i < len(data) && data[i] == '<' {
		// Dictionary: skip to matching >>
		depth := 1
		i++
		for i+1 < len(data) && depth > 0 {
			if data[i] == '<' && data[i+1] == '<' {
				depth++
				i += 2
			} else if data[i] == '>' && data[i+1] == '>' {
				depth--
				i += 2
			} else {
				i++
			}
		}
		return i
	}
	for i < len(data) && data[i] != '>' {
		i++
	}
	return i + 1
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

func isDelimiter(c byte) bool {
	return isWhitespace(c) || c == '(' || c == ')' || c == '<' || c == '>' ||
		c == '[' || c == ']' || c == '{' || c == '}' || c == '/' || c == '%'
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func number(t token) float64 {
	v, _ := strconv.ParseFloat(t.text, 64)
	return v
}

// roundSize rounds a font size to one decimal place so that sizes from
// different spans of the same style compare equal.
func roundSize(size float64) float64 {
	return math.Round(size*10) / 10
}

// cleanRunText collapses whitespace and drops non-printable characters.
func cleanRunText(text string) string {
	var sb strings.Builder
	prevSpace := true
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !prevSpace {
				sb.WriteByte(' ')
				prevSpace = true
			}
		} else if unicode.IsPrint(r) {
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}
