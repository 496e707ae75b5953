package summarize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"
)

// stopwordFile is the path of the English stopword list inside the data
// directory, matching the NLTK corpus layout.
const stopwordFile = "corpora/stopwords/english"

// Tokenizer segments text into sentences and words and carries the
// stopword set used for term filtering. Construct once and share; the
// tokenizer is read-only after construction and safe for concurrent use.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer loads the English stopword set from dataDir and returns
// a ready tokenizer. A missing or unreadable stopword list is a fatal
// initialization error for summarization.
func NewTokenizer(dataDir string) (*Tokenizer, error) {
	path := filepath.Join(dataDir, stopwordFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load stopword list from %s: %w", path, err)
	}

	stopwords := make(map[string]struct{})
	for _, line := range strings.Split(string(data), "\n") {
		word := strings.TrimSpace(line)
		if word != "" {
			stopwords[word] = struct{}{}
		}
	}
	if len(stopwords) == 0 {
		return nil, fmt.Errorf("stopword list %s is empty", path)
	}

	return &Tokenizer{stopwords: stopwords}, nil
}

// Sentences splits text into sentences.
func (t *Tokenizer) Sentences(text string) []string {
	var result []string
	segs := sentences.FromString(text)
	for segs.Next() {
		s := strings.TrimSpace(segs.Value())
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}

// Words splits text into word tokens. Punctuation and whitespace
// segments are dropped.
func (t *Tokenizer) Words(text string) []string {
	var result []string
	segs := words.FromString(text)
	for segs.Next() {
		w := strings.TrimSpace(segs.Value())
		if w != "" && hasAlnum(w) {
			result = append(result, w)
		}
	}
	return result
}

// IsStopword reports whether the lowercase word is in the stopword set.
func (t *Tokenizer) IsStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}

// hasAlnum reports whether the token contains at least one letter or
// digit.
func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// isAlnum reports whether every rune in the token is a letter or digit.
func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
