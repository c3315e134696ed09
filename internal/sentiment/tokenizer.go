package sentiment

import (
	"strings"
	"unicode"
)

// Tokenizer is the text-splitting capability the scorer depends on. Any
// implementation works as long as tokens are stable identifiers; the
// scorer only compares lower-cased tokens against its lexicon.
type Tokenizer interface {
	Tokenize(text string) []string
	IsStopWord(token string) bool
}

// SimpleTokenizer splits on any rune that is neither letter nor digit and
// carries a fixed English stop-word set. Punctuation-only tokens never
// survive the split.
type SimpleTokenizer struct {
	stopWords map[string]struct{}
}

// NewSimpleTokenizer builds a tokenizer with the default stop-word set.
func NewSimpleTokenizer() *SimpleTokenizer {
	stop := make(map[string]struct{}, len(defaultStopWords))
	for _, w := range defaultStopWords {
		stop[w] = struct{}{}
	}
	return &SimpleTokenizer{stopWords: stop}
}

// Tokenize splits text into word-like tokens.
func (t *SimpleTokenizer) Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// IsStopWord reports stop-word membership, case-insensitively.
func (t *SimpleTokenizer) IsStopWord(token string) bool {
	_, ok := t.stopWords[strings.ToLower(token)]
	return ok
}

var defaultStopWords = []string{
	"a", "an", "the", "and", "or", "but", "if", "then", "than", "so",
	"of", "at", "by", "for", "with", "about", "against", "between",
	"to", "from", "in", "into", "on", "off", "out", "over", "under",
	"is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did",
	"will", "would", "can", "could", "should", "may", "might", "must",
	"i", "you", "he", "she", "it", "we", "they",
	"me", "him", "them", "my", "your", "his", "her", "its", "our", "their",
	"this", "that", "these", "those", "there", "here",
	"who", "whom", "what", "which", "when", "where", "why", "how",
	"as", "not", "no", "nor", "only", "own", "same", "such",
	"s", "t", "d", "ll", "re", "ve",
}
