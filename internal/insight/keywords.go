// Package insight derives the deterministic parts of a user's report from
// their raw answer texts: recurring keywords, mentioned relationships and the
// highlight/opportunity messages built on top of them.
package insight

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultTopKeywords is the number of keywords shown in a report.
const DefaultTopKeywords = 5

// KeywordCount is a token with its frequency across all answers.
type KeywordCount struct {
	Word  string
	Count int
}

// separators holds the punctuation that splits tokens in addition to whitespace.
var separators = map[rune]bool{
	'.': true, ',': true, '!': true, '?': true, ';': true, ':': true,
	'"': true, '\'': true, '(': true, ')': true, '[': true, ']': true,
	'{': true, '}': true, '-': true, '…': true,
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || separators[r]
}

// Tokenize lowercases text and splits it on whitespace and the separator set,
// dropping tokens of a single rune.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), isSeparator)
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// ExtractKeywords returns the n most frequent tokens across texts. Ties keep
// the order in which the tokens first appeared.
func ExtractKeywords(texts []string, n int) []KeywordCount {
	if n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, tok := range Tokenize(strings.Join(texts, " ")) {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	out := make([]KeywordCount, len(order))
	for i, w := range order {
		out[i] = KeywordCount{Word: w, Count: counts[w]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if len(out) > n {
		out = out[:n]
	}
	return out
}
