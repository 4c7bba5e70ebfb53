// Package wordfreq computes word-frequency mappings from free text.
//
// A word is a maximal run of letters, digits, or underscores; everything
// else separates tokens and is discarded. Tokens are lowercased before
// counting. There is no stemming, stop-word removal, or locale-aware
// folding.
package wordfreq

import (
	"strings"
	"unicode"
)

// Frequencies tallies the lowercased word tokens of text. The result is
// deterministic for a given input and never nil; empty input yields an
// empty map.
func Frequencies(text string) map[string]int {
	freq := make(map[string]int)
	if text == "" {
		return freq
	}
	for _, word := range strings.FieldsFunc(strings.ToLower(text), isSeparator) {
		freq[word]++
	}
	return freq
}

func isSeparator(r rune) bool {
	return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
