package model

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// estimatorWeights tunes the correction terms of the heuristic token
// estimate. Each model family tokenizes long words, punctuation, and
// markup slightly differently.
type estimatorWeights struct {
	longWordLen int     // words longer than this add longWord each
	longWord    float64
	punctuation float64 // per punctuation rune
	special     float64 // per digit/symbol rune
	markupTag   float64 // per <tag>
}

var (
	openAIWeights = estimatorWeights{
		longWordLen: 8,
		longWord:    0.5,
		punctuation: 0.3,
		special:     0.15,
		markupTag:   0.5,
	}
	claudeWeights = estimatorWeights{
		longWordLen: 10,
		longWord:    0.5,
		punctuation: 0.25,
		special:     0.15,
		markupTag:   0.5,
	}
)

var markupTagPattern = regexp.MustCompile(`<[^>]+>`)

// estimateTokens approximates a token count without a real tokenizer.
// Base estimate is runes/4 (the empirical average for BPE tokenizers),
// corrected for long words, punctuation, special characters, and markup
// tags. Deterministic, monotonic in text length, and >= 1 for non-empty
// text.
func estimateTokens(text string, w estimatorWeights) int {
	if text == "" {
		return 0
	}

	estimate := float64(utf8.RuneCountInString(text)) / 4

	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) > w.longWordLen {
			estimate += w.longWord
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsPunct(r):
			estimate += w.punctuation
		case unicode.IsDigit(r) || unicode.IsSymbol(r):
			estimate += w.special
		}
	}

	estimate += float64(len(markupTagPattern.FindAllString(text, -1))) * w.markupTag

	if estimate < 1 {
		return 1
	}
	return int(estimate)
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// cleanForTokenization normalizes whitespace before counting, so the
// count does not depend on incidental formatting.
func cleanForTokenization(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
