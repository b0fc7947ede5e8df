// Package metrics measures token statistics and semantic preservation
// for the optimization pipeline.
package metrics

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// TokenAnalysis holds lexical statistics for a text.
type TokenAnalysis struct {
	TotalTokens    int            `json:"total_tokens"`
	UniqueTokens   int            `json:"unique_tokens"`
	AvgTokenLength float64        `json:"avg_token_length"`
	Frequency      map[string]int `json:"frequency,omitempty"`
	// Redundancy is 1 - unique/total; 0 for empty text.
	Redundancy float64 `json:"redundancy"`
}

var nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

// Tokenize lower-cases, strips punctuation, splits on whitespace, and
// drops single-character tokens.
func Tokenize(text string) []string {
	text = nonWordPattern.ReplaceAllString(strings.ToLower(text), " ")
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// AnalyzeTokens computes lexical statistics for a text.
func AnalyzeTokens(text string) TokenAnalysis {
	tokens := Tokenize(text)

	analysis := TokenAnalysis{
		TotalTokens: len(tokens),
		Frequency:   make(map[string]int, len(tokens)),
	}

	totalLen := 0
	for _, tok := range tokens {
		analysis.Frequency[tok]++
		totalLen += utf8.RuneCountInString(tok)
	}
	analysis.UniqueTokens = len(analysis.Frequency)

	if analysis.TotalTokens > 0 {
		analysis.AvgTokenLength = float64(totalLen) / float64(analysis.TotalTokens)
		analysis.Redundancy = 1 - float64(analysis.UniqueTokens)/float64(analysis.TotalTokens)
	}

	return analysis
}

// ReductionPotential scores how much a text could plausibly shrink,
// averaging redundancy, verbosity, and sentence repetition. Strategies
// can be prioritized by this before they run.
func ReductionPotential(text string) float64 {
	analysis := AnalyzeTokens(text)

	potential := (analysis.Redundancy + Verbosity(text) + repetition(text)) / 3
	if potential > 1 {
		return 1
	}
	return potential
}

// Verbosity blends the stop-word ratio, filler-word ratio, and a word
// length bias into a 0-1 score.
func Verbosity(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	totalLen := 0
	stopCount := 0
	fillerCount := 0
	for _, w := range words {
		totalLen += utf8.RuneCountInString(w)
		lower := strings.ToLower(w)
		if stopWords[lower] {
			stopCount++
		}
		if verbosityFillers[lower] {
			fillerCount++
		}
	}

	avgWordLen := float64(totalLen) / float64(len(words))
	stopRatio := float64(stopCount) / float64(len(words))
	fillerRatio := float64(fillerCount) / float64(len(words))

	verbosity := (stopRatio + fillerRatio + (avgWordLen-5)/10) / 3
	if verbosity < 0 {
		return 0
	}
	if verbosity > 1 {
		return 1
	}
	return verbosity
}

// repetition is the average word-set Jaccard similarity of adjacent
// sentences.
func repetition(text string) float64 {
	sentences := strings.Split(text, ".")
	if len(sentences) < 2 {
		return 0
	}

	total := 0.0
	count := 0
	for i := 0; i < len(sentences)-1; i++ {
		total += JaccardWords(strings.TrimSpace(sentences[i]), strings.TrimSpace(sentences[i+1]))
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// JaccardWords returns the Jaccard similarity of the lower-cased word
// sets of two texts. 0 when either set is empty.
func JaccardWords(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[w] = true
	}
	return set
}
