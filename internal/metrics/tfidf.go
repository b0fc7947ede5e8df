package metrics

import (
	"errors"
	"math"
)

var errEmptyVocabulary = errors.New("empty vocabulary")

// terms extracts the tf-idf feature stream for a text: non-stop-word
// unigrams plus bigrams over the surviving token stream.
func terms(text string) []string {
	tokens := Tokenize(text)
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !stopWords[tok] {
			kept = append(kept, tok)
		}
	}

	out := make([]string, 0, len(kept)*2)
	out = append(out, kept...)
	for i := 0; i+1 < len(kept); i++ {
		out = append(out, kept[i]+" "+kept[i+1])
	}
	return out
}

// cosineTFIDF vectorizes two texts jointly with smoothed tf-idf and
// returns their cosine similarity. Fails when either text contributes
// no terms, so the caller can fall back to a cruder measure.
func cosineTFIDF(a, b string) (float64, error) {
	termsA := terms(a)
	termsB := terms(b)
	if len(termsA) == 0 || len(termsB) == 0 {
		return 0, errEmptyVocabulary
	}

	tfA := termCounts(termsA)
	tfB := termCounts(termsB)

	vocab := make(map[string]struct{}, len(tfA)+len(tfB))
	for t := range tfA {
		vocab[t] = struct{}{}
	}
	for t := range tfB {
		vocab[t] = struct{}{}
	}

	// Smoothed idf over the two-document corpus: ln((1+n)/(1+df)) + 1.
	var dot, normA, normB float64
	for t := range vocab {
		df := 0
		if tfA[t] > 0 {
			df++
		}
		if tfB[t] > 0 {
			df++
		}
		idf := math.Log(3.0/float64(1+df)) + 1

		wa := float64(tfA[t]) * idf
		wb := float64(tfB[t]) * idf
		dot += wa * wb
		normA += wa * wa
		normB += wb * wb
	}

	if normA == 0 || normB == 0 {
		return 0, errEmptyVocabulary
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

func termCounts(ts []string) map[string]int {
	counts := make(map[string]int, len(ts))
	for _, t := range ts {
		counts[t]++
	}
	return counts
}
