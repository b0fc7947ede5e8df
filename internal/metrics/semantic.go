package metrics

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// SemanticAnalysis summarizes the semantic character of a text.
type SemanticAnalysis struct {
	// Density approximates information content from lexical diversity.
	Density float64 `json:"density"`
	// Coherence scores connective-word frequency per sentence.
	Coherence float64 `json:"coherence"`
	// Complexity blends average sentence length and average word length.
	Complexity float64 `json:"complexity"`
	// KeyTerms are the highest-importance terms, most important first.
	KeyTerms []string `json:"key_terms,omitempty"`
}

// Similarity is the meaning-preservation gate: joint tf-idf
// vectorization followed by cosine similarity, clamped to [0, 1].
// On degenerate vocabulary it falls back to word-set Jaccard. Returns
// 0 when either text is empty.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	sim, err := cosineTFIDF(a, b)
	if err != nil {
		return JaccardWords(a, b)
	}

	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// AnalyzeContent computes density, coherence, complexity, and key terms
// for a text.
func AnalyzeContent(text string) SemanticAnalysis {
	return SemanticAnalysis{
		Density:    density(text),
		Coherence:  coherence(text),
		Complexity: complexity(text),
		KeyTerms:   KeyTerms(text, 5),
	}
}

func density(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	unique := make(map[string]bool, len(words))
	for _, w := range words {
		unique[w] = true
	}

	diversity := float64(len(unique)) / float64(len(words))
	if d := diversity * 2; d < 1 {
		return d
	}
	return 1
}

func coherence(text string) float64 {
	sentences := strings.Split(text, ".")
	if len(sentences) < 2 {
		return 1
	}

	count := 0
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if connectives[w] {
			count++
		}
	}

	score := float64(count) / float64(len(sentences))
	if score > 1 {
		return 1
	}
	return score
}

func complexity(text string) float64 {
	words := strings.Fields(text)
	sentences := strings.Split(text, ".")
	if len(words) == 0 || len(sentences) == 0 {
		return 0
	}

	totalLen := 0
	for _, w := range words {
		totalLen += utf8.RuneCountInString(w)
	}
	avgSentenceLen := float64(len(words)) / float64(len(sentences))
	avgWordLen := float64(totalLen) / float64(len(words))

	sentenceComplexity := avgSentenceLen / 20
	if sentenceComplexity > 1 {
		sentenceComplexity = 1
	}
	lexicalComplexity := (avgWordLen - 3) / 5
	if lexicalComplexity > 1 {
		lexicalComplexity = 1
	}

	return (sentenceComplexity + lexicalComplexity) / 2
}

// KeyTerms returns up to max terms ranked by importance. Primary
// ranking uses term frequency over the tf-idf feature stream; when the
// text yields no features it falls back to a frequency-and-length
// heuristic over raw words.
func KeyTerms(text string, max int) []string {
	counts := termCounts(terms(text))
	if len(counts) == 0 {
		return keyTermsFallback(text, max)
	}

	ranked := make([]string, 0, len(counts))
	for t := range counts {
		ranked = append(ranked, t)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	if len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}

// keyTermsFallback favors rare, long words when no tf-idf features
// exist.
func keyTermsFallback(text string, max int) []string {
	freq := make(map[string]int)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		freq[w]++
	}
	if len(freq) == 0 {
		return nil
	}

	ranked := make([]string, 0, len(freq))
	for w := range freq {
		ranked = append(ranked, w)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if freq[ranked[i]] != freq[ranked[j]] {
			return freq[ranked[i]] < freq[ranked[j]]
		}
		return utf8.RuneCountInString(ranked[i]) > utf8.RuneCountInString(ranked[j])
	})

	if len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}
