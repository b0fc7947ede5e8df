package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and strips punctuation",
			text: "Hello, World! Analyze THIS.",
			want: []string{"hello", "world", "analyze", "this"},
		},
		{
			name: "drops single-character tokens",
			text: "a b analyze c data",
			want: []string{"analyze", "data"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestAnalyzeTokens(t *testing.T) {
	analysis := AnalyzeTokens("analyze the data, analyze the data")

	assert.Equal(t, 6, analysis.TotalTokens)
	assert.Equal(t, 3, analysis.UniqueTokens)
	assert.Equal(t, 2, analysis.Frequency["analyze"])
	assert.Equal(t, 2, analysis.Frequency["data"])
	assert.InDelta(t, 0.5, analysis.Redundancy, 1e-9)
	assert.Greater(t, analysis.AvgTokenLength, 0.0)
}

func TestAnalyzeTokens_Empty(t *testing.T) {
	analysis := AnalyzeTokens("")

	assert.Equal(t, 0, analysis.TotalTokens)
	assert.Equal(t, 0, analysis.UniqueTokens)
	assert.Zero(t, analysis.Redundancy)
	assert.Zero(t, analysis.AvgTokenLength)
}

func TestReductionPotential_Bounds(t *testing.T) {
	texts := []string{
		"",
		"Short note.",
		"Please analyze this. Please analyze this. Please analyze this.",
		"The quick brown fox jumps over the lazy dog near the riverbank.",
	}
	for _, text := range texts {
		p := ReductionPotential(text)
		assert.GreaterOrEqual(t, p, 0.0, "text: %q", text)
		assert.LessOrEqual(t, p, 1.0, "text: %q", text)
	}
}

func TestReductionPotential_RepetitiveScoresHigher(t *testing.T) {
	repetitive := "Please analyze the data carefully. Please analyze the data carefully. Please analyze the data carefully."
	terse := "Summarize quarterly revenue by region."

	assert.Greater(t, ReductionPotential(repetitive), ReductionPotential(terse))
}

func TestVerbosity_Clamped(t *testing.T) {
	assert.Zero(t, Verbosity(""))

	v := Verbosity("it is very really quite basically actually rather important that")
	assert.Greater(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
}

func TestJaccardWords(t *testing.T) {
	assert.InDelta(t, 1.0, JaccardWords("analyze the data", "the data analyze"), 1e-9)
	assert.Zero(t, JaccardWords("alpha beta", "gamma delta"))
	assert.Zero(t, JaccardWords("", "text"))
	assert.InDelta(t, 1.0/3.0, JaccardWords("alpha beta", "beta gamma"), 1e-9)
}

func TestSimilarity_EmptyIsZero(t *testing.T) {
	assert.Zero(t, Similarity("", "anything"))
	assert.Zero(t, Similarity("anything", ""))
	assert.Zero(t, Similarity("", ""))
}

func TestSimilarity_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"analyze the financial report", "analyze the report"},
		{"completely unrelated words here", "different text entirely now"},
		{"one", "two"},
	}
	for _, p := range pairs {
		sim := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, sim, 0.0)
		assert.LessOrEqual(t, sim, 1.0)
	}
}

func TestSimilarity_IdentityNearOne(t *testing.T) {
	texts := []string{
		"Analyze the following text and summarize it.",
		"Write a report. Include revenue figures and a forecast.",
		"the of and", // all stop words: exercises the Jaccard fallback
	}
	for _, text := range texts {
		assert.GreaterOrEqual(t, Similarity(text, text), 0.95, "text: %q", text)
	}
}

func TestSimilarity_SharedContentScoresHigherThanUnrelated(t *testing.T) {
	original := "Analyze the quarterly sales data and produce a summary."
	close := "Analyze the quarterly sales data, produce a summary."
	unrelated := "Bake the cake at two hundred degrees until golden."

	assert.Greater(t, Similarity(original, close), Similarity(original, unrelated))
}

func TestAnalyzeContent(t *testing.T) {
	text := "The system processes records. However, the system validates records first. Therefore, throughput depends on validation."
	analysis := AnalyzeContent(text)

	assert.Greater(t, analysis.Density, 0.0)
	assert.LessOrEqual(t, analysis.Density, 1.0)
	assert.Greater(t, analysis.Coherence, 0.0, "connectives should register")
	assert.Greater(t, analysis.Complexity, 0.0)
	assert.NotEmpty(t, analysis.KeyTerms)
}

func TestAnalyzeContent_SingleSentenceCoherence(t *testing.T) {
	assert.InDelta(t, 1.0, AnalyzeContent("One sentence without a period").Coherence, 1e-9)
}

func TestKeyTerms(t *testing.T) {
	text := "database migration requires schema validation; database migration requires downtime planning"
	got := KeyTerms(text, 5)

	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 5)
	// The most repeated terms should rank first.
	assert.Contains(t, []string{"database", "migration", "requires", "database migration", "migration requires"}, got[0])
}

func TestKeyTerms_Fallback(t *testing.T) {
	// Single-character words yield no tf-idf features.
	got := KeyTerms("a b c", 5)
	assert.NotEmpty(t, got)
}
