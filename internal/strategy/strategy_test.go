package strategy

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HartBrook/muntjac/internal/errors"
)

func TestForNames(t *testing.T) {
	tests := []struct {
		name      string
		input     []string
		wantNames []string
	}{
		{
			name:      "short alias",
			input:     []string{"semantic"},
			wantNames: []string{NameSemanticCompression},
		},
		{
			name:      "canonical names",
			input:     []string{NameTokenReduction, NameStructuralOptimization},
			wantNames: []string{NameTokenReduction, NameStructuralOptimization},
		},
		{
			name:      "all expands to full pipeline",
			input:     []string{"all"},
			wantNames: []string{NameSemanticCompression, NameTokenReduction, NameStructuralOptimization},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ForNames(tt.input, DefaultConfig())
			require.NoError(t, err)
			require.Len(t, got, len(tt.wantNames))
			for i, s := range got {
				assert.Equal(t, tt.wantNames[i], s.Name())
			}
		})
	}
}

func TestForNames_Unknown(t *testing.T) {
	_, err := ForNames([]string{"bogus"}, DefaultConfig())
	require.Error(t, err)

	var merr *errors.MuntjacError
	require.True(t, stderrors.As(err, &merr))
	assert.Equal(t, errors.ErrInvalidInput, merr.Code)
}

func TestStrategies_RejectEmptyText(t *testing.T) {
	for _, s := range All(DefaultConfig()) {
		_, err := s.Apply("   ")
		assert.Error(t, err, s.Name())
	}
}

func TestSemanticCompression_RemovesFillers(t *testing.T) {
	s := NewSemanticCompression(DefaultConfig())

	got, err := s.Apply("This is a really great task.")
	require.NoError(t, err)
	assert.Equal(t, "This is a great task.", got)
}

func TestSemanticCompression_GuardKeepsMeaningfulFiller(t *testing.T) {
	s := NewSemanticCompression(DefaultConfig())

	got, err := s.Apply("This is very important for the task.")
	require.NoError(t, err)
	assert.Contains(t, got, "very important")
}

func TestSemanticCompression_KeepsEdgeFillers(t *testing.T) {
	s := NewSemanticCompression(DefaultConfig())

	got, err := s.Apply("Really finish the task and tell me how it went really")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "Really"))
	assert.True(t, strings.HasSuffix(got, "really"))
}

func TestSemanticCompression_CollapsesRedundantPhrases(t *testing.T) {
	s := NewSemanticCompression(DefaultConfig())

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "in order to",
			input: "Use caching in order to reduce latency.",
			want:  "Use caching to reduce latency.",
		},
		{
			name:  "hedge removed entirely",
			input: "Please note that the build is slow.",
			want:  "the build is slow.",
		},
		{
			name:  "italian",
			input: "Aggiungi un indice al fine di velocizzare la query.",
			want:  "Aggiungi un indice per velocizzare la query.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Apply(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSemanticCompression_DropsDuplicateSentences(t *testing.T) {
	s := NewSemanticCompression(DefaultConfig())

	got, err := s.Apply("Write a summary of the report. Write a summary of the report. Keep it short.")
	require.NoError(t, err)
	assert.Equal(t, "Write a summary of the report. Keep it short.", got)
}

func TestSemanticCompression_Estimate(t *testing.T) {
	s := NewSemanticCompression(DefaultConfig())

	verbose := "This is really very basically quite actually just something we definitely certainly need"
	terse := "Compute the sum"

	ev, et := s.EstimateReduction(verbose), s.EstimateReduction(terse)
	assert.Greater(t, ev, et)
	assert.LessOrEqual(t, ev, 0.4)
	assert.GreaterOrEqual(t, et, 0.0)
}

func TestSemanticCompression_EstimateTracksRedundancy(t *testing.T) {
	s := NewSemanticCompression(DefaultConfig())

	once := "Review the quarterly data carefully before the meeting."
	thrice := strings.TrimSpace(strings.Repeat(once+" ", 3))

	// Repeating the same sentence raises lexical redundancy, so the
	// estimate must rise with it even though no filler words appear.
	assert.Greater(t, s.EstimateReduction(thrice), s.EstimateReduction(once))
}

func TestSemanticCompression_CanApply(t *testing.T) {
	s := NewSemanticCompression(DefaultConfig())

	assert.False(t, s.CanApply("too short"))
	assert.True(t, s.CanApply("This is really quite a very long and truly verbose prompt that basically repeats itself."))
}

func TestTokenReduction_Abbreviations(t *testing.T) {
	s := NewTokenReduction(DefaultConfig())

	got, err := s.Apply("Read the documentation for more information.")
	require.NoError(t, err)
	assert.Equal(t, "Read the docs for more info.", got)
}

func TestTokenReduction_Contractions(t *testing.T) {
	s := NewTokenReduction(DefaultConfig())

	got, err := s.Apply("Do not use global variables.")
	require.NoError(t, err)
	assert.Equal(t, "don't use global variables.", got)
}

func TestTokenReduction_SymbolsAndNumbers(t *testing.T) {
	s := NewTokenReduction(DefaultConfig())

	got, err := s.Apply("The value must be greater than zero.")
	require.NoError(t, err)
	assert.Equal(t, "The value must be > 0.", got)
}

func TestTokenReduction_CompactsDates(t *testing.T) {
	s := NewTokenReduction(DefaultConfig())

	got, err := s.Apply("Ship it by January 15, 2024.")
	require.NoError(t, err)
	assert.Equal(t, "Ship it by 1/15/2024.", got)
}

func TestTokenReduction_AggressiveRemovesGlueWords(t *testing.T) {
	s := NewTokenReduction(Config{Aggressive: true, PreserveStructure: true})

	got, err := s.Apply("Review the code and fix the bugs.")
	require.NoError(t, err)
	assert.Equal(t, "Review code fix bugs.", got)
}

func TestTokenReduction_EssentialWordsSurvive(t *testing.T) {
	s := NewTokenReduction(Config{Aggressive: true, PreserveStructure: true})

	got, err := s.Apply("Choose the best option from the list.")
	require.NoError(t, err)
	assert.Contains(t, got, "the best")
}

func TestTokenReduction_ParamsDisablePasses(t *testing.T) {
	s := NewTokenReduction(Config{
		PreserveStructure: true,
		Params:            map[string]any{"abbreviations": false},
	})

	got, err := s.Apply("Check the information.")
	require.NoError(t, err)
	assert.Equal(t, "Check the information.", got)
}

func TestTokenReduction_EstimateCapped(t *testing.T) {
	s := NewTokenReduction(Config{Aggressive: true})

	glue := strings.TrimSpace(strings.Repeat("the of and in on ", 20))
	est := s.EstimateReduction(glue)
	assert.InDelta(t, 0.35, est, 1e-9)
}

const structuredPrompt = `Background: the scenario involves a legacy billing system.

Please write a migration plan. Please describe the risks.

Do not modify the production database. Avoid breaking changes.

The output format should be a markdown table.`

func TestStructural_AddsSectionHeaders(t *testing.T) {
	s := NewStructural(DefaultConfig())

	got, err := s.Apply(structuredPrompt)
	require.NoError(t, err)

	ctx := strings.Index(got, "Context:")
	ins := strings.Index(got, "Instructions:")
	con := strings.Index(got, "Constraints:")
	fmtIdx := strings.Index(got, "Output Format:")
	require.NotEqual(t, -1, ctx)
	require.NotEqual(t, -1, ins)
	require.NotEqual(t, -1, con)
	require.NotEqual(t, -1, fmtIdx)
	assert.Less(t, ctx, ins)
	assert.Less(t, ins, con)
	assert.Less(t, con, fmtIdx)
	assert.Contains(t, got, "- Do not modify the production database.")
}

func TestStructural_UnclassifiedParagraphTrailsOutput(t *testing.T) {
	s := NewStructural(DefaultConfig())

	got, err := s.Apply(`Background: the scenario involves a legacy billing system.

Shadows lengthen over quiet rooftops.

Do not modify the production database.

The output format should be a markdown table.`)
	require.NoError(t, err)

	other := strings.Index(got, "Other:")
	fmtIdx := strings.Index(got, "Output Format:")
	require.NotEqual(t, -1, other)
	require.NotEqual(t, -1, fmtIdx)
	assert.Greater(t, other, fmtIdx)
	assert.Contains(t, got, "Other:\nShadows lengthen over quiet rooftops.")
	assert.NotContains(t, got, "Instructions:")
}

func TestStructural_DedupesParagraphs(t *testing.T) {
	s := NewStructural(DefaultConfig())

	got, err := s.Apply("Write a summary.\n\nWrite a summary.\n\nAvoid jargon and keep it under one page.")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(got, "Write a summary."))
}

func TestStructural_EstimateCanGoNegative(t *testing.T) {
	s := NewStructural(DefaultConfig())

	// Distinct sections, no duplicates: headers would be added, so the
	// estimate reflects pure overhead.
	est := s.EstimateReduction(structuredPrompt)
	assert.InDelta(t, -0.05, est, 1e-9)
}

func TestStructural_CanApply(t *testing.T) {
	s := NewStructural(DefaultConfig())

	assert.False(t, s.CanApply("short text"))
	assert.True(t, s.CanApply(structuredPrompt))
}
