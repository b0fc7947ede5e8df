package model

import (
	"log"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// OpenAI is the adapter for the GPT family. It counts tokens with the
// model's tiktoken encoding when available and degrades to the heuristic
// estimator when the encoding cannot be loaded. The fallback changes
// accuracy, never correctness; callers must tolerate the variance.
type OpenAI struct {
	profile Profile
	enc     *tiktoken.Tiktoken // nil when the encoding could not be loaded
}

// NewOpenAI creates an adapter for an OpenAI model, falling back to the
// gpt-3.5-turbo profile for unknown names.
func NewOpenAI(name string) *OpenAI {
	profile := LookupProfile(name, DefaultOpenAIModel)

	encoding := profile.Tokenizer
	if encoding == "" {
		encoding = "cl100k_base"
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		// Degraded accuracy, not an error.
		log.Printf("debug: tiktoken encoding %s unavailable, using heuristic estimates: %v", encoding, err)
		enc = nil
	}

	return &OpenAI{profile: profile, enc: enc}
}

func (a *OpenAI) Profile() Profile { return a.profile }

func (a *OpenAI) CountTokens(text string) int {
	text = cleanForTokenization(text)
	if text == "" {
		return 0
	}
	if a.enc != nil {
		return len(a.enc.Encode(text, nil, nil))
	}
	return estimateTokens(text, openAIWeights)
}

func (a *OpenAI) Cost(inputTokens, outputTokens int) float64 {
	return a.profile.Cost(inputTokens, outputTokens)
}

func (a *OpenAI) CostReduction(tokenDelta int) float64 {
	return a.profile.CostReduction(tokenDelta)
}

func (a *OpenAI) ContextUsage(text string) float64 { return contextUsage(a, text) }

func (a *OpenAI) FitsInContext(text string, reserveTokens int) bool {
	return fitsInContext(a, text, reserveTokens)
}

func (a *OpenAI) Suggest(text string) Advice {
	advice := suggest(a, text)

	// Context pressure hints for the small-window models.
	if a.profile.Name == "gpt-4" && advice.CurrentTokens > 6000 {
		advice.Suggestions = append(advice.Suggestions, Suggestion{
			Type:     "context_warning",
			Message:  "prompt is close to gpt-4's 8K window; consider gpt-4-turbo for long prompts",
			Severity: "medium",
		})
	}
	if a.profile.Name == "gpt-3.5-turbo" && advice.CurrentTokens > 3000 {
		advice.Suggestions = append(advice.Suggestions, Suggestion{
			Type:     "context_warning",
			Message:  "prompt is close to gpt-3.5-turbo's 4K window; consider the 16k variant",
			Severity: "medium",
		})
	}

	return advice
}
