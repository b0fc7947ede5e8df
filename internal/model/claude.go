package model

import "strings"

// Claude is the adapter for the Anthropic family. There is no public
// Claude tokenizer, so counting always uses the heuristic estimator
// with Claude-specific correction weights.
type Claude struct {
	profile Profile
}

// NewClaude creates an adapter for a Claude model, falling back to the
// claude-3-sonnet profile for unknown names.
func NewClaude(name string) *Claude {
	return &Claude{profile: LookupProfile(name, DefaultClaudeModel)}
}

func (a *Claude) Profile() Profile { return a.profile }

func (a *Claude) CountTokens(text string) int {
	text = cleanForTokenization(text)
	if text == "" {
		return 0
	}
	return estimateTokens(text, claudeWeights)
}

func (a *Claude) Cost(inputTokens, outputTokens int) float64 {
	return a.profile.Cost(inputTokens, outputTokens)
}

func (a *Claude) CostReduction(tokenDelta int) float64 {
	return a.profile.CostReduction(tokenDelta)
}

func (a *Claude) ContextUsage(text string) float64 { return contextUsage(a, text) }

func (a *Claude) FitsInContext(text string, reserveTokens int) bool {
	return fitsInContext(a, text, reserveTokens)
}

func (a *Claude) Suggest(text string) Advice {
	advice := suggest(a, text)

	if advice.CurrentTokens > 150000 {
		advice.Suggestions = append(advice.Suggestions, Suggestion{
			Type:     "context_warning",
			Message:  "very long prompt; Claude supports 200K tokens but shorter prompts perform better",
			Severity: "medium",
		})
	}

	// Claude responds well to XML-tagged structure on multi-section prompts.
	if len(strings.Split(text, "\n\n")) > 3 && !markupTagPattern.MatchString(text) {
		advice.Suggestions = append(advice.Suggestions, Suggestion{
			Type:     "format_optimization",
			Message:  "consider XML tags such as <context> and <instruction> to structure the prompt",
			Severity: "low",
		})
	}

	if a.profile.Name == "claude-3-opus" && advice.CurrentTokens < 10000 {
		advice.Suggestions = append(advice.Suggestions, Suggestion{
			Type:     "cost_optimization",
			Message:  "short prompt on an expensive model; claude-3-sonnet or haiku would cost far less",
			Severity: "medium",
		})
	}

	return advice
}
