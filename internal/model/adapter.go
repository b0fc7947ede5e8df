package model

import (
	"fmt"
	"strings"

	"github.com/HartBrook/muntjac/internal/errors"
)

// Adapter supplies model-specific token accounting and cost figures.
// Implementations are stateless after construction and safe to share
// across concurrent calls.
type Adapter interface {
	Profile() Profile
	// CountTokens returns a non-negative token count; >= 1 for non-empty text.
	CountTokens(text string) int
	Cost(inputTokens, outputTokens int) float64
	CostReduction(tokenDelta int) float64
	// ContextUsage returns the fraction of the context window text occupies.
	ContextUsage(text string) float64
	FitsInContext(text string, reserveTokens int) bool
	// Suggest returns non-authoritative advice; it never blocks the pipeline.
	Suggest(text string) Advice
}

// Suggestion is a single piece of optimization advice.
type Suggestion struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Advice summarizes a prompt's token footprint with optional suggestions.
type Advice struct {
	CurrentTokens int          `json:"current_tokens"`
	ContextUsage  float64      `json:"context_usage"`
	EstimatedCost float64      `json:"estimated_cost"`
	Suggestions   []Suggestion `json:"suggestions"`
}

// ForModel returns the adapter for a model name, chosen by family prefix.
func ForModel(name string) (Adapter, error) {
	switch {
	case strings.HasPrefix(name, "gpt"):
		return NewOpenAI(name), nil
	case strings.HasPrefix(name, "claude"):
		return NewClaude(name), nil
	default:
		return nil, errors.UnknownModel(name)
	}
}

func contextUsage(a Adapter, text string) float64 {
	return float64(a.CountTokens(text)) / float64(a.Profile().MaxContextTokens)
}

func fitsInContext(a Adapter, text string, reserveTokens int) bool {
	return a.CountTokens(text)+reserveTokens <= a.Profile().MaxContextTokens
}

// suggest builds the family-independent advice: a context warning above
// 80% usage and a cost warning above one cent.
func suggest(a Adapter, text string) Advice {
	tokens := a.CountTokens(text)
	usage := a.ContextUsage(text)
	cost := a.Cost(tokens, 0)

	advice := Advice{
		CurrentTokens: tokens,
		ContextUsage:  usage,
		EstimatedCost: cost,
	}

	if usage > 0.8 {
		advice.Suggestions = append(advice.Suggestions, Suggestion{
			Type:     "context_warning",
			Message:  "prompt uses more than 80% of the available context window",
			Severity: "high",
		})
	}

	if cost > 0.01 {
		advice.Suggestions = append(advice.Suggestions, Suggestion{
			Type:     "cost_optimization",
			Message:  fmt.Sprintf("estimated cost $%.4f; consider optimizing to reduce spend", cost),
			Severity: "medium",
		})
	}

	return advice
}
