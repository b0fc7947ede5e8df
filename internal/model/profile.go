// Package model provides per-model token counting and cost accounting.
package model

import "sort"

// Profile holds the static constants for one model: context window,
// pricing per 1K tokens, and the tokenizer it uses.
type Profile struct {
	Name             string
	MaxContextTokens int
	InputCostPer1K   float64
	OutputCostPer1K  float64
	Tokenizer        string // tiktoken encoding id; empty when no public tokenizer exists
	SpecialTokens    map[string]string
}

// Cost returns the USD cost for the given input and output token counts.
func (p Profile) Cost(inputTokens, outputTokens int) float64 {
	inputCost := float64(inputTokens) / 1000 * p.InputCostPer1K
	outputCost := float64(outputTokens) / 1000 * p.OutputCostPer1K
	return inputCost + outputCost
}

// CostReduction returns the USD saving for a reduction in input tokens.
func (p Profile) CostReduction(tokenDelta int) float64 {
	return float64(tokenDelta) * p.InputCostPer1K / 1000
}

// Family default model names, used when a model name is not in the catalog.
const (
	DefaultOpenAIModel = "gpt-3.5-turbo"
	DefaultClaudeModel = "claude-3-sonnet"
)

// catalog is the static table of supported models. Built once, never mutated.
var catalog = map[string]Profile{
	"gpt-3.5-turbo": {
		Name:             "gpt-3.5-turbo",
		MaxContextTokens: 4096,
		InputCostPer1K:   0.0015,
		OutputCostPer1K:  0.002,
		Tokenizer:        "cl100k_base",
	},
	"gpt-3.5-turbo-16k": {
		Name:             "gpt-3.5-turbo-16k",
		MaxContextTokens: 16384,
		InputCostPer1K:   0.003,
		OutputCostPer1K:  0.004,
		Tokenizer:        "cl100k_base",
	},
	"gpt-4": {
		Name:             "gpt-4",
		MaxContextTokens: 8192,
		InputCostPer1K:   0.03,
		OutputCostPer1K:  0.06,
		Tokenizer:        "cl100k_base",
	},
	"gpt-4-turbo": {
		Name:             "gpt-4-turbo",
		MaxContextTokens: 128000,
		InputCostPer1K:   0.01,
		OutputCostPer1K:  0.03,
		Tokenizer:        "cl100k_base",
	},
	"gpt-4o": {
		Name:             "gpt-4o",
		MaxContextTokens: 128000,
		InputCostPer1K:   0.005,
		OutputCostPer1K:  0.015,
		Tokenizer:        "cl100k_base",
	},
	"claude-2": {
		Name:             "claude-2",
		MaxContextTokens: 100000,
		InputCostPer1K:   0.008,
		OutputCostPer1K:  0.024,
	},
	"claude-2.1": {
		Name:             "claude-2.1",
		MaxContextTokens: 200000,
		InputCostPer1K:   0.008,
		OutputCostPer1K:  0.024,
	},
	"claude-3-haiku": {
		Name:             "claude-3-haiku",
		MaxContextTokens: 200000,
		InputCostPer1K:   0.00025,
		OutputCostPer1K:  0.00125,
	},
	"claude-3-sonnet": {
		Name:             "claude-3-sonnet",
		MaxContextTokens: 200000,
		InputCostPer1K:   0.003,
		OutputCostPer1K:  0.015,
	},
	"claude-3-opus": {
		Name:             "claude-3-opus",
		MaxContextTokens: 200000,
		InputCostPer1K:   0.015,
		OutputCostPer1K:  0.075,
	},
	"claude-3.5-sonnet": {
		Name:             "claude-3.5-sonnet",
		MaxContextTokens: 200000,
		InputCostPer1K:   0.003,
		OutputCostPer1K:  0.015,
	},
}

// LookupProfile returns the profile for name, falling back to the named
// default when the model is not in the catalog.
func LookupProfile(name, fallback string) Profile {
	if p, ok := catalog[name]; ok {
		return p
	}
	return catalog[fallback]
}

// Profiles returns all catalog entries sorted by name.
func Profiles() []Profile {
	profiles := make([]Profile, 0, len(catalog))
	for _, p := range catalog {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
	return profiles
}
