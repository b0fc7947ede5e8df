// Package strategy implements pluggable prompt transformers. Each
// strategy is stateless after construction: it holds only its Config
// and precomputed lookup tables, so one instance can serve concurrent
// optimize calls.
package strategy

import (
	"regexp"
	"strings"

	"github.com/HartBrook/muntjac/internal/errors"
)

// Config holds immutable per-strategy settings. Replace, don't mutate.
type Config struct {
	Aggressive        bool
	PreserveStructure bool
	// TargetReduction is the desired reduction fraction (0.0-1.0); nil
	// means no target.
	TargetReduction *float64
	// Params carries strategy-specific parameters, e.g.
	// "context_patterns" ([]string) to override the contextual guard.
	Params map[string]any
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{PreserveStructure: true}
}

// Metadata describes a strategy for reporting.
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Config      Config `json:"config"`
}

// Strategy is a stateless transformer over prompt text.
type Strategy interface {
	Name() string
	// Apply transforms the text. Fails with a typed invalid-input error
	// when the text is empty after trimming.
	Apply(text string) (string, error)
	// EstimateReduction predicts the obtainable reduction fraction. It
	// is a prediction, not a guarantee; structural reorganization may
	// predict a negative value because it sometimes adds scaffolding.
	EstimateReduction(text string) float64
	// CanApply is a cheap pre-check; false whenever EstimateReduction
	// would be ~0.
	CanApply(text string) bool
	Metadata() Metadata
}

// Canonical strategy names, also accepted (with short aliases) by ForNames.
const (
	NameSemanticCompression    = "semantic_compression"
	NameTokenReduction         = "token_reduction"
	NameStructuralOptimization = "structural_optimization"
)

// All returns the default pipeline: semantic compression, token
// reduction, then structural optimization.
func All(cfg Config) []Strategy {
	return []Strategy{
		NewSemanticCompression(cfg),
		NewTokenReduction(cfg),
		NewStructural(cfg),
	}
}

// ForNames resolves strategy names (canonical or the short aliases
// semantic/token/structural) to instances. "all" selects every
// strategy. Unknown names are reported as invalid input.
func ForNames(names []string, cfg Config) ([]Strategy, error) {
	var out []Strategy
	for _, name := range names {
		switch name {
		case "all":
			return All(cfg), nil
		case "semantic", NameSemanticCompression:
			out = append(out, NewSemanticCompression(cfg))
		case "token", NameTokenReduction:
			out = append(out, NewTokenReduction(cfg))
		case "structural", NameStructuralOptimization:
			out = append(out, NewStructural(cfg))
		default:
			return nil, errors.New(errors.ErrInvalidInput,
				"unknown strategy: "+name,
				"Valid strategies: semantic, token, structural, all")
		}
	}
	return out, nil
}

func validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.InvalidInput("text is empty")
	}
	return nil
}

// guardPatterns returns the contextual-importance patterns for a
// config, honoring the "context_patterns" override.
func guardPatterns(cfg Config) []*regexp.Regexp {
	raw, ok := cfg.Params["context_patterns"]
	if !ok {
		return defaultGuardPatterns
	}
	patterns, ok := raw.([]string)
	if !ok {
		return defaultGuardPatterns
	}

	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue // a bad override pattern is skipped, not fatal
		}
		out = append(out, re)
	}
	return out
}

// boolParam reads a toggle from Params, defaulting to on.
func boolParam(cfg Config, key string) bool {
	raw, ok := cfg.Params[key]
	if !ok {
		return true
	}
	b, ok := raw.(bool)
	if !ok {
		return true
	}
	return b
}

var stripWordPattern = regexp.MustCompile(`[^\p{L}\p{N}]`)

// coreWord lower-cases a token and strips everything but letters and
// digits, for table lookups.
func coreWord(word string) string {
	return stripWordPattern.ReplaceAllString(strings.ToLower(word), "")
}
