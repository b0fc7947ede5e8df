// Package optimizer coordinates strategies against a semantic gate:
// every candidate transformation is compared to the ORIGINAL prompt,
// not the previous round, so drift cannot accumulate across strategies.
package optimizer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/HartBrook/muntjac/internal/errors"
	"github.com/HartBrook/muntjac/internal/metrics"
	"github.com/HartBrook/muntjac/internal/model"
	"github.com/HartBrook/muntjac/internal/strategy"
)

// DefaultSimilarityThreshold is the minimum similarity to the original
// prompt a candidate must keep to be accepted.
const DefaultSimilarityThreshold = 0.85

// Options controls a single optimization run.
type Options struct {
	Strategies        []string // Strategy names/aliases (nil = full pipeline, empty = none)
	TargetReduction   float64  // Stop once this reduction fraction is reached (0 = keep going)
	Aggressive        bool     // Enable lossier transforms
	PreserveStructure bool     // Keep paragraph and line structure
	Params            map[string]any
}

// Result describes the outcome of one optimization run.
type Result struct {
	OriginalPrompt     string         `json:"original_prompt"`
	OptimizedPrompt    string         `json:"optimized_prompt"`
	TokenReduction     int            `json:"token_reduction"`
	SemanticSimilarity float64        `json:"semantic_similarity"`
	CostReduction      float64        `json:"cost_reduction"`
	Duration           time.Duration  `json:"duration"`
	StrategiesUsed     []string       `json:"strategies_used"`
	Metadata           map[string]any `json:"metadata"`
}

// Optimizer runs the propose/validate/accept loop.
type Optimizer struct {
	adapter   model.Adapter // nil means word-count estimates and no cost figures
	threshold float64
}

// New creates an optimizer. A nil adapter is allowed: token counts fall
// back to whitespace word counts and cost reduction is reported as
// zero. A non-positive threshold selects the default.
func New(adapter model.Adapter, threshold float64) *Optimizer {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	return &Optimizer{adapter: adapter, threshold: threshold}
}

// Threshold returns the active similarity threshold.
func (o *Optimizer) Threshold() float64 { return o.threshold }

// Optimize runs the selected strategies over the prompt. Each strategy
// proposes a rewrite of the current text; the rewrite is accepted only
// if it still reads like the original prompt. A strategy that errors
// is logged and skipped, never fatal.
func (o *Optimizer) Optimize(ctx context.Context, prompt string, opts Options) (*Result, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, errors.InvalidInput("prompt is empty")
	}

	strategies, err := o.buildStrategies(opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	originalTokens := o.countTokens(prompt)

	current := prompt
	var used []string
	for _, s := range strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !s.CanApply(current) {
			continue
		}

		candidate, err := applyStrategy(s, current)
		if err != nil {
			log.Printf("debug: strategy %s failed: %v", s.Name(), err)
			continue
		}
		if candidate == current {
			continue
		}

		// Gate against the original, not the previous round.
		similarity := metrics.Similarity(prompt, candidate)
		if similarity < o.threshold {
			log.Printf("debug: strategy %s rejected: similarity %.3f below %.3f",
				s.Name(), similarity, o.threshold)
			continue
		}

		current = candidate
		used = append(used, s.Name())

		if opts.TargetReduction > 0 && o.reduction(originalTokens, current) >= opts.TargetReduction {
			break
		}
	}

	optimizedTokens := o.countTokens(current)
	result := &Result{
		OriginalPrompt:     prompt,
		OptimizedPrompt:    current,
		TokenReduction:     originalTokens - optimizedTokens,
		SemanticSimilarity: metrics.Similarity(prompt, current),
		Duration:           time.Since(start),
		StrategiesUsed:     used,
		Metadata: map[string]any{
			"original_tokens":  originalTokens,
			"optimized_tokens": optimizedTokens,
			"reduction":        o.reduction(originalTokens, current),
		},
	}
	if o.adapter != nil {
		result.CostReduction = o.adapter.CostReduction(result.TokenReduction)
	}
	return result, nil
}

// BatchOptimize runs every prompt with the same options. Prompt order
// is preserved in the results.
func (o *Optimizer) BatchOptimize(ctx context.Context, prompts []string, opts Options) ([]*Result, error) {
	if len(prompts) == 0 {
		return nil, errors.BatchInvalid("no prompts to optimize", nil)
	}

	results := make([]*Result, 0, len(prompts))
	for i, p := range prompts {
		res, err := o.Optimize(ctx, p, opts)
		if err != nil {
			return nil, errors.Wrap(errors.ErrBatchInvalid,
				fmt.Sprintf("prompt %d of %d failed", i+1, len(prompts)), "", err)
		}
		results = append(results, res)
	}
	return results, nil
}

// applyStrategy runs a single strategy, converting a panic into an
// error so one misbehaving strategy cannot take down the whole run.
func applyStrategy(s strategy.Strategy, text string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = fmt.Errorf("strategy %s panicked: %v", s.Name(), r)
		}
	}()
	return s.Apply(text)
}

func (o *Optimizer) buildStrategies(opts Options) ([]strategy.Strategy, error) {
	cfg := strategy.Config{
		Aggressive:        opts.Aggressive,
		PreserveStructure: opts.PreserveStructure,
		Params:            opts.Params,
	}
	if opts.TargetReduction > 0 {
		target := opts.TargetReduction
		cfg.TargetReduction = &target
	}
	// nil selects the full pipeline; an explicitly empty list runs no
	// strategies and returns the prompt unchanged.
	if opts.Strategies == nil {
		return strategy.All(cfg), nil
	}
	return strategy.ForNames(opts.Strategies, cfg)
}

func (o *Optimizer) countTokens(text string) int {
	if o.adapter != nil {
		return o.adapter.CountTokens(text)
	}
	return len(strings.Fields(text))
}

func (o *Optimizer) reduction(originalTokens int, current string) float64 {
	if originalTokens == 0 {
		return 0
	}
	return float64(originalTokens-o.countTokens(current)) / float64(originalTokens)
}
