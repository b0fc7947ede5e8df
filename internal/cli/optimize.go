package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HartBrook/muntjac/internal/model"
	"github.com/HartBrook/muntjac/internal/optimizer"
)

type optimizeOptions struct {
	prompt          string
	input           string
	output          string
	model           string
	strategies      []string
	threshold       float64
	targetReduction float64
	aggressive      bool
	flatten         bool
	stats           bool
	jsonOut         bool
	quiet           bool
}

// NewOptimizeCmd creates the optimize command.
func NewOptimizeCmd() *cobra.Command {
	opts := &optimizeOptions{}

	cmd := &cobra.Command{
		Use:   "optimize [prompt]",
		Short: "Rewrite a prompt to use fewer tokens",
		Long: `Runs the optimization pipeline over a prompt and prints the result.

Each strategy proposes a rewrite; a rewrite is kept only when its
similarity to the ORIGINAL prompt stays above the threshold, so
strategies cannot drift the meaning step by step. Strategies that
cannot improve the prompt are skipped.`,
		Example: `  muntjac optimize "Please note that you really need to review the docs"
  muntjac optimize -i prompt.txt -o optimized.txt
  cat prompt.txt | muntjac optimize --stats
  muntjac optimize -i prompt.txt --model gpt-4 --strategies semantic,token
  muntjac optimize -i prompt.txt --aggressive --target-reduction 0.3
  muntjac optimize -i prompt.txt --json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd.Context(), opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.prompt, "prompt", "p", "", "Prompt text to optimize")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Read the prompt from a file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the optimized prompt to a file")
	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "Model profile for token counts and costs")
	cmd.Flags().StringSliceVarP(&opts.strategies, "strategies", "s", nil, "Strategies to run: semantic, token, structural, all")
	cmd.Flags().Float64Var(&opts.threshold, "threshold", 0, "Minimum similarity to the original prompt (0-1)")
	cmd.Flags().Float64Var(&opts.targetReduction, "target-reduction", 0, "Stop once this reduction fraction is reached")
	cmd.Flags().BoolVar(&opts.aggressive, "aggressive", false, "Enable lossier transforms (article and glue-word removal)")
	cmd.Flags().BoolVar(&opts.flatten, "flatten", false, "Allow restructuring paragraphs and line breaks")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Show token and cost statistics")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Output the full result as JSON")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Print only the optimized prompt")

	return cmd
}

func runOptimize(ctx context.Context, opts *optimizeOptions, args []string) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}

	prompt, err := readTextInput(opts.prompt, opts.input, args)
	if err != nil {
		return err
	}

	modelName := opts.model
	if modelName == "" {
		modelName = cfg.Model
	}
	adapter, err := model.ForModel(modelName)
	if err != nil {
		return err
	}

	threshold := opts.threshold
	if threshold == 0 {
		threshold = cfg.Optimize.SimilarityThreshold
	}

	strategies := opts.strategies
	if len(strategies) == 0 {
		strategies = cfg.Optimize.Strategies
	}
	targetReduction := opts.targetReduction
	if targetReduction == 0 {
		targetReduction = cfg.Optimize.TargetReduction
	}

	o := optimizer.New(adapter, threshold)
	result, err := o.Optimize(ctx, prompt, optimizer.Options{
		Strategies:        strategies,
		TargetReduction:   targetReduction,
		Aggressive:        opts.aggressive || cfg.Optimize.Aggressive,
		PreserveStructure: !opts.flatten && cfg.Optimize.StructurePreserved(),
	})
	if err != nil {
		return err
	}

	if opts.jsonOut {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if opts.quiet {
		return writeOutput(opts.output, result.OptimizedPrompt)
	}

	if opts.output != "" {
		if err := writeOutput(opts.output, result.OptimizedPrompt); err != nil {
			return err
		}
		printSuccess("Optimized prompt written to %s", opts.output)
	} else {
		fmt.Println(result.OptimizedPrompt)
		fmt.Println()
	}

	printResultSummary(result, adapter)
	if opts.stats {
		printResultStats(result)
	}
	return nil
}

func printResultSummary(result *optimizer.Result, adapter model.Adapter) {
	original := result.Metadata["original_tokens"].(int)
	optimized := result.Metadata["optimized_tokens"].(int)
	reduction := result.Metadata["reduction"].(float64)

	if result.TokenReduction > 0 {
		printSuccess("%d → %d tokens (%s saved)",
			original, optimized, success(fmt.Sprintf("%.1f%%", reduction*100)))
	} else {
		printWarning("no token reduction found for this prompt")
	}
	printInfo("model", adapter.Profile().Name)
	printInfo("similarity", fmt.Sprintf("%.3f", result.SemanticSimilarity))
	if result.CostReduction > 0 {
		printInfo("cost saved", fmt.Sprintf("$%.6f per call", result.CostReduction))
	}
}

func printResultStats(result *optimizer.Result) {
	fmt.Println()
	fmt.Println(info("Statistics"))
	printInfo("strategies", fmt.Sprintf("%v", result.StrategiesUsed))
	printInfo("duration", result.Duration.String())
	printInfo("original length", fmt.Sprintf("%d chars", len(result.OriginalPrompt)))
	printInfo("optimized length", fmt.Sprintf("%d chars", len(result.OptimizedPrompt)))
}
