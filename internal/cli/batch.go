package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HartBrook/muntjac/internal/errors"
	"github.com/HartBrook/muntjac/internal/model"
	"github.com/HartBrook/muntjac/internal/optimizer"
)

// batchSeparator splits prompts inside a batch file.
const batchSeparator = "---"

type batchOptions struct {
	input      string
	output     string
	model      string
	strategies []string
	threshold  float64
	aggressive bool
	jsonOut    bool
}

// NewBatchCmd creates the batch command.
func NewBatchCmd() *cobra.Command {
	opts := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Optimize several prompts in one run",
		Long: `Reads a batch file and optimizes every prompt in it with the same
settings. The file is either a JSON array of prompt strings or plain
text with prompts separated by a line containing only "---".

Results keep the input order. Use --output to save the full results as
JSON for further processing.`,
		Example: `  muntjac batch -i prompts.txt
  muntjac batch -i prompts.json -o results.json
  muntjac batch -i prompts.txt --model claude-3-haiku --aggressive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Batch file: JSON array or prompts separated by --- lines (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write results as JSON to a file")
	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "Model profile for token counts and costs")
	cmd.Flags().StringSliceVarP(&opts.strategies, "strategies", "s", nil, "Strategies to run: semantic, token, structural, all")
	cmd.Flags().Float64Var(&opts.threshold, "threshold", 0, "Minimum similarity to each original prompt (0-1)")
	cmd.Flags().BoolVar(&opts.aggressive, "aggressive", false, "Enable lossier transforms")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Output results as JSON to stdout")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runBatch(ctx context.Context, opts *batchOptions) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(opts.input)
	if err != nil {
		return errors.Wrap(errors.ErrBatchInvalid,
			"failed to read batch file", "Check that the file exists and is readable", err)
	}
	prompts, err := parseBatch(data)
	if err != nil {
		return err
	}
	if len(prompts) == 0 {
		return errors.BatchInvalid("batch file contains no prompts", nil)
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

	o := optimizer.New(adapter, threshold)
	results, err := o.BatchOptimize(ctx, prompts, optimizer.Options{
		Strategies:        strategies,
		Aggressive:        opts.aggressive || cfg.Optimize.Aggressive,
		PreserveStructure: cfg.Optimize.StructurePreserved(),
		TargetReduction:   cfg.Optimize.TargetReduction,
	})
	if err != nil {
		return err
	}

	if opts.jsonOut {
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	totalBefore, totalAfter := 0, 0
	totalCost := 0.0
	for i, res := range results {
		original := res.Metadata["original_tokens"].(int)
		optimized := res.Metadata["optimized_tokens"].(int)
		totalBefore += original
		totalAfter += optimized
		totalCost += res.CostReduction

		label := fmt.Sprintf("prompt %d", i+1)
		if res.TokenReduction > 0 {
			fmt.Printf("%s %s: %d → %d tokens (similarity %.3f)\n",
				successIcon, label, original, optimized, res.SemanticSimilarity)
		} else {
			fmt.Printf("%s %s: no reduction\n", warningIcon, label)
		}
	}

	fmt.Println()
	if totalBefore > 0 {
		saved := float64(totalBefore-totalAfter) / float64(totalBefore) * 100
		printSuccess("total: %d → %d tokens (%.1f%% saved)", totalBefore, totalAfter, saved)
	}
	if totalCost > 0 {
		printInfo("cost saved", fmt.Sprintf("$%.6f per batch", totalCost))
	}

	if opts.output != "" {
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.output, out, 0644); err != nil {
			return err
		}
		printSuccess("results written to %s", opts.output)
	}
	return nil
}

// parseBatch accepts either a JSON array of prompt strings or plain
// text with prompts separated by --- lines.
func parseBatch(data []byte) ([]string, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var prompts []string
		if err := json.Unmarshal([]byte(trimmed), &prompts); err != nil {
			return nil, errors.BatchInvalid("malformed JSON array", err)
		}
		return prompts, nil
	}
	return splitBatch(trimmed), nil
}

// splitBatch parses a plain-text batch file into individual prompts.
func splitBatch(data string) []string {
	var prompts []string
	var current []string

	flush := func() {
		text := strings.TrimSpace(strings.Join(current, "\n"))
		if text != "" {
			prompts = append(prompts, text)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) == batchSeparator {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return prompts
}
