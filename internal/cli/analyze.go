package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HartBrook/muntjac/internal/metrics"
	"github.com/HartBrook/muntjac/internal/model"
)

type analyzeOptions struct {
	prompt  string
	input   string
	model   string
	jsonOut bool
}

// analysisReport is the JSON shape of the analyze command.
type analysisReport struct {
	Model              string                   `json:"model"`
	Tokens             metrics.TokenAnalysis    `json:"tokens"`
	Content            metrics.SemanticAnalysis `json:"content"`
	ReductionPotential float64                  `json:"reduction_potential"`
	Advice             model.Advice             `json:"advice"`
}

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [prompt]",
		Short: "Inspect a prompt's token footprint without changing it",
		Long: `Analyzes a prompt and reports token statistics, content metrics,
estimated reduction potential, and model-specific suggestions. The
prompt is never modified.`,
		Example: `  muntjac analyze "Explain the architecture of this service"
  muntjac analyze -i prompt.txt --model gpt-4
  cat prompt.txt | muntjac analyze --json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.prompt, "prompt", "p", "", "Prompt text to analyze")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Read the prompt from a file")
	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "Model profile for token counts and costs")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Output the analysis as JSON")

	return cmd
}

func runAnalyze(opts *analyzeOptions, args []string) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}

	text, err := readTextInput(opts.prompt, opts.input, args)
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

	report := analysisReport{
		Model:              adapter.Profile().Name,
		Tokens:             metrics.AnalyzeTokens(text),
		Content:            metrics.AnalyzeContent(text),
		ReductionPotential: metrics.ReductionPotential(text),
		Advice:             adapter.Suggest(text),
	}
	// The full frequency map is too noisy for a report.
	report.Tokens.Frequency = nil

	if opts.jsonOut {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(info("Tokens"))
	printInfo("model", report.Model)
	printInfo("count", fmt.Sprintf("%d", report.Advice.CurrentTokens))
	printInfo("context usage", fmt.Sprintf("%.1f%%", report.Advice.ContextUsage*100))
	printInfo("estimated cost", fmt.Sprintf("$%.6f per call", report.Advice.EstimatedCost))
	printInfo("words", fmt.Sprintf("%d (%d unique)", report.Tokens.TotalTokens, report.Tokens.UniqueTokens))
	printInfo("redundancy", fmt.Sprintf("%.2f", report.Tokens.Redundancy))

	fmt.Println()
	fmt.Println(info("Content"))
	printInfo("density", fmt.Sprintf("%.2f", report.Content.Density))
	printInfo("coherence", fmt.Sprintf("%.2f", report.Content.Coherence))
	printInfo("complexity", fmt.Sprintf("%.2f", report.Content.Complexity))
	if len(report.Content.KeyTerms) > 0 {
		printInfo("key terms", strings.Join(report.Content.KeyTerms, ", "))
	}
	printInfo("reduction potential", fmt.Sprintf("%.0f%%", report.ReductionPotential*100))

	if len(report.Advice.Suggestions) > 0 {
		fmt.Println()
		fmt.Println(info("Suggestions"))
		for _, s := range report.Advice.Suggestions {
			icon := warningIcon
			if s.Severity == "low" {
				icon = successIcon
			}
			fmt.Printf("  %s %s\n", icon, s.Message)
		}
	}
	return nil
}
