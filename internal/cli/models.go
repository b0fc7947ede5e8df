package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HartBrook/muntjac/internal/model"
)

// NewModelsCmd creates the models command.
func NewModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List supported model profiles",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%-18s %12s %14s %14s  %s\n",
				"MODEL", "CONTEXT", "INPUT $/1K", "OUTPUT $/1K", "TOKENIZER")
			for _, p := range model.Profiles() {
				tokenizer := p.Tokenizer
				if tokenizer == "" {
					tokenizer = dim("heuristic")
				}
				fmt.Printf("%-18s %12d %14.5f %14.5f  %s\n",
					p.Name, p.MaxContextTokens, p.InputCostPer1K, p.OutputCostPer1K, tokenizer)
			}
			fmt.Println()
			fmt.Printf("Unlisted gpt-* and claude-* versions fall back to %s and %s.\n",
				info(model.DefaultOpenAIModel), info(model.DefaultClaudeModel))
		},
	}
}
