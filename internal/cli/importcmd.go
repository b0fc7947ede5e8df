package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HartBrook/muntjac/internal/github"
	"github.com/HartBrook/muntjac/internal/model"
	"github.com/HartBrook/muntjac/internal/optimizer"
)

type importOptions struct {
	path     string
	branch   string
	output   string
	token    string
	optimize bool
	model    string
}

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <owner/repo>",
		Short: "Fetch a prompt file from a GitHub repository",
		Long: `Fetches a prompt file from GitHub without cloning the repository.
Defaults to the repository README; use --path for any other file.

Authentication comes from the gh CLI when available, so private
repositories work out of the box. Pass --token to override, or run
against public repositories without any auth.`,
		Example: `  muntjac import acme-corp/prompts --path agents/reviewer.md
  muntjac import acme-corp/prompts -o prompt.txt
  muntjac import acme-corp/prompts --optimize --model gpt-4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.path, "path", "", "File path inside the repository (default: README.md)")
	cmd.Flags().StringVar(&opts.branch, "branch", "", "Branch or ref to fetch from (default: the repo's default branch)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the fetched prompt to a file")
	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub token (default: gh CLI auth)")
	cmd.Flags().BoolVar(&opts.optimize, "optimize", false, "Optimize the fetched prompt before writing it")
	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "Model profile used with --optimize")

	return cmd
}

func runImport(ctx context.Context, opts *importOptions, repo string) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}

	var client *github.Client
	if opts.token != "" {
		client, err = github.NewClientWithToken(opts.token)
	} else {
		client, err = github.NewClient()
	}
	if err != nil {
		// go-gh fails without any auth source; public repos still work
		// unauthenticated.
		client, err = github.NewUnauthenticatedClient()
		if err != nil {
			return err
		}
	}

	result, err := client.FetchPrompt(ctx, repo, opts.path, opts.branch)
	if err != nil {
		return err
	}
	printSuccess("fetched %s from %s@%s (%d bytes)", result.Path, repo, result.Branch, len(result.Content))

	content := result.Content
	if opts.optimize {
		modelName := opts.model
		if modelName == "" {
			modelName = cfg.Model
		}
		adapter, err := model.ForModel(modelName)
		if err != nil {
			return err
		}

		o := optimizer.New(adapter, cfg.Optimize.SimilarityThreshold)
		res, err := o.Optimize(ctx, content, optimizer.Options{
			Strategies:        cfg.Optimize.Strategies,
			Aggressive:        cfg.Optimize.Aggressive,
			PreserveStructure: cfg.Optimize.StructurePreserved(),
			TargetReduction:   cfg.Optimize.TargetReduction,
		})
		if err != nil {
			return err
		}
		content = res.OptimizedPrompt
		printResultSummary(res, adapter)
	}

	if opts.output != "" {
		if err := writeOutput(opts.output, content); err != nil {
			return err
		}
		printSuccess("written to %s", opts.output)
		return nil
	}
	fmt.Println(content)
	return nil
}
