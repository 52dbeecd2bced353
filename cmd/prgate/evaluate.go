package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prgate/prgate/internal/config"
	"github.com/prgate/prgate/internal/engine"
	"github.com/prgate/prgate/internal/github"
	"github.com/prgate/prgate/internal/models"
	"github.com/prgate/prgate/internal/output"
	"github.com/prgate/prgate/pkg/utils"
)

var (
	evaluateRepo   string
	evaluateAuthor string
	evaluatePR     int
	evaluateFormat string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate one pull request author and print the verdict",
	Long: `Evaluate fetches the author's public activity, runs the trust
evaluation, and prints the result. The process exits 0 on a passing
verdict, 1 on a failing one, and 2 when the evaluation itself could not
run (bad input, exhausted retries, unknown user).`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateRepo, "repo", "", "target repository as owner/name (required)")
	evaluateCmd.Flags().StringVar(&evaluateAuthor, "author", "", "pull request author login (required)")
	evaluateCmd.Flags().IntVar(&evaluatePR, "pr", 0, "pull request number")
	evaluateCmd.Flags().StringVar(&evaluateFormat, "format", "table", "output format: table, json or markdown")
	_ = evaluateCmd.MarkFlagRequired("repo")
	_ = evaluateCmd.MarkFlagRequired("author")
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	owner, name, err := utils.ParseRepoSlug(evaluateRepo)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.GitHubToken == "" {
		return fmt.Errorf("GITHUB_TOKEN must be set")
	}

	prCtx := models.PRContext{
		Owner:    owner,
		Repo:     name,
		PRNumber: evaluatePR,
		Author:   evaluateAuthor,
	}

	client := github.NewClient(cfg.GitHubToken, logger)
	fetcher := github.NewFetcher(client, logger)
	service := engine.NewService(fetcher, cfg, logger)

	result, err := service.Evaluate(cmd.Context(), prCtx)
	if err != nil {
		return err
	}

	if err := printResult(result, prCtx); err != nil {
		return err
	}

	if !result.Passed {
		os.Exit(1)
	}
	return nil
}

func printResult(result *models.AnalysisResult, prCtx models.PRContext) error {
	switch evaluateFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "markdown":
		_, err := fmt.Fprint(os.Stdout, output.BuildJobSummary(result, prCtx))
		return err
	case "table":
		return output.WriteTable(os.Stdout, result, prCtx)
	default:
		return fmt.Errorf("unknown output format %q", evaluateFormat)
	}
}
