package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobfit-ai/jobfit-server/internal/observability"
	"github.com/jobfit-ai/jobfit-server/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate role recommendations for a resume file",
	Long:  "Parse a resume file and print matching role recommendations ranked by fit score.",
	RunE:  runRecommend,
}

var (
	recommendInputFile string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendInputFile, "in", "i", "", "Path to resume file (required)")
	_ = recommendCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	parsed, err := parseResumeFile(recommendInputFile)
	if err != nil {
		return err
	}

	recommendations := recommend.New().Generate(parsed)
	if verbose {
		observability.NewPrinter(os.Stderr).PrintRecommendations(recommendations)
	}

	jsonBytes, err := json.MarshalIndent(recommendations, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
