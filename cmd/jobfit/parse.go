package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobfit-ai/jobfit-server/internal/ats"
	"github.com/jobfit-ai/jobfit-server/internal/extractor"
	"github.com/jobfit-ai/jobfit-server/internal/ingestion"
	"github.com/jobfit-ai/jobfit-server/internal/observability"
	"github.com/jobfit-ai/jobfit-server/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume file into structured JSON",
	Long:  "Extract structured resume fields from a PDF, DOCX, TXT, or MD file and print them as JSON along with the ATS compatibility score.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume file (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	parsed, err := parseResumeFile(parseInputFile)
	if err != nil {
		return err
	}

	score := ats.Score(parsed)
	if verbose {
		observability.NewPrinter(os.Stderr).PrintParsedResume(parsed, score)
	}

	result := struct {
		ATSScore int                 `json:"atsScore"`
		Parsed   *types.ParsedResume `json:"parsed"`
	}{
		ATSScore: score,
		Parsed:   parsed,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseOutputFile == "" {
		fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Output: %s\n", parseOutputFile)
	return nil
}

// parseResumeFile reads a resume file, extracts its text, and parses
// the structured fields. Shared by the parse, recommend, and tailor
// subcommands.
func parseResumeFile(path string) (*types.ParsedResume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	fileType := ingestion.FileType(path)
	if !ingestion.Supported(fileType) {
		return nil, fmt.Errorf("unsupported file type: %q", fileType)
	}

	text, err := ingestion.ExtractText(fileType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	return extractor.Extract(text), nil
}
