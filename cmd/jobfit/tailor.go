package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobfit-ai/jobfit-server/internal/ats"
	"github.com/jobfit-ai/jobfit-server/internal/export"
	"github.com/jobfit-ai/jobfit-server/internal/fetch"
	"github.com/jobfit-ai/jobfit-server/internal/observability"
	"github.com/jobfit-ai/jobfit-server/internal/tailoring"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor a resume to a job posting",
	Long:  "Parse a resume file, tailor it to a job description from a text file or URL, and print the tailored resume text with its new ATS score.",
	RunE:  runTailor,
}

var (
	tailorResumeFile string
	tailorJobFile    string
	tailorJobURL     string
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorResumeFile, "resume", "r", "", "Path to resume file (required)")
	tailorCmd.Flags().StringVar(&tailorJobFile, "job", "", "Path to job description text file")
	tailorCmd.Flags().StringVar(&tailorJobURL, "job-url", "", "URL of a job posting to fetch")
	_ = tailorCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
	if tailorJobFile == "" && tailorJobURL == "" {
		return fmt.Errorf("must provide either --job or --job-url")
	}
	if tailorJobFile != "" && tailorJobURL != "" {
		return fmt.Errorf("cannot use --job with --job-url")
	}

	parsed, err := parseResumeFile(tailorResumeFile)
	if err != nil {
		return err
	}

	var jobDescription string
	if tailorJobFile != "" {
		data, err := os.ReadFile(tailorJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		jobDescription = string(data)
	} else {
		client := fetch.NewClient(fetch.DefaultTimeout)
		jobDescription, err = client.JobDescription(context.Background(), tailorJobURL)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	}

	result := tailoring.Tailor(parsed, jobDescription)
	score := ats.Score(result.TailoredContent)
	if verbose {
		observability.NewPrinter(os.Stderr).PrintImprovements(result.Improvements)
	}

	fmt.Fprintln(os.Stdout, export.Render(result.TailoredContent, false))
	fmt.Fprintf(os.Stderr, "\nATS score: %d/100, %d improvements applied\n", score, len(result.Improvements))
	return nil
}
