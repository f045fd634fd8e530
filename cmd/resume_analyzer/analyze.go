package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run deep analysis on a resume text file",
	Long:  "Run deep analysis on a resume text file: classification plus word counts, detected sections, keywords, and a readability score, printed as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFile string
	analyzeModelDir  string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeModelDir, "model-dir", "", "Directory containing model artifact files (default: MODEL_DIR env or ./models)")
	_ = analyzeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	engine, err := loadEngine(analyzeModelDir)
	if err != nil {
		return err
	}

	text, err := readResumeFile(analyzeInputFile)
	if err != nil {
		return err
	}

	result, err := engine.Analyze(text)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return printJSON(result)
}
