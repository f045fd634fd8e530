package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/inference"
	"github.com/jonathan/resume-analyzer/internal/model"
	"github.com/jonathan/resume-analyzer/internal/sanitize"
	"github.com/spf13/cobra"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Classify a resume text file into a job category",
	Long:  "Classify a resume text file into a job category with confidence, extracted skills, experience level, and a summary, printed as JSON.",
	RunE:  runPredict,
}

var (
	predictInputFile string
	predictModelDir  string
)

func init() {
	predictCmd.Flags().StringVarP(&predictInputFile, "in", "i", "", "Path to resume text file (required)")
	predictCmd.Flags().StringVar(&predictModelDir, "model-dir", "", "Directory containing model artifact files (default: MODEL_DIR env or ./models)")
	_ = predictCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(predictCmd)
}

func runPredict(_ *cobra.Command, _ []string) error {
	engine, err := loadEngine(predictModelDir)
	if err != nil {
		return err
	}

	text, err := readResumeFile(predictInputFile)
	if err != nil {
		return err
	}

	result, err := engine.Predict(text)
	if err != nil {
		return fmt.Errorf("prediction failed: %w", err)
	}

	return printJSON(result)
}

// loadEngine loads the model artifacts and builds an inference engine.
func loadEngine(modelDir string) (*inference.Engine, error) {
	artifacts, err := model.Load(resolveModelDir(modelDir))
	if err != nil {
		return nil, fmt.Errorf("failed to load model artifacts: %w", err)
	}
	engine, err := inference.NewEngine(artifacts)
	if err != nil {
		return nil, fmt.Errorf("failed to create inference engine: %w", err)
	}
	return engine, nil
}

// readResumeFile reads and sanitizes a resume text file.
func readResumeFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	text := sanitize.Sanitize(string(content))
	if text == "" {
		return "", fmt.Errorf("input file contains no usable text")
	}
	return text, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
