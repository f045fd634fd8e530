// Package inference orchestrates the resume analysis pipeline:
// preprocessing, feature vectorization, classification, and the
// heuristic post-processing layered on top (experience level, summary,
// sections, readability).
package inference

import (
	"fmt"
	"log"
	"time"

	"github.com/jonathan/resume-analyzer/internal/model"
	"github.com/jonathan/resume-analyzer/internal/textproc"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxKeywords is how many processed tokens deep analysis reports as
// keywords.
const maxKeywords = 20

// Engine runs predictions against a loaded artifact set. The artifacts
// are injected at construction and treated as read-only, so a single
// Engine is safe for concurrent use.
type Engine struct {
	artifacts *model.Artifacts
}

// NewEngine creates an inference engine over loaded model artifacts.
func NewEngine(artifacts *model.Artifacts) (*Engine, error) {
	if artifacts == nil || artifacts.Vectorizer == nil || artifacts.Classifier == nil || artifacts.LabelEncoder == nil {
		return nil, fmt.Errorf("inference engine requires all model artifacts to be loaded")
	}
	return &Engine{artifacts: artifacts}, nil
}

// Predict classifies raw resume text into a job category with a
// confidence score, extracted skills, an inferred experience level, and
// a generated summary. Errors from the model artifacts propagate
// unmodified; there is no partial result.
func (e *Engine) Predict(rawText string) (*types.PredictionResult, error) {
	pre := textproc.Preprocess(rawText)
	return e.predictPreprocessed(rawText, pre)
}

// Analyze performs deep analysis: the full prediction plus text metrics,
// section detection, keyword extraction, and readability scoring.
func (e *Engine) Analyze(rawText string) (*types.AnalysisResult, error) {
	pre := textproc.Preprocess(rawText)

	prediction, err := e.predictPreprocessed(rawText, pre)
	if err != nil {
		return nil, err
	}

	keywords := pre.Tokens
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}

	return &types.AnalysisResult{
		PredictionResult:  *prediction,
		WordCount:         WordCount(rawText),
		CharacterCount:    CharacterCount(rawText),
		AvgSentenceLength: AvgSentenceLength(rawText),
		Sections:          ExtractSections(rawText),
		Keywords:          keywords,
		ReadabilityScore:  ReadabilityScore(rawText),
	}, nil
}

// predictPreprocessed runs the vectorize-classify-postprocess path over
// an already preprocessed resume.
func (e *Engine) predictPreprocessed(rawText string, pre textproc.PreprocessedResume) (*types.PredictionResult, error) {
	features := e.artifacts.Vectorizer.Transform(pre.CleanedText)

	classIdx := e.artifacts.Classifier.Predict(features)
	probs := e.artifacts.Classifier.PredictProba(features)

	label, err := e.artifacts.LabelEncoder.InverseTransform(classIdx)
	if err != nil {
		log.Printf("Error during inference: %v", err)
		return nil, err
	}

	// Confidence is the maximum posterior probability.
	confidence := probs[0]
	for _, p := range probs[1:] {
		if p > confidence {
			confidence = p
		}
	}

	return &types.PredictionResult{
		JobCategory:     label,
		Confidence:      round2(confidence),
		Skills:          pre.Skills,
		ExperienceLevel: InferExperienceLevel(rawText),
		Summary:         GenerateSummary(label, confidence, pre.Skills),
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Labels exposes the closed set of categories the engine can predict.
func (e *Engine) Labels() []string {
	return e.artifacts.LabelEncoder.Classes
}
