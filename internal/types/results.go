// Package types provides type definitions for structured data used throughout the resume-analyzer system.
package types

// ExperienceLevel is the inferred seniority bucket for a resume.
type ExperienceLevel string

// The three experience levels the heuristic can produce.
const (
	ExperienceJunior ExperienceLevel = "Junior"
	ExperienceMid    ExperienceLevel = "Mid-Level"
	ExperienceSenior ExperienceLevel = "Senior"
)

// PredictionResult is the outcome of classifying a resume. Confidence is
// the maximum posterior probability from the classifier, rounded to two
// decimals; JobCategory always belongs to the trained label set.
type PredictionResult struct {
	JobCategory     string          `json:"job_category"`
	Confidence      float64         `json:"confidence"`
	Skills          []string        `json:"skills"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Summary         string          `json:"summary"`
	Timestamp       string          `json:"timestamp"`
}

// AnalysisResult extends PredictionResult with text metrics and
// heuristic analyses. Sections has set semantics: deduplicated, order
// not guaranteed.
type AnalysisResult struct {
	PredictionResult
	WordCount         int      `json:"word_count"`
	CharacterCount    int      `json:"character_count"`
	AvgSentenceLength float64  `json:"avg_sentence_length"`
	Sections          []string `json:"sections"`
	Keywords          []string `json:"keywords"`
	ReadabilityScore  float64  `json:"readability_score"`
}
