package textproc

import (
	"github.com/jonathan/resume-analyzer/internal/skills"
)

// PreprocessedResume is the immutable output of the preprocessing
// pipeline. CleanedText feeds the vectorizer, Tokens feed keyword
// extraction, and Skills come from whole-word vocabulary matching against
// the raw text (punctuation-bearing terms like "Node.js" survive only
// there).
type PreprocessedResume struct {
	CleanedText string
	Tokens      []string
	Skills      []string
}

// Preprocess runs the full preprocessing pipeline over raw resume text.
// It never fails: empty or unusable input produces empty fields.
func Preprocess(rawText string) PreprocessedResume {
	if rawText == "" {
		return PreprocessedResume{}
	}

	cleaned := Clean(rawText)
	return PreprocessedResume{
		CleanedText: cleaned,
		Tokens:      Tokenize(cleaned),
		Skills:      skills.Extract(rawText),
	}
}
