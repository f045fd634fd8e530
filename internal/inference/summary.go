package inference

import (
	"fmt"
	"strings"
)

// Confidence bands for the summary wording.
const (
	highConfidence     = 0.8
	moderateConfidence = 0.6
)

// maxSummarySkills is how many skills the summary lists before
// collapsing the rest into "and N more".
const maxSummarySkills = 5

// GenerateSummary produces the fixed-template prose summary for a
// prediction. Deterministic given the same inputs.
func GenerateSummary(jobCategory string, confidence float64, skills []string) string {
	var confidenceDesc string
	switch {
	case confidence >= highConfidence:
		confidenceDesc = "high confidence"
	case confidence >= moderateConfidence:
		confidenceDesc = "moderate confidence"
	default:
		confidenceDesc = "low confidence"
	}

	shown := skills
	if len(shown) > maxSummarySkills {
		shown = shown[:maxSummarySkills]
	}
	skillStr := strings.Join(shown, ", ")
	if extra := len(skills) - maxSummarySkills; extra > 0 {
		skillStr += fmt.Sprintf(", and %d more", extra)
	}

	return fmt.Sprintf("This resume appears to align with the %s role with %s. Key skills identified: %s.",
		jobCategory, confidenceDesc, skillStr)
}
