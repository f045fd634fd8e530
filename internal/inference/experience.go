package inference

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Keyword lists for experience-level inference. These are matched as
// case-insensitive substrings and counted; the lists and the decision
// rule below are a fixed rule table that downstream consumers depend on,
// so changes here are breaking.
var (
	juniorKeywords = []string{"junior", "entry level", "intern", "fresh", "beginner", "student", "graduate"}
	midKeywords    = []string{"mid", "associate", "experienced", "intermediate", "2-5 years", "3-5 years"}
	seniorKeywords = []string{"senior", "lead", "principal", "architect", "manager", "lead", "expert", "10+ years"}
)

// yearsPattern matches explicit experience statements like "10+ years"
// or "3 yrs".
var yearsPattern = regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)`)

// Years-of-experience thresholds for the fallback branch.
const (
	seniorYears = 8
	midYears    = 3
)

// InferExperienceLevel infers a seniority bucket from raw resume text.
// Decision order: senior keywords dominate, then mid, then junior; with
// no keyword hits the largest "N years" mention decides (>=8 Senior,
// >=3 Mid-Level, else Junior); with nothing at all the default is
// Mid-Level.
func InferExperienceLevel(rawText string) types.ExperienceLevel {
	lower := strings.ToLower(rawText)

	juniorCount := countKeywords(lower, juniorKeywords)
	midCount := countKeywords(lower, midKeywords)
	seniorCount := countKeywords(lower, seniorKeywords)

	switch {
	case seniorCount > midCount && seniorCount > juniorCount:
		return types.ExperienceSenior
	case midCount > juniorCount:
		return types.ExperienceMid
	case juniorCount > 0:
		return types.ExperienceJunior
	}

	if maxYears, ok := maxYearsMentioned(lower); ok {
		switch {
		case maxYears >= seniorYears:
			return types.ExperienceSenior
		case maxYears >= midYears:
			return types.ExperienceMid
		default:
			return types.ExperienceJunior
		}
	}

	return types.ExperienceMid
}

func countKeywords(lower string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}

// maxYearsMentioned returns the largest N from "N years"/"N yrs"
// mentions, and whether any mention was found.
func maxYearsMentioned(lower string) (int, bool) {
	matches := yearsPattern.FindAllStringSubmatch(lower, -1)
	if len(matches) == 0 {
		return 0, false
	}
	maxYears := 0
	for _, m := range matches {
		if n, err := strconv.Atoi(m[1]); err == nil && n > maxYears {
			maxYears = n
		}
	}
	return maxYears, true
}
