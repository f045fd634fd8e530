package inference

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// sentencePattern splits text into sentence fragments on terminal
// punctuation runs.
var sentencePattern = regexp.MustCompile(`[.!?]+`)

// sectionHeaders is the fixed list of resume section names recognized by
// deep analysis, matched as case-insensitive substrings of the raw text.
var sectionHeaders = []string{
	"education", "experience", "skills", "projects",
	"certifications", "awards", "contact", "summary",
	"objective", "work experience", "professional experience",
}

// ARI coefficients for the simplified Automated Readability Index.
const (
	ariCharsPerWord     = 4.71
	ariWordsPerSentence = 0.5
	ariOffset           = 21.43
)

// WordCount counts whitespace-delimited tokens in raw text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharacterCount counts characters (runes) in raw text, spaces included.
func CharacterCount(text string) int {
	return utf8.RuneCountInString(text)
}

// splitSentences returns the non-empty sentence fragments of text.
func splitSentences(text string) []string {
	fragments := sentencePattern.Split(text, -1)
	sentences := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if strings.TrimSpace(f) != "" {
			sentences = append(sentences, f)
		}
	}
	return sentences
}

// AvgSentenceLength returns the average word count per sentence, rounded
// to two decimals, or 0 when the text has no sentences.
func AvgSentenceLength(text string) float64 {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return 0
	}
	totalWords := 0
	for _, s := range sentences {
		totalWords += len(strings.Fields(s))
	}
	return round2(float64(totalWords) / float64(len(sentences)))
}

// ExtractSections returns the recognized section headers present in the
// raw text, title-cased. The result has set semantics: deduplicated,
// order not guaranteed.
func ExtractSections(text string) []string {
	lower := strings.ToLower(text)
	found := make(map[string]struct{})
	for _, header := range sectionHeaders {
		if strings.Contains(lower, header) {
			found[titleCase(header)] = struct{}{}
		}
	}
	sections := make([]string, 0, len(found))
	for s := range found {
		sections = append(sections, s)
	}
	return sections
}

// ReadabilityScore computes the simplified Automated Readability Index
// mapped onto a 0-10 scale (higher is easier to read), rounded to two
// decimals. Returns exactly 0.0 when the text has no words or no
// sentences.
func ReadabilityScore(text string) float64 {
	words := WordCount(text)
	sentences := len(splitSentences(text))
	if words == 0 || sentences == 0 {
		return 0.0
	}

	// Character count excludes spaces only, matching the word count's
	// whitespace-delimited view of the text.
	characters := utf8.RuneCountInString(strings.ReplaceAll(text, " ", ""))

	ari := ariCharsPerWord*(float64(characters)/float64(words)) +
		ariWordsPerSentence*(float64(words)/float64(sentences)) -
		ariOffset

	score := 10 - ari/2
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return round2(score)
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// round2 rounds to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
