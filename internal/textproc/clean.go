// Package textproc provides text cleaning, tokenization, and lemmatization
// for resume text ahead of feature vectorization.
package textproc

import (
	"regexp"
	"strings"
)

var (
	urlPattern      = regexp.MustCompile(`(?i)(http\S+|www\S+)`)
	emailPattern    = regexp.MustCompile(`\S+@\S+`)
	nonAlphaPattern = regexp.MustCompile(`[^a-z\s]`)
)

// Clean normalizes raw resume text for vectorization. The output contains
// only lowercase letters and single spaces. Order matters: URLs and emails
// are stripped before non-alpha characters so their punctuation doesn't
// leave fragments behind.
//
// Clean never fails; malformed or empty input yields an empty string.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	// 1. Lowercase
	text = strings.ToLower(text)

	// 2. Remove URLs
	text = urlPattern.ReplaceAllString(text, "")

	// 3. Remove email addresses
	text = emailPattern.ReplaceAllString(text, "")

	// 4. Replace special characters and digits with spaces
	text = nonAlphaPattern.ReplaceAllString(text, " ")

	// 5. Collapse whitespace
	return strings.Join(strings.Fields(text), " ")
}
