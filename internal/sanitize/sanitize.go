// Package sanitize strips potentially harmful markup from caller-supplied
// resume text before it enters the analysis pipeline.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	// markupPattern detects HTML-looking input: an opening tag with a
	// matching closing tag somewhere after it.
	markupPattern = regexp.MustCompile(`(?is)<([a-z][a-z0-9]*)\b[^>]*>.*</([a-z][a-z0-9]*)>`)

	javascriptURLPattern = regexp.MustCompile(`(?i)javascript:`)
)

// Sanitize removes script and iframe content and javascript: URLs from
// resume text. Plain text passes through untouched apart from the URL
// scheme stripping; HTML-looking input is parsed and reduced to its text
// content with script, iframe, and style subtrees dropped. Never fails;
// unusable input yields an empty string.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	if markupPattern.MatchString(text) {
		text = extractText(text)
	}

	return javascriptURLPattern.ReplaceAllString(text, "")
}

// extractText parses HTML and returns its visible text with dangerous
// subtrees removed. Markup with no visible text at all yields an empty
// string, which callers treat as unusable input.
func extractText(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return markup
	}
	doc.Find("script, iframe, style").Remove()
	return strings.TrimSpace(doc.Text())
}
