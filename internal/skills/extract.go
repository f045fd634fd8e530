package skills

import (
	"regexp"
	"strings"
	"unicode"
)

// matchers holds a compiled whole-word pattern per vocabulary term.
// Terms whose first or last character is not a word character (c++, c#)
// get explicit non-word anchors, because `\b` only delimits correctly
// against alphanumeric edges and would silently never match them.
var matchers = func() []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(vocabulary))
	for i, term := range vocabulary {
		compiled[i] = regexp.MustCompile(boundaryPattern(term))
	}
	return compiled
}()

// boundaryPattern builds a case-insensitive whole-word pattern for a
// vocabulary term.
func boundaryPattern(term string) string {
	left := `\b`
	if !isWordChar(rune(term[0])) {
		left = `(?:^|[^0-9A-Za-z_])`
	}
	right := `\b`
	if !isWordChar(rune(term[len(term)-1])) {
		right = `(?:$|[^0-9A-Za-z_])`
	}
	return `(?i)` + left + regexp.QuoteMeta(term) + right
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Extract returns the distinct skills found in raw resume text,
// title-cased, matched case-insensitively with word boundaries. The
// vocabulary scan order is stable, and duplicates are removed keeping the
// first occurrence.
func Extract(rawText string) []string {
	if rawText == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var found []string
	for i, term := range vocabulary {
		if !matchers[i].MatchString(rawText) {
			continue
		}
		key := strings.ToLower(term)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		found = append(found, titleCase(term))
	}
	return found
}

// titleCase uppercases the first letter of every alphabetic run, so
// "machine learning" becomes "Machine Learning" and "node.js" becomes
// "Node.Js".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevAlpha := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevAlpha {
				b.WriteRune(r)
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevAlpha = true
		} else {
			b.WriteRune(r)
			prevAlpha = false
		}
	}
	return b.String()
}
