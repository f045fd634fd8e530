package textproc

import "strings"

// lemmaExceptions covers irregular forms the suffix rules below cannot
// reach. The table is intentionally small: lemmatization here is a
// best-effort dictionary lookup, not a full morphological analyzer.
var lemmaExceptions = map[string]string{
	// irregular plurals
	"men":      "man",
	"women":    "woman",
	"children": "child",
	"feet":     "foot",
	"teeth":    "tooth",
	"mice":     "mouse",
	"geese":    "goose",
	"analyses": "analysis",
	"theses":   "thesis",
	// irregular and common verb forms seen in resumes
	"led":       "lead",
	"built":     "build",
	"made":      "make",
	"wrote":     "write",
	"written":   "write",
	"writing":   "write",
	"taught":    "teach",
	"grew":      "grow",
	"ran":       "run",
	"running":   "run",
	"created":   "create",
	"creating":  "create",
	"managed":   "manage",
	"managing":  "manage",
	"improved":  "improve",
	"improving": "improve",
	"increased": "increase",
	"reduced":   "reduce",
}

// doubledConsonantKeep lists doubled endings that are part of the base
// form and must not be collapsed after stripping -ing/-ed.
var doubledConsonantKeep = map[string]bool{
	"ll": true, "ss": true, "zz": true, "ff": true,
}

// Lemmatize reduces a token to its dictionary base form, e.g. "running"
// becomes "run" and "skills" becomes "skill". Unknown forms are returned
// unchanged rather than over-stripped.
func Lemmatize(token string) string {
	if len(token) <= 2 {
		return token
	}
	if lemma, ok := lemmaExceptions[token]; ok {
		return lemma
	}

	// Plural suffixes first; these are the safest rules.
	switch {
	case strings.HasSuffix(token, "sses"):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "ies") && len(token) > 4:
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "ss"), strings.HasSuffix(token, "us"), strings.HasSuffix(token, "is"):
		return token
	case strings.HasSuffix(token, "s") && len(token) > 3:
		return token[:len(token)-1]
	}

	// Verb suffixes, applied only when a plausible stem remains.
	if strings.HasSuffix(token, "ing") && len(token) >= 6 {
		return fixStem(token[:len(token)-3])
	}
	if strings.HasSuffix(token, "ed") && len(token) >= 5 {
		return fixStem(token[:len(token)-2])
	}

	return token
}

// fixStem repairs a stem left over after stripping -ing or -ed:
// collapse a doubled final consonant (running -> run) and restore a
// trailing "e" after soft consonants (managing -> manage).
func fixStem(stem string) string {
	n := len(stem)
	if n >= 2 && stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) && !doubledConsonantKeep[stem[n-2:]] {
		return stem[:n-1]
	}
	switch stem[n-1] {
	case 'g', 'c', 'v', 'u':
		if n >= 2 && !isVowel(stem[n-2]) {
			return stem
		}
		return stem + "e"
	}
	return stem
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
