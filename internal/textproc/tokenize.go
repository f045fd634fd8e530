package textproc

import (
	"strings"
	"unicode"
)

// minTokenLength is the shortest token kept after filtering; anything of
// length 2 or less carries almost no signal in a resume.
const minTokenLength = 3

// Tokenize splits cleaned text into lemmatized content words. Stopwords,
// punctuation-only tokens, and tokens shorter than three characters are
// dropped; the surviving tokens keep their original order.
func Tokenize(cleaned string) []string {
	if cleaned == "" {
		return nil
	}

	tokens := splitWords(cleaned)
	processed := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if IsStopword(token) {
			continue
		}
		if isPunctuation(token) {
			continue
		}
		if len(token) < minTokenLength {
			continue
		}
		processed = append(processed, Lemmatize(token))
	}
	return processed
}

// splitWords performs word-boundary splitting. Cleaned input is plain
// lowercase words, but the splitter also copes with stray punctuation so
// it behaves sensibly on text that skipped Clean: punctuation runs become
// their own tokens and contractions lose their apostrophes.
func splitWords(text string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			current.WriteRune(r)
		case r == '\'':
			// drop apostrophes inside words: "don't" -> "dont"
			continue
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			words = append(words, string(r))
		}
	}
	flush()
	return words
}

// isPunctuation reports whether the token consists solely of punctuation
// or symbol characters.
func isPunctuation(token string) bool {
	if token == "" {
		return true
	}
	for _, r := range token {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
