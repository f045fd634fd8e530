package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "filters stopwords",
			input:    "the data is in the cloud",
			expected: []string{"data", "cloud"},
		},
		{
			name:     "drops short tokens",
			input:    "go ml ai python engineer",
			expected: []string{"python", "engineer"},
		},
		{
			name:     "lemmatizes surviving tokens",
			input:    "the data scientists are running complex analyses",
			expected: []string{"data", "scientist", "run", "complex", "analysis"},
		},
		{
			name:     "preserves order",
			input:    "python developer building scalable services",
			expected: []string{"python", "developer", "build", "scalable", "service"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "all stopwords",
			input:    "and the but for with",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenize_UncleanedInput(t *testing.T) {
	// Tokenize copes with text that skipped Clean: punctuation runs are
	// dropped and contractions lose their apostrophes
	tokens := Tokenize("wasn't working... really!")
	assert.Equal(t, []string{"work", "really"}, tokens)
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("and"))
	assert.True(t, IsStopword("dont"))
	assert.False(t, IsStopword("python"))
	assert.False(t, IsStopword("engineer"))
	assert.False(t, IsStopword(""))
}
