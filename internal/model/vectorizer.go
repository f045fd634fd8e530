package model

import (
	"math"
	"strings"
)

// Vectorizer maps cleaned text onto the fixed TF-IDF feature space
// established at training time. It is immutable after load and safe for
// concurrent use.
type Vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	Idf        []float64      `json:"idf"`
}

// NumFeatures returns the dimension of the feature space.
func (v *Vectorizer) NumFeatures() int {
	return len(v.Idf)
}

// Transform converts cleaned text into an L2-normalized TF-IDF vector.
// Terms outside the training vocabulary are ignored. Deterministic: the
// same input always yields the same vector.
func (v *Vectorizer) Transform(cleanedText string) []float64 {
	vec := make([]float64, len(v.Idf))
	for _, term := range strings.Fields(cleanedText) {
		idx, ok := v.Vocabulary[term]
		if !ok || idx < 0 || idx >= len(vec) {
			continue
		}
		vec[idx] += v.Idf[idx]
	}

	// L2 normalization, matching the training-time transform.
	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// validate checks internal consistency after load.
func (v *Vectorizer) validate() error {
	if len(v.Vocabulary) == 0 {
		return &ArtifactError{Artifact: vectorizerFile, Message: "empty vocabulary"}
	}
	if len(v.Idf) == 0 {
		return &ArtifactError{Artifact: vectorizerFile, Message: "empty idf weights"}
	}
	for term, idx := range v.Vocabulary {
		if idx < 0 || idx >= len(v.Idf) {
			return &ArtifactError{
				Artifact: vectorizerFile,
				Message:  "vocabulary index out of range for term " + term,
			}
		}
	}
	return nil
}
