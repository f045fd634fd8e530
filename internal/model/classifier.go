package model

import "math"

// Classifier is a pre-trained linear classifier over the vectorizer's
// feature space: one row of coefficients and one intercept per class.
// Immutable after load; safe for concurrent use.
type Classifier struct {
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}

// NumClasses returns the number of output classes.
func (c *Classifier) NumClasses() int {
	return len(c.Coefficients)
}

// NumFeatures returns the expected input dimension.
func (c *Classifier) NumFeatures() int {
	if len(c.Coefficients) == 0 {
		return 0
	}
	return len(c.Coefficients[0])
}

// Predict returns the index of the most probable class for the feature
// vector.
func (c *Classifier) Predict(features []float64) int {
	scores := c.decisionScores(features)
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return best
}

// PredictProba returns the softmax probability distribution over all
// classes. The values sum to 1 and the maximum is the prediction
// confidence.
func (c *Classifier) PredictProba(features []float64) []float64 {
	scores := c.decisionScores(features)

	// Stable softmax: shift by the max score before exponentiating.
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}
	var sum float64
	probs := make([]float64, len(scores))
	for i, s := range scores {
		probs[i] = math.Exp(s - maxScore)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

func (c *Classifier) decisionScores(features []float64) []float64 {
	scores := make([]float64, len(c.Coefficients))
	for i, row := range c.Coefficients {
		s := c.Intercepts[i]
		n := len(row)
		if len(features) < n {
			n = len(features)
		}
		for j := 0; j < n; j++ {
			s += row[j] * features[j]
		}
		scores[i] = s
	}
	return scores
}

// validate checks internal consistency after load.
func (c *Classifier) validate() error {
	if len(c.Coefficients) < 2 {
		return &ArtifactError{Artifact: classifierFile, Message: "need at least two classes"}
	}
	if len(c.Intercepts) != len(c.Coefficients) {
		return &ArtifactError{Artifact: classifierFile, Message: "intercept count does not match class count"}
	}
	width := len(c.Coefficients[0])
	for _, row := range c.Coefficients {
		if len(row) != width {
			return &ArtifactError{Artifact: classifierFile, Message: "ragged coefficient matrix"}
		}
	}
	return nil
}
