package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/model"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// testArtifacts builds a tiny two-class model: "python" signals
// Engineering, "sales" signals Sales.
func testArtifacts() *model.Artifacts {
	return &model.Artifacts{
		Vectorizer: &model.Vectorizer{
			Vocabulary: map[string]int{"python": 0, "sales": 1},
			Idf:        []float64{1.0, 1.0},
		},
		Classifier: &model.Classifier{
			Coefficients: [][]float64{
				{2.0, -1.0},
				{-1.0, 2.0},
			},
			Intercepts: []float64{0.0, 0.0},
		},
		LabelEncoder: &model.LabelEncoder{
			Classes: []string{"Engineering", "Sales"},
		},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(testArtifacts())
	require.NoError(t, err)
	return engine
}

func TestNewEngine_NilArtifacts(t *testing.T) {
	engine, err := NewEngine(nil)
	assert.Error(t, err)
	assert.Nil(t, engine)

	engine, err = NewEngine(&model.Artifacts{})
	assert.Error(t, err)
	assert.Nil(t, engine)
}

func TestEngine_Predict(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Predict("Experienced Python developer building Python services")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Engineering", result.JobCategory)
	assert.Contains(t, engine.Labels(), result.JobCategory)
	assert.Greater(t, result.Confidence, 0.5)
	assert.LessOrEqual(t, result.Confidence, 1.0)
	assert.Contains(t, result.Skills, "Python")
	assert.NotEmpty(t, result.Summary)
	assert.NotEmpty(t, result.Timestamp)
}

func TestEngine_PredictConfidenceIsMaxProbability(t *testing.T) {
	engine := newTestEngine(t)
	artifacts := testArtifacts()

	text := "python python developer"
	result, err := engine.Predict(text)
	require.NoError(t, err)

	// Recompute the probabilities the engine saw
	features := artifacts.Vectorizer.Transform("python python developer")
	probs := artifacts.Classifier.PredictProba(features)
	maxProb := probs[0]
	for _, p := range probs[1:] {
		if p > maxProb {
			maxProb = p
		}
	}

	assert.InDelta(t, maxProb, result.Confidence, 0.005)
}

func TestEngine_PredictDeterministic(t *testing.T) {
	engine := newTestEngine(t)

	first, err := engine.Predict("sales manager with sales experience")
	require.NoError(t, err)
	second, err := engine.Predict("sales manager with sales experience")
	require.NoError(t, err)

	assert.Equal(t, first.JobCategory, second.JobCategory)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.Skills, second.Skills)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestEngine_Analyze(t *testing.T) {
	engine := newTestEngine(t)

	text := "Python Developer\nEDUCATION\nBS in CS. Skills: Python and SQL. Built many services over 4 years."
	result, err := engine.Analyze(text)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Engineering", result.JobCategory)
	assert.Equal(t, types.ExperienceMid, result.ExperienceLevel)
	assert.Greater(t, result.WordCount, 0)
	assert.Greater(t, result.CharacterCount, result.WordCount)
	assert.Greater(t, result.AvgSentenceLength, 0.0)
	assert.Contains(t, result.Sections, "Education")
	assert.Contains(t, result.Sections, "Skills")
	assert.NotEmpty(t, result.Keywords)
	assert.LessOrEqual(t, len(result.Keywords), 20)
	assert.GreaterOrEqual(t, result.ReadabilityScore, 0.0)
	assert.LessOrEqual(t, result.ReadabilityScore, 10.0)
}

func TestEngine_AnalyzeKeywordsCapped(t *testing.T) {
	engine := newTestEngine(t)

	// 30 distinct long words; only the first 20 survive as keywords
	var text string
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima", "mike", "november",
		"oscar", "papa", "quebec", "romeo", "sierra", "tango", "uniform",
		"victor", "whiskey", "xray", "yankee", "zulu", "apple", "banana",
		"cherry", "mango",
	}
	for _, w := range words {
		text += w + " "
	}

	result, err := engine.Analyze(text)
	require.NoError(t, err)
	assert.Len(t, result.Keywords, 20)
}
