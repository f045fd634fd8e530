//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request AnalyzeRequest
		wantErr bool
	}{
		{"valid request", AnalyzeRequest{ResumeText: "Senior Python developer"}, false},
		{"empty resume text", AnalyzeRequest{ResumeText: ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStoreResultRequest_Validate(t *testing.T) {
	result := &AnalysisResult{
		PredictionResult: PredictionResult{JobCategory: "Engineering", Confidence: 0.9},
	}

	tests := []struct {
		name    string
		request StoreResultRequest
		wantErr bool
	}{
		{"valid request", StoreResultRequest{ResumeText: "resume", Result: result}, false},
		{"missing result", StoreResultRequest{ResumeText: "resume"}, true},
		{"missing resume text", StoreResultRequest{Result: result}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFeedbackRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request FeedbackRequest
		wantErr bool
	}{
		{"valid request", FeedbackRequest{Rating: 4, Comment: "accurate"}, false},
		{"valid without comment", FeedbackRequest{Rating: 1}, false},
		{"rating zero", FeedbackRequest{Rating: 0}, true},
		{"rating above range", FeedbackRequest{Rating: 6}, true},
		{"comment too long", FeedbackRequest{Rating: 3, Comment: strings.Repeat("x", 2001)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResumeTextWarnings(t *testing.T) {
	t.Run("normal length", func(t *testing.T) {
		assert.Empty(t, ResumeTextWarnings(strings.Repeat("a", 500)))
	})

	t.Run("too short", func(t *testing.T) {
		warnings := ResumeTextWarnings("tiny")
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "too short")
	})

	t.Run("too long", func(t *testing.T) {
		warnings := ResumeTextWarnings(strings.Repeat("a", MaxResumeChars+1))
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "long")
	})
}
