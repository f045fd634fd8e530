package types

import (
	"github.com/go-playground/validator/v10"
)

// Resume length bounds used for validation warnings. Texts outside these
// bounds are still analyzed; the limits only drive caller-facing hints.
const (
	MaxResumeChars = 10000
	MinResumeChars = 50
)

// AnalyzeRequest is the request body for POST /predict and POST /analyze.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=1"`
}

// StoreResultRequest is the request body for POST /results: a
// caller-supplied analysis stored verbatim alongside the resume text.
type StoreResultRequest struct {
	ResumeText string          `json:"resume_text" validate:"required,min=1"`
	Result     *AnalysisResult `json:"analysis_result" validate:"required"`
	DeviceType string          `json:"device_type,omitempty"`
}

// FeedbackRequest is the request body for POST /analyses/{id}/feedback.
type FeedbackRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"max=2000"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the StoreResultRequest using the validator.
func (r *StoreResultRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the FeedbackRequest using the validator.
func (r *FeedbackRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ResumeTextWarnings returns non-fatal hints about the supplied resume
// text: very long texts slow analysis down, very short ones rarely
// classify meaningfully.
func ResumeTextWarnings(text string) []string {
	var warnings []string
	if len(text) > MaxResumeChars {
		warnings = append(warnings, "resume text is very long, consider shortening it")
	}
	if len(text) < MinResumeChars {
		warnings = append(warnings, "resume text seems too short for meaningful analysis")
	}
	return warnings
}
