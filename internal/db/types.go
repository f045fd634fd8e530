package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents a user account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Analysis represents a stored analysis record. The raw resume text is
// never persisted; only a hash and a short preview are kept.
type Analysis struct {
	ID                uuid.UUID   `json:"id"`
	UserID            *uuid.UUID  `json:"user_id,omitempty"`
	ResumeHash        string      `json:"resume_hash"`
	ResumePreview     string      `json:"resume_preview"`
	JobCategory       string      `json:"job_category"`
	Confidence        float64     `json:"confidence"`
	Skills            StringArray `json:"skills"`
	ExperienceLevel   string      `json:"experience_level"`
	Summary           string      `json:"summary"`
	WordCount         int         `json:"word_count"`
	CharacterCount    int         `json:"character_count"`
	AvgSentenceLength float64     `json:"avg_sentence_length"`
	Sections          StringArray `json:"sections"`
	Keywords          StringArray `json:"keywords"`
	ReadabilityScore  float64     `json:"readability_score"`
	Source            string      `json:"source"` // "prediction" or "analysis"
	Device            string      `json:"device,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
}

// AnalysisSummary is a lightweight view of an analysis for listing
type AnalysisSummary struct {
	ID              uuid.UUID `json:"id"`
	JobCategory     string    `json:"job_category"`
	Confidence      float64   `json:"confidence"`
	ExperienceLevel string    `json:"experience_level"`
	ResumePreview   string    `json:"resume_preview"`
	Source          string    `json:"source"`
	CreatedAt       time.Time `json:"created_at"`
}

// Feedback represents a user rating attached to a stored analysis
type Feedback struct {
	ID         uuid.UUID `json:"id"`
	AnalysisID uuid.UUID `json:"analysis_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		if str, ok := src.(string); ok {
			source = []byte(str)
		} else {
			return errors.New("type assertion .([]byte) failed")
		}
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
