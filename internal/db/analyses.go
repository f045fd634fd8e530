package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveAnalysis stores an analysis record and returns its ID
func (db *DB) SaveAnalysis(ctx context.Context, a *Analysis) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO analyses (user_id, resume_hash, resume_preview, job_category, confidence,
			skills, experience_level, summary, word_count, character_count,
			avg_sentence_length, sections, keywords, readability_score, source, device)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		 RETURNING id`,
		a.UserID, a.ResumeHash, a.ResumePreview, a.JobCategory, a.Confidence,
		a.Skills, a.ExperienceLevel, a.Summary, a.WordCount, a.CharacterCount,
		a.AvgSentenceLength, a.Sections, a.Keywords, a.ReadabilityScore, a.Source, a.Device,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a stored analysis by ID
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	var a Analysis
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, resume_hash, resume_preview, job_category, confidence,
			skills, experience_level, summary, word_count, character_count,
			avg_sentence_length, sections, keywords, readability_score, source,
			COALESCE(device, ''), created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.UserID, &a.ResumeHash, &a.ResumePreview, &a.JobCategory, &a.Confidence,
		&a.Skills, &a.ExperienceLevel, &a.Summary, &a.WordCount, &a.CharacterCount,
		&a.AvgSentenceLength, &a.Sections, &a.Keywords, &a.ReadabilityScore, &a.Source,
		&a.Device, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &a, nil
}

// AnalysisFilters holds optional filters for listing analyses
type AnalysisFilters struct {
	UserID      uuid.UUID
	JobCategory string
	Source      string
	Limit       int
	Offset      int
}

// ListAnalyses retrieves recent analyses with optional filters, newest first
func (db *DB) ListAnalyses(ctx context.Context, filters AnalysisFilters) ([]AnalysisSummary, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, job_category, confidence, experience_level, resume_preview, source, created_at
		FROM analyses WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.UserID != uuid.Nil {
		query += fmt.Sprintf(" AND user_id = $%d", argNum)
		args = append(args, filters.UserID)
		argNum++
	}
	if filters.JobCategory != "" {
		query += fmt.Sprintf(" AND job_category = $%d", argNum)
		args = append(args, filters.JobCategory)
		argNum++
	}
	if filters.Source != "" {
		query += fmt.Sprintf(" AND source = $%d", argNum)
		args = append(args, filters.Source)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []AnalysisSummary
	for rows.Next() {
		var a AnalysisSummary
		if err := rows.Scan(&a.ID, &a.JobCategory, &a.Confidence, &a.ExperienceLevel,
			&a.ResumePreview, &a.Source, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}

// CountAnalyses returns the total number of stored analyses
func (db *DB) CountAnalyses(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM analyses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}
	return count, nil
}

// DeleteAnalysis deletes a stored analysis and its feedback (via cascade)
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", id)
	}
	return nil
}

// SaveFeedback stores a feedback record for an analysis and returns its ID
func (db *DB) SaveFeedback(ctx context.Context, analysisID uuid.UUID, rating int, comment string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO feedback (analysis_id, rating, comment)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		analysisID, rating, comment,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save feedback: %w", err)
	}
	return id, nil
}

// ListFeedback retrieves all feedback for an analysis, oldest first
func (db *DB) ListFeedback(ctx context.Context, analysisID uuid.UUID) ([]Feedback, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, analysis_id, rating, COALESCE(comment, ''), created_at
		 FROM feedback WHERE analysis_id = $1 ORDER BY created_at ASC`,
		analysisID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var feedback []Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.AnalysisID, &f.Rating, &f.Comment, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		feedback = append(feedback, f)
	}
	return feedback, nil
}
