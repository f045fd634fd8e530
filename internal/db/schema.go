package db

import (
	"context"
	"fmt"
)

// migrations are applied in order on startup. Statements are idempotent
// so repeated runs against the same database are safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		password_hash TEXT,
		password_set BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS analyses (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID REFERENCES users(id) ON DELETE SET NULL,
		resume_hash TEXT NOT NULL,
		resume_preview TEXT NOT NULL,
		job_category TEXT NOT NULL,
		confidence DOUBLE PRECISION NOT NULL,
		skills JSONB NOT NULL DEFAULT '[]',
		experience_level TEXT NOT NULL,
		summary TEXT NOT NULL,
		word_count INTEGER NOT NULL DEFAULT 0,
		character_count INTEGER NOT NULL DEFAULT 0,
		avg_sentence_length DOUBLE PRECISION NOT NULL DEFAULT 0,
		sections JSONB NOT NULL DEFAULT '[]',
		keywords JSONB NOT NULL DEFAULT '[]',
		readability_score DOUBLE PRECISION NOT NULL DEFAULT 0,
		source TEXT NOT NULL DEFAULT 'prediction',
		device TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_analyses_job_category ON analyses (job_category)`,

	`CREATE TABLE IF NOT EXISTS feedback (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		analysis_id UUID NOT NULL REFERENCES analyses(id) ON DELETE CASCADE,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the schema if it does not exist yet
func (db *DB) Migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
