// Package db provides PostgreSQL storage for job descriptions, resumes,
// and analysis results.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping verifies the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// schemaStatements creates the three core tables and their indexes. Every
// statement is idempotent so InitSchema can run on every startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS job_descriptions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(255) NOT NULL,
		company VARCHAR(255),
		location VARCHAR(255),
		department VARCHAR(100),
		employment_type VARCHAR(50),
		experience_level VARCHAR(50),
		description TEXT,
		must_have_skills TEXT[],
		nice_to_have_skills TEXT[],
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS resumes (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		candidate_name VARCHAR(255) NOT NULL,
		candidate_email VARCHAR(255),
		candidate_phone VARCHAR(50),
		candidate_location VARCHAR(255),
		content TEXT NOT NULL,
		filename VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS analysis_results (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		job_description_id UUID NOT NULL REFERENCES job_descriptions(id) ON DELETE CASCADE,
		resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
		final_score INTEGER NOT NULL,
		keyword_score INTEGER NOT NULL,
		semantic_score INTEGER NOT NULL,
		skill_match_score INTEGER NOT NULL,
		experience_score INTEGER NOT NULL,
		verdict VARCHAR(20) NOT NULL,
		matching_skills TEXT[],
		missing_skills TEXT[],
		missing_qualifications TEXT[],
		suggestions TEXT[],
		reasoning TEXT,
		confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_job_descriptions_title ON job_descriptions(title)`,
	`CREATE INDEX IF NOT EXISTS idx_job_descriptions_company ON job_descriptions(company)`,
	`CREATE INDEX IF NOT EXISTS idx_analysis_results_job ON analysis_results(job_description_id)`,
	`CREATE INDEX IF NOT EXISTS idx_analysis_results_score ON analysis_results(final_score)`,
	`CREATE INDEX IF NOT EXISTS idx_analysis_results_verdict ON analysis_results(verdict)`,
	`CREATE INDEX IF NOT EXISTS idx_analysis_results_created ON analysis_results(created_at)`,
}

// InitSchema creates the tables and indexes if they do not exist yet.
func (db *DB) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
