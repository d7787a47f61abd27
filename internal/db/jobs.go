package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// SaveJobDescription stores a job description and returns its ID
func (db *DB) SaveJobDescription(ctx context.Context, jd *types.JobDescription) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_descriptions
		 (title, company, location, department, employment_type, experience_level,
		  description, must_have_skills, nice_to_have_skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		jd.Title, jd.Company, jd.Location, jd.Department, jd.EmploymentType,
		jd.ExperienceLevel, jd.Description, jd.MustHaveSkills, jd.NiceToHaveSkills,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job description: %w", err)
	}
	return id, nil
}

// GetJobDescription retrieves a job description by ID. Returns nil when no
// row matches.
func (db *DB) GetJobDescription(ctx context.Context, jobID uuid.UUID) (*types.JobDescription, error) {
	var jd types.JobDescription
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, company, location, department, employment_type,
		        experience_level, description, must_have_skills, nice_to_have_skills,
		        created_at
		 FROM job_descriptions WHERE id = $1`,
		jobID,
	).Scan(&jd.ID, &jd.Title, &jd.Company, &jd.Location, &jd.Department,
		&jd.EmploymentType, &jd.ExperienceLevel, &jd.Description,
		&jd.MustHaveSkills, &jd.NiceToHaveSkills, &jd.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job description: %w", err)
	}
	return &jd, nil
}

// JobSummary is a lightweight view of a job description for listing
type JobSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Company   string    `json:"company,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ListJobDescriptions retrieves job summaries, newest first
func (db *DB) ListJobDescriptions(ctx context.Context) ([]JobSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, company, location, created_at
		 FROM job_descriptions ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}
	defer rows.Close()

	var jobs []JobSummary
	for rows.Next() {
		var j JobSummary
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job description: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
