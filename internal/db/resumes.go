package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// SaveResume stores a resume and returns its ID
func (db *DB) SaveResume(ctx context.Context, resume *types.Resume) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes
		 (candidate_name, candidate_email, candidate_phone, candidate_location,
		  content, filename)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		resume.CandidateName, resume.Email, resume.Phone, resume.Location,
		resume.Content, resume.Filename,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by ID. Returns nil when no row matches.
func (db *DB) GetResume(ctx context.Context, resumeID uuid.UUID) (*types.Resume, error) {
	var resume types.Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, candidate_name, candidate_email, candidate_phone,
		        candidate_location, content, filename, created_at
		 FROM resumes WHERE id = $1`,
		resumeID,
	).Scan(&resume.ID, &resume.CandidateName, &resume.Email, &resume.Phone,
		&resume.Location, &resume.Content, &resume.Filename, &resume.UploadedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &resume, nil
}
