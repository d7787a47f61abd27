package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// resultColumns is the SELECT list shared by every analysis-result read.
const resultColumns = `ar.id, ar.job_description_id, ar.resume_id,
	jd.title, jd.company, r.candidate_name,
	ar.final_score, ar.keyword_score, ar.semantic_score,
	ar.skill_match_score, ar.experience_score, ar.verdict,
	ar.matching_skills, ar.missing_skills, ar.missing_qualifications,
	ar.suggestions, ar.reasoning, ar.confidence, ar.created_at`

const resultJoins = ` FROM analysis_results ar
	JOIN resumes r ON ar.resume_id = r.id
	JOIN job_descriptions jd ON ar.job_description_id = jd.id`

// SaveAnalysisResult stores an analysis record and returns its ID. The
// record must reference an already-saved job description and resume.
func (db *DB) SaveAnalysisResult(ctx context.Context, rec *types.AnalysisRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO analysis_results
		 (job_description_id, resume_id, final_score, keyword_score,
		  semantic_score, skill_match_score, experience_score, verdict,
		  matching_skills, missing_skills, missing_qualifications,
		  suggestions, reasoning, confidence)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING id`,
		rec.JobID, rec.ResumeID, rec.FinalScore, rec.KeywordScore,
		rec.SemanticScore, rec.SkillScore, rec.ExperienceScore, rec.Verdict,
		rec.MatchingSkills, rec.MissingSkills, rec.MissingQualifications,
		rec.Suggestions, rec.Reasoning, rec.Confidence,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis result: %w", err)
	}
	return id, nil
}

// GetAnalysisResult retrieves one analysis record with its job and
// candidate context. Returns nil when no row matches.
func (db *DB) GetAnalysisResult(ctx context.Context, resultID uuid.UUID) (*types.AnalysisRecord, error) {
	var rec types.AnalysisRecord
	err := db.pool.QueryRow(ctx,
		`SELECT `+resultColumns+resultJoins+` WHERE ar.id = $1`,
		resultID,
	).Scan(&rec.ID, &rec.JobID, &rec.ResumeID,
		&rec.JobTitle, &rec.Company, &rec.CandidateName,
		&rec.FinalScore, &rec.KeywordScore, &rec.SemanticScore,
		&rec.SkillScore, &rec.ExperienceScore, &rec.Verdict,
		&rec.MatchingSkills, &rec.MissingSkills, &rec.MissingQualifications,
		&rec.Suggestions, &rec.Reasoning, &rec.Confidence, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis result: %w", err)
	}
	return &rec, nil
}

// ListRecentResults retrieves the most recent analysis records
func (db *DB) ListRecentResults(ctx context.Context, limit int) ([]types.AnalysisRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+resultColumns+resultJoins+` ORDER BY ar.created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analysis results: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ResultFilters holds optional filters for searching analysis results
type ResultFilters struct {
	JobTitle string
	Company  string
	MinScore int
	Verdicts []string
	Location string
	DateFrom time.Time
	Limit    int
}

// Empty reports whether no search criteria are set. Limit alone does
// not count as a criterion.
func (f ResultFilters) Empty() bool {
	return f.JobTitle == "" && f.Company == "" && f.MinScore <= 0 &&
		len(f.Verdicts) == 0 && f.Location == "" && f.DateFrom.IsZero()
}

// buildSearchQuery assembles the filtered search SQL with numbered args.
func buildSearchQuery(filters ResultFilters) (string, []any) {
	if filters.Limit <= 0 {
		filters.Limit = 50
	}

	query := `SELECT ` + resultColumns + resultJoins + ` WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.JobTitle != "" {
		query += fmt.Sprintf(" AND jd.title ILIKE $%d", argNum)
		args = append(args, "%"+filters.JobTitle+"%")
		argNum++
	}
	if filters.Company != "" {
		query += fmt.Sprintf(" AND jd.company ILIKE $%d", argNum)
		args = append(args, "%"+filters.Company+"%")
		argNum++
	}
	if filters.MinScore > 0 {
		query += fmt.Sprintf(" AND ar.final_score >= $%d", argNum)
		args = append(args, filters.MinScore)
		argNum++
	}
	if len(filters.Verdicts) > 0 {
		query += fmt.Sprintf(" AND ar.verdict = ANY($%d)", argNum)
		args = append(args, filters.Verdicts)
		argNum++
	}
	if filters.Location != "" {
		query += fmt.Sprintf(" AND (r.candidate_location ILIKE $%d OR jd.location ILIKE $%d)", argNum, argNum)
		args = append(args, "%"+filters.Location+"%")
		argNum++
	}
	if !filters.DateFrom.IsZero() {
		query += fmt.Sprintf(" AND ar.created_at >= $%d", argNum)
		args = append(args, filters.DateFrom)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY ar.final_score DESC, ar.created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	return query, args
}

// SearchResults retrieves analysis records matching the filters, best
// score first
func (db *DB) SearchResults(ctx context.Context, filters ResultFilters) ([]types.AnalysisRecord, error) {
	query, args := buildSearchQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search analysis results: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]types.AnalysisRecord, error) {
	var records []types.AnalysisRecord
	for rows.Next() {
		var rec types.AnalysisRecord
		if err := rows.Scan(&rec.ID, &rec.JobID, &rec.ResumeID,
			&rec.JobTitle, &rec.Company, &rec.CandidateName,
			&rec.FinalScore, &rec.KeywordScore, &rec.SemanticScore,
			&rec.SkillScore, &rec.ExperienceScore, &rec.Verdict,
			&rec.MatchingSkills, &rec.MissingSkills, &rec.MissingQualifications,
			&rec.Suggestions, &rec.Reasoning, &rec.Confidence, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis result: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// GetSystemStats computes the dashboard aggregates in one round trip.
func (db *DB) GetSystemStats(ctx context.Context) (*types.SystemStats, error) {
	var stats types.SystemStats
	err := db.pool.QueryRow(ctx,
		`SELECT
		   (SELECT COUNT(*) FROM job_descriptions),
		   (SELECT COUNT(*) FROM resumes),
		   (SELECT COUNT(*) FROM analysis_results),
		   (SELECT COUNT(*) FROM analysis_results WHERE final_score >= 70),
		   (SELECT COALESCE(AVG(final_score), 0)::double precision FROM analysis_results)`,
	).Scan(&stats.TotalJobs, &stats.TotalResumes, &stats.TotalAnalyses,
		&stats.HighScoreMatches, &stats.AverageScore)
	if err != nil {
		return nil, fmt.Errorf("failed to get system stats: %w", err)
	}
	return &stats, nil
}
