package types

import (
	"time"

	"github.com/google/uuid"
)

// Verdict labels for a final score.
const (
	VerdictHigh   = "High"
	VerdictMedium = "Medium"
	VerdictLow    = "Low"
)

// Display categories for a final score, coarser than the verdict.
const (
	CategoryExcellent = "Excellent Match"
	CategoryGood      = "Good Match"
	CategoryFair      = "Fair Match"
	CategoryPoor      = "Poor Match"
	CategoryVeryPoor  = "Very Poor Match"
)

// ScoreBreakdown records the weights used to produce a final score, so a
// stored result remains auditable if defaults change later.
type ScoreBreakdown struct {
	KeywordWeight    float64 `json:"keyword_weight"`
	SemanticWeight   float64 `json:"semantic_weight"`
	SkillWeight      float64 `json:"skill_weight"`
	ExperienceWeight float64 `json:"experience_weight"`
}

// ScoreResult is the immutable output of one scoring call. Every score is
// an integer in [0,100], rounded from the component float and clamped.
type ScoreResult struct {
	FinalScore      int            `json:"final_score"`
	KeywordScore    int            `json:"keyword_score"`
	SemanticScore   int            `json:"semantic_score"`
	SkillMatchScore int            `json:"skill_match_score"`
	ExperienceScore int            `json:"experience_score"`
	Verdict         string         `json:"verdict"`
	Breakdown       ScoreBreakdown `json:"score_breakdown"`
}

// Category maps the final score to its display tier.
func (s *ScoreResult) Category() string {
	switch {
	case s.FinalScore >= 85:
		return CategoryExcellent
	case s.FinalScore >= 75:
		return CategoryGood
	case s.FinalScore >= 60:
		return CategoryFair
	case s.FinalScore >= 40:
		return CategoryPoor
	default:
		return CategoryVeryPoor
	}
}

// DetailedMetrics carries the secondary diagnostics computed alongside a
// score. JSON field names match the historical metric keys.
type DetailedMetrics struct {
	ResumeWordCount       int     `json:"resume_length"`
	SectionsIdentified    int     `json:"sections_identified"`
	JDComplexity          string  `json:"jd_complexity"`
	ExactSkillMatches     int     `json:"exact_skill_matches"`
	MissingCriticalSkills int     `json:"missing_critical_skills"`
	ConfidenceScore       float64 `json:"confidence_score"`
}

// AnalysisRecord is the persisted form of one analysis: the score result
// plus the qualitative fields worth keeping and the entity references.
type AnalysisRecord struct {
	ID                    uuid.UUID `json:"id"`
	JobID                 uuid.UUID `json:"job_id"`
	ResumeID              uuid.UUID `json:"resume_id"`
	JobTitle              string    `json:"job_title,omitempty"`
	Company               string    `json:"company,omitempty"`
	CandidateName         string    `json:"candidate_name,omitempty"`
	FinalScore            int       `json:"final_score"`
	KeywordScore          int       `json:"keyword_score"`
	SemanticScore         int       `json:"semantic_score"`
	SkillScore            int       `json:"skill_match_score"`
	ExperienceScore       int       `json:"experience_score"`
	Verdict               string    `json:"verdict"`
	MatchingSkills        []string  `json:"matching_skills,omitempty"`
	MissingSkills         []string  `json:"missing_skills,omitempty"`
	MissingQualifications []string  `json:"missing_qualifications,omitempty"`
	Suggestions           []string  `json:"suggestions,omitempty"`
	Reasoning             string    `json:"reasoning,omitempty"`
	Confidence            float64   `json:"confidence"`
	CreatedAt             time.Time `json:"created_at"`
}

// Recommendation returns the hiring recommendation for the record's verdict.
func (a *AnalysisRecord) Recommendation() string {
	switch a.Verdict {
	case VerdictHigh:
		return "Strongly recommend for interview"
	case VerdictMedium:
		return "Consider for interview with reservations"
	default:
		return "Not recommended for this position"
	}
}

// HasCriticalMissingSkills reports whether more than three required skills
// are absent from the resume.
func (a *AnalysisRecord) HasCriticalMissingSkills() bool {
	return len(a.MissingSkills) > 3
}

// ImprovementPriority returns the areas to address first: up to the top
// three missing skills, then up to two missing qualifications.
func (a *AnalysisRecord) ImprovementPriority() []string {
	var priority []string
	priority = append(priority, capList(a.MissingSkills, 3)...)
	priority = append(priority, capList(a.MissingQualifications, 2)...)
	return priority
}

func capList(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// SystemStats is the dashboard aggregate over stored entities.
type SystemStats struct {
	TotalJobs        int     `json:"total_jobs"`
	TotalResumes     int     `json:"total_resumes"`
	TotalAnalyses    int     `json:"total_analyses"`
	HighScoreMatches int     `json:"high_score_matches"`
	AverageScore     float64 `json:"average_score"`
}
