// Package matching implements the hybrid resume-to-job scoring engine: four
// independent 0-100 component signals blended by configurable weights into a
// final score and verdict. Every operation is a pure, synchronous function
// of its arguments; the engine performs no I/O and holds no per-call state.
package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Engine scores resumes against job descriptions. Construct with NewEngine;
// a zero-value Engine is not usable. Engines are safe for concurrent use:
// the injected strategies are stateless and the criteria are fixed at
// construction.
type Engine struct {
	criteria   types.MatchingCriteria
	similarity TextSimilarity
	fuzzy      FuzzyMatcher
}

// EngineConfig configures an Engine. Zero-value fields fall back to the
// defaults: DefaultCriteria, the per-call TF-IDF model, and the
// partial-ratio fuzzy matcher.
type EngineConfig struct {
	Criteria   types.MatchingCriteria
	Similarity TextSimilarity
	Fuzzy      FuzzyMatcher
}

// NewEngine validates the criteria and builds an engine. Malformed weights
// or thresholds fail here, at construction, never silently later.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	criteria := cfg.Criteria
	if criteria == (types.MatchingCriteria{}) {
		criteria = types.DefaultCriteria()
	}
	if err := criteria.Validate(); err != nil {
		return nil, fmt.Errorf("invalid matching criteria: %w", err)
	}

	similarity := cfg.Similarity
	if similarity == nil {
		similarity = NewTFIDFSimilarity()
	}
	fuzzy := cfg.Fuzzy
	if fuzzy == nil {
		fuzzy = NewPartialRatioMatcher()
	}

	return &Engine{
		criteria:   criteria,
		similarity: similarity,
		fuzzy:      fuzzy,
	}, nil
}

// Criteria returns the criteria the engine scores with.
func (e *Engine) Criteria() types.MatchingCriteria {
	return e.criteria
}

// CalculateHybridScore combines the four component signals into a final
// score and verdict. Component-level degradation (empty text, absent
// analysis fields) yields documented neutral defaults inside each signal;
// only inputs the engine cannot score at all produce an error, so callers
// can distinguish a low score from a failed scoring.
func (e *Engine) CalculateHybridScore(resume *types.Resume, jd *types.JobDescription, analysis *types.ExternalAnalysisBundle) (*types.ScoreResult, error) {
	if resume == nil || jd == nil {
		return nil, fmt.Errorf("scoring failed: resume and job description are required")
	}
	if strings.TrimSpace(resume.Content) == "" && strings.TrimSpace(jd.Description) == "" && jd.SkillCount() == 0 {
		return nil, fmt.Errorf("scoring failed: resume and job description are both empty")
	}

	keyword := e.keywordScore(resume, jd)
	semantic := semanticScore(analysis)
	skill := skillMatchScore(resume, jd)
	experience := experienceScore(resume, jd)

	final := keyword*e.criteria.KeywordWeight +
		semantic*e.criteria.SemanticWeight +
		skill*e.criteria.SkillWeight +
		experience*e.criteria.ExperienceWeight
	final = clampScore(math.Round(final))

	return &types.ScoreResult{
		FinalScore:      int(final),
		KeywordScore:    roundScore(keyword),
		SemanticScore:   roundScore(semantic),
		SkillMatchScore: roundScore(skill),
		ExperienceScore: roundScore(experience),
		Verdict:         e.criteria.VerdictFor(final),
		Breakdown: types.ScoreBreakdown{
			KeywordWeight:    e.criteria.KeywordWeight,
			SemanticWeight:   e.criteria.SemanticWeight,
			SkillWeight:      e.criteria.SkillWeight,
			ExperienceWeight: e.criteria.ExperienceWeight,
		},
	}, nil
}

// clampScore bounds a score to [0,100].
func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// roundScore rounds a component score to the nearest integer within range.
func roundScore(s float64) int {
	return int(clampScore(math.Round(s)))
}
