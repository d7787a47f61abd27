package types

import (
	"fmt"
	"math"
)

// Default scoring weights and verdict thresholds.
const (
	DefaultKeywordWeight    = 0.4
	DefaultSemanticWeight   = 0.35
	DefaultSkillWeight      = 0.15
	DefaultExperienceWeight = 0.1

	DefaultMinimumScore = 40.0
	DefaultMediumScore  = 50.0
	DefaultHighScore    = 75.0
)

// weightSumTolerance is the allowed deviation of the weight sum from 1.0.
const weightSumTolerance = 0.01

// MatchingCriteria configures the scoring engine: four component weights
// that must sum to 1.0 and the three verdict thresholds. It is the single
// source of truth for score-to-verdict classification.
type MatchingCriteria struct {
	KeywordWeight    float64 `json:"keyword_weight"`
	SemanticWeight   float64 `json:"semantic_weight"`
	SkillWeight      float64 `json:"skill_weight"`
	ExperienceWeight float64 `json:"experience_weight"`

	MinimumScore float64 `json:"minimum_score"`
	MediumScore  float64 `json:"medium_score"`
	HighScore    float64 `json:"high_score"`
}

// DefaultCriteria returns the standard weights (0.4/0.35/0.15/0.1) and
// thresholds (40/50/75).
func DefaultCriteria() MatchingCriteria {
	return MatchingCriteria{
		KeywordWeight:    DefaultKeywordWeight,
		SemanticWeight:   DefaultSemanticWeight,
		SkillWeight:      DefaultSkillWeight,
		ExperienceWeight: DefaultExperienceWeight,
		MinimumScore:     DefaultMinimumScore,
		MediumScore:      DefaultMediumScore,
		HighScore:        DefaultHighScore,
	}
}

// NewMatchingCriteria validates and returns the given criteria. Construction
// fails fast on malformed weights or thresholds; nothing is silently fixed.
func NewMatchingCriteria(c MatchingCriteria) (MatchingCriteria, error) {
	if err := c.Validate(); err != nil {
		return MatchingCriteria{}, err
	}
	return c, nil
}

// Validate checks the weight-sum and threshold-ordering invariants.
func (c MatchingCriteria) Validate() error {
	sum := c.KeywordWeight + c.SemanticWeight + c.SkillWeight + c.ExperienceWeight
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %.4f", sum)
	}
	if c.MinimumScore < 0 || c.MinimumScore > c.MediumScore ||
		c.MediumScore > c.HighScore || c.HighScore > 100 {
		return fmt.Errorf("score thresholds must be in ascending order within [0,100], got %.1f/%.1f/%.1f",
			c.MinimumScore, c.MediumScore, c.HighScore)
	}
	return nil
}

// VerdictFor classifies a final score against the configured thresholds.
func (c MatchingCriteria) VerdictFor(score float64) string {
	switch {
	case score >= c.HighScore:
		return VerdictHigh
	case score >= c.MediumScore:
		return VerdictMedium
	default:
		return VerdictLow
	}
}
