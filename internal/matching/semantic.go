package matching

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Adjustment policy applied on top of the raw similarity signal.
const (
	matchingSkillBonus     = 2.0
	matchingSkillBonusCap  = 10.0
	missingSkillPenalty    = 3.0
	missingSkillPenaltyCap = 15.0
)

// semanticScore converts the externally supplied similarity signal into a
// 0-100 score, with a capped bonus per matching skill and a capped penalty
// per missing skill. A nil or empty bundle degrades to 0, never errors.
func semanticScore(analysis *types.ExternalAnalysisBundle) float64 {
	score := analysis.Similarity() * 100

	if n := len(analysis.Matching()); n > 0 {
		score += math.Min(matchingSkillBonusCap, float64(n)*matchingSkillBonus)
	}
	if n := len(analysis.Missing()); n > 0 {
		score -= math.Min(missingSkillPenaltyCap, float64(n)*missingSkillPenalty)
	}

	return clampScore(score)
}
