//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreResult_Category(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{score: 92, want: CategoryExcellent},
		{score: 85, want: CategoryExcellent},
		{score: 84, want: CategoryGood},
		{score: 75, want: CategoryGood},
		{score: 74, want: CategoryFair},
		{score: 60, want: CategoryFair},
		{score: 59, want: CategoryPoor},
		{score: 40, want: CategoryPoor},
		{score: 39, want: CategoryVeryPoor},
		{score: 0, want: CategoryVeryPoor},
	}

	for _, tt := range tests {
		s := &ScoreResult{FinalScore: tt.score}
		assert.Equal(t, tt.want, s.Category(), "score %d", tt.score)
	}
}

func TestScoreResult_Serialization(t *testing.T) {
	s := ScoreResult{
		FinalScore:      78,
		KeywordScore:    81,
		SemanticScore:   70,
		SkillMatchScore: 85,
		ExperienceScore: 100,
		Verdict:         VerdictHigh,
		Breakdown: ScoreBreakdown{
			KeywordWeight:    0.4,
			SemanticWeight:   0.35,
			SkillWeight:      0.15,
			ExperienceWeight: 0.1,
		},
	}

	jsonBytes, err := json.Marshal(s)
	require.NoError(t, err)

	jsonStr := string(jsonBytes)
	assert.Contains(t, jsonStr, `"final_score":78`)
	assert.Contains(t, jsonStr, `"verdict":"High"`)
	assert.Contains(t, jsonStr, `"score_breakdown"`)

	var back ScoreResult
	require.NoError(t, json.Unmarshal(jsonBytes, &back))
	assert.Equal(t, s, back)
}

func TestAnalysisRecord_Recommendation(t *testing.T) {
	tests := []struct {
		verdict string
		want    string
	}{
		{verdict: VerdictHigh, want: "Strongly recommend for interview"},
		{verdict: VerdictMedium, want: "Consider for interview with reservations"},
		{verdict: VerdictLow, want: "Not recommended for this position"},
		{verdict: "", want: "Not recommended for this position"},
	}

	for _, tt := range tests {
		rec := &AnalysisRecord{Verdict: tt.verdict}
		assert.Equal(t, tt.want, rec.Recommendation(), "verdict %q", tt.verdict)
	}
}

func TestAnalysisRecord_HasCriticalMissingSkills(t *testing.T) {
	rec := &AnalysisRecord{MissingSkills: []string{"go", "sql", "docker"}}
	assert.False(t, rec.HasCriticalMissingSkills())

	rec.MissingSkills = append(rec.MissingSkills, "kubernetes")
	assert.True(t, rec.HasCriticalMissingSkills())
}

func TestAnalysisRecord_ImprovementPriority(t *testing.T) {
	rec := &AnalysisRecord{
		MissingSkills:         []string{"go", "sql", "docker", "kubernetes", "terraform"},
		MissingQualifications: []string{"5+ years experience", "BS degree", "AWS certification"},
	}

	got := rec.ImprovementPriority()

	assert.Equal(t, []string{"go", "sql", "docker", "5+ years experience", "BS degree"}, got)
}

func TestAnalysisRecord_ImprovementPriorityShortLists(t *testing.T) {
	rec := &AnalysisRecord{MissingSkills: []string{"go"}}
	assert.Equal(t, []string{"go"}, rec.ImprovementPriority())

	assert.Empty(t, (&AnalysisRecord{}).ImprovementPriority())
}

func TestDetailedMetrics_JSONKeys(t *testing.T) {
	m := DetailedMetrics{
		ResumeWordCount:       420,
		SectionsIdentified:    5,
		JDComplexity:          "Medium",
		ExactSkillMatches:     3,
		MissingCriticalSkills: 1,
		ConfidenceScore:       91.7,
	}

	jsonBytes, err := json.Marshal(m)
	require.NoError(t, err)

	jsonStr := string(jsonBytes)
	assert.Contains(t, jsonStr, `"resume_length":420`)
	assert.Contains(t, jsonStr, `"sections_identified":5`)
	assert.Contains(t, jsonStr, `"jd_complexity":"Medium"`)
	assert.Contains(t, jsonStr, `"confidence_score":91.7`)
}
