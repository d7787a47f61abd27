//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCriteria_IsValid(t *testing.T) {
	c := DefaultCriteria()
	require.NoError(t, c.Validate())

	assert.InDelta(t, 0.4, c.KeywordWeight, 0.0001)
	assert.InDelta(t, 0.35, c.SemanticWeight, 0.0001)
	assert.InDelta(t, 0.15, c.SkillWeight, 0.0001)
	assert.InDelta(t, 0.1, c.ExperienceWeight, 0.0001)
}

func TestNewMatchingCriteria_WeightSum(t *testing.T) {
	tests := []struct {
		name    string
		c       MatchingCriteria
		wantErr bool
		errMsg  string
	}{
		{
			name: "standard weights sum to 1.0",
			c: MatchingCriteria{
				KeywordWeight:    0.4,
				SemanticWeight:   0.35,
				SkillWeight:      0.15,
				ExperienceWeight: 0.1,
				MinimumScore:     40,
				MediumScore:      50,
				HighScore:        75,
			},
		},
		{
			name: "sum within tolerance",
			c: MatchingCriteria{
				KeywordWeight:    0.4,
				SemanticWeight:   0.35,
				SkillWeight:      0.15,
				ExperienceWeight: 0.105,
				MinimumScore:     40,
				MediumScore:      50,
				HighScore:        75,
			},
		},
		{
			name: "sum too high",
			c: MatchingCriteria{
				KeywordWeight:    0.5,
				SemanticWeight:   0.35,
				SkillWeight:      0.15,
				ExperienceWeight: 0.1,
				MinimumScore:     40,
				MediumScore:      50,
				HighScore:        75,
			},
			wantErr: true,
			errMsg:  "weights must sum to 1.0",
		},
		{
			name: "sum too low",
			c: MatchingCriteria{
				KeywordWeight:    0.2,
				SemanticWeight:   0.2,
				SkillWeight:      0.2,
				ExperienceWeight: 0.2,
				MinimumScore:     40,
				MediumScore:      50,
				HighScore:        75,
			},
			wantErr: true,
			errMsg:  "weights must sum to 1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMatchingCriteria(tt.c)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewMatchingCriteria_ThresholdOrdering(t *testing.T) {
	base := func() MatchingCriteria {
		c := DefaultCriteria()
		return c
	}

	tests := []struct {
		name    string
		mutate  func(*MatchingCriteria)
		wantErr bool
	}{
		{
			name:   "ascending thresholds 40/50/75",
			mutate: func(c *MatchingCriteria) { c.MinimumScore, c.MediumScore, c.HighScore = 40, 50, 75 },
		},
		{
			name:   "equal thresholds allowed",
			mutate: func(c *MatchingCriteria) { c.MinimumScore, c.MediumScore, c.HighScore = 50, 50, 50 },
		},
		{
			name:    "medium below minimum",
			mutate:  func(c *MatchingCriteria) { c.MinimumScore, c.MediumScore, c.HighScore = 50, 40, 75 },
			wantErr: true,
		},
		{
			name:    "high below medium",
			mutate:  func(c *MatchingCriteria) { c.MinimumScore, c.MediumScore, c.HighScore = 40, 75, 50 },
			wantErr: true,
		},
		{
			name:    "negative minimum",
			mutate:  func(c *MatchingCriteria) { c.MinimumScore = -1 },
			wantErr: true,
		},
		{
			name:    "high above 100",
			mutate:  func(c *MatchingCriteria) { c.HighScore = 101 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			_, err := NewMatchingCriteria(c)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "thresholds")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMatchingCriteria_VerdictFor(t *testing.T) {
	c := DefaultCriteria()

	tests := []struct {
		score float64
		want  string
	}{
		{score: 100, want: VerdictHigh},
		{score: 75, want: VerdictHigh},
		{score: 74, want: VerdictMedium},
		{score: 50, want: VerdictMedium},
		{score: 49, want: VerdictLow},
		{score: 0, want: VerdictLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.VerdictFor(tt.score), "score %.0f", tt.score)
	}
}

func TestMatchingCriteria_VerdictForCustomThresholds(t *testing.T) {
	c := DefaultCriteria()
	c.MediumScore = 60
	c.HighScore = 90
	require.NoError(t, c.Validate())

	assert.Equal(t, VerdictHigh, c.VerdictFor(90))
	assert.Equal(t, VerdictMedium, c.VerdictFor(89))
	assert.Equal(t, VerdictMedium, c.VerdictFor(60))
	assert.Equal(t, VerdictLow, c.VerdictFor(59))
}
