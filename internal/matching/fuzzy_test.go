package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialRatioMatcher_IdenticalStrings(t *testing.T) {
	m := NewPartialRatioMatcher()

	assert.Equal(t, 100, m.PartialRatio("kubernetes", "kubernetes"))
}

func TestPartialRatioMatcher_SubstringScoresFull(t *testing.T) {
	m := NewPartialRatioMatcher()

	// Partial ratio slides the shorter string over the longer one, so a
	// clean substring scores 100.
	assert.Equal(t, 100, m.PartialRatio("python", "python,"))
}

func TestPartialRatioMatcher_CloseVariantClearsThreshold(t *testing.T) {
	m := NewPartialRatioMatcher()

	assert.GreaterOrEqual(t, m.PartialRatio("pythn", "python"), fuzzyMatchThreshold)
}

func TestPartialRatioMatcher_UnrelatedStringsStayLow(t *testing.T) {
	m := NewPartialRatioMatcher()

	assert.Less(t, m.PartialRatio("kubernetes", "gardening"), fuzzyMatchThreshold)
}

func TestNullStrategies(t *testing.T) {
	assert.Equal(t, 0.0, NullSimilarity{}.Similarity("a", "a"))
	assert.Equal(t, 0, NullFuzzy{}.PartialRatio("a", "a"))
}
