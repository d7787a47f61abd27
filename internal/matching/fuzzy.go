package matching

import (
	fuzzywuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// TextSimilarity scores the lexical similarity of two documents in [0,1].
// Implementations must be stateless across calls: nothing fitted on one
// document pair may influence another.
type TextSimilarity interface {
	Similarity(a, b string) float64
}

// FuzzyMatcher scores approximate string similarity on a 0-100 scale,
// tolerant of substring and word-order variation.
type FuzzyMatcher interface {
	PartialRatio(a, b string) int
}

// NewPartialRatioMatcher returns the production fuzzy matcher.
func NewPartialRatioMatcher() FuzzyMatcher {
	return partialRatioMatcher{}
}

type partialRatioMatcher struct{}

func (partialRatioMatcher) PartialRatio(a, b string) int {
	return fuzzywuzzy.PartialRatio(a, b)
}

// NullSimilarity is the fallback TextSimilarity: every pair scores 0. It
// stands in when vector similarity is deliberately disabled, so the keyword
// blend degrades instead of failing.
type NullSimilarity struct{}

// Similarity always reports 0.
func (NullSimilarity) Similarity(_, _ string) float64 { return 0.0 }

// NullFuzzy is the fallback FuzzyMatcher: every pair scores 0, so only
// verbatim matches earn keyword credit.
type NullFuzzy struct{}

// PartialRatio always reports 0.
func (NullFuzzy) PartialRatio(_, _ string) int { return 0 }
