package ai

import "github.com/jonathan/resume-matcher/internal/types"

// fallbackReasoning explains a degraded assessment to the reader of the
// final report.
const fallbackReasoning = "Automated qualitative analysis was unavailable; scoring relied on deterministic signals only."

// fallbackSuggestions are generic improvement suggestions used when the
// generative model cannot produce candidate-specific ones.
var fallbackSuggestions = []string{
	"Consider acquiring the missing technical skills through online courses",
	"Gain practical experience with the required technologies through projects",
	"Update resume to highlight relevant experience more prominently",
	"Consider obtaining relevant certifications in the required skill areas",
	"Network with professionals in the industry to gain insights and opportunities",
}

// FallbackBundle is the neutral assessment used when the generative call
// fails: no skill claims either way, generic suggestions, and a reasoning
// note naming the degradation. Callers receive a fresh copy each time.
func FallbackBundle() *types.ExternalAnalysisBundle {
	return &types.ExternalAnalysisBundle{
		Suggestions: append([]string(nil), fallbackSuggestions...),
		Reasoning:   fallbackReasoning,
	}
}
