package matching

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/types"
)

// confidenceDefault is the best-effort fallback when inputs are unusable.
const confidenceDefault = 75.0

// Resume word-count range considered adequate for a reliable analysis.
const (
	adequateResumeWordsMin = 200
	adequateResumeWordsMax = 800
)

// Confidence factor values per input-quality check.
const (
	resumeLengthGoodFactor = 0.9
	resumeLengthPoorFactor = 0.6
	jdCompleteFactor       = 0.9
	jdIncompleteFactor     = 0.7
	analysisRichFactor     = 0.95
	analysisThinFactor     = 0.8
)

// confidenceScore estimates how trustworthy the analysis inputs are,
// averaging three independent quality factors and scaling to 0-100 with
// one decimal. It is a diagnostic, never a gate: unusable inputs return
// the default rather than an error.
func confidenceScore(resume *types.Resume, jd *types.JobDescription, analysis *types.ExternalAnalysisBundle) float64 {
	if resume == nil || jd == nil {
		return confidenceDefault
	}

	factors := make([]float64, 0, 3)

	if words := resume.WordCount(); words >= adequateResumeWordsMin && words <= adequateResumeWordsMax {
		factors = append(factors, resumeLengthGoodFactor)
	} else {
		factors = append(factors, resumeLengthPoorFactor)
	}

	if len(jd.MustHaveSkills) > 0 && jd.Description != "" {
		factors = append(factors, jdCompleteFactor)
	} else {
		factors = append(factors, jdIncompleteFactor)
	}

	if analysis.HasReasoning() && len(analysis.Matching()) > 0 {
		factors = append(factors, analysisRichFactor)
	} else {
		factors = append(factors, analysisThinFactor)
	}

	sum := 0.0
	for _, f := range factors {
		sum += f
	}
	avg := sum / float64(len(factors))

	return math.Round(avg*100*10) / 10
}
