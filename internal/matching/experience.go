package matching

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Experience scoring policy. Underqualification is penalized harder than
// overqualification, and both penalties are floored.
const (
	underYearPenalty  = 15.0
	overYearPenalty   = 5.0
	underPenaltyFloor = 30.0
	overPenaltyFloor  = 70.0
	unknownLevelScore = 75.0
	perfectBandScore  = 100.0
)

// Fallback year estimates by role-indicator count.
const (
	seniorIndicatorYears = 5
	midIndicatorYears    = 3
	entryIndicatorYears  = 1
)

var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*in\s*\w+`),
	regexp.MustCompile(`(?i)experience[:\s]*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*professional`),
}

var roleIndicatorPattern = regexp.MustCompile(`(?i)\b(?:worked|employed|position|role)\b`)

// experienceBand is the [min, max] year range a declared level maps to.
type experienceBand struct {
	minYears float64
	maxYears float64
}

var levelBands = map[string]experienceBand{
	strings.ToLower(types.ExperienceEntry):     {0, 2},
	strings.ToLower(types.ExperienceMid):       {2, 5},
	strings.ToLower(types.ExperienceSenior):    {5, 10},
	strings.ToLower(types.ExperienceExecutive): {10, math.Inf(1)},
}

// experienceScore maps the resume's inferred years of experience against
// the job's declared level band. Inside the band scores 100; each year of
// shortfall costs underYearPenalty down to its floor, each year of excess
// costs overYearPenalty down to its floor. An unrecognized or absent level
// returns the neutral default.
func experienceScore(resume *types.Resume, jd *types.JobDescription) float64 {
	band, ok := levelBands[strings.ToLower(jd.ExperienceLevel)]
	if !ok {
		return unknownLevelScore
	}

	years := float64(extractYearsOfExperience(strings.ToLower(resume.Content)))

	switch {
	case years >= band.minYears && years <= band.maxYears:
		return perfectBandScore
	case years < band.minYears:
		gap := band.minYears - years
		return math.Max(underPenaltyFloor, 100-gap*underYearPenalty)
	default:
		excess := years - band.maxYears
		return math.Max(overPenaltyFloor, 100-excess*overYearPenalty)
	}
}

// extractYearsOfExperience returns the largest explicit year count stated
// in the text. When nothing explicit is found it estimates from
// role-indicator words: three or more suggest a senior history, two a mid
// one, one an entry one.
func extractYearsOfExperience(text string) int {
	maxYears := -1
	for _, pattern := range yearsPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			if years, err := strconv.Atoi(match[1]); err == nil && years > maxYears {
				maxYears = years
			}
		}
	}
	if maxYears >= 0 {
		return maxYears
	}

	indicators := len(roleIndicatorPattern.FindAllString(text, -1))
	switch {
	case indicators >= 3:
		return seniorIndicatorYears
	case indicators >= 2:
		return midIndicatorYears
	case indicators >= 1:
		return entryIndicatorYears
	default:
		return 0
	}
}
