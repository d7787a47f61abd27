package matching

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Weight shares of the two requirement tiers.
const (
	mustHaveShare   = 0.8
	niceToHaveShare = 0.2
)

// noSkillsDefaultScore is returned when a job specifies no skills at all:
// no constraint, assume adequate.
const noSkillsDefaultScore = 85.0

// skillMatchScore scores the resume against the job's two skill tiers.
// Each tier contributes its found-ratio times its weight share; an empty
// tier awards its full share automatically.
func skillMatchScore(resume *types.Resume, jd *types.JobDescription) float64 {
	mustHave := jd.MustHaveSkills
	niceToHave := jd.NiceToHaveSkills
	if len(mustHave) == 0 && len(niceToHave) == 0 {
		return noSkillsDefaultScore
	}

	resumeText := strings.ToLower(resume.Content)
	resumeWords := fieldsSet(resumeText)

	mustScore := mustHaveShare
	if len(mustHave) > 0 {
		mustScore = tierFoundRatio(mustHave, resumeText, resumeWords) * mustHaveShare
	}

	niceScore := niceToHaveShare
	if len(niceToHave) > 0 {
		niceScore = tierFoundRatio(niceToHave, resumeText, resumeWords) * niceToHaveShare
	}

	return clampScore((mustScore + niceScore) * 100)
}

func tierFoundRatio(skills []string, resumeText string, resumeWords map[string]bool) float64 {
	found := 0
	for _, skill := range skills {
		if skillFoundInText(skill, resumeText, resumeWords) {
			found++
		}
	}
	return float64(found) / float64(len(skills))
}

// skillFoundInText reports whether a skill is present in the resume, either
// as an exact substring or with every word of the phrase appearing as a
// separate token.
func skillFoundInText(skill, resumeText string, resumeWords map[string]bool) bool {
	s := strings.ToLower(strings.TrimSpace(skill))
	if strings.Contains(resumeText, s) {
		return true
	}
	for _, w := range strings.Fields(s) {
		if !resumeWords[w] {
			return false
		}
	}
	return true
}
