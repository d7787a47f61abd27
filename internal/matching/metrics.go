package matching

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// resumeSections are the section headings scanned for when estimating how
// structured a resume is.
var resumeSections = []string{
	"experience", "education", "skills", "projects", "certifications",
	"achievements", "summary", "objective", "contact",
}

// Skill-count boundaries for the job-description complexity tiers.
const (
	highComplexitySkills   = 10
	mediumComplexitySkills = 5
)

// CalculateDetailedMetrics computes the secondary diagnostics for an
// analysis: resume shape, job-description complexity, match counts, and
// the confidence estimate. It is best-effort; unusable inputs produce a
// default-confidence result rather than an error.
func (e *Engine) CalculateDetailedMetrics(resume *types.Resume, jd *types.JobDescription, analysis *types.ExternalAnalysisBundle) *types.DetailedMetrics {
	m := &types.DetailedMetrics{
		ConfidenceScore: confidenceScore(resume, jd, analysis),
	}

	if resume != nil {
		m.ResumeWordCount = resume.WordCount()
		m.SectionsIdentified = countResumeSections(resume.Content)
	}
	if jd != nil {
		m.JDComplexity = assessJDComplexity(jd)
	}
	m.ExactSkillMatches = len(analysis.Matching())
	m.MissingCriticalSkills = len(analysis.Missing())

	return m
}

// countResumeSections counts how many known section headings occur in the
// resume text.
func countResumeSections(content string) int {
	text := strings.ToLower(content)
	found := 0
	for _, section := range resumeSections {
		if strings.Contains(text, section) {
			found++
		}
	}
	return found
}

// assessJDComplexity tiers a job description by its total skill count.
func assessJDComplexity(jd *types.JobDescription) string {
	switch count := jd.SkillCount(); {
	case count > highComplexitySkills:
		return "High"
	case count > mediumComplexitySkills:
		return "Medium"
	default:
		return "Low"
	}
}
