package matching

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Blend weights for the three lexical sub-signals.
const (
	tfidfBlendWeight        = 0.4
	presenceBlendWeight     = 0.3
	skillKeywordBlendWeight = 0.3
)

// fuzzyMatchThreshold is the minimum partial-ratio score treated as a hit.
const fuzzyMatchThreshold = 80

// fuzzyPartialCredit is the keyword credit for a fuzzy, non-verbatim hit.
const fuzzyPartialCredit = 0.7

// keywordScore blends vector-space similarity, keyword presence, and
// skill-keyword matching into a 0-100 lexical score.
func (e *Engine) keywordScore(resume *types.Resume, jd *types.JobDescription) float64 {
	resumeText := strings.ToLower(resume.Content)
	jdText := strings.ToLower(jd.Description)

	tfidf := e.similarity.Similarity(resumeText, jdText)
	presence := e.keywordPresence(resumeText, jdText)
	skillKeyword := skillKeywordMatch(resumeText, jd.AllSkills())

	combined := (tfidf*tfidfBlendWeight +
		presence*presenceBlendWeight +
		skillKeyword*skillKeywordBlendWeight) * 100

	return clampScore(combined)
}

// keywordPresence scores how many of the job description's important
// keywords appear in the resume: full credit for a verbatim occurrence,
// partial credit when the best fuzzy match over resume tokens clears the
// threshold. An empty keyword set scores 0.
func (e *Engine) keywordPresence(resumeText, jdText string) float64 {
	keywords := extractImportantKeywords(jdText)
	if len(keywords) == 0 {
		return 0.0
	}

	resumeTokens := strings.Fields(resumeText)

	credits := 0.0
	for _, keyword := range keywords {
		if strings.Contains(resumeText, keyword) {
			credits += 1.0
			continue
		}
		if bestPartialRatio(e.fuzzy, keyword, resumeTokens) >= fuzzyMatchThreshold {
			credits += fuzzyPartialCredit
		}
	}

	return credits / float64(len(keywords))
}

// bestPartialRatio returns the highest partial-ratio score of s against any
// candidate token.
func bestPartialRatio(m FuzzyMatcher, s string, candidates []string) int {
	best := 0
	for _, c := range candidates {
		if r := m.PartialRatio(s, c); r > best {
			best = r
		}
	}
	return best
}

// skillKeywordMatch credits each required skill found in the resume: 1.0
// for an exact substring, 0.8 when every word of the phrase appears as a
// token, 0.4 when only some words do. With no skills specified it returns
// the full 1.0 credit.
func skillKeywordMatch(resumeText string, skills []string) float64 {
	if len(skills) == 0 {
		return 1.0
	}

	resumeWords := fieldsSet(resumeText)

	credits := 0.0
	for _, skill := range skills {
		s := strings.ToLower(strings.TrimSpace(skill))
		if strings.Contains(resumeText, s) {
			credits += 1.0
			continue
		}

		words := strings.Fields(s)
		matched := 0
		for _, w := range words {
			if resumeWords[w] {
				matched++
			}
		}
		switch {
		case len(words) > 0 && matched == len(words):
			credits += 0.8
		case matched > 0:
			credits += 0.4
		}
	}

	return credits / float64(len(skills))
}
