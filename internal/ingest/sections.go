package ingest

import (
	"regexp"
	"strings"
)

// sectionTier classifies a posting section by which skill tier it feeds.
type sectionTier int

const (
	tierOther sectionTier = iota
	tierMust
	tierSkillList
	tierNice
)

// sectionHeadings maps recognized heading lines to their tier. Order
// matters: "preferred qualifications" has to win over the bare
// "qualifications" alternative further down.
var sectionHeadings = []struct {
	tier    sectionTier
	pattern *regexp.Regexp
}{
	{tierNice, regexp.MustCompile(`(?i)^(?:nice[ -]to[ -]haves?|preferred(?: qualifications| skills)?|bonus(?: points| skills)?)\b\s*:?\s*(.*)$`)},
	{tierSkillList, regexp.MustCompile(`(?i)^(?:technical skills?|skills?|technolog(?:y|ies)|tech stack)\b\s*:?\s*(.*)$`)},
	{tierMust, regexp.MustCompile(`(?i)^(?:requirements?|must[ -]haves?|qualifications?|what (?:you'll|you will) need|what we(?:'re| are) looking for)\b\s*:?\s*(.*)$`)},
	{tierOther, regexp.MustCompile(`(?i)^(?:responsibilit(?:y|ies)|duties|benefits|perks|compensation|about(?: us| the (?:role|team|company))?|what (?:you'll|you will) do|how to apply|equal opportunity(?: employer)?)\b\s*:?\s*(.*)$`)},
}

var skillSeparators = regexp.MustCompile(`[,;\n]|\s+and\s+|\s+or\s+`)

// matchHeading reports whether a line opens a recognized section, returning
// the tier and any content that follows the heading on the same line.
func matchHeading(line string) (sectionTier, string, bool) {
	for _, h := range sectionHeadings {
		if m := h.pattern.FindStringSubmatch(line); m != nil {
			return h.tier, strings.TrimSpace(m[1]), true
		}
	}
	return tierOther, "", false
}

// harvestSkills pulls the two skill tiers out of posting text. Requirement
// and skill-list sections feed the must-have tier, preferred and bonus
// sections the nice-to-have tier. A posting with no recognizable sections
// falls back to scanning the whole text against the skill vocabulary.
func harvestSkills(text string) (must, nice []string) {
	var mustText, skillText, niceText strings.Builder
	current := tierOther
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			current = tierOther
			continue
		}
		if tier, rest, ok := matchHeading(line); ok {
			current = tier
			if rest == "" {
				continue
			}
			line = rest
		} else {
			line = strings.TrimLeft(line, "•-*– \t")
		}
		switch current {
		case tierMust:
			mustText.WriteString(line)
			mustText.WriteByte('\n')
		case tierSkillList:
			skillText.WriteString(line)
			skillText.WriteByte('\n')
		case tierNice:
			niceText.WriteString(line)
			niceText.WriteByte('\n')
		}
	}

	mustRaw := append(SplitSkills(skillText.String()), ScanSkills(mustText.String()+skillText.String())...)
	must = CanonicalSkills(mustRaw)
	if len(must) == 0 {
		must = CanonicalSkills(ScanSkills(text))
	}

	niceRaw := append(SplitSkills(niceText.String()), ScanSkills(niceText.String())...)
	nice = subtract(CanonicalSkills(niceRaw), must)
	return must, nice
}

// SplitSkills breaks an explicit skill listing ("Python, Django and AWS")
// into individual names. Fragments too long or too wordy to plausibly be a
// skill name are dropped.
func SplitSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var skills []string
	for _, item := range skillSeparators.Split(text, -1) {
		item = strings.TrimSpace(item)
		if len(item) < 2 || len(item) > 30 {
			continue
		}
		if strings.Count(item, " ") > 2 {
			continue
		}
		skills = append(skills, item)
	}
	return skills
}

// subtract removes every skill already present in remove, keeping order.
func subtract(skills, remove []string) []string {
	if len(skills) == 0 || len(remove) == 0 {
		return skills
	}
	drop := make(map[string]bool, len(remove))
	for _, s := range remove {
		drop[s] = true
	}
	kept := skills[:0]
	for _, s := range skills {
		if !drop[s] {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}
