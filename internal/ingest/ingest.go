// Package ingest turns raw job-posting text into a structured JobDescription.
//
// The heuristics are deliberately lightweight: a title from the first
// plausible line, labeled company and location lines, employment-type and
// seniority markers, and a two-tier skill harvest from requirement and
// preferred-qualification sections. A posting that defeats every heuristic
// still yields a usable JobDescription carrying the full text as its
// description.
package ingest

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/types"
)

// FallbackTitle is used when no plausible title line is found.
const FallbackTitle = "Untitled Position"

// titleScanLines bounds how far into the posting the title search looks.
const titleScanLines = 10

var (
	labeledTitlePattern = regexp.MustCompile(`(?i)(?:job title|position|role)\s*[:\-]\s*(.+)`)
	trailingRoleWord    = regexp.MustCompile(`(?i)\s+(?:position|role|job)\s*$`)
	companyPattern      = regexp.MustCompile(`(?i)^(?:company|employer)\s*:\s*(.+)$`)
	locationPattern     = regexp.MustCompile(`(?i)^location\s*:\s*(.+)$`)

	// metaLinePattern matches lines that carry only workplace or schedule
	// tags ("Remote · Full-time") and therefore cannot be the title.
	metaLinePattern = regexp.MustCompile(`(?i)^(?:full[ -]time|part[ -]time|contract|internship|remote|hybrid|on[ -]?site)(?:\s*[·,/|]\s*(?:full[ -]time|part[ -]time|contract|internship|remote|hybrid|on[ -]?site))*$`)

	experienceLabelPattern = regexp.MustCompile(`(?i)(?:experience level|seniority)\s*:\s*(.+)`)
)

var employmentTypePatterns = []struct {
	label   string
	pattern *regexp.Regexp
}{
	{types.EmploymentInternship, regexp.MustCompile(`(?i)\bintern(?:ship)?\b`)},
	{types.EmploymentContract, regexp.MustCompile(`(?i)\bcontract(?:or)?\b`)},
	{types.EmploymentPartTime, regexp.MustCompile(`(?i)\bpart[ -]time\b`)},
	{types.EmploymentFullTime, regexp.MustCompile(`(?i)\bfull[ -]time\b`)},
}

var experienceLevelPatterns = []struct {
	label   string
	pattern *regexp.Regexp
}{
	{types.ExperienceExecutive, regexp.MustCompile(`(?i)\b(?:vice president|vp|chief|director|head of)\b`)},
	{types.ExperienceSenior, regexp.MustCompile(`(?i)\b(?:senior|sr|staff|principal|lead)\b`)},
	{types.ExperienceEntry, regexp.MustCompile(`(?i)\b(?:junior|jr|entry[ -]level|graduate|intern(?:ship)?)\b`)},
	{types.ExperienceMid, regexp.MustCompile(`(?i)\b(?:mid[ -]level|intermediate)\b`)},
}

// JobDescription builds a structured job description from raw posting text.
// sourceURL, when given, fills the company from known job-board URL shapes
// if the posting itself never names one.
func JobDescription(text, sourceURL string) *types.JobDescription {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))

	title := Title(text)
	must, nice := harvestSkills(text)

	jd := &types.JobDescription{
		Title:            title,
		Company:          labeledLine(text, companyPattern),
		Location:         labeledLine(text, locationPattern),
		EmploymentType:   DetectEmploymentType(text),
		ExperienceLevel:  DetectExperienceLevel(title, text),
		Description:      text,
		MustHaveSkills:   must,
		NiceToHaveSkills: nice,
	}
	if jd.Company == "" && sourceURL != "" {
		jd.Company = companyFromURL(sourceURL)
	}
	return jd
}

// Title returns the job title guessed from the first plausible line of the
// posting, or FallbackTitle when nothing usable is found. A line with an
// explicit "position:" style label yields its labeled value; otherwise the
// line itself is the title, minus a trailing "position", "role" or "job".
func Title(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > titleScanLines {
		lines = lines[:titleScanLines]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 5 || len(line) >= 100 {
			continue
		}
		if _, _, heading := matchHeading(line); heading {
			continue
		}
		if companyPattern.MatchString(line) || locationPattern.MatchString(line) || metaLinePattern.MatchString(line) {
			continue
		}
		if m := labeledTitlePattern.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
		return strings.TrimSpace(trailingRoleWord.ReplaceAllString(line, ""))
	}
	return FallbackTitle
}

// DetectEmploymentType returns the first employment type the posting
// mentions, most specific first, or "" when none appears.
func DetectEmploymentType(text string) string {
	for _, et := range employmentTypePatterns {
		if et.pattern.MatchString(text) {
			return et.label
		}
	}
	return ""
}

// DetectExperienceLevel classifies seniority from the job title, falling
// back to an explicit "experience level:" label in the posting body. Only
// the title and that label are consulted, never the body at large.
func DetectExperienceLevel(title, text string) string {
	if level := levelFromPhrase(title); level != "" {
		return level
	}
	if m := experienceLabelPattern.FindStringSubmatch(text); m != nil {
		return levelFromPhrase(m[1])
	}
	return ""
}

func levelFromPhrase(phrase string) string {
	for _, el := range experienceLevelPatterns {
		if el.pattern.MatchString(phrase) {
			return el.label
		}
	}
	return ""
}

// labeledLine returns the first value captured by pattern across the
// posting's lines.
func labeledLine(text string, pattern *regexp.Regexp) string {
	for _, line := range strings.Split(text, "\n") {
		if m := pattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// companyFromURL recovers the company slug that hosted job boards embed in
// their URLs, e.g. boards.greenhouse.io/<company>/jobs/<id> or
// <company>.wd5.myworkdayjobs.com.
func companyFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	switch fetch.DetectPlatform(rawURL) {
	case fetch.PlatformGreenhouse, fetch.PlatformLever:
		if seg := firstPathSegment(u.Path); seg != "" {
			return titleCaseSlug(seg)
		}
	case fetch.PlatformWorkday:
		host := u.Hostname()
		if i := strings.Index(host, "."); i > 0 {
			return titleCaseSlug(host[:i])
		}
	}
	return ""
}

func firstPathSegment(path string) string {
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			return seg
		}
	}
	return ""
}

// titleCaseSlug turns "acme-co" into "Acme Co".
func titleCaseSlug(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
