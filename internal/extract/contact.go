package extract

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// Phone formats tried in order of specificity.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+?1?[-.\s]?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`),
	regexp.MustCompile(`\b\d{10}\b`),
	regexp.MustCompile(`\b\d{3}[-.\s]\d{3}[-.\s]\d{4}\b`),
}

var (
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/([a-zA-Z0-9-]+)`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/([a-zA-Z0-9-]+)`)
)

// ContactInfo holds whatever contact details could be located in a resume.
// Absent fields stay empty.
type ContactInfo struct {
	Email    string
	Phone    string
	LinkedIn string
	GitHub   string
}

// Contact scans resume text for an email address, a phone number, and
// LinkedIn/GitHub profile references.
func Contact(text string) ContactInfo {
	info := ContactInfo{
		Email: emailPattern.FindString(text),
	}

	for _, pattern := range phonePatterns {
		if m := strings.TrimSpace(pattern.FindString(text)); m != "" {
			info.Phone = m
			break
		}
	}

	if m := linkedinPattern.FindStringSubmatch(text); m != nil {
		info.LinkedIn = "linkedin.com/in/" + m[1]
	}
	if m := githubPattern.FindStringSubmatch(text); m != nil {
		info.GitHub = "github.com/" + m[1]
	}

	return info
}
