package extract

import (
	"regexp"
	"strings"
)

var (
	controlChars   = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	blankLineRuns  = regexp.MustCompile(`\n\s*\n`)
	spaceRuns      = regexp.MustCompile(` +`)
	excessNewlines = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes extracted document text: uniform line endings,
// control characters stripped, space and blank-line runs collapsed, and
// surrounding whitespace trimmed.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = controlChars.ReplaceAllString(text, "")
	text = blankLineRuns.ReplaceAllString(text, "\n\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	text = excessNewlines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
