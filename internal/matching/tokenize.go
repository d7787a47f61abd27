package matching

import (
	"regexp"
	"strings"
)

// minKeywordLength is the shortest token (exclusive) counted as a keyword.
const minKeywordLength = 3

var alphaTokenPattern = regexp.MustCompile(`[a-zA-Z]+`)

// extractImportantKeywords pulls the meaningful terms out of job-description
// text: alphabetic tokens longer than three characters, minus the fixed
// stop-word set, de-duplicated in first-occurrence order. The input is
// expected to be lower-cased already.
func extractImportantKeywords(text string) []string {
	tokens := alphaTokenPattern.FindAllString(text, -1)

	seen := make(map[string]bool, len(tokens))
	keywords := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) <= minKeywordLength || keywordStopWords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
	}
	return keywords
}

// fieldsSet returns the whitespace-separated tokens of text as a membership
// set. Punctuation stays attached to tokens, matching plain split semantics.
func fieldsSet(text string) map[string]bool {
	fields := strings.Fields(text)
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
