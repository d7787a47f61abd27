package ingest

import "strings"

// skillAliases maps common shorthand skill names to one canonical spelling.
// Every skill entering the system passes through NormalizeSkill so that
// "JS" in a posting and "javascript" on a resume compare equal.
var skillAliases = map[string]string{
	"js":         "javascript",
	"ts":         "typescript",
	"py":         "python",
	"node":       "node.js",
	"react.js":   "react",
	"vue.js":     "vue",
	"angular.js": "angular",
	"postgres":   "postgresql",
	"mongo":      "mongodb",
}

// skillVocabulary lists well-known skill names used to scan free text.
// Entries are lowercase and already canonical under NormalizeSkill.
var skillVocabulary = []string{
	// programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby",
	"php", "swift", "kotlin", "go", "rust", "scala", "matlab", "perl",
	"bash", "powershell",
	// web technologies
	"html", "css", "react", "angular", "vue", "node.js", "express",
	"django", "flask", "spring", "bootstrap", "jquery", "webpack",
	"rest api", "graphql",
	// databases
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"oracle", "sqlite", "cassandra", "dynamodb", "firebase",
	// cloud and infrastructure
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins",
	"terraform", "ansible", "gitlab", "github actions", "git", "linux",
	// data science
	"machine learning", "deep learning", "artificial intelligence",
	"data analysis", "data science", "pandas", "numpy", "scikit-learn",
	"tensorflow", "pytorch", "tableau", "power bi", "spark",
	// ways of working
	"leadership", "communication", "teamwork", "problem solving",
	"project management", "agile", "scrum",
}

// NormalizeSkill lower-cases and trims a skill name and resolves shorthand
// aliases to their canonical form.
func NormalizeSkill(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := skillAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// CanonicalSkills normalizes every entry and drops duplicates while
// preserving first-seen order. An input with no usable entries yields nil.
func CanonicalSkills(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		canonical := NormalizeSkill(s)
		if canonical == "" || seen[canonical] {
			continue
		}
		seen[canonical] = true
		out = append(out, canonical)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ScanSkills returns every vocabulary skill that occurs in the text as a
// whole token, in vocabulary order. Matching is case-insensitive and
// boundary-aware, so "go" never fires inside "good" and "java" never fires
// inside "javascript".
func ScanSkills(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var found []string
	for _, skill := range skillVocabulary {
		if wordBounded(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// wordBounded reports whether needle occurs in haystack with no letter or
// digit flush against either end. Needles may themselves contain non-word
// characters ("c++", "node.js"), which rules out a plain \b regex.
func wordBounded(haystack, needle string) bool {
	for start := 0; ; {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		beforeOK := idx == 0 || !isWordByte(haystack[idx-1])
		end := idx + len(needle)
		afterOK := end == len(haystack) || !isWordByte(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
