// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobDescription outputs a human-readable summary of the job description.
func (p *Printer) PrintJobDescription(jd *types.JobDescription) {
	if jd == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", jd.Title))
	if jd.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", jd.Company))
	}
	if jd.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", jd.Location))
	}
	if jd.ExperienceLevel != "" {
		sb.WriteString(fmt.Sprintf("Level:    %s\n", jd.ExperienceLevel))
	}
	sb.WriteString("\n")

	// Must-have skills
	if len(jd.MustHaveSkills) > 0 {
		sb.WriteString("Must-have Skills:\n")
		count := min(len(jd.MustHaveSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", jd.MustHaveSkills[i]))
		}
		if len(jd.MustHaveSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(jd.MustHaveSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	// Nice to haves
	if len(jd.NiceToHaveSkills) > 0 {
		sb.WriteString("Nice-to-have Skills:\n")
		count := min(len(jd.NiceToHaveSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", jd.NiceToHaveSkills[i]))
		}
		if len(jd.NiceToHaveSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(jd.NiceToHaveSkills)-3))
		}
	}

	p.printBox("JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreResult outputs the final score with its component breakdown.
func (p *Printer) PrintScoreResult(score *types.ScoreResult) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Final Score:  %d/100\n", score.FinalScore))
	sb.WriteString(fmt.Sprintf("Verdict:      %s\n", score.Verdict))
	sb.WriteString(fmt.Sprintf("Category:     %s\n", score.Category()))
	sb.WriteString("\n")

	sb.WriteString("Components:\n")
	sb.WriteString(fmt.Sprintf("  Keyword:     %3d  (weight %.2f)\n", score.KeywordScore, score.Breakdown.KeywordWeight))
	sb.WriteString(fmt.Sprintf("  Semantic:    %3d  (weight %.2f)\n", score.SemanticScore, score.Breakdown.SemanticWeight))
	sb.WriteString(fmt.Sprintf("  Skills:      %3d  (weight %.2f)\n", score.SkillMatchScore, score.Breakdown.SkillWeight))
	sb.WriteString(fmt.Sprintf("  Experience:  %3d  (weight %.2f)", score.ExperienceScore, score.Breakdown.ExperienceWeight))

	p.printBox("MATCH SCORE", sb.String())
}

// PrintAssessment outputs the qualitative AI assessment.
func (p *Printer) PrintAssessment(bundle *types.ExternalAnalysisBundle) {
	if bundle == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Semantic similarity: %.2f\n", bundle.SemanticSimilarity))

	if len(bundle.MatchingSkills) > 0 {
		skills := strings.Join(bundle.MatchingSkills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Matching:  %s\n", skills))
	}
	if len(bundle.MissingSkills) > 0 {
		skills := strings.Join(bundle.MissingSkills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Missing:   %s\n", skills))
	}

	if len(bundle.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(bundle.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			suggestion := bundle.Suggestions[i]
			if len(suggestion) > 50 {
				suggestion = suggestion[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", suggestion))
		}
		if len(bundle.Suggestions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(bundle.Suggestions)-maxItemsToShow))
		}
	}

	if bundle.Reasoning != "" {
		reasoning := bundle.Reasoning
		if len(reasoning) > 50 {
			reasoning = reasoning[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nReasoning: %s", reasoning))
	}

	p.printBox("AI ASSESSMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDetailedMetrics outputs the scoring diagnostics.
func (p *Printer) PrintDetailedMetrics(metrics *types.DetailedMetrics) {
	if metrics == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume words:            %d\n", metrics.ResumeWordCount))
	sb.WriteString(fmt.Sprintf("Sections identified:     %d\n", metrics.SectionsIdentified))
	sb.WriteString(fmt.Sprintf("JD complexity:           %s\n", metrics.JDComplexity))
	sb.WriteString(fmt.Sprintf("Exact skill matches:     %d\n", metrics.ExactSkillMatches))
	sb.WriteString(fmt.Sprintf("Missing critical skills: %d\n", metrics.MissingCriticalSkills))
	sb.WriteString(fmt.Sprintf("Confidence:              %.1f%%", metrics.ConfidenceScore))

	p.printBox("DETAILED METRICS", sb.String())
}
