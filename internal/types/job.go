package types

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Valid experience-level labels for a job description.
const (
	ExperienceEntry     = "Entry Level"
	ExperienceMid       = "Mid Level"
	ExperienceSenior    = "Senior Level"
	ExperienceExecutive = "Executive"
)

// Valid employment types for a job description.
const (
	EmploymentFullTime   = "Full-time"
	EmploymentPartTime   = "Part-time"
	EmploymentContract   = "Contract"
	EmploymentInternship = "Internship"
)

// JobDescription represents a job posting with two priority tiers of skills.
type JobDescription struct {
	ID               uuid.UUID `json:"id,omitempty"`
	Title            string    `json:"title" validate:"required"`
	Company          string    `json:"company,omitempty"`
	Location         string    `json:"location,omitempty"`
	Department       string    `json:"department,omitempty"`
	EmploymentType   string    `json:"employment_type,omitempty" validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
	ExperienceLevel  string    `json:"experience_level,omitempty" validate:"omitempty,oneof='Entry Level' 'Mid Level' 'Senior Level' Executive"`
	Description      string    `json:"description,omitempty"`
	MustHaveSkills   []string  `json:"must_have_skills,omitempty"`
	NiceToHaveSkills []string  `json:"nice_to_have_skills,omitempty"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
}

// NewJobDescription builds a JobDescription from the required title and
// comma-separated skill strings, normalizing both lists at construction time.
func NewJobDescription(title, description, mustHaveCSV, niceToHaveCSV string) *JobDescription {
	return &JobDescription{
		Title:            strings.TrimSpace(title),
		Description:      strings.TrimSpace(description),
		MustHaveSkills:   ParseSkillList(mustHaveCSV),
		NiceToHaveSkills: ParseSkillList(niceToHaveCSV),
	}
}

// ParseSkillList splits a comma-separated skill string into trimmed,
// non-empty entries. An already-empty input yields nil.
func ParseSkillList(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	if len(skills) == 0 {
		return nil
	}
	return skills
}

// AllSkills returns the union of must-have and nice-to-have skills in order.
func (j *JobDescription) AllSkills() []string {
	all := make([]string, 0, len(j.MustHaveSkills)+len(j.NiceToHaveSkills))
	all = append(all, j.MustHaveSkills...)
	all = append(all, j.NiceToHaveSkills...)
	return all
}

// SkillCount returns the total number of skills across both tiers.
func (j *JobDescription) SkillCount() int {
	return len(j.MustHaveSkills) + len(j.NiceToHaveSkills)
}

// Validate checks required fields and enumerated labels.
func (j *JobDescription) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
