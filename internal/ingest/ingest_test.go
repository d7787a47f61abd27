package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

const samplePosting = `Senior Backend Engineer
Company: Initech
Location: Austin, TX
Remote · Full-time

Requirements:
- 5+ years of experience with Python and Django
- Strong PostgreSQL and Redis background
- Familiarity with Docker and Kubernetes

Nice to have:
- AWS, Terraform
- GraphQL

Responsibilities:
- Build and operate backend services
`

func TestJobDescription_FullPosting(t *testing.T) {
	jd := JobDescription(samplePosting, "")

	assert.Equal(t, "Senior Backend Engineer", jd.Title)
	assert.Equal(t, "Initech", jd.Company)
	assert.Equal(t, "Austin, TX", jd.Location)
	assert.Equal(t, types.EmploymentFullTime, jd.EmploymentType)
	assert.Equal(t, types.ExperienceSenior, jd.ExperienceLevel)
	assert.Equal(t, strings.TrimSpace(samplePosting), jd.Description)

	assert.ElementsMatch(t, []string{"python", "django", "postgresql", "redis", "docker", "kubernetes"}, jd.MustHaveSkills)
	assert.ElementsMatch(t, []string{"aws", "terraform", "graphql"}, jd.NiceToHaveSkills)

	require.NoError(t, jd.Validate())
}

func TestJobDescription_MinimalPosting(t *testing.T) {
	jd := JobDescription("Backend Engineer\nBuild things.", "")

	assert.Equal(t, "Backend Engineer", jd.Title)
	assert.Empty(t, jd.Company)
	assert.Empty(t, jd.EmploymentType)
	assert.Empty(t, jd.ExperienceLevel)
	assert.Empty(t, jd.MustHaveSkills)
	require.NoError(t, jd.Validate())
}

func TestJobDescription_CompanyFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"greenhouse board", "https://boards.greenhouse.io/initech/jobs/4028", "Initech"},
		{"lever board", "https://jobs.lever.co/acme-co/f0a1b2c3", "Acme Co"},
		{"workday tenant", "https://initech.wd5.myworkdayjobs.com/en-US/careers", "Initech"},
		{"company site", "https://example.com/careers/123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jd := JobDescription("Backend Engineer\nBuild things.", tt.url)
			assert.Equal(t, tt.want, jd.Company)
		})
	}
}

func TestJobDescription_LabeledCompanyBeatsURL(t *testing.T) {
	jd := JobDescription("Backend Engineer\nCompany: Hooli\n", "https://boards.greenhouse.io/initech/jobs/1")
	assert.Equal(t, "Hooli", jd.Company)
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"first plausible line", "Senior Backend Engineer\nCompany: X Corp", "Senior Backend Engineer"},
		{"labeled position", "Position: Data Scientist\nBuild models.", "Data Scientist"},
		{"labeled role with dash", "Role - Platform Engineer\nKeep the lights on.", "Platform Engineer"},
		{"trailing role word stripped", "Marketing Manager role\nWe sell things.", "Marketing Manager"},
		{"meta line skipped", "Remote · Full-time\nStaff Software Engineer\nJoin us.", "Staff Software Engineer"},
		{"section heading skipped", "About us\nQuality Engineer\nWe test things.", "Quality Engineer"},
		{"nothing plausible", "Hi\nOk\n!!", FallbackTitle},
		{"empty text", "", FallbackTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.text))
		})
	}
}

func TestDetectEmploymentType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"full-time", "This is a full-time position.", types.EmploymentFullTime},
		{"full time spaced", "Full time, on site in Berlin.", types.EmploymentFullTime},
		{"part-time", "Offered part-time to start.", types.EmploymentPartTime},
		{"contract", "A 6-month contract with extension.", types.EmploymentContract},
		{"internship", "Our summer internship program.", types.EmploymentInternship},
		{"internship beats full-time", "A full-time internship.", types.EmploymentInternship},
		{"internal is not intern", "You will maintain internal tooling.", ""},
		{"nothing", "Join our team.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectEmploymentType(tt.text))
		})
	}
}

func TestDetectExperienceLevel(t *testing.T) {
	tests := []struct {
		name  string
		title string
		text  string
		want  string
	}{
		{"senior title", "Senior Software Engineer", "", types.ExperienceSenior},
		{"abbreviated senior", "Sr. Data Engineer", "", types.ExperienceSenior},
		{"staff title", "Staff Platform Engineer", "", types.ExperienceSenior},
		{"director title", "Engineering Director", "", types.ExperienceExecutive},
		{"head of title", "Head of Platform", "", types.ExperienceExecutive},
		{"intern title", "Software Engineering Intern", "", types.ExperienceEntry},
		{"intermediate title", "Intermediate Developer", "", types.ExperienceMid},
		{"label in body", "Software Engineer", "Seniority: junior", types.ExperienceEntry},
		{"no signal", "Machine Learning Engineer", "We train models.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectExperienceLevel(tt.title, tt.text))
		})
	}
}
