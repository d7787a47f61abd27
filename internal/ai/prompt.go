package ai

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// analysisResponseShape spells out the exact JSON the model must return.
const analysisResponseShape = `Respond with valid JSON in exactly this shape:
{
    "matching_skills": ["skill1", "skill2"],
    "missing_skills": ["skill1", "skill2"],
    "missing_qualifications": ["qualification1", "qualification2"],
    "experience_assessment": "Brief assessment of relevant experience",
    "education_assessment": "Brief assessment of educational background",
    "suggestions": [
        "Specific suggestion 1",
        "Specific suggestion 2",
        "Specific suggestion 3"
    ],
    "reasoning": "Detailed explanation of the overall assessment",
    "strengths": ["strength1", "strength2"],
    "weaknesses": ["weakness1", "weakness2"]
}

Focus on:
1. Technical skills alignment with job requirements
2. Experience level and relevance
3. Educational background fit
4. Missing critical skills or qualifications
5. Actionable improvement suggestions
6. Overall candidate potential for this role

Be specific and constructive in your assessment.
Return ONLY the JSON object, no markdown, no explanation, no code blocks.`

// buildAnalysisPrompt lays out the posting, the resume, and the response
// shape for the qualitative assessment call.
func buildAnalysisPrompt(resume *types.Resume, jd *types.JobDescription) string {
	var sb strings.Builder

	sb.WriteString("You are an expert HR analyst and resume reviewer. ")
	sb.WriteString("Analyze how well the candidate's resume matches the job description. ")
	sb.WriteString("Provide detailed, actionable insights and maintain objectivity.\n\n")

	fmt.Fprintf(&sb, "JOB DESCRIPTION:\nTitle: %s\nCompany: %s\nExperience Level: %s\nEmployment Type: %s\n\n",
		jd.Title,
		orNotSpecified(jd.Company),
		orNotSpecified(jd.ExperienceLevel),
		orNotSpecified(jd.EmploymentType))

	fmt.Fprintf(&sb, "Must-have Skills: %s\nNice-to-have Skills: %s\n\n",
		orNotSpecified(strings.Join(jd.MustHaveSkills, ", ")),
		orNotSpecified(strings.Join(jd.NiceToHaveSkills, ", ")))

	fmt.Fprintf(&sb, "Job Description Content:\n%s\n\n", jd.Description)

	fmt.Fprintf(&sb, "RESUME:\nCandidate: %s\nLocation: %s\n\nResume Content:\n%s\n\n",
		resume.CandidateName,
		orNotSpecified(resume.Location),
		resume.Content)

	sb.WriteString(analysisResponseShape)
	return sb.String()
}

func orNotSpecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Not specified"
	}
	return value
}
