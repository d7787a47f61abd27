package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAnalysisResponse_Valid(t *testing.T) {
	jsonContent := `{
		"matching_skills": ["python", "docker"],
		"missing_skills": ["kubernetes"],
		"missing_qualifications": ["5+ years with distributed systems"],
		"experience_assessment": "Five years of relevant backend work.",
		"education_assessment": "Degree matches the stated requirement.",
		"strengths": ["Led migration to containerized deploys"],
		"weaknesses": ["No production Kubernetes exposure"],
		"suggestions": ["Gain hands-on Kubernetes experience"],
		"reasoning": "The candidate covers most must-have skills."
	}`

	err := ValidateAnalysisResponse(jsonContent)
	assert.NoError(t, err)
}

func TestValidateAnalysisResponse_MissingRequiredField(t *testing.T) {
	jsonContent := `{
		"matching_skills": ["python"],
		"missing_skills": [],
		"suggestions": []
	}`

	err := ValidateAnalysisResponse(jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateAnalysisResponse_WrongType(t *testing.T) {
	jsonContent := `{
		"matching_skills": "python",
		"missing_skills": [],
		"suggestions": [],
		"reasoning": "ok"
	}`

	err := ValidateAnalysisResponse(jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJobDescription_Valid(t *testing.T) {
	jsonContent := `{
		"title": "Senior Backend Engineer",
		"company": "Initech",
		"location": "Austin, TX",
		"description": "Build and run backend services.",
		"must_have_skills": ["go", "postgresql"],
		"nice_to_have_skills": ["terraform"],
		"employment_type": "Full-time",
		"experience_level": "Senior Level"
	}`

	err := ValidateJobDescription(jsonContent)
	assert.NoError(t, err)
}

func TestValidateJobDescription_MissingTitle(t *testing.T) {
	jsonContent := `{"company": "Initech"}`

	err := ValidateJobDescription(jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJobDescription_UnknownEnumValue(t *testing.T) {
	jsonContent := `{
		"title": "Engineer",
		"employment_type": "Freelance"
	}`

	err := ValidateJobDescription(jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"name": "test"}`

	err := ValidateJSONString(schemaContent, jsonContent)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object"
	}`

	err := ValidateJSONString(schemaContent, "{ invalid json }")
	require.Error(t, err)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "age")
}

func TestValidateJSONString_NestedFieldValidation(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["person"],
		"properties": {
			"person": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string"}
				}
			}
		}
	}`

	jsonContent := `{"person": {}}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
	// Check that the field path includes nested field
	found := false
	for _, fieldErr := range validationErr.Errors {
		if fieldErr.Field != "" {
			found = true
			break
		}
	}
	assert.True(t, found, "should include field path in error")
}
