package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

var schemaNames = []string{
	AnalysisResponse,
	JobDescription,
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, name := range schemaNames {
		t.Run(name, func(t *testing.T) {
			content, err := Get(name)
			require.NoError(t, err, "should be able to read embedded schema")

			var v interface{}
			err = json.Unmarshal([]byte(content), &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", name)
		})
	}
}

func TestAllSchemaFiles_CompileAsJSONSchema(t *testing.T) {
	for _, name := range schemaNames {
		t.Run(name, func(t *testing.T) {
			loader := gojsonschema.NewStringLoader(MustGet(name))
			_, err := gojsonschema.NewSchema(loader)
			assert.NoError(t, err, "schema should compile: %s", name)
		})
	}
}

func TestGet_UnknownSchema(t *testing.T) {
	_, err := Get("no_such.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such.schema.json")
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() { MustGet("no_such.schema.json") })
}

func TestAnalysisResponseSchema_AcceptsWellFormedDocument(t *testing.T) {
	doc := `{
		"matching_skills": ["python"],
		"missing_skills": ["kubernetes"],
		"missing_qualifications": [],
		"experience_assessment": "Solid backend background.",
		"education_assessment": "Relevant degree.",
		"suggestions": ["Learn Kubernetes"],
		"reasoning": "Good overlap on core stack.",
		"strengths": ["Python depth"],
		"weaknesses": ["No container experience"]
	}`

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(MustGet(AnalysisResponse)),
		gojsonschema.NewStringLoader(doc),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid(), "errors: %v", result.Errors())
}

func TestAnalysisResponseSchema_RejectsWrongTypes(t *testing.T) {
	doc := `{
		"matching_skills": "python",
		"missing_skills": [],
		"suggestions": [],
		"reasoning": "x"
	}`

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(MustGet(AnalysisResponse)),
		gojsonschema.NewStringLoader(doc),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid(), "string matching_skills should be rejected")
}

func TestJobDescriptionSchema_RequiresTitle(t *testing.T) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(MustGet(JobDescription)),
		gojsonschema.NewStringLoader(`{"company": "Initech"}`),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid(), "missing title should be rejected")
}

func TestJobDescriptionSchema_RejectsUnknownEnumValue(t *testing.T) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(MustGet(JobDescription)),
		gojsonschema.NewStringLoader(`{"title": "Engineer", "experience_level": "Wizard"}`),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid(), "unknown experience level should be rejected")
}
