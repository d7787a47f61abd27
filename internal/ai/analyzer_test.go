package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

// stubClient satisfies Client without any network. Embeddings are keyed by
// the exact text passed to Embed.
type stubClient struct {
	jsonResponse string
	jsonErr      error
	embeddings   map[string][]float32
	embedErr     error
}

func (s *stubClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	if s.jsonErr != nil {
		return "", s.jsonErr
	}
	return s.jsonResponse, nil
}

func (s *stubClient) Embed(ctx context.Context, text string) ([]float32, error) {
	if s.embedErr != nil {
		return nil, s.embedErr
	}
	return s.embeddings[text], nil
}

func (s *stubClient) Model() string { return "stub-model" }

func (s *stubClient) Close() error { return nil }

const validAssessmentJSON = `{
	"matching_skills": ["go", "postgresql"],
	"missing_skills": ["kubernetes"],
	"missing_qualifications": [],
	"experience_assessment": "Six years of backend work, directly relevant.",
	"education_assessment": "Degree requirement met.",
	"suggestions": ["Gain hands-on Kubernetes experience"],
	"reasoning": "Covers most must-have skills with relevant depth.",
	"strengths": ["Distributed systems background"],
	"weaknesses": ["No orchestration exposure"]
}`

func testResume() *types.Resume {
	return &types.Resume{
		CandidateName: "Ada Smith",
		Content:       "Backend engineer with six years of Go and PostgreSQL.",
	}
}

func testJob() *types.JobDescription {
	return &types.JobDescription{
		Title:          "Senior Backend Engineer",
		Company:        "Initech",
		Description:    "Build and operate Go services backed by PostgreSQL.",
		MustHaveSkills: []string{"go", "postgresql", "kubernetes"},
	}
}

func TestAnalyze_Success(t *testing.T) {
	resume := testResume()
	jd := testJob()
	client := &stubClient{
		jsonResponse: validAssessmentJSON,
		embeddings: map[string][]float32{
			resume.Content: {0.6, 0.8},
			jd.Description: {0.6, 0.8},
		},
	}
	analyzer := NewAnalyzer(client, nil)

	bundle, err := analyzer.Analyze(context.Background(), resume, jd)
	require.NoError(t, err)
	require.NotNil(t, bundle)

	assert.InDelta(t, 1.0, bundle.SemanticSimilarity, 1e-9)
	assert.Equal(t, []string{"go", "postgresql"}, bundle.MatchingSkills)
	assert.Equal(t, []string{"kubernetes"}, bundle.MissingSkills)
	assert.Equal(t, "Covers most must-have skills with relevant depth.", bundle.Reasoning)
	assert.Equal(t, []string{"Gain hands-on Kubernetes experience"}, bundle.Suggestions)
	assert.Equal(t, []string{"Distributed systems background"}, bundle.Strengths)
}

func TestAnalyze_FencedResponseStillParses(t *testing.T) {
	resume := testResume()
	jd := testJob()
	client := &stubClient{
		jsonResponse: "```json\n" + validAssessmentJSON + "\n```",
		embeddings: map[string][]float32{
			resume.Content: {1, 0},
			jd.Description: {1, 0},
		},
	}
	analyzer := NewAnalyzer(client, nil)

	bundle, err := analyzer.Analyze(context.Background(), resume, jd)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "postgresql"}, bundle.MatchingSkills)
}

func TestAnalyze_EmbeddingFailureDegradesToZero(t *testing.T) {
	client := &stubClient{
		jsonResponse: validAssessmentJSON,
		embedErr:     errors.New("quota exceeded"),
	}
	analyzer := NewAnalyzer(client, nil)

	bundle, err := analyzer.Analyze(context.Background(), testResume(), testJob())
	require.NoError(t, err)
	require.NotNil(t, bundle)

	assert.Zero(t, bundle.SemanticSimilarity)
	assert.Equal(t, []string{"go", "postgresql"}, bundle.MatchingSkills)
}

func TestAnalyze_QualitativeFailureUsesFallback(t *testing.T) {
	resume := testResume()
	jd := testJob()
	client := &stubClient{
		jsonErr: errors.New("model overloaded"),
		embeddings: map[string][]float32{
			resume.Content: {0, 1},
			jd.Description: {0, 1},
		},
	}
	analyzer := NewAnalyzer(client, nil)

	bundle, err := analyzer.Analyze(context.Background(), resume, jd)
	require.NoError(t, err)
	require.NotNil(t, bundle)

	assert.InDelta(t, 1.0, bundle.SemanticSimilarity, 1e-9)
	assert.Len(t, bundle.Suggestions, 5)
	assert.Contains(t, bundle.Reasoning, "unavailable")
	assert.Empty(t, bundle.MatchingSkills)
}

func TestAnalyze_SchemaRejectionUsesFallback(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{
			name:     "wrong type for matching_skills",
			response: `{"matching_skills": "go", "missing_skills": [], "suggestions": [], "reasoning": "ok"}`,
		},
		{
			name:     "missing required reasoning",
			response: `{"matching_skills": [], "missing_skills": [], "suggestions": []}`,
		},
		{
			name:     "not JSON at all",
			response: "I cannot produce an assessment for this pair.",
		},
	}

	resume := testResume()
	jd := testJob()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{
				jsonResponse: tt.response,
				embeddings: map[string][]float32{
					resume.Content: {1, 0},
					jd.Description: {1, 0},
				},
			}
			analyzer := NewAnalyzer(client, nil)

			bundle, err := analyzer.Analyze(context.Background(), resume, jd)
			require.NoError(t, err)
			require.NotNil(t, bundle)
			assert.Len(t, bundle.Suggestions, 5)
			assert.Contains(t, bundle.Reasoning, "unavailable")
		})
	}
}

func TestAnalyze_BothCallsFailing(t *testing.T) {
	client := &stubClient{
		jsonErr:  errors.New("model overloaded"),
		embedErr: errors.New("quota exceeded"),
	}
	analyzer := NewAnalyzer(client, nil)

	bundle, err := analyzer.Analyze(context.Background(), testResume(), testJob())
	require.Error(t, err)
	assert.Nil(t, bundle)
	assert.Contains(t, err.Error(), "analysis failed")
	assert.Contains(t, err.Error(), "model overloaded")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestAnalyze_BlankTextsSkipEmbedding(t *testing.T) {
	// With nothing to embed the similarity call cannot fail, so a broken
	// embedding endpoint still leaves the fallback path available.
	resume := testResume()
	resume.Content = "   "
	client := &stubClient{
		jsonErr:  errors.New("model overloaded"),
		embedErr: errors.New("quota exceeded"),
	}
	analyzer := NewAnalyzer(client, nil)

	bundle, err := analyzer.Analyze(context.Background(), resume, testJob())
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Zero(t, bundle.SemanticSimilarity)
	assert.Len(t, bundle.Suggestions, 5)
}

func TestAnalyze_NilInputs(t *testing.T) {
	analyzer := NewAnalyzer(&stubClient{}, nil)

	_, err := analyzer.Analyze(context.Background(), nil, testJob())
	require.Error(t, err)

	_, err = analyzer.Analyze(context.Background(), testResume(), nil)
	require.Error(t, err)
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{name: "identical vectors", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, expected: 1.0},
		{name: "orthogonal vectors", a: []float32{1, 0}, b: []float32{0, 1}, expected: 0.0},
		{name: "opposite vectors", a: []float32{1, 0}, b: []float32{-1, 0}, expected: -1.0},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 2}, expected: 0.0},
		{name: "mismatched lengths", a: []float32{1, 2}, b: []float32{1, 2, 3}, expected: 0.0},
		{name: "empty vectors", a: nil, b: nil, expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestFallbackBundle_ReturnsFreshCopy(t *testing.T) {
	first := FallbackBundle()
	first.Suggestions[0] = "mutated"
	first.MatchingSkills = append(first.MatchingSkills, "added")

	second := FallbackBundle()
	assert.Len(t, second.Suggestions, 5)
	assert.NotEqual(t, "mutated", second.Suggestions[0])
	assert.Empty(t, second.MatchingSkills)
}

func TestBuildAnalysisPrompt(t *testing.T) {
	resume := testResume()
	jd := testJob()
	jd.NiceToHaveSkills = nil
	jd.ExperienceLevel = ""

	prompt := buildAnalysisPrompt(resume, jd)

	assert.Contains(t, prompt, "Senior Backend Engineer")
	assert.Contains(t, prompt, "Initech")
	assert.Contains(t, prompt, "Ada Smith")
	assert.Contains(t, prompt, "go, postgresql, kubernetes")
	assert.Contains(t, prompt, "Not specified")
	assert.Contains(t, prompt, `"matching_skills"`)
	assert.Contains(t, prompt, "Return ONLY the JSON object")
	assert.True(t, strings.Contains(prompt, resume.Content))
	assert.True(t, strings.Contains(prompt, jd.Description))
}
