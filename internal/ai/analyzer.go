package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Analyzer produces the external analysis bundle for a resume/job pair:
// an embedding-space similarity plus a qualitative assessment from the
// generative model. The two calls run concurrently and degrade
// independently, so one failing provider feature never blocks the other.
type Analyzer struct {
	client Client
	logger *zap.Logger
}

// NewAnalyzer wraps an AI client. A nil logger disables analyzer logging.
func NewAnalyzer(client Client, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{client: client, logger: logger}
}

// Analyze runs the embedding and assessment calls for the pair. When the
// embedding call fails the similarity degrades to 0.0; when the assessment
// call fails (or returns a response the schema rejects) the bundle degrades
// to FallbackBundle. Only both failing together is an error.
func (a *Analyzer) Analyze(ctx context.Context, resume *types.Resume, jd *types.JobDescription) (*types.ExternalAnalysisBundle, error) {
	if resume == nil || jd == nil {
		return nil, errors.New("resume and job description are required")
	}

	var (
		similarity float64
		simErr     error
		bundle     *types.ExternalAnalysisBundle
		bundleErr  error
	)

	var g errgroup.Group
	g.Go(func() error {
		similarity, simErr = a.semanticSimilarity(ctx, resume.Content, jd.Description)
		return nil
	})
	g.Go(func() error {
		bundle, bundleErr = a.qualitative(ctx, resume, jd)
		return nil
	})
	_ = g.Wait()

	if simErr != nil && bundleErr != nil {
		return nil, fmt.Errorf("analysis failed: %w; %w", bundleErr, simErr)
	}
	if simErr != nil {
		a.logger.Warn("semantic similarity unavailable, scoring without it",
			zap.String("model", a.client.Model()),
			zap.Error(simErr))
		similarity = 0.0
	}
	if bundleErr != nil {
		a.logger.Warn("qualitative assessment unavailable, using fallback",
			zap.String("model", a.client.Model()),
			zap.Error(bundleErr))
		bundle = FallbackBundle()
	}

	bundle.SemanticSimilarity = similarity
	return bundle, nil
}

// semanticSimilarity embeds both texts and returns their cosine similarity.
// Blank input on either side reads as no signal, not an error.
func (a *Analyzer) semanticSimilarity(ctx context.Context, resumeText, jobText string) (float64, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return 0.0, nil
	}

	resumeVec, err := a.client.Embed(ctx, resumeText)
	if err != nil {
		return 0.0, fmt.Errorf("resume embedding: %w", err)
	}
	jobVec, err := a.client.Embed(ctx, jobText)
	if err != nil {
		return 0.0, fmt.Errorf("job description embedding: %w", err)
	}
	return CosineSimilarity(resumeVec, jobVec), nil
}

// qualitative requests the structured assessment and validates it against
// the response schema before trusting any of its fields.
func (a *Analyzer) qualitative(ctx context.Context, resume *types.Resume, jd *types.JobDescription) (*types.ExternalAnalysisBundle, error) {
	raw, err := a.client.GenerateJSON(ctx, buildAnalysisPrompt(resume, jd))
	if err != nil {
		return nil, fmt.Errorf("assessment call: %w", err)
	}

	cleaned := CleanJSONBlock(raw)
	if err := schemas.ValidateAnalysisResponse(cleaned); err != nil {
		return nil, fmt.Errorf("assessment response rejected: %w", err)
	}

	var bundle types.ExternalAnalysisBundle
	if err := json.Unmarshal([]byte(cleaned), &bundle); err != nil {
		return nil, fmt.Errorf("assessment response malformed: %w", err)
	}
	return &bundle, nil
}

// CosineSimilarity computes the cosine of the angle between two embedding
// vectors. Mismatched lengths, empty vectors, and zero-norm vectors all
// return 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
