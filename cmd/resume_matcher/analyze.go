package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/ai"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long: `Score a resume file against a job description JSON document and print
the hybrid match score, verdict, and diagnostics.

The resume may be a PDF, DOCX, HTML, or plain text file. The job description
must be a JSON file that validates against the job_description schema.

When a Gemini API key is available (--api-key, config file, or the
GEMINI_API_KEY environment variable) the score includes AI semantic
similarity and a qualitative skill assessment. Without a key the command
still scores using the deterministic signals only.`,
	RunE: runAnalyze,
}

var (
	analyzeResumePath string
	analyzeJobPath    string
	analyzeName       string
	analyzeEmail      string
	analyzePhone      string
	analyzeAPIKey     string
	analyzeConfigPath string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "Path to resume file (PDF, DOCX, HTML, or text) (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJobPath, "job", "j", "", "Path to job description JSON file (required)")
	analyzeCmd.Flags().StringVar(&analyzeName, "name", "", "Candidate name (overrides value extracted from resume)")
	analyzeCmd.Flags().StringVar(&analyzeEmail, "email", "", "Candidate email (overrides value extracted from resume)")
	analyzeCmd.Flags().StringVar(&analyzePhone, "phone", "", "Candidate phone (overrides value extracted from resume)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file with matching weights and thresholds")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted report boxes instead of JSON")

	analyzeCmd.MarkFlagRequired("resume") //nolint:errcheck
	analyzeCmd.MarkFlagRequired("job")    //nolint:errcheck

	rootCmd.AddCommand(analyzeCmd)
}

// analysisOutput is the JSON document printed by the analyze command.
type analysisOutput struct {
	*types.ScoreResult
	Category       string                        `json:"category"`
	Recommendation string                        `json:"recommendation"`
	Assessment     *types.ExternalAnalysisBundle `json:"assessment,omitempty"`
	Metrics        *types.DetailedMetrics        `json:"detailed_metrics"`
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	resume, err := loadResume(analyzeResumePath)
	if err != nil {
		return err
	}
	if analyzeName != "" {
		resume.CandidateName = analyzeName
	}
	if analyzeEmail != "" {
		resume.Email = analyzeEmail
	}
	if analyzePhone != "" {
		resume.Phone = analyzePhone
	}

	jd, err := loadJobDescription(analyzeJobPath)
	if err != nil {
		return err
	}

	criteria, err := cfg.Criteria()
	if err != nil {
		return fmt.Errorf("invalid matching configuration: %w", err)
	}
	engine, err := matching.NewEngine(matching.EngineConfig{Criteria: criteria})
	if err != nil {
		return fmt.Errorf("failed to create matching engine: %w", err)
	}

	bundle := analyzeWithAI(ctx, &cfg, resume, jd)

	score, err := engine.CalculateHybridScore(resume, jd, bundle)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}
	metrics := engine.CalculateDetailedMetrics(resume, jd, bundle)

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintJobDescription(jd)
		printer.PrintScoreResult(score)
		printer.PrintAssessment(bundle)
		printer.PrintDetailedMetrics(metrics)
		return nil
	}

	rec := types.AnalysisRecord{Verdict: score.Verdict}
	output := analysisOutput{
		ScoreResult:    score,
		Category:       score.Category(),
		Recommendation: rec.Recommendation(),
		Assessment:     bundle,
		Metrics:        metrics,
	}
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)

	return nil
}

// loadResume reads a resume file, extracts its text, and backfills contact
// details the candidate flags did not supply.
func loadResume(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	text, err := extract.Text(filepath.Base(path), data)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("resume file %s yielded no readable text", path)
	}

	resume := &types.Resume{
		Content:  text,
		Filename: filepath.Base(path),
	}
	contact := extract.Contact(text)
	resume.Email = contact.Email
	resume.Phone = contact.Phone

	return resume, nil
}

// loadJobDescription reads a job description JSON file, validates it
// against the schema, and decodes it.
func loadJobDescription(path string) (*types.JobDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job description file: %w", err)
	}

	if err := schemas.ValidateJobDescription(string(data)); err != nil {
		return nil, fmt.Errorf("job description failed schema validation: %w", err)
	}

	var jd types.JobDescription
	if err := json.Unmarshal(data, &jd); err != nil {
		return nil, fmt.Errorf("failed to parse job description JSON: %w", err)
	}
	if err := jd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job description: %w", err)
	}

	return &jd, nil
}

// analyzeWithAI runs the AI analysis when an API key is available. Any
// failure degrades to the neutral fallback bundle so scoring proceeds on
// the deterministic signals.
func analyzeWithAI(ctx context.Context, cfg *config.Config, resume *types.Resume, jd *types.JobDescription) *types.ExternalAnalysisBundle {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: no Gemini API key provided; scoring without AI signals\n")
		return ai.FallbackBundle()
	}

	client, err := ai.NewGeminiClient(ctx, apiKey, cfg.AIConfig())
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: AI client unavailable (%v); scoring without AI signals\n", err)
		return ai.FallbackBundle()
	}
	defer client.Close() //nolint:errcheck

	bundle, err := ai.NewAnalyzer(client, zap.NewNop()).Analyze(ctx, resume, jd)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: AI analysis failed (%v); scoring without AI signals\n", err)
		return ai.FallbackBundle()
	}

	return bundle
}
