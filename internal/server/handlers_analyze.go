package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/ai"
	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxResumeUploadBytes bounds multipart resume uploads.
const maxResumeUploadBytes = 10 << 20

// AnalyzeRequest represents the JSON request body for POST /analyze
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text"`
	JobID      string `json:"job_id"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// AnalyzeResponse represents the full scoring payload for POST /analyze
type AnalyzeResponse struct {
	ResultID              string                 `json:"result_id"`
	JobID                 string                 `json:"job_id"`
	ResumeID              string                 `json:"resume_id"`
	FinalScore            int                    `json:"final_score"`
	KeywordScore          int                    `json:"keyword_score"`
	SemanticScore         int                    `json:"semantic_score"`
	SkillMatchScore       int                    `json:"skill_match_score"`
	ExperienceScore       int                    `json:"experience_score"`
	Verdict               string                 `json:"verdict"`
	Category              string                 `json:"category"`
	Recommendation        string                 `json:"recommendation"`
	MatchingSkills        []string               `json:"matching_skills,omitempty"`
	MissingSkills         []string               `json:"missing_skills,omitempty"`
	MissingQualifications []string               `json:"missing_qualifications,omitempty"`
	Suggestions           []string               `json:"suggestions,omitempty"`
	Reasoning             string                 `json:"reasoning,omitempty"`
	Breakdown             types.ScoreBreakdown   `json:"score_breakdown"`
	Metrics               *types.DetailedMetrics `json:"detailed_metrics,omitempty"`
}

// handleAnalyze scores a resume against a stored job description. The
// resume arrives either as a multipart file upload or as JSON text.
// Nothing is persisted unless scoring succeeds.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var (
		resume   *types.Resume
		jobIDStr string
		ok       bool
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		resume, jobIDStr, ok = s.resumeFromMultipart(w, r)
	} else {
		resume, jobIDStr, ok = s.resumeFromJSON(w, r)
	}
	if !ok {
		return
	}

	jobID, err := uuid.Parse(jobIDStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job_id format")
		return
	}

	jd, err := s.db.GetJobDescription(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if jd == nil {
		s.errorResponse(w, http.StatusNotFound, "Job description not found")
		return
	}

	fillContact(resume)

	bundle, err := s.analyzer.Analyze(r.Context(), resume, jd)
	if err != nil {
		// AI outage degrades the analysis; it never blocks scoring.
		s.logger.Warn("AI analysis unavailable", zap.Error(err))
		bundle = ai.FallbackBundle()
	}

	score, err := s.engine.CalculateHybridScore(resume, jd, bundle)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Scoring failed: "+err.Error())
		return
	}
	metrics := s.engine.CalculateDetailedMetrics(resume, jd, bundle)

	resumeID, err := s.db.SaveResume(r.Context(), resume)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	rec := &types.AnalysisRecord{
		JobID:                 jobID,
		ResumeID:              resumeID,
		FinalScore:            score.FinalScore,
		KeywordScore:          score.KeywordScore,
		SemanticScore:         score.SemanticScore,
		SkillScore:            score.SkillMatchScore,
		ExperienceScore:       score.ExperienceScore,
		Verdict:               score.Verdict,
		MatchingSkills:        bundle.Matching(),
		MissingSkills:         bundle.Missing(),
		MissingQualifications: bundle.MissingQualifications,
		Suggestions:           bundle.Suggestions,
		Reasoning:             bundle.Reasoning,
		Confidence:            metrics.ConfidenceScore,
	}
	resultID, err := s.db.SaveAnalysisResult(r.Context(), rec)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		ResultID:              resultID.String(),
		JobID:                 jobID.String(),
		ResumeID:              resumeID.String(),
		FinalScore:            score.FinalScore,
		KeywordScore:          score.KeywordScore,
		SemanticScore:         score.SemanticScore,
		SkillMatchScore:       score.SkillMatchScore,
		ExperienceScore:       score.ExperienceScore,
		Verdict:               score.Verdict,
		Category:              score.Category(),
		Recommendation:        rec.Recommendation(),
		MatchingSkills:        bundle.Matching(),
		MissingSkills:         bundle.Missing(),
		MissingQualifications: bundle.MissingQualifications,
		Suggestions:           bundle.Suggestions,
		Reasoning:             bundle.Reasoning,
		Breakdown:             score.Breakdown,
		Metrics:               metrics,
	})
}

// resumeFromMultipart reads the uploaded resume file and form fields. It
// writes the error response itself and reports ok=false on failure.
func (s *Server) resumeFromMultipart(w http.ResponseWriter, r *http.Request) (*types.Resume, string, bool) {
	if err := r.ParseMultipartForm(maxResumeUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return nil, "", false
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume file is required")
		return nil, "", false
	}
	defer file.Close()

	jobIDStr := r.FormValue("job_id")
	if jobIDStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "job_id is required")
		return nil, "", false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Reading resume upload failed: "+err.Error())
		return nil, "", false
	}

	text, err := extract.Text(header.Filename, data)
	if err != nil {
		var unsupported *extract.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return nil, "", false
		}
		s.errorResponse(w, http.StatusUnprocessableEntity, "Extracting resume text failed: "+err.Error())
		return nil, "", false
	}
	if strings.TrimSpace(text) == "" {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Resume file yielded no readable text")
		return nil, "", false
	}

	return &types.Resume{
		CandidateName: r.FormValue("name"),
		Email:         r.FormValue("email"),
		Phone:         r.FormValue("phone"),
		Content:       text,
		Filename:      header.Filename,
	}, jobIDStr, true
}

// resumeFromJSON reads the resume text directly from a JSON body. It
// writes the error response itself and reports ok=false on failure.
func (s *Server) resumeFromJSON(w http.ResponseWriter, r *http.Request) (*types.Resume, string, bool) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, "", false
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		s.errorResponse(w, http.StatusBadRequest, "resume_text is required")
		return nil, "", false
	}
	if req.JobID == "" {
		s.errorResponse(w, http.StatusBadRequest, "job_id is required")
		return nil, "", false
	}

	return &types.Resume{
		CandidateName: req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Content:       extract.CleanText(req.ResumeText),
	}, req.JobID, true
}

// fillContact backfills missing contact fields from the resume text.
func fillContact(resume *types.Resume) {
	if resume.Email != "" && resume.Phone != "" {
		return
	}
	info := extract.Contact(resume.Content)
	if resume.Email == "" {
		resume.Email = info.Email
	}
	if resume.Phone == "" {
		resume.Phone = info.Phone
	}
}
