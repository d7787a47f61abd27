package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/ingest"
	"github.com/jonathan/resume-matcher/internal/types"
)

// CreateJobRequest represents the request body for POST /jobs. Skill
// entries may themselves be comma-separated lists.
type CreateJobRequest struct {
	Title            string   `json:"title"`
	Company          string   `json:"company,omitempty"`
	Location         string   `json:"location,omitempty"`
	Department       string   `json:"department,omitempty"`
	EmploymentType   string   `json:"employment_type,omitempty"`
	ExperienceLevel  string   `json:"experience_level,omitempty"`
	Description      string   `json:"description,omitempty"`
	MustHaveSkills   []string `json:"must_have_skills,omitempty"`
	NiceToHaveSkills []string `json:"nice_to_have_skills,omitempty"`
}

// IngestJobRequest represents the request body for POST /jobs/ingest
type IngestJobRequest struct {
	URL string `json:"url"`
}

// handleCreateJob stores a job description supplied directly by the caller
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	jd := &types.JobDescription{
		Title:            strings.TrimSpace(req.Title),
		Company:          strings.TrimSpace(req.Company),
		Location:         strings.TrimSpace(req.Location),
		Department:       strings.TrimSpace(req.Department),
		EmploymentType:   strings.TrimSpace(req.EmploymentType),
		ExperienceLevel:  strings.TrimSpace(req.ExperienceLevel),
		Description:      req.Description,
		MustHaveSkills:   ingest.CanonicalSkills(expandSkillList(req.MustHaveSkills)),
		NiceToHaveSkills: ingest.CanonicalSkills(expandSkillList(req.NiceToHaveSkills)),
	}
	if err := jd.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job description: "+err.Error())
		return
	}

	id, err := s.db.SaveJobDescription(r.Context(), jd)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	jd.ID = id

	s.jsonResponse(w, http.StatusCreated, jd)
}

// handleListJobs returns stored job summaries, newest first
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.db.ListJobDescriptions(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// handleGetJob returns one job description by ID
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
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

	s.jsonResponse(w, http.StatusOK, jd)
}

// handleIngestJob fetches a posting URL, parses it into a job description,
// and stores the result
func (s *Server) handleIngestJob(w http.ResponseWriter, r *http.Request) {
	var req IngestJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		s.errorResponse(w, http.StatusBadRequest, "url is required")
		return
	}
	if _, err := url.ParseRequestURI(req.URL); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid url: "+err.Error())
		return
	}

	result, err := fetch.Posting(r.Context(), req.URL, nil)
	if err != nil {
		var fetchErr *fetch.Error
		if errors.As(err, &fetchErr) {
			s.errorResponse(w, http.StatusBadGateway, "Fetching posting failed: "+err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Fetching posting failed: "+err.Error())
		return
	}
	if strings.TrimSpace(result.Text) == "" {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Posting yielded no readable text")
		return
	}

	jd := ingest.JobDescription(result.Text, req.URL)

	id, err := s.db.SaveJobDescription(r.Context(), jd)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	jd.ID = id

	s.jsonResponse(w, http.StatusCreated, jd)
}

// pathUUID parses the named path segment as a UUID, writing the error
// response itself when the segment is missing or malformed.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	idStr := r.PathValue(name)
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "ID is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// expandSkillList splits any comma-separated entries so callers can send
// either a JSON array or CSV strings inside it.
func expandSkillList(entries []string) []string {
	var skills []string
	for _, entry := range entries {
		for _, part := range strings.Split(entry, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				skills = append(skills, part)
			}
		}
	}
	return skills
}
