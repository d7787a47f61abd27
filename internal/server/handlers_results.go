package server

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/types"
)

// handleSearchResults returns stored analysis results matching the query
// string filters. With no filters it lists the most recent results;
// with filters it returns matches ordered by score.
func (s *Server) handleSearchResults(w http.ResponseWriter, r *http.Request) {
	filters := parseResultFilters(r.URL.Query())

	var (
		results []types.AnalysisRecord
		err     error
	)
	if filters.Empty() {
		results, err = s.db.ListRecentResults(r.Context(), filters.Limit)
	} else {
		results, err = s.db.SearchResults(r.Context(), filters)
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

// handleGetResult returns a single analysis result with its derived
// recommendation and improvement priorities.
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	result, err := s.db.GetAnalysisResult(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if result == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis result not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"result":               result,
		"recommendation":       result.Recommendation(),
		"improvement_priority": result.ImprovementPriority(),
	})
}

// handleStats returns aggregate counts and score statistics.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetSystemStats(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stats)
}

// parseResultFilters maps search query parameters onto result filters.
// Unparseable numeric and date values are ignored rather than rejected.
func parseResultFilters(q url.Values) db.ResultFilters {
	filters := db.ResultFilters{
		JobTitle: strings.TrimSpace(q.Get("job_title")),
		Company:  strings.TrimSpace(q.Get("company")),
		Location: strings.TrimSpace(q.Get("location")),
	}

	if v := q.Get("min_score"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.MinScore = n
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Limit = n
		}
	}

	// verdict accepts repeated parameters and comma-separated lists,
	// case-insensitively: ?verdict=high,medium or ?verdict=High&verdict=Low.
	for _, raw := range q["verdict"] {
		for _, part := range strings.Split(raw, ",") {
			if v, ok := canonicalVerdict(part); ok {
				filters.Verdicts = append(filters.Verdicts, v)
			}
		}
	}

	if v := q.Get("date_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.DateFrom = t
		} else if t, err := time.Parse("2006-01-02", v); err == nil {
			filters.DateFrom = t
		}
	}

	return filters
}

// canonicalVerdict normalizes a user-supplied verdict to its stored form.
func canonicalVerdict(raw string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return types.VerdictHigh, true
	case "medium":
		return types.VerdictMedium, true
	case "low":
		return types.VerdictLow, true
	default:
		return "", false
	}
}
