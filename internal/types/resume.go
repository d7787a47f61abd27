// Package types provides the domain model shared across the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Resume represents an uploaded candidate resume with normalized contact fields.
type Resume struct {
	ID            uuid.UUID `json:"id,omitempty"`
	CandidateName string    `json:"candidate_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Location      string    `json:"location,omitempty"`
	Content       string    `json:"content"`
	Filename      string    `json:"filename,omitempty"`
	UploadedAt    time.Time `json:"uploaded_at,omitempty"`
}

// NewResume builds a Resume with one-time normalization applied:
// the email is lower-cased and trimmed, the content is trimmed.
// Fields are never re-normalized after construction.
func NewResume(name, email, content string) *Resume {
	return &Resume{
		CandidateName: strings.TrimSpace(name),
		Email:         strings.ToLower(strings.TrimSpace(email)),
		Content:       strings.TrimSpace(content),
	}
}

// WordCount returns the number of whitespace-separated words in the content.
func (r *Resume) WordCount() int {
	return len(strings.Fields(r.Content))
}

// CharCount returns the length of the content in bytes.
func (r *Resume) CharCount() int {
	return len(r.Content)
}
