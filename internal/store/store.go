// Package store is the save collaborator: a client that ships documents to
// the save endpoint, and the server-side flat-file store behind it.
package store

import (
	"strconv"
	"time"

	"resumecraft/internal/resume"
)

// StorageVersion stamps every stored envelope.
const StorageVersion = "1.0"

// StoredResume is the persisted envelope: the document's fields inline plus
// the storage metadata stamped at save time.
type StoredResume struct {
	resume.Document
	ID          string `json:"id"`
	LastUpdated string `json:"last_updated"`
	Version     string `json:"version"`
}

// Summary is the listing shape for stored resumes.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LastUpdated string `json:"last_updated"`
	Version     string `json:"version"`
}

// SaveRequest is the wire shape of a save call. ResumeID is optional; the
// store generates one when absent.
type SaveRequest struct {
	ResumeData resume.Document `json:"resume_data"`
	ResumeID   string          `json:"resume_id,omitempty"`
}

// SaveResponse acknowledges a save with the effective identifier.
type SaveResponse struct {
	Message  string `json:"message"`
	ResumeID string `json:"resume_id"`
}

// NewResumeID mints a save identifier from the current wall clock.
func NewResumeID() string {
	return "resume_" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
