package export

import (
	"encoding/json"

	"resumecraft/internal/errors"
	"resumecraft/internal/resume"
)

// JSONExporter produces the structured, lossless artifact. It is the only
// format with an inverse: Import reads its output back into an identical
// document.
type JSONExporter struct{}

// NewJSONExporter creates the structured exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

func (e *JSONExporter) ContentType() string { return "application/json" }

// Export marshals the document with two-space indentation and validates the
// result against the document schema before emitting it.
func (e *JSONExporter) Export(doc resume.Document) (Artifact, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Artifact{}, errors.NewInternalError(errors.ErrCodeExportFailed,
			"Failed to encode document", err)
	}

	if err := ValidateDocumentJSON(data); err != nil {
		return Artifact{}, err
	}

	return Artifact{
		Format:   "json",
		Filename: datedFilename(doc, "json"),
		Data:     data,
	}, nil
}

// Import is the inverse of Export: it decodes a structured artifact back into
// a document, validating the payload against the schema first so a corrupted
// artifact fails loudly instead of losing data.
func Import(data []byte) (resume.Document, error) {
	if err := ValidateDocumentJSON(data); err != nil {
		return resume.Document{}, err
	}

	var doc resume.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return resume.Document{}, errors.NewValidationError(errors.ErrCodeInvalidDocument,
			"Failed to decode document", err)
	}

	// Normalize nil collections so a round-trip through Export compares
	// equal to a freshly built document.
	if doc.Experience == nil {
		doc.Experience = []resume.Experience{}
	}
	if doc.Education == nil {
		doc.Education = []resume.Education{}
	}
	if doc.Skills == nil {
		doc.Skills = []resume.Skill{}
	}
	if doc.Projects == nil {
		doc.Projects = []resume.Project{}
	}
	if doc.Certifications == nil {
		doc.Certifications = []resume.Certification{}
	}
	return doc, nil
}
