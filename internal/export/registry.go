// Package export turns a resume document into downloadable artifacts. Each
// format is an Exporter behind a registry keyed by format name; dispatch is
// closed over the registered set, so an unknown format fails before any
// encoding starts.
package export

import (
	"fmt"
	"strings"
	"time"

	"resumecraft/internal/errors"
	"resumecraft/internal/resume"
)

// Artifact is one exported rendition of a document.
type Artifact struct {
	Format   string
	Filename string
	Data     []byte
}

// Exporter encodes a document into one output format.
type Exporter interface {
	Export(doc resume.Document) (Artifact, error)
	ContentType() string
}

// Registry manages all available exporters.
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry creates a registry with the default exporters registered.
func NewRegistry() *Registry {
	registry := &Registry{
		exporters: make(map[string]Exporter),
	}

	registry.Register("json", NewJSONExporter())
	registry.Register("pdf", NewPDFExporter(nil))
	registry.Register("docx", NewDOCXExporter())

	return registry
}

// Register adds an exporter for a format name, replacing any previous one.
func (r *Registry) Register(format string, exporter Exporter) {
	r.exporters[format] = exporter
}

// Export encodes the document in the named format.
func (r *Registry) Export(doc resume.Document, format string) (Artifact, error) {
	exporter, ok := r.exporters[format]
	if !ok {
		return Artifact{}, errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("no exporter found for format '%s'", format), nil).
			WithContext("supported_formats", r.SupportedFormats())
	}
	return exporter.Export(doc)
}

// ContentType returns the MIME type served for a format, or an error for an
// unknown format.
func (r *Registry) ContentType(format string) (string, error) {
	exporter, ok := r.exporters[format]
	if !ok {
		return "", errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("no exporter found for format '%s'", format), nil)
	}
	return exporter.ContentType(), nil
}

// SupportedFormats returns all registered format names.
func (r *Registry) SupportedFormats() []string {
	formats := make([]string, 0, len(r.exporters))
	for format := range r.exporters {
		formats = append(formats, format)
	}
	return formats
}

// GlobalRegistry is the default registry used by the CLI and server.
var GlobalRegistry = NewRegistry()

// baseFilename derives the artifact name stem from the document owner,
// falling back to "resume" for an unnamed document.
func baseFilename(doc resume.Document) string {
	name := strings.TrimSpace(doc.PersonalInfo.FullName)
	if name == "" {
		return "resume"
	}
	return name
}

// datedFilename appends the current date, matching the structured artifact
// naming convention.
func datedFilename(doc resume.Document, ext string) string {
	return fmt.Sprintf("%s_%s.%s", baseFilename(doc), time.Now().Format("2006-01-02"), ext)
}
