// Package intake is the boundary where documents enter the system. The real
// parser is a remote collaborator; here the contract is the MIME gate, a
// structured-artifact loader, and a canned sample document.
package intake

import (
	"fmt"
	"os"

	"resumecraft/internal/errors"
	"resumecraft/internal/export"
	"resumecraft/internal/resume"
)

// AllowedMIMETypes are the upload types the intake boundary accepts.
var AllowedMIMETypes = []string{
	"application/pdf",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/msword",
}

// ValidateMIME gates an upload by its declared MIME type. A disallowed type
// is a validation error the caller reports and drops; nothing downstream
// sees the upload.
func ValidateMIME(mimeType string) error {
	for _, allowed := range AllowedMIMETypes {
		if mimeType == allowed {
			return nil
		}
	}
	return errors.NewValidationError(errors.ErrCodeUnsupportedMIME,
		fmt.Sprintf("unsupported file type: %s", mimeType), nil).
		WithContext("allowed_types", AllowedMIMETypes)
}

// Load reads a structured-export artifact from disk back into a document.
func Load(path string) (resume.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return resume.Document{}, errors.NewIOError(errors.ErrCodeFileNotFound,
			fmt.Sprintf("file not found: %s", path), err)
	}
	if info.IsDir() {
		return resume.Document{}, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("path is a directory: %s", path), nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return resume.Document{}, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("failed to read file: %s", path), err)
	}

	return export.Import(data)
}
