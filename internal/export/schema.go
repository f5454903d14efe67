package export

import (
	"strings"

	"resumecraft/internal/errors"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema mirrors the document model: required top-level keys, the
// five collections, and the closed proficiency enum. Optional entry fields
// stay optional so hand-edited artifacts with omitted keys still load.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["personalInfo", "summary", "experience", "education", "skills", "projects", "certifications"],
  "properties": {
    "personalInfo": {
      "type": "object",
      "required": ["fullName", "email", "phone", "location", "linkedIn", "website"],
      "properties": {
        "fullName": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "location": {"type": "string"},
        "linkedIn": {"type": "string"},
        "website": {"type": "string"}
      }
    },
    "summary": {"type": "string"},
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "company", "position", "startDate", "endDate", "current", "description", "location"],
        "properties": {
          "id": {"type": "string"},
          "company": {"type": "string"},
          "position": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "current": {"type": "boolean"},
          "description": {"type": "string"},
          "location": {"type": "string"}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "institution", "degree", "field", "startDate", "endDate"],
        "properties": {
          "id": {"type": "string"},
          "institution": {"type": "string"},
          "degree": {"type": "string"},
          "field": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "gpa": {"type": "string"},
          "honors": {"type": "string"}
        }
      }
    },
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "level", "category"],
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "level": {"type": "string", "enum": ["Beginner", "Intermediate", "Advanced", "Expert"]},
          "category": {"type": "string"}
        }
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "description", "technologies", "startDate", "endDate"],
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "description": {"type": "string"},
          "technologies": {"type": "array", "items": {"type": "string"}},
          "url": {"type": "string"},
          "github": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"}
        }
      }
    },
    "certifications": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "issuer", "date"],
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "issuer": {"type": "string"},
          "date": {"type": "string"},
          "url": {"type": "string"},
          "expiryDate": {"type": "string"}
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(documentSchema)

// ValidateDocumentJSON checks a structured payload against the document
// schema and reports every violation in one error.
func ValidateDocumentJSON(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return errors.NewValidationError(errors.ErrCodeInvalidDocument,
			"Failed to validate document", err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return errors.NewValidationError(errors.ErrCodeInvalidDocument,
			"Document does not match schema", nil).
			WithContext("violations", strings.Join(details, "; "))
	}
	return nil
}
