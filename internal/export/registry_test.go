package export

import (
	"testing"

	"resumecraft/internal/resume"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySupportedFormats(t *testing.T) {
	registry := NewRegistry()
	assert.ElementsMatch(t, []string{"json", "pdf", "docx"}, registry.SupportedFormats())
}

func TestRegistryUnknownFormat(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Export(resume.NewBlankDocument(), "xml")
	require.Error(t, err)

	_, err = registry.ContentType("xml")
	assert.Error(t, err)
}

func TestRegistryContentTypes(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		format string
		want   string
	}{
		{"json", "application/json"},
		{"pdf", "application/pdf"},
		{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := registry.ContentType(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegisterReplacesExporter(t *testing.T) {
	registry := NewRegistry()
	registry.Register("json", NewJSONExporter())
	assert.Len(t, registry.SupportedFormats(), 3)
}

func TestValidateDocumentJSONAcceptsExportedDocuments(t *testing.T) {
	for _, doc := range []resume.Document{resume.NewBlankDocument(), fullDocument()} {
		artifact, err := NewJSONExporter().Export(doc)
		require.NoError(t, err)
		assert.NoError(t, ValidateDocumentJSON(artifact.Data))
	}
}
