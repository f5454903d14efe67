package common

import (
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name             string
		format           string
		supportedFormats []string
		expectError      bool
		expectedError    string
	}{
		{
			name:             "valid format - json",
			format:           "json",
			supportedFormats: []string{"json", "pdf", "docx"},
			expectError:      false,
		},
		{
			name:             "valid format - pdf",
			format:           "pdf",
			supportedFormats: []string{"json", "pdf", "docx"},
			expectError:      false,
		},
		{
			name:             "valid format - docx",
			format:           "docx",
			supportedFormats: []string{"json", "pdf", "docx"},
			expectError:      false,
		},
		{
			name:             "invalid format - xml",
			format:           "xml",
			supportedFormats: []string{"json", "pdf", "docx"},
			expectError:      true,
			expectedError:    "unsupported output format 'xml'. Supported formats: [json pdf docx]",
		},
		{
			name:             "invalid format - html",
			format:           "html",
			supportedFormats: []string{"json", "pdf", "docx"},
			expectError:      true,
			expectedError:    "unsupported output format 'html'. Supported formats: [json pdf docx]",
		},
		{
			name:             "case sensitive - PDF uppercase",
			format:           "PDF",
			supportedFormats: []string{"json", "pdf", "docx"},
			expectError:      true,
			expectedError:    "unsupported output format 'PDF'. Supported formats: [json pdf docx]",
		},
		{
			name:             "empty format string",
			format:           "",
			supportedFormats: []string{"json", "pdf", "docx"},
			expectError:      true,
			expectedError:    "unsupported output format ''. Supported formats: [json pdf docx]",
		},
		{
			name:             "empty supported formats - should allow all",
			format:           "xml",
			supportedFormats: []string{},
			expectError:      false,
		},
		{
			name:             "single supported format - valid",
			format:           "json",
			supportedFormats: []string{"json"},
			expectError:      false,
		},
		{
			name:             "single supported format - invalid",
			format:           "pdf",
			supportedFormats: []string{"json"},
			expectError:      true,
			expectedError:    "unsupported output format 'pdf'. Supported formats: [json]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Run validation
			err := ValidateOutputFormat(tt.format, tt.supportedFormats)

			// Check results
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error but got none")
					return
				}
				if tt.expectedError != "" && err.Error() != tt.expectedError {
					t.Errorf("Expected error '%s', got '%s'", tt.expectedError, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("Expected no error but got: %v", err)
				}
			}
		})
	}
}

// Benchmark tests to ensure validation is fast
func BenchmarkValidateOutputFormat(b *testing.B) {
	supportedFormats := []string{"json", "pdf", "docx"}

	b.Run("valid format", func(b *testing.B) {
		for b.Loop() {
			_ = ValidateOutputFormat("json", supportedFormats)
		}
	})

	b.Run("invalid format", func(b *testing.B) {
		for b.Loop() {
			_ = ValidateOutputFormat("xml", supportedFormats)
		}
	})
}
