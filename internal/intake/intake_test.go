package intake

import (
	"os"
	"path/filepath"
	"testing"

	"resumecraft/internal/errors"
	"resumecraft/internal/export"
)

func TestValidateMIME(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		wantErr  bool
	}{
		{"pdf allowed", "application/pdf", false},
		{"docx allowed", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", false},
		{"legacy word allowed", "application/msword", false},
		{"plain text rejected", "text/plain", true},
		{"image rejected", "image/png", true},
		{"empty rejected", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMIME(tt.mimeType)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMIME(%q) error = %v, wantErr %v", tt.mimeType, err, tt.wantErr)
			}
			if err != nil {
				appErr, ok := err.(*errors.AppError)
				if !ok || appErr.Code != errors.ErrCodeUnsupportedMIME {
					t.Errorf("expected %s AppError, got %v", errors.ErrCodeUnsupportedMIME, err)
				}
			}
		})
	}
}

func TestSampleDocument(t *testing.T) {
	doc := SampleDocument()

	if doc.PersonalInfo.FullName != "Sarah Johnson" {
		t.Errorf("expected Sarah Johnson, got %q", doc.PersonalInfo.FullName)
	}
	if len(doc.Experience) != 2 {
		t.Fatalf("expected 2 experience entries, got %d", len(doc.Experience))
	}
	if !doc.Experience[0].Current || doc.Experience[0].EndDate != "" {
		t.Error("first experience entry should be current with no end date")
	}
	if doc.Experience[1].Current {
		t.Error("second experience entry should not be current")
	}
	if len(doc.Education) != 1 || doc.Education[0].GPA != "3.8" {
		t.Error("expected one education entry with GPA 3.8")
	}
	if len(doc.Skills) != 5 {
		t.Errorf("expected 5 skills, got %d", len(doc.Skills))
	}
	for _, skill := range doc.Skills {
		if !skill.Level.Valid() {
			t.Errorf("skill %q has invalid level %q", skill.Name, skill.Level)
		}
	}
	if len(doc.Projects) != 1 || len(doc.Certifications) != 1 {
		t.Error("expected one project and one certification")
	}
}

func TestSampleDocumentSurvivesExport(t *testing.T) {
	doc := SampleDocument()

	artifact, err := export.GlobalRegistry.Export(doc, "json")
	if err != nil {
		t.Fatalf("sample document failed schema validation: %v", err)
	}

	restored, err := export.Import(artifact.Data)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if restored.PersonalInfo.FullName != doc.PersonalInfo.FullName {
		t.Error("round trip lost personal info")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.json")

	doc := SampleDocument()
	artifact, err := export.GlobalRegistry.Export(doc, "json")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.PersonalInfo.FullName != "Sarah Johnson" {
		t.Errorf("expected Sarah Johnson, got %q", loaded.PersonalInfo.FullName)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeFileNotFound {
		t.Errorf("expected %s AppError, got %v", errors.ErrCodeFileNotFound, err)
	}
}

func TestLoadDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for directory path")
	}
}

func TestLoadRejectsInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"summary": 42}`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected schema validation error")
	}
}
