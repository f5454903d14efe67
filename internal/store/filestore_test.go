package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resumecraft/internal/errors"
	"resumecraft/internal/resume"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()

	logger, err := errors.New("error")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	store, err := NewFileStore(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func testDocument(name string) resume.Document {
	doc := resume.NewBlankDocument()
	doc.PersonalInfo.FullName = name
	return doc
}

func TestSaveGeneratesID(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.Save(testDocument("Sarah Johnson"), "")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !strings.HasPrefix(stored.ID, "resume_") {
		t.Errorf("expected generated id with resume_ prefix, got %q", stored.ID)
	}
	if stored.Version != StorageVersion {
		t.Errorf("expected version %q, got %q", StorageVersion, stored.Version)
	}
	if stored.LastUpdated == "" {
		t.Error("expected last_updated to be stamped")
	}
}

func TestSaveKeepsProvidedID(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.Save(testDocument("Sarah Johnson"), "resume_42")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if stored.ID != "resume_42" {
		t.Errorf("expected id resume_42, got %q", stored.ID)
	}
}

func TestSaveWritesEnvelopeFile(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.Save(testDocument("Sarah Johnson"), "resume_1")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(store.Dir(), "resume_1.json"))
	if err != nil {
		t.Fatalf("failed to read envelope file: %v", err)
	}

	// Envelope fields sit at the top level next to the document fields
	var envelope map[string]any
	if err := json.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("envelope is not valid JSON: %v", err)
	}
	for _, key := range []string{"id", "last_updated", "version", "personalInfo", "summary", "experience"} {
		if _, ok := envelope[key]; !ok {
			t.Errorf("envelope missing key %q", key)
		}
	}
	if envelope["id"] != stored.ID {
		t.Errorf("expected id %q in envelope, got %v", stored.ID, envelope["id"])
	}
	if envelope["version"] != "1.0" {
		t.Errorf("expected version 1.0, got %v", envelope["version"])
	}
}

func TestGetReadsThroughToDisk(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Save(testDocument("Sarah Johnson"), "resume_1"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// A fresh store over the same directory has a cold memory index
	logger, _ := errors.New("error")
	reopened, err := NewFileStore(store.Dir(), logger)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}

	stored, err := reopened.Get("resume_1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.PersonalInfo.FullName != "Sarah Johnson" {
		t.Errorf("expected Sarah Johnson, got %q", stored.PersonalInfo.FullName)
	}
}

func TestGetUnknownID(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("resume_missing")
	if err == nil {
		t.Fatal("expected error for unknown id")
	}

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeResumeNotFound {
		t.Errorf("expected code %s, got %s", errors.ErrCodeResumeNotFound, appErr.Code)
	}
}

func TestListMergesAndSorts(t *testing.T) {
	store := newTestStore(t)

	for _, id := range []string{"resume_2", "resume_1", "resume_3"} {
		if _, err := store.Save(testDocument("Owner of "+id), id); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	summaries := store.List()
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}
	for i, want := range []string{"resume_1", "resume_2", "resume_3"} {
		if summaries[i].ID != want {
			t.Errorf("summary %d: expected id %q, got %q", i, want, summaries[i].ID)
		}
	}
	if summaries[0].Name != "Owner of resume_1" {
		t.Errorf("expected summary name from personal info, got %q", summaries[0].Name)
	}
}

func TestListPicksUpExternalFiles(t *testing.T) {
	store := newTestStore(t)

	stored := StoredResume{
		Document:    testDocument("External Author"),
		ID:          "resume_ext",
		LastUpdated: "2025-01-01T00:00:00Z",
		Version:     StorageVersion,
	}
	data, err := json.Marshal(stored)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(store.Dir(), "resume_ext.json"), data, 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	summaries := store.List()
	if len(summaries) != 1 || summaries[0].ID != "resume_ext" {
		t.Fatalf("expected the external file in the listing, got %+v", summaries)
	}
}
