package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"resumecraft/internal/errors"
	"resumecraft/internal/resume"
)

// FileStore keeps resumes in memory and mirrors every save to
// <dir>/<id>.json. Reads prefer memory and fall back to disk, so the store
// survives restarts and picks up files written by other processes.
type FileStore struct {
	mu     sync.RWMutex
	dir    string
	memory map[string]StoredResume
	logger *errors.Logger
}

// NewFileStore creates a store rooted at dir, creating it when missing.
func NewFileStore(dir string, logger *errors.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.NewIOError(errors.ErrCodeSaveFailed,
			fmt.Sprintf("failed to create store directory: %s", dir), err)
	}

	return &FileStore{
		dir:    dir,
		memory: make(map[string]StoredResume),
		logger: logger,
	}, nil
}

// Dir returns the store's root directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Save stamps the envelope and persists it to memory and disk. An empty id
// gets a generated one; the effective id comes back in the envelope.
func (s *FileStore) Save(doc resume.Document, id string) (StoredResume, error) {
	if id == "" {
		id = NewResumeID()
	}

	stored := StoredResume{
		Document:    doc,
		ID:          id,
		LastUpdated: time.Now().Format(time.RFC3339),
		Version:     StorageVersion,
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return StoredResume{}, errors.NewInternalError(errors.ErrCodeSaveFailed,
			"Failed to encode resume for storage", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path(id), data, 0o644); err != nil {
		return StoredResume{}, errors.NewIOError(errors.ErrCodeSaveFailed,
			fmt.Sprintf("failed to write resume file: %s", id), err)
	}
	s.memory[id] = stored

	s.logger.Debug("Resume saved", "resume_id", id, "path", s.path(id))
	return stored, nil
}

// Get returns a stored resume by id, reading through to disk when the
// in-memory index misses.
func (s *FileStore) Get(id string) (StoredResume, error) {
	s.mu.RLock()
	stored, ok := s.memory[id]
	s.mu.RUnlock()
	if ok {
		return stored, nil
	}

	stored, err := s.loadFile(s.path(id))
	if err != nil {
		return StoredResume{}, errors.NewIOError(errors.ErrCodeResumeNotFound,
			fmt.Sprintf("resume not found: %s", id), nil)
	}

	s.mu.Lock()
	s.memory[id] = stored
	s.mu.Unlock()
	return stored, nil
}

// List returns summaries of every stored resume, memory and disk merged,
// ordered by id.
func (s *FileStore) List() []Summary {
	s.mu.RLock()
	merged := make(map[string]StoredResume, len(s.memory))
	for id, stored := range s.memory {
		merged[id] = stored
	}
	s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err == nil {
		for _, entry := range entries {
			id, ok := resumeIDFromFilename(entry.Name())
			if !ok {
				continue
			}
			if _, seen := merged[id]; seen {
				continue
			}
			if stored, err := s.loadFile(filepath.Join(s.dir, entry.Name())); err == nil {
				merged[id] = stored
			}
		}
	}

	summaries := make([]Summary, 0, len(merged))
	for id, stored := range merged {
		summaries = append(summaries, Summary{
			ID:          id,
			Name:        stored.PersonalInfo.FullName,
			LastUpdated: stored.LastUpdated,
			Version:     stored.Version,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return summaries
}

// reload refreshes one id from disk, used by the watcher.
func (s *FileStore) reload(id string) {
	stored, err := s.loadFile(s.path(id))
	if err != nil {
		s.logger.Warn("Failed to reload resume file", "resume_id", id, "error", err.Error())
		return
	}

	s.mu.Lock()
	s.memory[id] = stored
	s.mu.Unlock()
}

// evict drops one id from the in-memory index, used by the watcher.
func (s *FileStore) evict(id string) {
	s.mu.Lock()
	delete(s.memory, id)
	s.mu.Unlock()
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *FileStore) loadFile(path string) (StoredResume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StoredResume{}, err
	}

	var stored StoredResume
	if err := json.Unmarshal(data, &stored); err != nil {
		return StoredResume{}, err
	}
	return stored, nil
}

func resumeIDFromFilename(name string) (string, bool) {
	if !strings.HasSuffix(name, ".json") {
		return "", false
	}
	return strings.TrimSuffix(name, ".json"), true
}
