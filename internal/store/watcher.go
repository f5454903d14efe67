package store

import (
	"context"
	"path/filepath"

	"resumecraft/internal/errors"

	"github.com/fsnotify/fsnotify"
)

// Watcher keeps the store's in-memory index consistent with the directory
// when files appear, change, or disappear outside the API.
type Watcher struct {
	store   *FileStore
	watcher *fsnotify.Watcher
	logger  *errors.Logger
}

// NewWatcher starts watching the store's directory.
func NewWatcher(store *FileStore, logger *errors.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeSaveFailed,
			"Failed to create store watcher", err)
	}

	if err := fsWatcher.Add(store.Dir()); err != nil {
		_ = fsWatcher.Close()
		return nil, errors.NewIOError(errors.ErrCodeSaveFailed,
			"Failed to watch store directory", err).
			WithContext("dir", store.Dir())
	}

	return &Watcher{
		store:   store,
		watcher: fsWatcher,
		logger:  logger,
	}, nil
}

// Run processes filesystem events until the context is canceled or the
// watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Store watcher error", "error", err.Error())
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	id, ok := resumeIDFromFilename(filepath.Base(event.Name))
	if !ok {
		return
	}

	switch {
	case event.Op.Has(fsnotify.Create), event.Op.Has(fsnotify.Write):
		w.logger.Debug("Store file changed, reloading", "resume_id", id, "op", event.Op.String())
		w.store.reload(id)
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		w.logger.Debug("Store file removed, evicting", "resume_id", id, "op", event.Op.String())
		w.store.evict(id)
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
