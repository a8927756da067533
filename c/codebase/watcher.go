package codebase

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/PrakharDoneria/ChiX/logging"
)

// FileWatcher keeps the index current as files change on disk. Events
// are debounced per path so a burst of writes to one file triggers a
// single re-harvest.
type FileWatcher struct {
	index    *Index
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewFileWatcher creates a watcher for the index's project root. Call
// Start to begin receiving events.
func NewFileWatcher(index *Index) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &FileWatcher{
		index:    index,
		watcher:  watcher,
		logger:   logging.Nop(),
		debounce: 500 * time.Millisecond,
		timers:   make(map[string]*time.Timer),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// SetLogger attaches a logger for watch diagnostics.
func (w *FileWatcher) SetLogger(logger *slog.Logger) {
	if logger != nil {
		w.logger = logger
	}
}

// Start watches every directory under the project root and begins
// dispatching events.
func (w *FileWatcher) Start() error {
	err := filepath.WalkDir(w.index.RootDir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if name := d.Name(); len(name) > 1 && name[0] == '.' {
			return filepath.SkipDir
		}
		if addErr := w.watcher.Add(path); addErr != nil {
			w.logger.Warn("cannot watch directory", "path", path, "error", addErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	go w.run()
	return nil
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (w *FileWatcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
	<-w.doneCh
}

func (w *FileWatcher) run() {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

func (w *FileWatcher) handleEvent(event fsnotify.Event) {
	// New directories need their own watch before events from inside
	// them arrive.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.watcher.Add(event.Name); err != nil {
				w.logger.Warn("cannot watch new directory", "path", event.Name, "error", err)
			}
			return
		}
	}

	ext := filepath.Ext(event.Name)
	if ext != ".c" && ext != ".h" {
		return
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		w.index.RemoveFile(event.Name)
		w.logger.Debug("file removed from index", "path", event.Name)
		return
	}

	if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
		w.scheduleRescan(event.Name)
	}
}

// scheduleRescan arms (or re-arms) the debounce timer for a path.
func (w *FileWatcher) scheduleRescan(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		if err := w.index.ScanFile(path); err != nil {
			w.logger.Debug("rescan failed", "path", path, "error", err)
			return
		}
		w.logger.Debug("rescanned file", "path", path)
	})
}
