// Package watcher re-triggers measurement when scan files change on disk.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the event bursts sensor exporters produce while
// writing a scan file.
const DefaultDebounce = 500 * time.Millisecond

// ScanWatcher watches scan files and triggers callbacks when they change
type ScanWatcher struct {
	watcher   *fsnotify.Watcher
	mu        sync.Mutex
	callbacks map[string]func(string)
	debounce  time.Duration
	timers    map[string]*time.Timer
}

// NewScanWatcher creates a new scan file watcher. A non-positive debounce
// falls back to DefaultDebounce.
func NewScanWatcher(debounce time.Duration) (*ScanWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &ScanWatcher{
		watcher:   watcher,
		callbacks: make(map[string]func(string)),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch starts watching the specified scan files
// callback will be called when any of the files change
func (sw *ScanWatcher) Watch(files []string, callback func(string)) error {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		if err := sw.watcher.Add(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}

		sw.callbacks[absPath] = callback
	}

	return nil
}

// Start begins watching for file changes
func (sw *ScanWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-sw.watcher.Events:
				if !ok {
					return
				}
				switch {
				case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
					sw.handleChange(event.Name, false)
				case event.Op&(fsnotify.Rename|fsnotify.Remove) != 0:
					// Exporters often replace the scan file instead of
					// rewriting it; re-arm the watch on the new inode
					sw.handleChange(event.Name, true)
				}

			case err, ok := <-sw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "watcher error: %v\n", err)
			}
		}
	}()
}

// handleChange debounces a change event and, for replaced files, re-adds the
// path before notifying.
func (sw *ScanWatcher) handleChange(path string, rearm bool) {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	callback, exists := sw.callbacks[path]
	if !exists {
		return
	}

	if timer, exists := sw.timers[path]; exists {
		timer.Stop()
	}

	sw.timers[path] = time.AfterFunc(sw.debounce, func() {
		if rearm {
			if err := sw.watcher.Add(path); err != nil {
				fmt.Fprintf(os.Stderr, "watcher error: failed to rewatch %s: %v\n", path, err)
				return
			}
		}
		callback(path)
	})
}

// Close stops the watcher
func (sw *ScanWatcher) Close() error {
	return sw.watcher.Close()
}
