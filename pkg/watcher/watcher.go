// Package watcher monitors a directory for newly exported DXF files.
package watcher

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DirWatcher watches a directory and hands every settled .dxf file to a
// callback. Events are debounced because CAD exporters write files in
// several chunks.
type DirWatcher struct {
	watcher      *fsnotify.Watcher
	mu           sync.Mutex
	timers       map[string]*time.Timer
	debounce     time.Duration
	ignoreSuffix string
	callback     func(string)
}

// New creates a directory watcher. Files whose base name ends in
// ignoreSuffix (before the extension) are skipped so the watcher does not
// reprocess its own output.
func New(debounce time.Duration, ignoreSuffix string, callback func(string)) (*DirWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &DirWatcher{
		watcher:      watcher,
		timers:       make(map[string]*time.Timer),
		debounce:     debounce,
		ignoreSuffix: ignoreSuffix,
		callback:     callback,
	}, nil
}

// Watch adds a directory to the watch list
func (dw *DirWatcher) Watch(dir string) error {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}
	if err := dw.watcher.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}
	return nil
}

// Start begins dispatching file events
func (dw *DirWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-dw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					if Eligible(event.Name, dw.ignoreSuffix) {
						dw.handleFileChange(event.Name)
					}
				}

			case err, ok := <-dw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

// Eligible reports whether a path is a DXF file the watcher should process.
func Eligible(path, ignoreSuffix string) bool {
	ext := filepath.Ext(path)
	if !strings.EqualFold(ext, ".dxf") {
		return false
	}
	if ignoreSuffix == "" {
		return true
	}
	base := strings.TrimSuffix(filepath.Base(path), ext)
	return !strings.HasSuffix(base, ignoreSuffix)
}

// handleFileChange schedules the callback after the debounce interval,
// resetting the timer while events for the file keep arriving.
func (dw *DirWatcher) handleFileChange(path string) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if timer, exists := dw.timers[path]; exists {
		timer.Stop()
	}

	dw.timers[path] = time.AfterFunc(dw.debounce, func() {
		dw.callback(path)
	})
}

// Close stops the watcher
func (dw *DirWatcher) Close() error {
	return dw.watcher.Close()
}
