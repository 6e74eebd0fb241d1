package graphics

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ShaderWatcher reports edits to shader source files. The watch goroutine
// only raises a flag; reloading happens on the render thread via Pending.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	changed chan struct{}
	done    chan struct{}
}

// NewShaderWatcher watches the directories holding paths. Directories are
// watched rather than files since editors often replace files on save.
func NewShaderWatcher(paths ...string) (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	sw := &ShaderWatcher{
		watcher: w,
		files:   make(map[string]bool),
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		sw.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	go sw.run()
	return sw, nil
}

func (sw *ShaderWatcher) run() {
	for {
		select {
		case <-sw.done:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !sw.files[name] {
				continue
			}
			select {
			case sw.changed <- struct{}{}:
			default:
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("shader watcher: %v", err)
		}
	}
}

// Pending reports and clears a change seen since the last call.
func (sw *ShaderWatcher) Pending() bool {
	select {
	case <-sw.changed:
		return true
	default:
		return false
	}
}

// Close stops watching.
func (sw *ShaderWatcher) Close() error {
	select {
	case <-sw.done:
		return nil
	default:
	}
	close(sw.done)
	return sw.watcher.Close()
}
