package balloonpump

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// ConfigWatcher reports changes to a config file. Editors often replace the
// file instead of writing it, so the parent directory is watched and events
// are filtered by name.
type ConfigWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchConfig starts watching path.
func WatchConfig(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	cw := &ConfigWatcher{
		path:    abs,
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

// Close stops the watcher. Safe to call more than once.
func (w *ConfigWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *ConfigWatcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < reloadDebounce {
				continue
			}
			last = now
			select {
			case w.Events <- w.path:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// Drain applies every pending change to scene without blocking. adjust, if
// set, runs on each freshly loaded config before it is applied, so command
// line overrides survive a reload. A file that fails to load is logged and
// the current config kept.
func (w *ConfigWatcher) Drain(scene *Scene, adjust func(*Config)) {
	for {
		select {
		case path := <-w.Events:
			if err := reloadConfig(scene, path, adjust); err != nil {
				log.Printf("[balloonpump] reload: %v (keeping previous config)", err)
				continue
			}
			log.Printf("[balloonpump] reloaded %s", path)
		case err := <-w.Errors:
			log.Printf("[balloonpump] watch: %v", err)
		default:
			return
		}
	}
}

func reloadConfig(scene *Scene, path string, adjust func(*Config)) error {
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	if adjust != nil {
		adjust(&cfg)
	}
	return scene.ApplyConfig(cfg)
}
