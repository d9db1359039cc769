package balloonpump

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchConfigReportsWrites(t *testing.T) {
	path := writeConfig(t, "frameRate: 60\n")
	w, err := WatchConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// Writes to siblings are ignored.
	other := filepath.Join(filepath.Dir(path), "other.yaml")
	if err := os.WriteFile(other, []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("frameRate: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		want, _ := filepath.Abs(path)
		if got != want {
			t.Errorf("event for %q, want %q", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event for config write")
	}
}

func TestWatcherDrainAppliesConfig(t *testing.T) {
	path := writeConfig(t, "frameRate: 30\ndebug: true\n")
	w := &ConfigWatcher{Events: make(chan string, 2), Errors: make(chan error, 1)}
	s := newTestScene(t)

	w.Events <- path
	w.Drain(s, nil)
	if s.Config().FrameRate != 30 || !s.debug {
		t.Errorf("config not applied: %+v", s.Config())
	}

	// A broken file keeps the previous config.
	if err := os.WriteFile(path, []byte("frameRate: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w.Events <- path
	w.Drain(s, nil)
	if s.Config().FrameRate != 30 {
		t.Errorf("FrameRate = %d, want 30 kept", s.Config().FrameRate)
	}
}

func TestWatcherDrainKeepsOverrides(t *testing.T) {
	path := writeConfig(t, "frameRate: 30\nseed: 5\n")
	w := &ConfigWatcher{Events: make(chan string, 1), Errors: make(chan error, 1)}
	s := newTestScene(t)

	w.Events <- path
	w.Drain(s, func(c *Config) {
		c.Debug = true
		c.Seed = 99
	})
	cfg := s.Config()
	if cfg.FrameRate != 30 {
		t.Errorf("FrameRate = %d, want 30 from the file", cfg.FrameRate)
	}
	if !cfg.Debug || cfg.Seed != 99 {
		t.Errorf("overrides lost on reload: debug=%v seed=%d", cfg.Debug, cfg.Seed)
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := WatchConfig(writeConfig(t, "seed: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}
