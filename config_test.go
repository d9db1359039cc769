package balloonpump

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "balloonpump.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if got := cfg.FrameInterval(); got != time.Second/60 {
		t.Errorf("FrameInterval = %v, want %v", got, time.Second/60)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
seed: 42
pruneBurst: false
balloon:
  maxScale: 3
  bobPeriod: 150ms
confetti:
  count: 12
  interval: 20ms
  life: {min: 10, max: 20}
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 42 || cfg.PruneBurst {
		t.Errorf("seed=%d pruneBurst=%v", cfg.Seed, cfg.PruneBurst)
	}
	if cfg.Balloon.MaxScale != 3 || cfg.Balloon.BobPeriod != 150*time.Millisecond {
		t.Errorf("balloon = %+v", cfg.Balloon)
	}
	if cfg.Confetti.Count != 12 || cfg.Confetti.Interval != 20*time.Millisecond {
		t.Errorf("confetti = %+v", cfg.Confetti)
	}
	if cfg.Confetti.Life != (Range{Min: 10, Max: 20}) {
		t.Errorf("confetti.life = %+v", cfg.Confetti.Life)
	}

	// Keys absent from the file keep their defaults.
	def := DefaultConfig()
	if cfg.Balloon.StartScale != def.Balloon.StartScale || cfg.FrameRate != def.FrameRate ||
		cfg.Window.Title != def.Window.Title || cfg.Confetti.Gravity != def.Confetti.Gravity {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero frame rate", "frameRate: 0\n"},
		{"start above max", "balloon: {startScale: 3}\n"},
		{"negative confetti", "confetti: {count: -1}\n"},
		{"zero life", "confetti: {life: {min: 0, max: 5}}\n"},
		{"inverted fly range", "balloon: {flySpeedX: {min: 1, max: -1}}\n"},
		{"negative press", "pump: {pressDuration: -5ms}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "balloon: [not, a, map\n"))
	if err == nil {
		t.Error("expected parse error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("parse errors should not be reported as validation errors")
	}
}
