package balloonpump

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the toy. Zero-valued fields in a YAML file
// keep the value from DefaultConfig.
type Config struct {
	Window WindowConfig `yaml:"window"`

	// Seed feeds the random source. Zero picks a time-based seed.
	Seed uint64 `yaml:"seed"`
	// AssetsDir is the directory holding the PNG sprites.
	AssetsDir string `yaml:"assetsDir"`
	// ScreenshotDir receives PNGs queued through Scene.Screenshot.
	ScreenshotDir string `yaml:"screenshotDir"`
	// Debug turns on the stats overlay and per-second log lines.
	Debug bool `yaml:"debug"`
	// PruneBurst removes balloons from the scene once their confetti is gone.
	PruneBurst bool `yaml:"pruneBurst"`
	// FrameRate is the number of simulation frames per second.
	FrameRate int `yaml:"frameRate"`
	// MaxFrameLag caps how much wall time a single Update may simulate.
	MaxFrameLag time.Duration `yaml:"maxFrameLag"`

	Balloon  BalloonConfig  `yaml:"balloon"`
	Confetti ConfettiConfig `yaml:"confetti"`
	Pump     PumpConfig     `yaml:"pump"`
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}

// BalloonConfig tunes spawning, inflation and flight.
type BalloonConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// SpawnOffsetX and SpawnOffsetY position a new balloon relative to the
	// bottom-right corner of the surface.
	SpawnOffsetX float64 `yaml:"spawnOffsetX"`
	SpawnOffsetY float64 `yaml:"spawnOffsetY"`
	StartScale   float64 `yaml:"startScale"`
	MaxScale     float64 `yaml:"maxScale"`
	InflateSpeed float64 `yaml:"inflateSpeed"`
	// RiseSpeed is the extra upward movement per frame while inflating.
	RiseSpeed float64 `yaml:"riseSpeed"`
	// InitialDY is the vertical velocity a balloon leaves the pump with.
	InitialDY float64 `yaml:"initialDY"`
	// CeilingOffset is the distance above the bottom edge where rising stops.
	CeilingOffset float64 `yaml:"ceilingOffset"`
	FlySpeedX     Range   `yaml:"flySpeedX"`
	FlySpeedY     Range   `yaml:"flySpeedY"`
	BobAmplitude  float64 `yaml:"bobAmplitude"`
	// BobPeriod divides elapsed time before taking the sine.
	BobPeriod time.Duration `yaml:"bobPeriod"`
	// LabelOffsetY moves the label baseline below the balloon centre.
	LabelOffsetY float64 `yaml:"labelOffsetY"`
	LabelSize    float64 `yaml:"labelSize"`
}

// ConfettiConfig tunes the pop burst.
type ConfettiConfig struct {
	Count    int           `yaml:"count"`
	Interval time.Duration `yaml:"interval"`
	Gravity  float64       `yaml:"gravity"`
	Speed    Range         `yaml:"speed"`
	Size     Range         `yaml:"size"`
	Life     Range         `yaml:"life"`
}

// PumpConfig tunes the pump sprite.
type PumpConfig struct {
	// PressDuration is the plunger animation time between the two poses.
	// Zero snaps straight to the target pose.
	PressDuration time.Duration `yaml:"pressDuration"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title: "Balloon Pump",
			Scale: 1,
		},
		AssetsDir:     "assets",
		ScreenshotDir: "screenshots",
		PruneBurst:    true,
		FrameRate:     60,
		MaxFrameLag:   250 * time.Millisecond,
		Balloon: BalloonConfig{
			Width:         50,
			Height:        50,
			SpawnOffsetX:  60,
			SpawnOffsetY:  150,
			StartScale:    0.5,
			MaxScale:      2.0,
			InflateSpeed:  0.02,
			RiseSpeed:     2,
			InitialDY:     -1,
			CeilingOffset: 250,
			FlySpeedX:     Range{Min: -0.25, Max: 0.25},
			FlySpeedY:     Range{Min: -0.75, Max: -0.25},
			BobAmplitude:  2,
			BobPeriod:     200 * time.Millisecond,
			LabelOffsetY:  7,
			LabelSize:     20,
		},
		Confetti: ConfettiConfig{
			Count:    30,
			Interval: 30 * time.Millisecond,
			Gravity:  0.1,
			Speed:    Range{Min: -2, Max: 2},
			Size:     Range{Min: 2, Max: 7},
			Life:     Range{Min: 50, Max: 100},
		},
		Pump: PumpConfig{
			PressDuration: 80 * time.Millisecond,
		},
	}
}

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid config")
)

// LoadConfig reads a YAML file and decodes it over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the values keep the simulation well defined.
func (c *Config) Validate() error {
	switch {
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frameRate must be positive, got %d", ErrInvalidConfig, c.FrameRate)
	case c.MaxFrameLag <= 0:
		return fmt.Errorf("%w: maxFrameLag must be positive", ErrInvalidConfig)
	case c.Window.Scale <= 0:
		return fmt.Errorf("%w: window.scale must be positive", ErrInvalidConfig)
	case c.Balloon.Width <= 0 || c.Balloon.Height <= 0:
		return fmt.Errorf("%w: balloon size must be positive", ErrInvalidConfig)
	case c.Balloon.StartScale <= 0 || c.Balloon.StartScale > c.Balloon.MaxScale:
		return fmt.Errorf("%w: balloon.startScale (%.2f) must be in (0, maxScale=%.2f]",
			ErrInvalidConfig, c.Balloon.StartScale, c.Balloon.MaxScale)
	case c.Balloon.InflateSpeed <= 0:
		return fmt.Errorf("%w: balloon.inflateSpeed must be positive", ErrInvalidConfig)
	case c.Balloon.BobPeriod <= 0:
		return fmt.Errorf("%w: balloon.bobPeriod must be positive", ErrInvalidConfig)
	case c.Confetti.Count < 0:
		return fmt.Errorf("%w: confetti.count must not be negative", ErrInvalidConfig)
	case c.Confetti.Interval <= 0:
		return fmt.Errorf("%w: confetti.interval must be positive", ErrInvalidConfig)
	case c.Confetti.Life.Min < 1 || c.Confetti.Life.Min > c.Confetti.Life.Max:
		return fmt.Errorf("%w: confetti.life range [%.0f, %.0f) is invalid",
			ErrInvalidConfig, c.Confetti.Life.Min, c.Confetti.Life.Max)
	case c.Pump.PressDuration < 0:
		return fmt.Errorf("%w: pump.pressDuration must not be negative", ErrInvalidConfig)
	}
	for _, r := range []struct {
		name string
		r    Range
	}{
		{"balloon.flySpeedX", c.Balloon.FlySpeedX},
		{"balloon.flySpeedY", c.Balloon.FlySpeedY},
		{"confetti.speed", c.Confetti.Speed},
		{"confetti.size", c.Confetti.Size},
	} {
		if r.r.Min > r.r.Max {
			return fmt.Errorf("%w: %s min (%.2f) > max (%.2f)", ErrInvalidConfig, r.name, r.r.Min, r.r.Max)
		}
	}
	return nil
}

// FrameInterval is the fixed simulation timestep.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}
