package balloonpump

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jonboulle/clockwork"
)

// Scene is the whole simulation state: the balloon list, the pump, the asset
// gate and the scheduler that drives frames and confetti timers. It is not
// safe for concurrent use; Ebitengine calls Update and Draw from one goroutine.
type Scene struct {
	cfg   Config
	clock clockwork.Clock
	rng   *rand.Rand
	sched Scheduler

	frameTask *Task
	lastTick  time.Time
	ticking   bool

	balloons  []*Balloon
	pumping   bool
	nextColor int
	pump      pumpSprite

	// Asset gate
	loaded    bool
	pending   *AssetFuture
	assets    *Assets
	labelFace *text.GoTextFace

	// Input state
	handlers      handlerRegistry
	pointers      [maxPointers]pointerState
	clickDeadZone float64
	pumpBounds    Rect
	touchMap      [maxPointers]ebiten.TouchID
	touchUsed     [maxPointers]bool
	prevTouchIDs  []ebiten.TouchID
	injectQueue   []syntheticEvent

	// Tooling
	testRunner      *TestRunner
	screenshotQueue []string
	ScreenshotDir   string
	debug           bool
	stats           debugStats
}

// Option customizes a Scene at construction.
type Option func(*Scene)

// WithClock replaces the wall clock.
func WithClock(c clockwork.Clock) Option {
	return func(s *Scene) { s.clock = c }
}

// WithRand replaces the random source.
func WithRand(r *rand.Rand) Option {
	return func(s *Scene) { s.rng = r }
}

// NewScene creates an empty scene. The frame step stays gated until assets
// arrive through Preload or SetAssets. A config that fails Validate is
// logged and replaced with DefaultConfig.
func NewScene(cfg Config, opts ...Option) *Scene {
	if err := cfg.Validate(); err != nil {
		log.Printf("[balloonpump] %v (using defaults)", err)
		cfg = DefaultConfig()
	}
	s := &Scene{
		cfg:           cfg,
		clock:         clockwork.NewRealClock(),
		clickDeadZone: defaultClickDeadZone,
		ScreenshotDir: cfg.ScreenshotDir,
		debug:         cfg.Debug,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	s.pump = newPumpSprite(cfg.Pump)
	s.frameTask = s.sched.Every(cfg.FrameInterval(), s.frame)
	return s
}

// Config returns the active configuration.
func (s *Scene) Config() Config {
	return s.cfg
}

// ApplyConfig swaps in new tuning. Balloons keep the inflate and flight
// values they were spawned with, and bursts keep their confetti timing. The
// frame rate and debug flag apply immediately. An invalid config is rejected
// and the current one kept.
func (s *Scene) ApplyConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("apply config: %w", err)
	}
	rateChanged := cfg.FrameRate != s.cfg.FrameRate
	s.cfg = cfg
	s.debug = cfg.Debug
	s.pump.duration = cfg.Pump.PressDuration
	if rateChanged {
		s.frameTask.Cancel()
		s.frameTask = s.sched.Every(cfg.FrameInterval(), s.frame)
	}
	return nil
}

// Balloons returns the balloon list in spawn order. The returned slice MUST
// NOT be mutated.
func (s *Scene) Balloons() []*Balloon {
	return s.balloons
}

// Pumping reports whether the pump button is held.
func (s *Scene) Pumping() bool {
	return s.pumping
}

// Loaded reports whether the asset gate is open.
func (s *Scene) Loaded() bool {
	return s.loaded
}

// Elapsed returns simulated time since the scene started.
func (s *Scene) Elapsed() time.Duration {
	return s.sched.Now()
}

// Update implements the per-tick half of ebiten.Game: it handles input and
// simulates the wall time elapsed since the previous call.
func (s *Scene) Update() error {
	now := s.clock.Now()
	var elapsed time.Duration
	if s.ticking {
		elapsed = now.Sub(s.lastTick)
	}
	s.lastTick = now
	s.ticking = true

	s.runScript()
	s.processInput()
	s.advance(elapsed)
	return nil
}

// Advance simulates d without polling input devices. Injected events are
// still consumed. Used for headless runs and tests.
func (s *Scene) Advance(d time.Duration) {
	s.runScript()
	s.processInjectedInput()
	s.advance(d)
}

func (s *Scene) runScript() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
}

func (s *Scene) advance(d time.Duration) {
	s.pollAssets()

	if d > s.cfg.MaxFrameLag {
		d = s.cfg.MaxFrameLag
	}
	if d < 0 {
		d = 0
	}
	s.pump.update(d)
	s.sched.Advance(d)

	if s.debug {
		s.stats.observe(s)
	}
}

// frame is the fixed-timestep task: one step for every balloon.
func (s *Scene) frame() bool {
	if !s.loaded {
		return true
	}
	fc := frameContext{
		rng:     s.rng,
		elapsed: float64(s.sched.Now()) / float64(time.Millisecond),
	}
	for _, b := range s.balloons {
		b.step(&fc)
	}
	if s.cfg.PruneBurst {
		s.prune()
	}
	return true
}

// prune drops balloons whose confetti has finished.
func (s *Scene) prune() {
	live := s.balloons[:0]
	for _, b := range s.balloons {
		if b.State != StatePopped {
			live = append(live, b)
		}
	}
	for i := len(live); i < len(s.balloons); i++ {
		s.balloons[i] = nil
	}
	s.balloons = live
}

// PressPump pushes the pump down and spawns exactly one balloon. Pressing
// again while held does nothing.
func (s *Scene) PressPump() {
	if s.pumping {
		return
	}
	s.pumping = true
	s.pump.press()

	palette := len(balloonColorNames)
	if s.nextColor >= palette {
		s.nextColor = 0
	}
	// The letter tracks the colour slot, so labels cycle A-H.
	label := rune('A' + s.nextColor)
	b := newBalloon(s.cfg.Balloon, s.nextColor, label)
	s.nextColor++
	s.balloons = append(s.balloons, b)

	for _, h := range s.handlers.spawn {
		h.fn(SpawnContext{Balloon: b})
	}
}

// ReleasePump lets the pump back up.
func (s *Scene) ReleasePump() {
	if !s.pumping {
		return
	}
	s.pumping = false
	s.pump.release()
}

// Click hit-tests (x, y) against every active balloon and pops each one it
// lands on. Returns the number popped.
func (s *Scene) Click(x, y float64) int {
	popped := 0
	for _, b := range s.balloons {
		if b.Burst() || !b.HitShape().Contains(x, y) {
			continue
		}
		if !b.pop(s.cfg.Confetti, s.rng) {
			continue
		}
		popped++
		if b.State == StatePopping {
			s.sched.Every(s.cfg.Confetti.Interval, b.tickConfetti)
		}
		for _, h := range s.handlers.pop {
			h.fn(PopContext{Balloon: b, X: x, Y: y})
		}
	}
	return popped
}

// SetDebugMode enables or disables the stats overlay and log lines.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}
