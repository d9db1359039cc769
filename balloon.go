package balloonpump

import (
	"math"
	"math/rand/v2"
	"time"
)

// balloonIDCounter is only touched from the game loop.
var balloonIDCounter uint32

func nextBalloonID() uint32 {
	balloonIDCounter++
	return balloonIDCounter
}

// Balloon is the entity spawned by each pump press. A single flat struct
// covers every lifecycle stage; State selects the behaviour.
type Balloon struct {
	ID uint32

	// Centre position and velocity, in surface units per frame.
	X, Y   float64
	DX, DY float64

	// Unscaled sprite size.
	Width, Height float64

	Scale    float64
	MaxScale float64
	Rotation float64
	Opacity  float64

	// ColorIndex selects one of the balloon sprites.
	ColorIndex int
	Label      rune
	State      BalloonState

	InflateSpeed     float64
	MaxInflateHeight float64
	riseSpeed        float64

	// Flight tuning, fixed when the balloon is spawned.
	flySpeedX    Range
	flySpeedY    Range
	bobAmplitude float64
	bobPeriod    time.Duration

	confetti *ConfettiBurst
}

// newBalloon places a fresh balloon at the pump nozzle.
func newBalloon(cfg BalloonConfig, colorIndex int, label rune) *Balloon {
	return &Balloon{
		ID:               nextBalloonID(),
		X:                SurfaceWidth - cfg.SpawnOffsetX,
		Y:                SurfaceHeight - cfg.SpawnOffsetY,
		DY:               cfg.InitialDY,
		Width:            cfg.Width,
		Height:           cfg.Height,
		Scale:            cfg.StartScale,
		MaxScale:         cfg.MaxScale,
		Opacity:          1,
		ColorIndex:       colorIndex,
		Label:            label,
		State:            StateInflating,
		InflateSpeed:     cfg.InflateSpeed,
		MaxInflateHeight: SurfaceHeight - cfg.CeilingOffset,
		riseSpeed:        cfg.RiseSpeed,
		flySpeedX:        cfg.FlySpeedX,
		flySpeedY:        cfg.FlySpeedY,
		bobAmplitude:     cfg.BobAmplitude,
		bobPeriod:        cfg.BobPeriod,
	}
}

// Burst reports whether the balloon has been popped (confetti may still be
// animating).
func (b *Balloon) Burst() bool {
	return b.State == StatePopping || b.State == StatePopped
}

// Flying reports whether the balloon has finished inflating.
func (b *Balloon) Flying() bool {
	return b.State == StateFlying
}

// Radius is the hit radius at the current scale.
func (b *Balloon) Radius() float64 {
	return b.Width * b.Scale / 2
}

// HitShape returns the balloon's current hit circle.
func (b *Balloon) HitShape() HitCircle {
	return HitCircle{CenterX: b.X, CenterY: b.Y, Radius: b.Radius()}
}

// Confetti returns the burst spawned on pop, or nil.
func (b *Balloon) Confetti() *ConfettiBurst {
	return b.confetti
}

// frameContext is the per-frame input shared by every balloon.
type frameContext struct {
	rng     *rand.Rand
	elapsed float64 // virtual milliseconds
}

// step advances one frame: move, inflate, bounce, bob. Burst balloons are
// untouched.
func (b *Balloon) step(fc *frameContext) {
	if b.Burst() {
		return
	}

	b.X += b.DX
	b.Y += b.DY

	b.inflate(fc)
	b.bounce()

	if b.State == StateFlying && b.bobPeriod > 0 {
		period := float64(b.bobPeriod) / float64(time.Millisecond)
		b.Y += math.Sin(fc.elapsed/period) * b.bobAmplitude
	}
}

// inflate grows the balloon toward MaxScale, lifting it off the pump until it
// reaches MaxInflateHeight. Flight starts exactly once, on the frame the scale
// first reaches MaxScale.
func (b *Balloon) inflate(fc *frameContext) {
	if b.State != StateInflating {
		return
	}
	if b.Scale < b.MaxScale {
		if b.Y > b.MaxInflateHeight {
			b.Y -= b.riseSpeed
		}
		b.Scale = math.Min(b.Scale+b.InflateSpeed, b.MaxScale)
	}
	if b.Scale >= b.MaxScale {
		b.startFlying(fc)
	}
}

func (b *Balloon) startFlying(fc *frameContext) {
	b.DX = b.flySpeedX.random(fc.rng)
	b.DY = b.flySpeedY.random(fc.rng)
	b.State = StateFlying
}

// bounce reflects a velocity component when the scaled extent crosses a
// surface edge while still moving toward it.
func (b *Balloon) bounce() {
	w := b.Width * b.Scale
	h := b.Height * b.Scale
	if (b.X+w > SurfaceWidth && b.DX > 0) || (b.X-w < 0 && b.DX < 0) {
		b.DX = -b.DX
	}
	if (b.Y+h > SurfaceHeight && b.DY > 0) || (b.Y-h < 0 && b.DY < 0) {
		b.DY = -b.DY
	}
}

// pop bursts the balloon into confetti. No-op if already burst.
func (b *Balloon) pop(cfg ConfettiConfig, rng *rand.Rand) bool {
	if b.Burst() {
		return false
	}
	b.State = StatePopping
	b.confetti = newConfettiBurst(cfg, b.X, b.Y, rng)
	if b.confetti.Len() == 0 {
		b.State = StatePopped
	}
	return true
}

// tickConfetti runs one confetti step. Returns false once the burst is
// empty, which ends the popping stage.
func (b *Balloon) tickConfetti() bool {
	if b.confetti.Tick() > 0 {
		return true
	}
	b.State = StatePopped
	return false
}
