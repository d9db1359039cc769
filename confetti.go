package balloonpump

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// ConfettiParticle is one fragment of a popped balloon.
type ConfettiParticle struct {
	X, Y   float64
	DX, DY float64
	Color  Color
	Size   float64
	// Life counts down by one per tick; the particle dies at zero.
	Life int
}

// ConfettiBurst is the fixed batch of particles owned by a popped balloon.
// Dead particles are swap-removed, so order is not preserved.
type ConfettiBurst struct {
	particles []ConfettiParticle
	alive     int
	gravity   float64
}

// newConfettiBurst spawns cfg.Count particles at (x, y).
func newConfettiBurst(cfg ConfettiConfig, x, y float64, rng *rand.Rand) *ConfettiBurst {
	b := &ConfettiBurst{
		particles: make([]ConfettiParticle, cfg.Count),
		alive:     cfg.Count,
		gravity:   cfg.Gravity,
	}
	for i := range b.particles {
		b.particles[i] = ConfettiParticle{
			X:     x,
			Y:     y,
			DX:    cfg.Speed.random(rng),
			DY:    cfg.Speed.random(rng),
			Color: confettiColor(rng),
			Size:  cfg.Size.random(rng),
			Life:  int(cfg.Life.random(rng)),
		}
		if b.particles[i].Life < 1 {
			b.particles[i].Life = 1
		}
	}
	return b
}

// confettiColor picks a random fully saturated hue at half lightness.
func confettiColor(rng *rand.Rand) Color {
	c := colorful.Hsl(rng.Float64()*360, 1, 0.5).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// Tick advances every particle by one step and removes the expired ones.
// Returns the number still alive.
func (b *ConfettiBurst) Tick() int {
	i := 0
	for i < b.alive {
		p := &b.particles[i]
		p.X += p.DX
		p.Y += p.DY
		p.DY += b.gravity
		p.Life--
		if p.Life <= 0 {
			b.alive--
			b.particles[i] = b.particles[b.alive]
			b.particles[b.alive] = ConfettiParticle{}
			continue
		}
		i++
	}
	return b.alive
}

// Len returns the number of alive particles.
func (b *ConfettiBurst) Len() int {
	if b == nil {
		return 0
	}
	return b.alive
}

// Particles returns the alive particles. The returned slice MUST NOT be
// retained across ticks.
func (b *ConfettiBurst) Particles() []ConfettiParticle {
	if b == nil {
		return nil
	}
	return b.particles[:b.alive]
}

// random returns a float64 in [Min, Max).
func (r Range) random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
