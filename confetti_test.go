package balloonpump

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func newTestBurst(t *testing.T) *ConfettiBurst {
	t.Helper()
	return newConfettiBurst(DefaultConfig().Confetti, 100, 200, rand.New(rand.NewPCG(7, 8)))
}

func TestConfettiBurstSpawnsBatch(t *testing.T) {
	b := newTestBurst(t)
	if b.Len() != 30 {
		t.Fatalf("Len = %d, want 30", b.Len())
	}
	for i, p := range b.Particles() {
		if p.X != 100 || p.Y != 200 {
			t.Errorf("particle %d at (%v, %v), want (100, 200)", i, p.X, p.Y)
		}
		if p.DX < -2 || p.DX >= 2 || p.DY < -2 || p.DY >= 2 {
			t.Errorf("particle %d velocity (%v, %v) outside [-2, 2)", i, p.DX, p.DY)
		}
		if p.Size < 2 || p.Size >= 7 {
			t.Errorf("particle %d size %v outside [2, 7)", i, p.Size)
		}
		if p.Life < 50 || p.Life >= 100 {
			t.Errorf("particle %d life %d outside [50, 100)", i, p.Life)
		}
		if p.Color.A != 1 {
			t.Errorf("particle %d alpha = %v, want 1", i, p.Color.A)
		}
	}
}

func TestConfettiTickMovesAndAppliesGravity(t *testing.T) {
	b := &ConfettiBurst{
		particles: []ConfettiParticle{{X: 0, Y: 0, DX: 1, DY: -1, Life: 10}},
		alive:     1,
		gravity:   0.1,
	}
	b.Tick()
	p := b.Particles()[0]
	if p.X != 1 || p.Y != -1 {
		t.Errorf("position = (%v, %v), want (1, -1)", p.X, p.Y)
	}
	if !approxEqual(p.DY, -0.9) {
		t.Errorf("DY = %v, want -0.9", p.DY)
	}
	if p.Life != 9 {
		t.Errorf("Life = %d, want 9", p.Life)
	}
}

func TestConfettiLifeDecreasesByOne(t *testing.T) {
	b := newTestBurst(t)
	for tick := 0; tick < 200 && b.Len() > 0; tick++ {
		before := make(map[float64]int) // keyed by size, unique per particle
		for _, p := range b.Particles() {
			before[p.Size] = p.Life
		}
		b.Tick()
		for _, p := range b.Particles() {
			prev, ok := before[p.Size]
			if !ok {
				t.Fatalf("tick %d: unknown particle size %v", tick, p.Size)
			}
			if p.Life != prev-1 {
				t.Fatalf("tick %d: life went %d -> %d", tick, prev, p.Life)
			}
			if p.Life <= 0 {
				t.Fatalf("tick %d: particle with life %d still alive", tick, p.Life)
			}
		}
		for size, life := range before {
			if life > 1 {
				continue
			}
			for _, p := range b.Particles() {
				if p.Size == size {
					t.Fatalf("tick %d: particle at life %d should have been removed", tick, life)
				}
			}
		}
	}
}

func TestConfettiEmptiesWithinMaxLife(t *testing.T) {
	b := newTestBurst(t)
	ticks := 0
	for b.Len() > 0 {
		b.Tick()
		ticks++
		if ticks > 100 {
			t.Fatalf("burst still has %d particles after %d ticks", b.Len(), ticks)
		}
	}
	if len(b.Particles()) != 0 {
		t.Errorf("Particles() len = %d, want 0", len(b.Particles()))
	}
}

func TestConfettiSwapRemove(t *testing.T) {
	b := &ConfettiBurst{
		particles: []ConfettiParticle{
			{Size: 1, Life: 1},
			{Size: 2, Life: 5},
			{Size: 3, Life: 1},
			{Size: 4, Life: 5},
		},
		alive: 4,
	}
	if n := b.Tick(); n != 2 {
		t.Fatalf("alive = %d, want 2", n)
	}
	got := map[float64]bool{}
	for _, p := range b.Particles() {
		got[p.Size] = true
	}
	if !got[2] || !got[4] {
		t.Errorf("survivors = %v, want sizes 2 and 4", got)
	}
}

func TestNilBurst(t *testing.T) {
	var b *ConfettiBurst
	if b.Len() != 0 || b.Particles() != nil {
		t.Error("nil burst should be empty")
	}
}

func TestConfettiColorSaturated(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	hues := map[int]bool{}
	for i := 0; i < 200; i++ {
		c := confettiColor(rng)
		if c.A != 1 {
			t.Fatalf("alpha = %v, want 1", c.A)
		}
		h, sat, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
		if math.Abs(sat-1) > 1e-6 || math.Abs(l-0.5) > 1e-6 {
			t.Fatalf("color %+v has s=%v l=%v, want 1 and 0.5", c, sat, l)
		}
		hues[int(h)/60] = true
	}
	if len(hues) != 6 {
		t.Errorf("hue sextants covered = %d, want 6", len(hues))
	}
}

func TestRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	if v := (Range{Min: 3, Max: 3}).random(rng); v != 3 {
		t.Errorf("degenerate range = %v, want 3", v)
	}
	for i := 0; i < 100; i++ {
		if v := (Range{Min: -1, Max: 1}).random(rng); v < -1 || v >= 1 {
			t.Fatalf("random = %v outside [-1, 1)", v)
		}
	}
}
