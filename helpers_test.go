package balloonpump

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestScene returns a scene with a frozen clock, a fixed seed and the
// asset gate already open.
func newTestScene(t *testing.T) *Scene {
	t.Helper()
	return newTestSceneWith(t, DefaultConfig())
}

func newTestSceneWith(t *testing.T, cfg Config) *Scene {
	t.Helper()
	s := NewScene(cfg,
		WithClock(clockwork.NewFakeClockAt(testEpoch)),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	s.SetAssets(nil)
	return s
}

// frames advances the scene by n fixed timesteps.
func frames(s *Scene, n int) {
	step := s.cfg.FrameInterval()
	for i := 0; i < n; i++ {
		s.Advance(step)
	}
}

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
