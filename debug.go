package balloonpump

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const debugLogInterval = time.Second

// debugStats holds the counters shown by the overlay. Only populated when
// the scene is in debug mode.
type debugStats struct {
	balloons int
	flying   int
	popping  int
	confetti int
	tasks    int
	lastLog  time.Duration
	logged   bool
}

// observe refreshes the counters and logs them once per simulated second.
func (d *debugStats) observe(s *Scene) {
	d.balloons = len(s.balloons)
	d.flying, d.popping, d.confetti = 0, 0, 0
	for _, b := range s.balloons {
		switch b.State {
		case StateFlying:
			d.flying++
		case StatePopping:
			d.popping++
			d.confetti += b.confetti.Len()
		}
	}
	d.tasks = s.sched.Len()

	now := s.sched.Now()
	if d.logged && now-d.lastLog < debugLogInterval {
		return
	}
	d.lastLog = now
	d.logged = true
	log.Printf("[balloonpump] balloons: %d | flying: %d | popping: %d | confetti: %d | tasks: %d",
		d.balloons, d.flying, d.popping, d.confetti, d.tasks)
}

// String formats the overlay text.
func (d *debugStats) String() string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nballoons: %d (flying %d)\npopping: %d confetti: %d\ntasks: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		d.balloons, d.flying, d.popping, d.confetti, d.tasks)
}

// drawDebug prints the stats in the top-left corner.
func (s *Scene) drawDebug(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, s.stats.String())
}
