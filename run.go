package balloonpump

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig controls the window and the optional tooling around a Scene.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Scale multiplies the surface size to get the initial window size.
	Scale float64
	// Watcher, when set, hot-reloads the config between frames.
	Watcher *ConfigWatcher
	// Overrides is reapplied to every reloaded config.
	Overrides func(*Config)
	// ExitWhenScriptDone ends the game once an attached TestRunner finishes.
	ExitWhenScriptDone bool
}

// game adapts a Scene and its pump button to ebiten.Game.
type game struct {
	scene *Scene
	ui    *pumpUI
	rc    RunConfig
}

func (g *game) Update() error {
	if g.rc.Watcher != nil {
		g.rc.Watcher.Drain(g.scene, g.rc.Overrides)
		syncTPS(g.scene)
	}
	g.ui.update(g.scene)
	if err := g.scene.Update(); err != nil {
		return err
	}
	if g.rc.ExitWhenScriptDone && g.scene.testRunner != nil && g.scene.testRunner.Done() &&
		len(g.scene.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	g.ui.draw(screen)
}

// Layout fixes the logical surface; Ebitengine scales it into the window and
// maps cursor positions back into surface coordinates.
func (g *game) Layout(_, _ int) (int, int) {
	return SurfaceWidth, SurfaceHeight
}

// syncTPS keeps Ebitengine's tick rate in step with the simulation frame rate.
func syncTPS(s *Scene) {
	if tps := s.cfg.FrameRate; tps != ebiten.TPS() {
		ebiten.SetTPS(tps)
	}
}

// Run opens a window and blocks until it is closed.
func Run(scene *Scene, rc RunConfig) error {
	if rc.Scale <= 0 {
		rc.Scale = 1
	}
	ui, err := newPumpUI(scene)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(rc.Title)
	ebiten.SetWindowSize(int(SurfaceWidth*rc.Scale), int(SurfaceHeight*rc.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	syncTPS(scene)

	if err := ebiten.RunGame(&game{scene: scene, ui: ui, rc: rc}); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
